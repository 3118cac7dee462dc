package bots

import (
	"context"

	"customchess/engine"
)

// GreedyBot looks one move ahead for each side and plays the move that
// leaves the opponent the worst best reply, measured by material.
type GreedyBot struct {
	rng *lockedRand
}

func NewGreedyBot() *GreedyBot {
	return &GreedyBot{rng: newLockedRand(timeSeed())}
}

func (b *GreedyBot) Name() string {
	return "Greedy Bot"
}

func (b *GreedyBot) BestMove(_ context.Context, board *engine.Board, legal []engine.Move) engine.Move {
	perspective := 1.0
	if !board.WhiteToMove() {
		perspective = -1
	}
	best := engine.NoMove
	opponentMinMax := CheckmateScore
	for _, m := range b.rng.shuffled(legal) {
		opponentMax := b.opponentBest(board, m, perspective)
		if best.IsNull() || opponentMax < opponentMinMax {
			opponentMinMax = opponentMax
			best = m
		}
	}
	return best
}

// opponentBest plays m and returns the best material score the opponent can
// reach with one reply, from the opponent's point of view.
func (b *GreedyBot) opponentBest(board *engine.Board, m engine.Move, perspective float64) float64 {
	board.MakeMove(m)
	defer board.UndoMove()

	replies := board.LegalMoves()
	switch {
	case board.Checkmate():
		return -CheckmateScore
	case board.Stalemate():
		return StalemateScore
	}
	best := -CheckmateScore
	for _, r := range replies {
		board.MakeMove(r)
		if score := -perspective * Material(board); score > best {
			best = score
		}
		board.UndoMove()
	}
	return best
}
