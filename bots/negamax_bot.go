package bots

import (
	"context"
	"fmt"
	"time"

	"customchess/engine"
)

// NegamaxBot searches a fixed depth without pruning. It is the reference
// the pruned search is checked against.
type NegamaxBot struct {
	Depth     int
	Evaluator PositionEvaluator
	rng       *lockedRand
}

func NewNegamaxBot(depth int) *NegamaxBot {
	return &NegamaxBot{
		Depth:     depth,
		Evaluator: DefaultEvaluator{},
		rng:       newLockedRand(timeSeed()),
	}
}

func (b *NegamaxBot) Name() string {
	return fmt.Sprintf("Negamax Bot (depth %d)", b.Depth)
}

func (b *NegamaxBot) BestMove(_ context.Context, board *engine.Board, legal []engine.Move) engine.Move {
	res := b.Search(board, b.rng.shuffled(legal))
	if !res.Found {
		return b.rng.pick(legal)
	}
	return res.Move
}

// Search runs one full-width negamax over legal in the given order.
func (b *NegamaxBot) Search(board *engine.Board, legal []engine.Move) Result {
	start := time.Now()
	if len(legal) == 0 || b.Depth < 1 {
		return Result{}
	}
	s := newSearcher(board, b.Evaluator, nil, b.Depth)
	s.beginRound(b.Depth)
	score := s.negamax(legal, b.Depth)
	return Result{
		Move:    s.best,
		Score:   score,
		Depth:   b.Depth,
		Nodes:   s.nodes,
		Elapsed: time.Since(start),
		Found:   s.found,
	}
}
