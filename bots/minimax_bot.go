package bots

import (
	"context"
	"fmt"
	"math"

	"customchess/engine"
)

// MinimaxBot is the two-sided formulation: white maximizes and black
// minimizes a white-relative score, with alpha-beta cutoffs on both sides.
type MinimaxBot struct {
	Depth     int
	Evaluator PositionEvaluator
}

func NewMinimaxBot(depth int) *MinimaxBot {
	return &MinimaxBot{
		Depth:     depth,
		Evaluator: DefaultEvaluator{},
	}
}

func (b *MinimaxBot) Name() string {
	return fmt.Sprintf("Minimax Bot (depth %d)", b.Depth)
}

func (b *MinimaxBot) BestMove(_ context.Context, board *engine.Board, legal []engine.Move) engine.Move {
	if board == nil || len(legal) == 0 {
		return engine.NoMove
	}
	return b.search(board, legal).move
}

type scoredMove struct {
	move  engine.Move
	score float64
}

// minimaxSearch is the state of one MinimaxBot call.
type minimaxSearch struct {
	board *engine.Board
	eval  PositionEvaluator
}

func (b *MinimaxBot) search(board *engine.Board, legal []engine.Move) scoredMove {
	eval := b.Evaluator
	if eval == nil {
		eval = DefaultEvaluator{}
	}
	s := &minimaxSearch{board: board, eval: eval}
	return s.minimax(legal, b.Depth, math.Inf(-1), math.Inf(1), board.WhiteToMove())
}

func (s *minimaxSearch) evaluate() float64 {
	return whiteRelative(s.board, s.eval.Evaluate(s.board))
}

func (s *minimaxSearch) minimax(moves []engine.Move, depth int, alpha, beta float64, maximizing bool) scoredMove {
	if depth == 0 || len(moves) == 0 {
		return scoredMove{engine.NoMove, s.evaluate()}
	}

	var bestMove scoredMove
	if maximizing {
		bestMove.score = math.Inf(-1)
		for _, move := range moves {
			current := s.child(move, depth, alpha, beta, false)
			if current > bestMove.score {
				bestMove = scoredMove{move, current}
			}
			alpha = math.Max(alpha, bestMove.score)
			if beta <= alpha {
				break
			}
		}
	} else {
		bestMove.score = math.Inf(1)
		for _, move := range moves {
			current := s.child(move, depth, alpha, beta, true)
			if current < bestMove.score {
				bestMove = scoredMove{move, current}
			}
			beta = math.Min(beta, bestMove.score)
			if beta <= alpha {
				break
			}
		}
	}
	return bestMove
}

func (s *minimaxSearch) child(move engine.Move, depth int, alpha, beta float64, maximizing bool) float64 {
	s.board.MakeMove(move)
	defer s.board.UndoMove()
	return s.minimax(s.board.LegalMoves(), depth-1, alpha, beta, maximizing).score
}
