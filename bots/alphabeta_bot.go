package bots

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"customchess/engine"
)

// AlphaBetaBot runs iterative-deepening negamax with alpha-beta pruning and
// killer moves. The time limit is only checked between depths, so a round
// that has started always finishes.
type AlphaBetaBot struct {
	Depth     int
	TimeLimit time.Duration
	Evaluator PositionEvaluator
	Cache     EvalCache
	Logger    *log.Logger

	rng *lockedRand
}

func NewAlphaBetaBot(depth int, timeLimit time.Duration) *AlphaBetaBot {
	return &AlphaBetaBot{
		Depth:     depth,
		TimeLimit: timeLimit,
		Evaluator: DefaultEvaluator{},
		rng:       newLockedRand(timeSeed()),
	}
}

func (b *AlphaBetaBot) Name() string {
	return fmt.Sprintf("AlphaBeta Bot (depth %d, %s)", b.Depth, b.TimeLimit)
}

func (b *AlphaBetaBot) BestMove(ctx context.Context, board *engine.Board, legal []engine.Move) engine.Move {
	res := b.Search(ctx, board, legal)
	if !res.Found {
		return b.rng.pick(legal)
	}
	return res.Move
}

// Search deepens from 1 to b.Depth. Each completed depth replaces the
// previous answer. A non-positive TimeLimit disables the clock; ctx
// cancellation is honoured at the same round boundaries.
func (b *AlphaBetaBot) Search(ctx context.Context, board *engine.Board, legal []engine.Move) Result {
	start := time.Now()
	var deadline time.Time
	if b.TimeLimit > 0 {
		deadline = start.Add(b.TimeLimit)
	}
	if d, ok := ctx.Deadline(); ok && (deadline.IsZero() || d.Before(deadline)) {
		deadline = d
	}

	var res Result
	if len(legal) == 0 {
		return res
	}
	moves := b.rng.shuffled(legal)
	s := newSearcher(board, b.Evaluator, b.Cache, b.Depth)
	for depth := 1; depth <= b.Depth; depth++ {
		if ctx.Err() != nil || (!deadline.IsZero() && time.Now().After(deadline)) {
			break
		}
		s.beginRound(depth)
		score := s.alphaBeta(moves, depth, math.Inf(-1), math.Inf(1))
		if s.found {
			res.Move, res.Score, res.Depth, res.Found = s.best, score, depth, true
		}
		if b.Logger != nil {
			b.Logger.Printf("depth %d score %.2f nodes %d time %s best %s",
				depth, score, s.nodes, time.Since(start).Round(time.Millisecond), s.best)
		}
	}
	res.Nodes = s.nodes
	res.Elapsed = time.Since(start)
	return res
}
