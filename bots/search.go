package bots

import (
	"math"
	"time"

	"customchess/engine"
)

// Result is what one search call found. Found is false when no round
// finished, in which case Move is engine.NoMove.
type Result struct {
	Move    engine.Move
	Score   float64
	Depth   int
	Nodes   uint64
	Elapsed time.Duration
	Found   bool
}

// searcher carries the state of one search call. Every recursive frame
// makes a move on the shared board and undoes it before returning.
type searcher struct {
	board    *engine.Board
	eval     PositionEvaluator
	cache    EvalCache
	killers  killerTable
	maxDepth int

	best      engine.Move
	bestScore float64
	found     bool
	nodes     uint64
}

func newSearcher(b *engine.Board, eval PositionEvaluator, cache EvalCache, maxDepth int) *searcher {
	if eval == nil {
		eval = DefaultEvaluator{}
	}
	return &searcher{
		board:    b,
		eval:     eval,
		cache:    cache,
		killers:  newKillerTable(maxDepth),
		maxDepth: maxDepth,
	}
}

func (s *searcher) evaluate() float64 {
	if s.cache == nil {
		return s.eval.Evaluate(s.board)
	}
	key := s.board.Key()
	if v, ok := s.cache.Get(key); ok {
		return v
	}
	v := s.eval.Evaluate(s.board)
	s.cache.Put(key, v)
	return v
}

// beginRound resets the per-round answer before searching to depth.
func (s *searcher) beginRound(depth int) {
	s.maxDepth = depth
	s.best = engine.NoMove
	s.bestScore = math.Inf(-1)
	s.found = false
}

func (s *searcher) record(depth int, m engine.Move, score float64) {
	if depth == s.maxDepth {
		s.best, s.bestScore, s.found = m, score, true
	}
}

// negamax searches every move without pruning.
func (s *searcher) negamax(moves []engine.Move, depth int) float64 {
	s.nodes++
	if depth == 0 || len(moves) == 0 {
		return s.evaluate()
	}
	best := math.Inf(-1)
	for _, m := range moves {
		score := s.negamaxChild(m, depth)
		if score > best {
			best = score
			s.record(depth, m, score)
		}
	}
	return best
}

func (s *searcher) negamaxChild(m engine.Move, depth int) float64 {
	s.board.MakeMove(m)
	defer s.board.UndoMove()
	return -s.negamax(s.board.LegalMoves(), depth-1)
}

// alphaBeta is negamax with alpha-beta pruning and killer ordering.
func (s *searcher) alphaBeta(moves []engine.Move, depth int, alpha, beta float64) float64 {
	s.nodes++
	if depth == 0 || len(moves) == 0 {
		return s.evaluate()
	}
	moves = s.killers.order(moves, depth)
	best := math.Inf(-1)
	for _, m := range moves {
		score := s.alphaBetaChild(m, depth, alpha, beta)
		if score > best {
			best = score
			s.record(depth, m, score)
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			s.killers.insert(m, depth)
			break
		}
	}
	return best
}

func (s *searcher) alphaBetaChild(m engine.Move, depth int, alpha, beta float64) float64 {
	s.board.MakeMove(m)
	defer s.board.UndoMove()
	return -s.alphaBeta(s.board.LegalMoves(), depth-1, -beta, -alpha)
}
