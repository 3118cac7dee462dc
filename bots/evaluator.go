package bots

import (
	"sync"

	"customchess/engine"
)

// DefaultEvaluator scores material, piece placement and checks. The side
// to move gets CheckBonus while in check.
type DefaultEvaluator struct{}

func (e DefaultEvaluator) Evaluate(b *engine.Board) float64 {
	if b.Checkmate() {
		return -CheckmateScore
	}
	if b.Stalemate() {
		return StalemateScore
	}
	score := e.positionScore(b)
	if !b.WhiteToMove() {
		score = -score
	}
	if b.InCheck() {
		score += CheckBonus
	}
	return score
}

// positionScore is material plus placement from white's point of view.
func (e DefaultEvaluator) positionScore(b *engine.Board) float64 {
	var score float64
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			s := engine.Sq(r, c)
			p := b.PieceAt(s)
			if p.IsEmpty() {
				continue
			}
			v := PieceValues[p.Type()] + positionBonus(p, s)
			if p.Color() == engine.White {
				score += v
			} else {
				score -= v
			}
		}
	}
	return score
}

// Material counts piece values only, from white's point of view.
func Material(b *engine.Board) float64 {
	var score float64
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b.PieceAt(engine.Sq(r, c))
			if p.IsEmpty() {
				continue
			}
			if p.Color() == engine.White {
				score += PieceValues[p.Type()]
			} else {
				score -= PieceValues[p.Type()]
			}
		}
	}
	return score
}

// whiteRelative converts a side-to-move score to white's point of view.
func whiteRelative(b *engine.Board, score float64) float64 {
	if b.WhiteToMove() {
		return score
	}
	return -score
}

// EvalCache memoizes leaf evaluations by engine.Board.Key.
type EvalCache interface {
	Get(key string) (float64, bool)
	Put(key string, score float64)
}

type mapCache struct {
	mu     sync.RWMutex
	scores map[string]float64
}

// NewEvalCache returns an unbounded in-memory EvalCache. It may be shared by
// concurrent searches.
func NewEvalCache() EvalCache {
	return &mapCache{scores: make(map[string]float64)}
}

func (c *mapCache) Get(key string) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.scores[key]
	return v, ok
}

func (c *mapCache) Put(key string, score float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scores[key] = score
}
