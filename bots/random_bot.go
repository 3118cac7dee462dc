package bots

import (
	"context"
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"customchess/engine"
)

// lockedRand lets one bot serve several concurrent requests.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func newLockedRand(seed uint64) *lockedRand {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func timeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

func (l *lockedRand) pick(moves []engine.Move) engine.Move {
	if len(moves) == 0 {
		return engine.NoMove
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return moves[l.r.Intn(len(moves))]
}

// shuffled returns a shuffled copy of moves.
func (l *lockedRand) shuffled(moves []engine.Move) []engine.Move {
	out := append([]engine.Move(nil), moves...)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

var fallbackRand = newLockedRand(timeSeed())

type RandomBot struct {
	rng *lockedRand
}

func NewRandomBot() *RandomBot {
	return &RandomBot{rng: newLockedRand(timeSeed())}
}

func (b *RandomBot) BestMove(_ context.Context, _ *engine.Board, legal []engine.Move) engine.Move {
	return b.rng.pick(legal)
}

func (b *RandomBot) Name() string {
	return "Random Bot"
}
