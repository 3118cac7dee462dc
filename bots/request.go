package bots

import (
	"context"

	"customchess/engine"
)

// Request is a search running on its own goroutine against a private copy
// of the board. The result arrives once, on a buffered channel, so the
// worker never blocks on a caller that stopped polling.
type Request struct {
	done   chan engine.Move
	move   engine.Move
	ready  bool
	cancel context.CancelFunc
}

// RequestMove starts bot on a clone of b and returns immediately. The
// caller keeps using b freely; only the clone is searched.
func RequestMove(ctx context.Context, bot ChessBot, b *engine.Board, legal []engine.Move) *Request {
	ctx, cancel := context.WithCancel(ctx)
	r := &Request{
		done:   make(chan engine.Move, 1),
		cancel: cancel,
	}
	board := b.Clone()
	moves := append([]engine.Move(nil), legal...)
	go func() {
		defer cancel()
		r.done <- SelectMove(ctx, bot, board, moves)
	}()
	return r
}

// Poll returns the move once the search has finished. It never blocks and
// must be called from a single goroutine.
func (r *Request) Poll() (engine.Move, bool) {
	if r.ready {
		return r.move, true
	}
	select {
	case m := <-r.done:
		r.move, r.ready = m, true
		return m, true
	default:
		return engine.NoMove, false
	}
}

// Wait blocks until the search has finished.
func (r *Request) Wait() engine.Move {
	if !r.ready {
		r.move, r.ready = <-r.done, true
	}
	return r.move
}

// Cancel asks the search to stop at its next depth boundary. The request
// still delivers a move.
func (r *Request) Cancel() {
	r.cancel()
}
