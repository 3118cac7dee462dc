// bot.go
package bots

import (
	"context"

	"customchess/engine"
)

// ChessBot picks a move for the side to move. Implementations may make and
// undo moves on b while thinking but must leave it as they found it.
type ChessBot interface {
	BestMove(ctx context.Context, b *engine.Board, legal []engine.Move) engine.Move
	Name() string
}

// PositionEvaluator scores a position from the side to move's point of
// view. It may rely on the checkmate and stalemate flags left by the most
// recent LegalMoves call on b.
type PositionEvaluator interface {
	Evaluate(b *engine.Board) float64
}

// SelectMove asks bot for a move and falls back to a uniformly random legal
// move when the bot returns none. It returns engine.NoMove only when legal
// is empty.
func SelectMove(ctx context.Context, bot ChessBot, b *engine.Board, legal []engine.Move) engine.Move {
	if len(legal) == 0 {
		return engine.NoMove
	}
	if m := bot.BestMove(ctx, b, legal); !m.IsNull() {
		return m
	}
	return fallbackRand.pick(legal)
}
