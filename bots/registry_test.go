package bots

import (
	"context"
	"testing"
	"time"

	"customchess/engine"
)

func TestRegistryBuildsEveryBot(t *testing.T) {
	b := engine.NewBoard()
	legal := b.LegalMoves()
	for _, name := range Names() {
		bot, err := New(name, 1, time.Second)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		m := SelectMove(context.Background(), bot, b, legal)
		if _, ok := engine.LookupMove(legal, m.From, m.To); !ok {
			t.Fatalf("%s returned illegal move %s", bot.Name(), m)
		}
	}
	if _, err := New("stockfish", 1, time.Second); err == nil {
		t.Fatalf("New accepted an unknown bot")
	}
}
