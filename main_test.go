package main

import (
	"context"
	"testing"

	"customchess/bots"
	"customchess/engine"
)

func testGame(t *testing.T, c engine.Color) *Game {
	t.Helper()
	g := &Game{
		selected: engine.NoSquare,
		players:  []bots.ChessBot{bots.NewRandomBot()},
	}
	if err := g.startGame(c); err != nil {
		t.Fatalf("startGame: %v", err)
	}
	return g
}

func TestNewGameResetsState(t *testing.T) {
	g := testGame(t, engine.White)
	m, err := g.board.MoveFromUCI("e2e4")
	if err != nil {
		t.Fatalf("MoveFromUCI: %v", err)
	}
	g.play(m, "player")
	g.request = bots.RequestMove(context.Background(), g.bot(), g.board, g.legal)
	g.selected = engine.Sq(6, 3)

	g.newGame()
	if g.gameStarted || g.board != nil || g.legal != nil || g.request != nil {
		t.Fatalf("state survived reset: started=%v board=%v request=%v", g.gameStarted, g.board != nil, g.request != nil)
	}
	if g.selected.Valid() {
		t.Fatalf("selection survived reset: %s", g.selected)
	}

	if err := g.startGame(engine.Black); err != nil {
		t.Fatalf("startGame after reset: %v", err)
	}
	if len(g.board.MoveLog()) != 0 || len(g.legal) != 20 {
		t.Fatalf("restarted game not fresh: %d plies, %d moves", len(g.board.MoveLog()), len(g.legal))
	}
}

func TestUndoReturnsToPlayer(t *testing.T) {
	g := testGame(t, engine.White)
	for _, s := range []string{"e2e4", "e7e5"} {
		m, err := g.board.MoveFromUCI(s)
		if err != nil {
			t.Fatalf("MoveFromUCI(%q): %v", s, err)
		}
		g.play(m, "test")
	}
	g.undo()
	if n := len(g.board.MoveLog()); n != 0 {
		t.Fatalf("undo left %d plies", n)
	}
	if g.board.SideToMove() != engine.White {
		t.Fatalf("undo did not return the move to the player")
	}
}
