package bots

import (
	"math"
	"testing"

	"customchess/engine"
)

func mustFEN(t *testing.T, fen string) *engine.Board {
	t.Helper()
	b, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

var evalFENs = []string{
	engine.StartFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"4k3/8/8/8/8/8/8/4R1K1 b - - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 1",
}

func TestStartPositionIsBalanced(t *testing.T) {
	b := engine.NewBoard()
	b.LegalMoves()
	if got := (DefaultEvaluator{}).Evaluate(b); !approxEqual(got, 0) {
		t.Fatalf("start position score: got %v want 0", got)
	}
}

func TestEvaluateIsColorSymmetric(t *testing.T) {
	e := DefaultEvaluator{}
	for _, fen := range evalFENs {
		b := mustFEN(t, fen)
		m := b.Mirror()
		b.LegalMoves()
		m.LegalMoves()
		if raw, mraw := e.positionScore(b), e.positionScore(m); !approxEqual(raw, -mraw) {
			t.Errorf("%s: white-relative score %v, mirrored %v", fen, raw, mraw)
		}
		if got, want := e.Evaluate(m), e.Evaluate(b); !approxEqual(got, want) {
			t.Errorf("%s: side-to-move score %v, mirrored %v", fen, want, got)
		}
	}
}

func TestEvaluateTerminalPositions(t *testing.T) {
	e := DefaultEvaluator{}

	mate := mustFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	mate.LegalMoves()
	if got := e.Evaluate(mate); got != -CheckmateScore {
		t.Fatalf("checkmated side score: got %v want %v", got, -CheckmateScore)
	}

	stale := mustFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	stale.LegalMoves()
	if got := e.Evaluate(stale); got != StalemateScore {
		t.Fatalf("stalemate score: got %v want %v", got, StalemateScore)
	}
}

func TestCheckEarnsBonus(t *testing.T) {
	e := DefaultEvaluator{}
	checked := mustFEN(t, "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1")
	quiet := mustFEN(t, "4k3/8/8/8/8/8/8/3R2K1 b - - 0 1")
	checked.LegalMoves()
	quiet.LegalMoves()
	// The rooks stand on squares with the same table value.
	diff := e.Evaluate(checked) - e.Evaluate(quiet)
	if !approxEqual(diff, CheckBonus) {
		t.Fatalf("check bonus: got %v want %v", diff, CheckBonus)
	}
	if got, want := e.Evaluate(checked), -5.5+CheckBonus; !approxEqual(got, want) {
		t.Fatalf("black in check: got %v want %v", got, want)
	}
}

func TestMaterial(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1")
	if got := Material(b); got != -4 {
		t.Fatalf("material: got %v want -4", got)
	}
}
