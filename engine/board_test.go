package engine

import (
	"reflect"
	"testing"
)

func mustFEN(t *testing.T, fen string) *Board {
	t.Helper()
	b, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func mustMove(t *testing.T, b *Board, uci string) Move {
	t.Helper()
	m, err := b.MoveFromUCI(uci)
	if err != nil {
		t.Fatalf("MoveFromUCI(%q) on %s: %v", uci, b.FEN(), err)
	}
	return m
}

func play(t *testing.T, b *Board, moves ...string) {
	t.Helper()
	for _, s := range moves {
		b.MakeMove(mustMove(t, b, s))
	}
}

type snapshot struct {
	Grid         [8][8]Piece
	WhiteToMove  bool
	Kings        [2]Square
	Castle       CastleRights
	EnPassant    Square
	MoveLog      []Move
	EnPassantLog []Square
	CastleLog    []CastleRights
}

func snap(b *Board) snapshot {
	return snapshot{
		Grid:         b.grid,
		WhiteToMove:  b.whiteToMove,
		Kings:        b.kings,
		Castle:       b.castle,
		EnPassant:    b.enPassant,
		MoveLog:      append([]Move{}, b.moveLog...),
		EnPassantLog: append([]Square{}, b.enPassantLog...),
		CastleLog:    append([]CastleRights{}, b.castleLog...),
	}
}

var walkFENs = []string{
	StartFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
}

func TestStartPositionHasTwentyMoves(t *testing.T) {
	b := NewBoard()
	if got := len(b.LegalMoves()); got != 20 {
		t.Fatalf("legal moves from start: got %d want 20", got)
	}
	if b.Status() != Ongoing {
		t.Fatalf("start position status: got %v", b.Status())
	}
}

func TestNewBoardMatchesStartFEN(t *testing.T) {
	a := NewBoard()
	b := mustFEN(t, StartFEN)
	if !reflect.DeepEqual(snap(a), snap(b)) {
		t.Fatalf("NewBoard and ParseFEN(StartFEN) differ:\n%s\n%s", a, b)
	}
	if a.FEN() != StartFEN {
		t.Fatalf("FEN: got %q want %q", a.FEN(), StartFEN)
	}
}

func TestHistoryStacksStayAligned(t *testing.T) {
	b := NewBoard()
	play(t, b, "e2e4", "d7d5", "e4d5")
	if len(b.moveLog) != 3 || len(b.enPassantLog) != 4 || len(b.castleLog) != 4 {
		t.Fatalf("stack lengths: moves=%d ep=%d castle=%d", len(b.moveLog), len(b.enPassantLog), len(b.castleLog))
	}
	b.UndoMove()
	b.UndoMove()
	if len(b.moveLog) != 1 || len(b.enPassantLog) != 2 || len(b.castleLog) != 2 {
		t.Fatalf("stack lengths after undo: moves=%d ep=%d castle=%d", len(b.moveLog), len(b.enPassantLog), len(b.castleLog))
	}
	if b.EnPassantTarget() != Sq(5, 4) {
		t.Fatalf("en passant target after undo: got %v want e3", b.EnPassantTarget())
	}
}

func TestMakeUndoRestoresBoard(t *testing.T) {
	var walk func(t *testing.T, b *Board, depth int)
	walk = func(t *testing.T, b *Board, depth int) {
		if depth == 0 {
			return
		}
		for _, m := range b.LegalMoves() {
			before := snap(b)
			b.MakeMove(m)
			walk(t, b, depth-1)
			b.UndoMove()
			if after := snap(b); !reflect.DeepEqual(before, after) {
				t.Fatalf("make/undo %s changed the board:\nbefore %+v\nafter  %+v", m, before, after)
			}
		}
	}
	for _, fen := range walkFENs {
		walk(t, mustFEN(t, fen), 2)
	}
}

func TestUndoOnEmptyHistoryIsNoop(t *testing.T) {
	b := NewBoard()
	before := snap(b)
	b.UndoMove()
	if !reflect.DeepEqual(before, snap(b)) {
		t.Fatalf("UndoMove on fresh board changed state")
	}
}

func TestEnPassantRemovesPassedPawn(t *testing.T) {
	b := NewBoard()
	play(t, b, "e2e4", "a7a6", "e4e5", "d7d5")
	if b.EnPassantTarget() != Sq(2, 3) {
		t.Fatalf("en passant target: got %v want d6", b.EnPassantTarget())
	}
	m := mustMove(t, b, "e5d6")
	if !m.IsEnPassant || m.Captured != BlackPawn {
		t.Fatalf("e5d6: got %+v, want en passant capturing a black pawn", m)
	}
	b.MakeMove(m)
	d6, _ := ParseSquare("d6")
	d5, _ := ParseSquare("d5")
	e5, _ := ParseSquare("e5")
	if b.PieceAt(d6) != WhitePawn || b.PieceAt(d5) != NoPiece || b.PieceAt(e5) != NoPiece {
		t.Fatalf("after en passant:\n%s", b)
	}
	b.UndoMove()
	if b.PieceAt(d5) != BlackPawn || b.PieceAt(e5) != WhitePawn || b.PieceAt(d6) != NoPiece {
		t.Fatalf("after undoing en passant:\n%s", b)
	}
}

func TestEnPassantExpiresAfterOnePly(t *testing.T) {
	b := NewBoard()
	play(t, b, "e2e4", "a7a6", "e4e5", "d7d5", "h2h3", "h7h6")
	if _, err := b.MoveFromUCI("e5d6"); err == nil {
		t.Fatalf("en passant allowed after the opportunity passed")
	}
}

func TestKingSideCastle(t *testing.T) {
	b := NewBoard()
	play(t, b, "e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6")
	m := mustMove(t, b, "e1g1")
	if !m.IsCastle {
		t.Fatalf("e1g1 not flagged as castle: %+v", m)
	}
	b.MakeMove(m)
	g1, _ := ParseSquare("g1")
	f1, _ := ParseSquare("f1")
	h1, _ := ParseSquare("h1")
	if b.PieceAt(g1) != WhiteKing || b.PieceAt(f1) != WhiteRook || b.PieceAt(h1) != NoPiece {
		t.Fatalf("after castling:\n%s", b)
	}
	if b.KingSquare(White) != g1 {
		t.Fatalf("king cache: got %v want g1", b.KingSquare(White))
	}
	if cr := b.CastleRights(); cr.WhiteKingSide || cr.WhiteQueenSide || !cr.BlackKingSide {
		t.Fatalf("castle rights after castling: %v", cr)
	}
}

func TestQueenSideCastleAndUndo(t *testing.T) {
	b := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1")
	before := snap(b)
	m := mustMove(t, b, "e8c8")
	b.MakeMove(m)
	c8, _ := ParseSquare("c8")
	d8, _ := ParseSquare("d8")
	a8, _ := ParseSquare("a8")
	if b.PieceAt(c8) != BlackKing || b.PieceAt(d8) != BlackRook || b.PieceAt(a8) != NoPiece {
		t.Fatalf("after e8c8:\n%s", b)
	}
	b.UndoMove()
	if !reflect.DeepEqual(before, snap(b)) {
		t.Fatalf("undo of queen side castle did not restore the board:\n%s", b)
	}
}

func TestCastleForbidden(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"king in check", "4k3/8/8/8/8/8/8/r3K2R w K - 0 1"},
		{"transit square attacked", "4kr2/8/8/8/8/8/8/4K2R w K - 0 1"},
		{"destination attacked", "4k1r1/8/8/8/8/8/8/4K2R w K - 0 1"},
		{"path blocked", "4k3/8/8/8/8/8/8/4KN1R w K - 0 1"},
		{"right revoked", "4k3/8/8/8/8/8/8/4K2R w - - 0 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFEN(t, tt.fen)
			for _, m := range b.LegalMoves() {
				if m.IsCastle {
					t.Fatalf("castle %s generated in %s", m, tt.fen)
				}
			}
		})
	}
}

func TestCastleRightsRevocation(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  CastleRights
	}{
		{"white king move", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"e1d1"},
			CastleRights{false, false, true, true}},
		{"white king rook move", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"h1h2"},
			CastleRights{false, true, true, true}},
		{"black queen rook move", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", []string{"a8b8"},
			CastleRights{true, true, true, false}},
		{"black king rook move", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", []string{"h8g8"},
			CastleRights{true, true, false, true}},
		{"white captures black queen rook", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"a1a8"},
			CastleRights{true, false, true, false}},
		{"black captures white king rook", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", []string{"h8h1"},
			CastleRights{false, true, false, true}},
		{"rook returning home keeps right lost", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			[]string{"h1h2", "a8a7", "h2h1"}, CastleRights{false, true, true, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFEN(t, tt.fen)
			play(t, b, tt.moves...)
			if got := b.CastleRights(); got != tt.want {
				t.Fatalf("castle rights: got %v want %v", got, tt.want)
			}
			for range tt.moves {
				b.UndoMove()
			}
			if got := b.CastleRights(); got != (CastleRights{true, true, true, true}) {
				t.Fatalf("castle rights after undo: got %v want KQkq", got)
			}
		})
	}
}

func TestPromotionAlwaysQueens(t *testing.T) {
	b := mustFEN(t, "k7/4P3/8/8/8/8/8/7K w - - 0 1")
	m := mustMove(t, b, "e7e8")
	if !m.IsPromotion {
		t.Fatalf("e7e8 not flagged as promotion")
	}
	b.MakeMove(m)
	e8, _ := ParseSquare("e8")
	if b.PieceAt(e8) != WhiteQueen {
		t.Fatalf("promoted piece: got %v want Q", b.PieceAt(e8))
	}
	b.UndoMove()
	e7, _ := ParseSquare("e7")
	if b.PieceAt(e7) != WhitePawn || b.PieceAt(e8) != NoPiece {
		t.Fatalf("undo promotion:\n%s", b)
	}
	if _, err := b.MoveFromUCI("e7e8n"); err == nil {
		t.Fatalf("underpromotion accepted")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard()
	play(t, b, "e2e4")
	c := b.Clone()
	play(t, c, "e7e5", "g1f3")
	if len(b.MoveLog()) != 1 {
		t.Fatalf("clone shares move log: %d moves", len(b.MoveLog()))
	}
	c.UndoMove()
	c.UndoMove()
	if !reflect.DeepEqual(snap(b), snap(c)) {
		t.Fatalf("clone diverged after undo")
	}
}

func TestKeyIgnoresHistory(t *testing.T) {
	a := NewBoard()
	play(t, a, "g1f3", "g8f6", "f3g1", "f6g8")
	b := NewBoard()
	if a.Key() != b.Key() {
		t.Fatalf("keys differ for identical positions: %q vs %q", a.Key(), b.Key())
	}
	play(t, b, "e2e4")
	if a.Key() == b.Key() {
		t.Fatalf("keys equal for different positions")
	}
}

func TestMissingKingPanics(t *testing.T) {
	b := NewBoard()
	b.grid[7][4] = NoPiece
	defer func() {
		if recover() == nil {
			t.Fatalf("LegalMoves did not panic without a white king")
		}
	}()
	b.LegalMoves()
}

func TestMoveNotation(t *testing.T) {
	b := NewBoard()
	m := mustMove(t, b, "e2e4")
	if m.String() != "e2e4" {
		t.Fatalf("String: got %q", m.String())
	}
	if m.ID() != 6444 {
		t.Fatalf("ID: got %d want 6444", m.ID())
	}
	other := Move{From: m.From, To: m.To}
	if !m.Equal(other) {
		t.Fatalf("moves with equal squares not Equal")
	}
}

func TestMirrorPreservesMoveCount(t *testing.T) {
	for _, fen := range walkFENs {
		b := mustFEN(t, fen)
		m := b.Mirror()
		if got, want := len(m.LegalMoves()), len(b.LegalMoves()); got != want {
			t.Fatalf("%s: mirror has %d moves, original %d", fen, got, want)
		}
		if back := m.Mirror(); back.Key() != b.Key() {
			t.Fatalf("%s: mirroring twice changed the position", fen)
		}
	}
}
