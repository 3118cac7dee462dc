package bots

import "customchess/engine"

type pieceSquareTable [8][8]float64

// Tables are written from white's side: row 0 is the eighth rank.
var (
	KnightTable = pieceSquareTable{
		{0.0, 0.1, 0.2, 0.2, 0.2, 0.2, 0.1, 0.0},
		{0.1, 0.3, 0.5, 0.5, 0.5, 0.5, 0.3, 0.1},
		{0.2, 0.5, 0.6, 0.65, 0.65, 0.6, 0.5, 0.2},
		{0.2, 0.55, 0.65, 0.7, 0.7, 0.65, 0.55, 0.2},
		{0.2, 0.5, 0.65, 0.7, 0.7, 0.65, 0.5, 0.2},
		{0.2, 0.55, 0.6, 0.65, 0.65, 0.6, 0.55, 0.2},
		{0.1, 0.3, 0.5, 0.55, 0.55, 0.5, 0.3, 0.1},
		{0.0, 0.1, 0.2, 0.2, 0.2, 0.2, 0.1, 0.0},
	}
	BishopTable = pieceSquareTable{
		{0.0, 0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 0.0},
		{0.2, 0.4, 0.4, 0.4, 0.4, 0.4, 0.4, 0.2},
		{0.2, 0.4, 0.5, 0.6, 0.6, 0.5, 0.4, 0.2},
		{0.2, 0.5, 0.5, 0.6, 0.6, 0.5, 0.5, 0.2},
		{0.2, 0.4, 0.6, 0.6, 0.6, 0.6, 0.4, 0.2},
		{0.2, 0.6, 0.6, 0.6, 0.6, 0.6, 0.6, 0.2},
		{0.2, 0.5, 0.4, 0.4, 0.4, 0.4, 0.5, 0.2},
		{0.0, 0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 0.0},
	}
	RookTable = pieceSquareTable{
		{0.25, 0.25, 0.25, 0.25, 0.25, 0.25, 0.25, 0.25},
		{0.5, 0.75, 0.75, 0.75, 0.75, 0.75, 0.75, 0.5},
		{0.0, 0.25, 0.25, 0.25, 0.25, 0.25, 0.25, 0.0},
		{0.0, 0.25, 0.25, 0.25, 0.25, 0.25, 0.25, 0.0},
		{0.0, 0.25, 0.25, 0.25, 0.25, 0.25, 0.25, 0.0},
		{0.0, 0.25, 0.25, 0.25, 0.25, 0.25, 0.25, 0.0},
		{0.0, 0.25, 0.25, 0.25, 0.25, 0.25, 0.25, 0.0},
		{0.25, 0.25, 0.25, 0.5, 0.5, 0.25, 0.25, 0.25},
	}
	QueenTable = pieceSquareTable{
		{0.0, 0.2, 0.2, 0.3, 0.3, 0.2, 0.2, 0.0},
		{0.2, 0.4, 0.4, 0.4, 0.4, 0.4, 0.4, 0.2},
		{0.2, 0.4, 0.5, 0.5, 0.5, 0.5, 0.4, 0.2},
		{0.3, 0.4, 0.5, 0.5, 0.5, 0.5, 0.4, 0.3},
		{0.4, 0.4, 0.5, 0.5, 0.5, 0.5, 0.4, 0.3},
		{0.2, 0.5, 0.5, 0.5, 0.5, 0.5, 0.4, 0.2},
		{0.2, 0.4, 0.5, 0.4, 0.4, 0.4, 0.4, 0.2},
		{0.0, 0.2, 0.2, 0.3, 0.3, 0.2, 0.2, 0.0},
	}
	PawnTable = pieceSquareTable{
		{0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8},
		{0.7, 0.7, 0.7, 0.7, 0.7, 0.7, 0.7, 0.7},
		{0.3, 0.3, 0.4, 0.5, 0.5, 0.4, 0.3, 0.3},
		{0.25, 0.25, 0.3, 0.45, 0.45, 0.3, 0.25, 0.25},
		{0.2, 0.2, 0.2, 0.4, 0.4, 0.2, 0.2, 0.2},
		{0.25, 0.15, 0.1, 0.2, 0.2, 0.1, 0.15, 0.25},
		{0.25, 0.3, 0.3, 0.0, 0.0, 0.3, 0.3, 0.25},
		{0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 0.2},
	}
)

// positionBonus looks up a non-king piece. Black reads its table upside down.
func positionBonus(p engine.Piece, s engine.Square) float64 {
	var t *pieceSquareTable
	switch p.Type() {
	case engine.Pawn:
		t = &PawnTable
	case engine.Knight:
		t = &KnightTable
	case engine.Bishop:
		t = &BishopTable
	case engine.Rook:
		t = &RookTable
	case engine.Queen:
		t = &QueenTable
	default:
		return 0
	}
	if p.Color() == engine.Black {
		s = s.Mirror()
	}
	return t[s.Row][s.Col]
}
