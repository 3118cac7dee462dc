package engine

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var toChessType = [...]chess.PieceType{
	NoPieceType: chess.NoPieceType,
	Pawn:        chess.Pawn,
	Knight:      chess.Knight,
	Bishop:      chess.Bishop,
	Rook:        chess.Rook,
	Queen:       chess.Queen,
	King:        chess.King,
}

func fromChessType(t chess.PieceType) PieceType {
	for i, ct := range toChessType {
		if ct == t {
			return PieceType(i)
		}
	}
	return NoPieceType
}

// ToChessSquare converts to notnil/chess square numbering (a1 = 0).
func ToChessSquare(s Square) chess.Square {
	return chess.NewSquare(chess.File(s.Col), chess.Rank(7-s.Row))
}

func FromChessSquare(s chess.Square) Square {
	return Square{Row: 7 - int8(s.Rank()), Col: int8(s.File())}
}

// ParseFEN builds a board from Forsyth-Edwards notation. Move counters are
// accepted but not tracked.
func ParseFEN(fen string) (*Board, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parse fen %q: %w", fen, err)
	}
	pos := chess.NewGame(opt).Position()

	b := newEmptyBoard()
	for sq, p := range pos.Board().SquareMap() {
		s := FromChessSquare(sq)
		c := White
		if p.Color() == chess.Black {
			c = Black
		}
		piece := NewPiece(c, fromChessType(p.Type()))
		b.grid[s.Row][s.Col] = piece
		if piece.Type() == King {
			if b.kings[c].Valid() {
				return nil, fmt.Errorf("parse fen %q: two %s kings", fen, c)
			}
			b.kings[c] = s
		}
	}
	if !b.kings[White].Valid() || !b.kings[Black].Valid() {
		return nil, fmt.Errorf("parse fen %q: missing king", fen)
	}
	b.whiteToMove = pos.Turn() == chess.White
	cr := pos.CastleRights()
	b.castle = CastleRights{
		WhiteKingSide:  cr.CanCastle(chess.White, chess.KingSide),
		WhiteQueenSide: cr.CanCastle(chess.White, chess.QueenSide),
		BlackKingSide:  cr.CanCastle(chess.Black, chess.KingSide),
		BlackQueenSide: cr.CanCastle(chess.Black, chess.QueenSide),
	}
	if ep := pos.EnPassantSquare(); ep != chess.NoSquare {
		b.enPassant = FromChessSquare(ep)
	}
	b.resetLogs()
	return b, nil
}

// FEN encodes the current position. Move counters are written as "0 1".
func (b *Board) FEN() string {
	squares := make(map[chess.Square]chess.Piece)
	for r := int8(0); r < 8; r++ {
		for c := int8(0); c < 8; c++ {
			p := b.grid[r][c]
			if p == NoPiece {
				continue
			}
			color := chess.White
			if p.Color() == Black {
				color = chess.Black
			}
			squares[ToChessSquare(Square{r, c})] = chess.NewPiece(toChessType[p.Type()], color)
		}
	}
	side := "w"
	if !b.whiteToMove {
		side = "b"
	}
	return strings.Join([]string{
		chess.NewBoard(squares).String(),
		side,
		b.castle.String(),
		b.enPassant.String(),
		"0 1",
	}, " ")
}
