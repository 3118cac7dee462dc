package engine

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PromotionChoice is the only piece a pawn ever promotes to.
const PromotionChoice = Queen

// Piece packs a color and a piece type. The zero value is an empty square.
type Piece uint8

const NoPiece Piece = 0

const (
	WhitePawn   = Piece(Pawn)
	WhiteKnight = Piece(Knight)
	WhiteBishop = Piece(Bishop)
	WhiteRook   = Piece(Rook)
	WhiteQueen  = Piece(Queen)
	WhiteKing   = Piece(King)
	BlackPawn   = Piece(Pawn) | blackBit
	BlackKnight = Piece(Knight) | blackBit
	BlackBishop = Piece(Bishop) | blackBit
	BlackRook   = Piece(Rook) | blackBit
	BlackQueen  = Piece(Queen) | blackBit
	BlackKing   = Piece(King) | blackBit
)

const blackBit Piece = 8

func NewPiece(c Color, t PieceType) Piece {
	if t == NoPieceType {
		return NoPiece
	}
	if c == Black {
		return Piece(t) | blackBit
	}
	return Piece(t)
}

func (p Piece) Type() PieceType {
	return PieceType(p &^ blackBit)
}

// Color is meaningless for NoPiece; check IsEmpty first.
func (p Piece) Color() Color {
	if p&blackBit != 0 {
		return Black
	}
	return White
}

func (p Piece) IsEmpty() bool {
	return p == NoPiece
}

func (p Piece) Is(c Color) bool {
	return p != NoPiece && p.Color() == c
}

var pieceLetters = [...]byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}

// String renders the piece as a FEN letter, upper case for white.
func (p Piece) String() string {
	if p == NoPiece {
		return "."
	}
	l := pieceLetters[p.Type()]
	if p.Color() == White {
		l -= 'a' - 'A'
	}
	return string(l)
}
