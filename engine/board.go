package engine

import "strings"

// CastleRights holds the four independent castling permissions.
type CastleRights struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

func (c CastleRights) KingSide(color Color) bool {
	if color == White {
		return c.WhiteKingSide
	}
	return c.BlackKingSide
}

func (c CastleRights) QueenSide(color Color) bool {
	if color == White {
		return c.WhiteQueenSide
	}
	return c.BlackQueenSide
}

func (c CastleRights) String() string {
	var sb strings.Builder
	if c.WhiteKingSide {
		sb.WriteByte('K')
	}
	if c.WhiteQueenSide {
		sb.WriteByte('Q')
	}
	if c.BlackKingSide {
		sb.WriteByte('k')
	}
	if c.BlackQueenSide {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

type Status uint8

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// Board is the single mutable game state. It is not safe for concurrent
// use; searches either own a Clone or hold the caller's lock throughout.
type Board struct {
	grid        [8][8]Piece
	whiteToMove bool
	kings       [2]Square
	castle      CastleRights
	enPassant   Square

	moveLog      []Move
	enPassantLog []Square
	castleLog    []CastleRights

	// Set by LegalMoves, cleared by UndoMove.
	checkmate bool
	stalemate bool

	// Per-generation caches, rebuilt by computePinsAndChecks.
	inCheck bool
	pins    []pin
	checks  []check
}

var startRows = [2][8]Piece{
	{BlackRook, BlackKnight, BlackBishop, BlackQueen, BlackKing, BlackBishop, BlackKnight, BlackRook},
	{WhiteRook, WhiteKnight, WhiteBishop, WhiteQueen, WhiteKing, WhiteBishop, WhiteKnight, WhiteRook},
}

// NewBoard returns the standard starting position.
func NewBoard() *Board {
	b := newEmptyBoard()
	b.grid[0] = startRows[0]
	b.grid[7] = startRows[1]
	for c := 0; c < 8; c++ {
		b.grid[1][c] = BlackPawn
		b.grid[6][c] = WhitePawn
	}
	b.kings[White] = Sq(7, 4)
	b.kings[Black] = Sq(0, 4)
	b.castle = CastleRights{true, true, true, true}
	b.resetLogs()
	return b
}

func newEmptyBoard() *Board {
	return &Board{
		whiteToMove: true,
		enPassant:   NoSquare,
		kings:       [2]Square{NoSquare, NoSquare},
	}
}

// resetLogs seeds the en passant and castling stacks with the current state.
func (b *Board) resetLogs() {
	b.moveLog = make([]Move, 0, 64)
	b.enPassantLog = append(make([]Square, 0, 65), b.enPassant)
	b.castleLog = append(make([]CastleRights, 0, 65), b.castle)
}

func (b *Board) PieceAt(s Square) Piece {
	return b.grid[s.Row][s.Col]
}

func (b *Board) WhiteToMove() bool {
	return b.whiteToMove
}

func (b *Board) SideToMove() Color {
	if b.whiteToMove {
		return White
	}
	return Black
}

func (b *Board) KingSquare(c Color) Square {
	return b.kings[c]
}

func (b *Board) CastleRights() CastleRights {
	return b.castle
}

func (b *Board) EnPassantTarget() Square {
	return b.enPassant
}

// MoveLog returns the played moves, oldest first. The slice is shared.
func (b *Board) MoveLog() []Move {
	return b.moveLog
}

func (b *Board) LastMove() (Move, bool) {
	if len(b.moveLog) == 0 {
		return NoMove, false
	}
	return b.moveLog[len(b.moveLog)-1], true
}

func (b *Board) Checkmate() bool {
	return b.checkmate
}

func (b *Board) Stalemate() bool {
	return b.stalemate
}

func (b *Board) Status() Status {
	switch {
	case b.checkmate:
		return Checkmate
	case b.stalemate:
		return Stalemate
	default:
		return Ongoing
	}
}

// MakeMove applies m without checking legality. Only moves from the most
// recent LegalMoves call may be passed in.
func (b *Board) MakeMove(m Move) {
	b.grid[m.From.Row][m.From.Col] = NoPiece
	b.grid[m.To.Row][m.To.Col] = m.Moved
	b.moveLog = append(b.moveLog, m)
	if m.Moved.Type() == King {
		b.kings[m.Moved.Color()] = m.To
	}
	b.whiteToMove = !b.whiteToMove

	if m.IsPromotion {
		b.grid[m.To.Row][m.To.Col] = NewPiece(m.Moved.Color(), PromotionChoice)
	}
	if m.IsEnPassant {
		b.grid[m.From.Row][m.To.Col] = NoPiece
	}
	if m.Moved.Type() == Pawn && abs8(m.From.Row-m.To.Row) == 2 {
		b.enPassant = Square{(m.From.Row + m.To.Row) / 2, m.To.Col}
	} else {
		b.enPassant = NoSquare
	}
	if m.IsCastle {
		r := m.To.Row
		if m.To.Col-m.From.Col == 2 {
			b.grid[r][m.To.Col-1] = b.grid[r][m.To.Col+1]
			b.grid[r][m.To.Col+1] = NoPiece
		} else {
			b.grid[r][m.To.Col+1] = b.grid[r][m.To.Col-2]
			b.grid[r][m.To.Col-2] = NoPiece
		}
	}

	b.enPassantLog = append(b.enPassantLog, b.enPassant)
	b.updateCastleRights(m)
	b.castleLog = append(b.castleLog, b.castle)
}

// UndoMove reverts the last MakeMove. It is a no-op on an empty history.
func (b *Board) UndoMove() {
	n := len(b.moveLog)
	if n == 0 {
		return
	}
	m := b.moveLog[n-1]
	b.moveLog = b.moveLog[:n-1]

	b.grid[m.From.Row][m.From.Col] = m.Moved
	b.grid[m.To.Row][m.To.Col] = m.Captured
	b.whiteToMove = !b.whiteToMove
	if m.Moved.Type() == King {
		b.kings[m.Moved.Color()] = m.From
	}
	if m.IsEnPassant {
		b.grid[m.To.Row][m.To.Col] = NoPiece
		b.grid[m.From.Row][m.To.Col] = m.Captured
	}

	b.enPassantLog = b.enPassantLog[:len(b.enPassantLog)-1]
	b.enPassant = b.enPassantLog[len(b.enPassantLog)-1]
	b.castleLog = b.castleLog[:len(b.castleLog)-1]
	b.castle = b.castleLog[len(b.castleLog)-1]

	if m.IsCastle {
		r := m.To.Row
		if m.To.Col-m.From.Col == 2 {
			b.grid[r][m.To.Col+1] = b.grid[r][m.To.Col-1]
			b.grid[r][m.To.Col-1] = NoPiece
		} else {
			b.grid[r][m.To.Col-2] = b.grid[r][m.To.Col+1]
			b.grid[r][m.To.Col+1] = NoPiece
		}
	}
	b.checkmate = false
	b.stalemate = false
}

// homeRow is the back rank a color's king and rooks start on.
func homeRow(c Color) int8 {
	if c == White {
		return 7
	}
	return 0
}

// updateCastleRights revokes rights from the move's pre-move squares:
// a king move drops both, a rook leaving or being captured on its home
// corner drops that side.
func (b *Board) updateCastleRights(m Move) {
	switch m.Moved {
	case WhiteKing:
		b.castle.WhiteKingSide = false
		b.castle.WhiteQueenSide = false
	case BlackKing:
		b.castle.BlackKingSide = false
		b.castle.BlackQueenSide = false
	case WhiteRook, BlackRook:
		b.revokeCorner(m.Moved.Color(), m.From)
	}
	if m.Captured.Type() == Rook && !m.IsEnPassant {
		b.revokeCorner(m.Captured.Color(), m.To)
	}
}

func (b *Board) revokeCorner(c Color, s Square) {
	if s.Row != homeRow(c) {
		return
	}
	switch {
	case c == White && s.Col == 0:
		b.castle.WhiteQueenSide = false
	case c == White && s.Col == 7:
		b.castle.WhiteKingSide = false
	case c == Black && s.Col == 0:
		b.castle.BlackQueenSide = false
	case c == Black && s.Col == 7:
		b.castle.BlackKingSide = false
	}
}

// Clone returns a deep copy whose history stacks are independent of b.
func (b *Board) Clone() *Board {
	c := *b
	c.moveLog = append(make([]Move, 0, cap(b.moveLog)), b.moveLog...)
	c.enPassantLog = append(make([]Square, 0, cap(b.enPassantLog)), b.enPassantLog...)
	c.castleLog = append(make([]CastleRights, 0, cap(b.castleLog)), b.castleLog...)
	c.pins = append([]pin(nil), b.pins...)
	c.checks = append([]check(nil), b.checks...)
	return &c
}

// Key is a canonical encoding of the position: grid, side to move,
// castling rights and en passant target. History is not part of it.
func (b *Board) Key() string {
	var sb strings.Builder
	sb.Grow(72)
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			sb.WriteString(b.grid[r][c].String())
		}
	}
	if b.whiteToMove {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteString(b.castle.String())
	sb.WriteString(b.enPassant.String())
	return sb.String()
}

// String draws the grid, black's back rank first.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < 8; r++ {
		sb.WriteByte('8' - byte(r))
		for c := 0; c < 8; c++ {
			sb.WriteByte(' ')
			sb.WriteString(b.grid[r][c].String())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

func abs8(x int8) int8 {
	if x < 0 {
		return -x
	}
	return x
}

// Mirror returns the color-swapped position reflected across the middle of
// the board, with the other side to move. History is not carried over.
func (b *Board) Mirror() *Board {
	m := newEmptyBoard()
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if p := b.grid[r][c]; p != NoPiece {
				m.grid[7-r][c] = NewPiece(p.Color().Other(), p.Type())
			}
		}
	}
	m.whiteToMove = !b.whiteToMove
	m.kings[White] = b.kings[Black].Mirror()
	m.kings[Black] = b.kings[White].Mirror()
	m.castle = CastleRights{
		WhiteKingSide:  b.castle.BlackKingSide,
		WhiteQueenSide: b.castle.BlackQueenSide,
		BlackKingSide:  b.castle.WhiteKingSide,
		BlackQueenSide: b.castle.WhiteQueenSide,
	}
	m.enPassant = b.enPassant.Mirror()
	m.resetLogs()
	return m
}
