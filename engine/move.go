package engine

// Move is an immutable ply. Two moves are the same move when their
// origin and destination match; see ID.
type Move struct {
	From, To    Square
	Moved       Piece
	Captured    Piece
	IsPromotion bool
	IsEnPassant bool
	IsCastle    bool
}

// NoMove is the zero Move. It never appears in a generated move list.
var NoMove Move

// newMove reads the moved and captured pieces off the grid. For en passant
// the captured pawn sits beside the origin, not on the destination.
func newMove(b *Board, from, to Square, enPassant, castle bool) Move {
	m := Move{
		From:        from,
		To:          to,
		Moved:       b.grid[from.Row][from.Col],
		Captured:    b.grid[to.Row][to.Col],
		IsEnPassant: enPassant,
		IsCastle:    castle,
	}
	if m.Moved.Type() == Pawn {
		if (m.Moved.Color() == White && to.Row == 0) || (m.Moved.Color() == Black && to.Row == 7) {
			m.IsPromotion = true
		}
	}
	if enPassant {
		m.Captured = b.grid[from.Row][to.Col]
	}
	return m
}

// ID encodes origin and destination as a four digit number.
func (m Move) ID() int {
	return int(m.From.Row)*1000 + int(m.From.Col)*100 + int(m.To.Row)*10 + int(m.To.Col)
}

func (m Move) Equal(o Move) bool {
	return m.ID() == o.ID()
}

func (m Move) IsNull() bool {
	return m.Moved == NoPiece
}

// String returns coordinate notation such as "e2e4".
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	return m.From.String() + m.To.String()
}

// UCI is String plus the promotion letter, as UCI front ends expect.
func (m Move) UCI() string {
	if m.IsPromotion {
		return m.String() + "q"
	}
	return m.String()
}
