package engine

import (
	"errors"
	"fmt"
)

var ErrBadSquare = errors.New("engine: bad square")

// Square is a grid coordinate. Row 0 is black's back rank, row 7 white's.
type Square struct {
	Row, Col int8
}

// NoSquare marks an absent en passant target.
var NoSquare = Square{-1, -1}

func Sq(row, col int) Square {
	return Square{int8(row), int8(col)}
}

func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

func (s Square) offset(dr, dc int8) Square {
	return Square{s.Row + dr, s.Col + dc}
}

// String returns the file and rank, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.Col), '8' - byte(s.Row)})
}

func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrBadSquare, s)
	}
	return Square{Row: int8('8' - s[1]), Col: int8(s[0] - 'a')}, nil
}

// Mirror flips the square vertically.
func (s Square) Mirror() Square {
	if !s.Valid() {
		return s
	}
	return Square{7 - s.Row, s.Col}
}
