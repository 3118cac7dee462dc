package engine

import (
	"errors"
	"fmt"
)

var ErrIllegalMove = errors.New("engine: illegal move")

type direction struct {
	dr, dc int8
}

func (d direction) neg() direction {
	return direction{-d.dr, -d.dc}
}

// The first four rays are orthogonal, the last four diagonal.
var rayDirections = [8]direction{
	{-1, 0}, {0, -1}, {1, 0}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

var (
	rookDirections   = rayDirections[:4]
	bishopDirections = rayDirections[4:]
)

var knightOffsets = [8]direction{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// pin is a friendly piece that may only move along dir or its opposite.
type pin struct {
	sq  Square
	dir direction
}

// check is an attacker on the king. dir is unused for knights.
type check struct {
	sq     Square
	dir    direction
	knight bool
}

// attacksAlong reports whether p, found j steps from the king along
// rayDirections[i], gives check along that ray.
func attacksAlong(p Piece, i int, j int8) bool {
	diagonal := i >= 4
	switch p.Type() {
	case Queen:
		return true
	case Rook:
		return !diagonal
	case Bishop:
		return diagonal
	case King:
		return j == 1
	case Pawn:
		if j != 1 || !diagonal {
			return false
		}
		// White pawns capture toward row 0, so they hit a king one row below.
		if p.Color() == White {
			return rayDirections[i].dr == 1
		}
		return rayDirections[i].dr == -1
	}
	return false
}

// scan casts rays and knight probes from s as if c's king stood there.
// c's own king is transparent so hypothetical squares next to it are
// judged correctly. With nil sinks it stops at the first attacker.
func (b *Board) scan(s Square, c Color, pins *[]pin, checks *[]check) bool {
	inCheck := false
	for i, d := range rayDirections {
		candidate := NoSquare
		for j := int8(1); j < 8; j++ {
			t := Square{s.Row + d.dr*j, s.Col + d.dc*j}
			if !t.Valid() {
				break
			}
			p := b.grid[t.Row][t.Col]
			if p == NoPiece {
				continue
			}
			if p.Color() == c {
				if p.Type() == King {
					continue
				}
				if candidate != NoSquare {
					break
				}
				candidate = t
				continue
			}
			if attacksAlong(p, i, j) {
				if candidate == NoSquare {
					inCheck = true
					if checks == nil {
						return true
					}
					*checks = append(*checks, check{sq: t, dir: d})
				} else if pins != nil {
					*pins = append(*pins, pin{sq: candidate, dir: d})
				}
			}
			break
		}
	}
	enemyKnight := NewPiece(c.Other(), Knight)
	for _, d := range knightOffsets {
		t := s.offset(d.dr, d.dc)
		if t.Valid() && b.grid[t.Row][t.Col] == enemyKnight {
			inCheck = true
			if checks == nil {
				return true
			}
			*checks = append(*checks, check{sq: t, dir: d, knight: true})
		}
	}
	return inCheck
}

// attacked reports whether a king of color c would be attacked on s.
func (b *Board) attacked(s Square, c Color) bool {
	return b.scan(s, c, nil, nil)
}

func (b *Board) kingOf(c Color) Square {
	k := b.kings[c]
	if !k.Valid() || b.grid[k.Row][k.Col] != NewPiece(c, King) {
		panic(fmt.Sprintf("engine: %s king missing from %s", c, k))
	}
	return k
}

// InCheck reports whether the side to move is attacked.
func (b *Board) InCheck() bool {
	side := b.SideToMove()
	return b.attacked(b.kingOf(side), side)
}

func (b *Board) computePinsAndChecks() {
	side := b.SideToMove()
	b.pins = b.pins[:0]
	b.checks = b.checks[:0]
	b.inCheck = b.scan(b.kingOf(side), side, &b.pins, &b.checks)
}

func (b *Board) pinDirection(s Square) (direction, bool) {
	for _, p := range b.pins {
		if p.sq == s {
			return p.dir, true
		}
	}
	return direction{}, false
}

// LegalMoves returns every legal move for the side to move and refreshes
// the checkmate and stalemate flags.
func (b *Board) LegalMoves() []Move {
	side := b.SideToMove()
	b.computePinsAndChecks()
	king := b.kings[side]

	var moves []Move
	switch {
	case len(b.checks) > 1:
		moves = b.kingMoves(king, make([]Move, 0, 8))
	case b.inCheck:
		moves = b.pseudoLegalMoves(true)
		valid := b.blockSquares(king, b.checks[0])
		kept := moves[:0]
		for _, m := range moves {
			// En passant was already verified by replay, and may take a
			// checking pawn that does not stand on the destination.
			if m.Moved.Type() == King || m.IsEnPassant || containsSquare(valid, m.To) {
				kept = append(kept, m)
			}
		}
		moves = kept
	default:
		moves = b.pseudoLegalMoves(true)
		moves = b.castleMoves(king, moves)
	}
	b.setStatus(len(moves) == 0, b.inCheck)
	return moves
}

// LegalMovesNaive generates every pseudo-legal move and discards those that
// leave the mover's king attacked after replaying them. It is slower than
// LegalMoves and exists to cross-check it.
func (b *Board) LegalMovesNaive() []Move {
	side := b.SideToMove()
	king := b.kingOf(side)
	b.pins = b.pins[:0]
	b.checks = b.checks[:0]
	b.inCheck = b.attacked(king, side)

	moves := b.pseudoLegalMoves(false)
	moves = b.castleMoves(king, moves)
	legal := moves[:0]
	for _, m := range moves {
		b.MakeMove(m)
		ok := !b.attacked(b.kings[side], side)
		b.UndoMove()
		if ok {
			legal = append(legal, m)
		}
	}
	b.setStatus(len(legal) == 0, b.inCheck)
	return legal
}

func (b *Board) setStatus(empty, inCheck bool) {
	b.checkmate = empty && inCheck
	b.stalemate = empty && !inCheck
}

// blockSquares lists the squares a non-king move must land on to resolve
// a single check: the attacker itself, or any square between it and the king.
func (b *Board) blockSquares(king Square, chk check) []Square {
	attacker := b.grid[chk.sq.Row][chk.sq.Col].Type()
	if chk.knight || attacker == Pawn || attacker == King {
		return []Square{chk.sq}
	}
	squares := make([]Square, 0, 7)
	for i := int8(1); i < 8; i++ {
		s := Square{king.Row + chk.dir.dr*i, king.Col + chk.dir.dc*i}
		squares = append(squares, s)
		if s == chk.sq {
			break
		}
	}
	return squares
}

func containsSquare(squares []Square, s Square) bool {
	for _, t := range squares {
		if t == s {
			return true
		}
	}
	return false
}

func (b *Board) pseudoLegalMoves(pinAware bool) []Move {
	side := b.SideToMove()
	moves := make([]Move, 0, 48)
	for r := int8(0); r < 8; r++ {
		for c := int8(0); c < 8; c++ {
			p := b.grid[r][c]
			if !p.Is(side) {
				continue
			}
			s := Square{r, c}
			switch p.Type() {
			case Pawn:
				moves = b.pawnMoves(s, moves, pinAware)
			case Knight:
				moves = b.knightMoves(s, moves)
			case Bishop:
				moves = b.slidingMoves(s, bishopDirections, moves)
			case Rook:
				moves = b.slidingMoves(s, rookDirections, moves)
			case Queen:
				moves = b.slidingMoves(s, rayDirections[:], moves)
			case King:
				moves = b.kingMoves(s, moves)
			}
		}
	}
	return moves
}

func (b *Board) pawnMoves(s Square, moves []Move, pinAware bool) []Move {
	side := b.SideToMove()
	pd, pinned := b.pinDirection(s)
	allowed := func(d direction) bool {
		return !pinned || d == pd || d == pd.neg()
	}
	fwd, startRow := int8(-1), int8(6)
	if side == Black {
		fwd, startRow = 1, 1
	}

	one := s.offset(fwd, 0)
	if one.Valid() && b.grid[one.Row][one.Col] == NoPiece && allowed(direction{fwd, 0}) {
		moves = append(moves, newMove(b, s, one, false, false))
		two := s.offset(2*fwd, 0)
		if s.Row == startRow && b.grid[two.Row][two.Col] == NoPiece {
			moves = append(moves, newMove(b, s, two, false, false))
		}
	}
	for _, dc := range [2]int8{-1, 1} {
		t := s.offset(fwd, dc)
		if !t.Valid() || !allowed(direction{fwd, dc}) {
			continue
		}
		if b.grid[t.Row][t.Col].Is(side.Other()) {
			moves = append(moves, newMove(b, s, t, false, false))
		} else if t == b.enPassant {
			m := newMove(b, s, t, true, false)
			if !pinAware || b.keepsKingSafe(m) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// keepsKingSafe replays m. En passant removes two pawns from one rank, which
// ray-based pin detection cannot see.
func (b *Board) keepsKingSafe(m Move) bool {
	side := b.SideToMove()
	b.MakeMove(m)
	defer b.UndoMove()
	return !b.attacked(b.kings[side], side)
}

func (b *Board) knightMoves(s Square, moves []Move) []Move {
	if _, pinned := b.pinDirection(s); pinned {
		return moves
	}
	side := b.SideToMove()
	for _, d := range knightOffsets {
		t := s.offset(d.dr, d.dc)
		if t.Valid() && !b.grid[t.Row][t.Col].Is(side) {
			moves = append(moves, newMove(b, s, t, false, false))
		}
	}
	return moves
}

func (b *Board) slidingMoves(s Square, dirs []direction, moves []Move) []Move {
	side := b.SideToMove()
	pd, pinned := b.pinDirection(s)
	for _, d := range dirs {
		if pinned && d != pd && d != pd.neg() {
			continue
		}
		for j := int8(1); j < 8; j++ {
			t := Square{s.Row + d.dr*j, s.Col + d.dc*j}
			if !t.Valid() {
				break
			}
			p := b.grid[t.Row][t.Col]
			if p.Is(side) {
				break
			}
			moves = append(moves, newMove(b, s, t, false, false))
			if p != NoPiece {
				break
			}
		}
	}
	return moves
}

func (b *Board) kingMoves(s Square, moves []Move) []Move {
	side := b.SideToMove()
	for _, d := range rayDirections {
		t := s.offset(d.dr, d.dc)
		if !t.Valid() || b.grid[t.Row][t.Col].Is(side) {
			continue
		}
		if !b.attacked(t, side) {
			moves = append(moves, newMove(b, s, t, false, false))
		}
	}
	return moves
}

func (b *Board) castleMoves(s Square, moves []Move) []Move {
	side := b.SideToMove()
	r := homeRow(side)
	if b.inCheck || s != Sq(int(r), 4) {
		return moves
	}
	rook := NewPiece(side, Rook)
	if b.castle.KingSide(side) && b.grid[r][7] == rook &&
		b.grid[r][5] == NoPiece && b.grid[r][6] == NoPiece &&
		!b.attacked(Square{r, 5}, side) && !b.attacked(Square{r, 6}, side) {
		moves = append(moves, newMove(b, s, Square{r, 6}, false, true))
	}
	if b.castle.QueenSide(side) && b.grid[r][0] == rook &&
		b.grid[r][3] == NoPiece && b.grid[r][2] == NoPiece && b.grid[r][1] == NoPiece &&
		!b.attacked(Square{r, 3}, side) && !b.attacked(Square{r, 2}, side) {
		moves = append(moves, newMove(b, s, Square{r, 2}, false, true))
	}
	return moves
}

// LookupMove finds the move in moves that goes from one square to the other.
func LookupMove(moves []Move, from, to Square) (Move, bool) {
	for _, m := range moves {
		if m.From == from && m.To == to {
			return m, true
		}
	}
	return NoMove, false
}

// MoveFromUCI resolves coordinate notation ("e2e4", "e7e8q") against the
// current legal moves.
func (b *Board) MoveFromUCI(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, fmt.Errorf("%w: %q", ErrIllegalMove, s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}
	m, ok := LookupMove(b.LegalMoves(), from, to)
	if !ok {
		return NoMove, fmt.Errorf("%w: %s", ErrIllegalMove, s)
	}
	if len(s) == 5 && (!m.IsPromotion || s[4] != 'q') {
		return NoMove, fmt.Errorf("%w: %s (promotion is always to a queen)", ErrIllegalMove, s)
	}
	return m, nil
}
