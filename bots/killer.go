package bots

import (
	"golang.org/x/exp/slices"

	"customchess/engine"
)

// killerTable remembers, per remaining depth, the last moves that caused a
// beta cutoff. Slot 0 is the newest.
type killerTable [][KillersPerDepth]engine.Move

func newKillerTable(maxDepth int) killerTable {
	return make(killerTable, maxDepth+1)
}

func (k killerTable) insert(m engine.Move, depth int) {
	slots := &k[depth]
	for _, km := range slots {
		if km.Equal(m) && !km.IsNull() {
			return
		}
	}
	copy(slots[1:], slots[:KillersPerDepth-1])
	slots[0] = m
}

// order moves killers present in moves to the front, newest first. The
// moves are reordered in place; the list's own Move values are kept since a
// killer from a sibling may carry a different captured piece.
func (k killerTable) order(moves []engine.Move, depth int) []engine.Move {
	slots := k[depth]
	for i := KillersPerDepth - 1; i >= 0; i-- {
		km := slots[i]
		if km.IsNull() {
			continue
		}
		idx := slices.IndexFunc(moves, km.Equal)
		if idx <= 0 {
			continue
		}
		m := moves[idx]
		moves = slices.Insert(slices.Delete(moves, idx, idx+1), 0, m)
	}
	return moves
}

func (k killerTable) clear() {
	for i := range k {
		k[i] = [KillersPerDepth]engine.Move{}
	}
}
