package engine

// Generator produces the legal moves of a board. LegalMoves and
// LegalMovesNaive both satisfy it.
type Generator func(*Board) []Move

var (
	PinAware Generator = (*Board).LegalMoves
	Naive    Generator = (*Board).LegalMovesNaive
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(b *Board, depth int, gen Generator) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := gen(b)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		b.MakeMove(m)
		nodes += Perft(b, depth-1, gen)
		b.UndoMove()
	}
	return nodes
}

// PerftDivide reports the perft count below each root move, keyed by UCI.
func PerftDivide(b *Board, depth int, gen Generator) map[string]uint64 {
	div := make(map[string]uint64)
	if depth <= 0 {
		return div
	}
	for _, m := range gen(b) {
		b.MakeMove(m)
		div[m.UCI()] = Perft(b, depth-1, gen)
		b.UndoMove()
	}
	return div
}
