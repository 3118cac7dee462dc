package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"github.com/pkg/profile"

	"customchess/engine"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred profile writers finish
// before the process exits.
func run(args []string) int {
	fs := flag.NewFlagSet("perft", flag.ContinueOnError)
	fen := fs.String("fen", engine.StartFEN, "FEN string (defaults to initial position)")
	depth := fs.Int("depth", 0, "Perft depth (required)")
	divide := fs.Bool("divide", false, "Print per-move node counts at root")
	naive := fs.Bool("naive", false, "Use the replay-filtered generator instead of the pin-aware one")
	verify := fs.Bool("verify", false, "Compare per-move counts against dragontoothmg (queen promotions only)")
	prof := fs.String("profile", "", "Write a cpu or mem profile to the current directory")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		return 2
	}

	board, err := engine.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		return 2
	}

	switch *prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		fmt.Fprintf(os.Stderr, "unknown profile %q (want cpu or mem)\n", *prof)
		return 2
	}

	gen := engine.PinAware
	if *naive {
		gen = engine.Naive
	}

	if *verify {
		if !verifyDivide(board, *fen, *depth, gen) {
			return 1
		}
		return 0
	}

	if *divide {
		div := engine.PerftDivide(board, *depth, gen)
		var sum uint64
		for _, m := range sortedKeys(div) {
			fmt.Printf("%s: %d\n", m, div[m])
			sum += div[m]
		}
		fmt.Printf("Total: %d\n", sum)
		return 0
	}

	start := time.Now()
	nodes := engine.Perft(board, *depth, gen)
	elapsed := time.Since(start)
	fmt.Printf("%d \t\t%d \t\t%s \t%.0f\n", *depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())
	return 0
}

func verifyDivide(board *engine.Board, fen string, depth int, gen engine.Generator) bool {
	ours := engine.PerftDivide(board, depth, gen)
	db := dragontoothmg.ParseFen(fen)
	return verifyDivideCounts(ours, dragonDivide(&db, depth))
}

func verifyDivideCounts(ours, theirs map[string]uint64) bool {
	ok := true
	seen := make(map[string]bool)
	for _, m := range sortedKeys(ours) {
		seen[m] = true
		if ours[m] != theirs[m] {
			fmt.Printf("%s: ours %d, dragontoothmg %d\n", m, ours[m], theirs[m])
			ok = false
		}
	}
	for _, m := range sortedKeys(theirs) {
		if !seen[m] {
			fmt.Printf("%s: missing, dragontoothmg %d\n", m, theirs[m])
			ok = false
		}
	}
	if ok {
		fmt.Printf("ok: %d root moves agree\n", len(ours))
	}
	return ok
}

func dragonDivide(b *dragontoothmg.Board, depth int) map[string]uint64 {
	div := make(map[string]uint64)
	for _, m := range b.GenerateLegalMoves() {
		if p := m.Promote(); p != dragontoothmg.Nothing && p != dragontoothmg.Queen {
			continue
		}
		undo := b.Apply(m)
		div[m.String()] = dragonPerft(b, depth-1)
		undo()
	}
	return div
}

func dragonPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateLegalMoves() {
		if p := m.Promote(); p != dragontoothmg.Nothing && p != dragontoothmg.Queen {
			continue
		}
		undo := b.Apply(m)
		nodes += dragonPerft(b, depth-1)
		undo()
	}
	return nodes
}

func sortedKeys(m map[string]uint64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
