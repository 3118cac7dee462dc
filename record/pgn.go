// Package record exports played games.
package record

import (
	"fmt"
	"sort"

	"github.com/notnil/chess"

	"customchess/engine"
)

// PGN replays moves from startFEN and renders the game in PGN. An empty
// startFEN means the standard starting position.
func PGN(startFEN string, moves []engine.Move, tags map[string]string) (string, error) {
	var opts []func(*chess.Game)
	if startFEN != "" && startFEN != engine.StartFEN {
		opt, err := chess.FEN(startFEN)
		if err != nil {
			return "", fmt.Errorf("record: start position: %w", err)
		}
		opts = append(opts, opt)
	}
	g := chess.NewGame(opts...)

	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		g.AddTagPair(k, tags[k])
	}

	var uci chess.UCINotation
	for i, m := range moves {
		cm, err := uci.Decode(g.Position(), m.UCI())
		if err != nil {
			return "", fmt.Errorf("record: ply %d %s: %w", i+1, m, err)
		}
		if err := g.Move(cm); err != nil {
			return "", fmt.Errorf("record: ply %d %s: %w", i+1, m, err)
		}
	}
	return g.String(), nil
}
