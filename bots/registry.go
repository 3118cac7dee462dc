package bots

import (
	"fmt"
	"sort"
	"time"
)

var constructors = map[string]func(depth int, limit time.Duration) ChessBot{
	"random":    func(int, time.Duration) ChessBot { return NewRandomBot() },
	"greedy":    func(int, time.Duration) ChessBot { return NewGreedyBot() },
	"negamax":   func(depth int, _ time.Duration) ChessBot { return NewNegamaxBot(depth) },
	"minimax":   func(depth int, _ time.Duration) ChessBot { return NewMinimaxBot(depth) },
	"alphabeta": func(depth int, limit time.Duration) ChessBot { return NewAlphaBetaBot(depth, limit) },
}

// Names lists the bots New knows, sorted.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds a bot by name. depth and limit are ignored by bots that do
// not search.
func New(name string, depth int, limit time.Duration) (ChessBot, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown bot %q (have %v)", name, Names())
	}
	return ctor(depth, limit), nil
}
