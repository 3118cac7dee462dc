package bots

import (
	"time"

	"customchess/engine"
)

// Search tunables.
var (
	DefaultDepth     = 4
	DefaultTimeLimit = 30 * time.Second
)

// KillersPerDepth is how many cutoff moves are remembered per depth.
const KillersPerDepth = 2

// Evaluation tunables, in pawns.
var (
	CheckmateScore = 400.0
	StalemateScore = 0.0
	CheckBonus     = 2.0
)

var PieceValues = [...]float64{
	engine.NoPieceType: 0,
	engine.Pawn:        1,
	engine.Knight:      3,
	engine.Bishop:      3,
	engine.Rook:        5,
	engine.Queen:       9,
	engine.King:        0,
}
