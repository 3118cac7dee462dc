package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/profile"

	"customchess/bots"
	"customchess/engine"
	"customchess/record"
)

func main() {
	fen := flag.String("fen", engine.StartFEN, "start position")
	white := flag.String("white", "alphabeta", fmt.Sprintf("white bot, one of %v", bots.Names()))
	black := flag.String("black", "greedy", fmt.Sprintf("black bot, one of %v", bots.Names()))
	depth := flag.Int("depth", 3, "search depth")
	limit := flag.Duration("time", 5*time.Second, "time limit per move")
	maxPlies := flag.Int("maxplies", 200, "stop the game after this many plies")
	verbose := flag.Bool("v", false, "log every completed search depth")
	pgnPath := flag.String("pgn", "", "write the game to this file as PGN")
	prof := flag.Bool("profile", false, "write a CPU profile to the current directory")
	flag.Parse()

	if *prof {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	board, err := engine.ParseFEN(*fen)
	if err != nil {
		log.Fatal(err)
	}
	var players [2]bots.ChessBot
	for i, name := range []string{*white, *black} {
		bot, err := bots.New(name, *depth, *limit)
		if err != nil {
			log.Fatal(err)
		}
		if ab, ok := bot.(*bots.AlphaBetaBot); ok && *verbose {
			ab.Logger = log.New(os.Stderr, engine.Color(i).String()+" ", log.Ltime)
		}
		players[i] = bot
	}
	log.Printf("%s (white) vs %s (black)", players[engine.White].Name(), players[engine.Black].Name())

	ctx := context.Background()
	legal := board.LegalMoves()
	for ply := 0; ply < *maxPlies && len(legal) > 0; ply++ {
		side := board.SideToMove()
		start := time.Now()
		m := bots.SelectMove(ctx, players[side], board, legal)
		log.Printf("%3d. %s %s (%s)", ply/2+1, side, m.UCI(), time.Since(start).Round(time.Millisecond))
		board.MakeMove(m)
		legal = board.LegalMoves()
	}

	result := "*"
	switch board.Status() {
	case engine.Checkmate:
		result = "1-0"
		if board.SideToMove() == engine.White {
			result = "0-1"
		}
		log.Printf("checkmate after %d plies", len(board.MoveLog()))
	case engine.Stalemate:
		result = "1/2-1/2"
		log.Printf("stalemate after %d plies", len(board.MoveLog()))
	default:
		log.Printf("stopped after %d plies", len(board.MoveLog()))
	}

	pgn, err := record.PGN(*fen, board.MoveLog(), map[string]string{
		"Event":  "selfplay",
		"Date":   time.Now().Format("2006.01.02"),
		"White":  players[engine.White].Name(),
		"Black":  players[engine.Black].Name(),
		"Result": result,
	})
	if err != nil {
		log.Fatal(err)
	}
	if *pgnPath == "" {
		fmt.Println(pgn)
		return
	}
	if err := os.WriteFile(*pgnPath, []byte(pgn+"\n"), 0o644); err != nil {
		log.Fatal(err)
	}
}
