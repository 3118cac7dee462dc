package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"customchess/bots"
	"customchess/engine"
	"customchess/record"
)

const logLines = 24

var (
	screenWidth  int
	screenHeight int
	squareSize   int
)

var (
	lightSquare = color.RGBA{240, 217, 181, 255}
	darkSquare  = color.RGBA{181, 136, 99, 255}
	selectedClr = color.RGBA{246, 246, 105, 160}
	lastMoveClr = color.RGBA{205, 210, 106, 120}
	targetClr   = color.RGBA{20, 85, 30, 140}
	whitePiece  = color.RGBA{235, 235, 235, 255}
	blackPiece  = color.RGBA{40, 40, 40, 255}
)

type Game struct {
	startFEN string
	board    *engine.Board
	legal    []engine.Move

	selected     engine.Square
	dragging     bool
	dragX, dragY int

	playerColor engine.Color
	gameStarted bool

	players []bots.ChessBot
	current int
	request *bots.Request

	boardOffsetX int
	boardOffsetY int
}

func NewGame(startFEN string, players []bots.ChessBot, current int) *Game {
	screenWidth, screenHeight = ebiten.ScreenSizeInFullscreen()

	boardHeight := screenHeight - 80
	squareSize = boardHeight / 8
	if screenWidth/8 < squareSize {
		squareSize = screenWidth / 8
	}

	boardWidth := squareSize * 8
	return &Game{
		startFEN:     startFEN,
		selected:     engine.NoSquare,
		players:      players,
		current:      current,
		boardOffsetX: (screenWidth - boardWidth) / 2,
		boardOffsetY: (screenHeight - boardHeight) / 2,
	}
}

func (g *Game) bot() bots.ChessBot {
	return g.players[g.current]
}

func (g *Game) startGame(c engine.Color) error {
	b := engine.NewBoard()
	if g.startFEN != "" {
		var err error
		if b, err = engine.ParseFEN(g.startFEN); err != nil {
			return err
		}
	}
	g.board = b
	g.playerColor = c
	g.gameStarted = true
	g.refreshLegal()
	log.Printf("new game: player %s vs %s", c, g.bot().Name())
	return nil
}

func (g *Game) refreshLegal() {
	g.legal = g.board.LegalMoves()
	switch g.board.Status() {
	case engine.Checkmate:
		log.Printf("checkmate, %s wins", g.board.SideToMove().Other())
	case engine.Stalemate:
		log.Printf("stalemate")
	}
}

func (g *Game) play(m engine.Move, who string) {
	g.board.MakeMove(m)
	log.Printf("%s: %s", who, m.UCI())
	g.selected = engine.NoSquare
	g.dragging = false
	g.refreshLegal()
}

func (g *Game) Update() error {
	if !g.gameStarted {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			btnWidth := 200
			btnHeight := 60
			btnY := screenHeight/2 + 100

			if y > btnY && y < btnY+btnHeight {
				if x > screenWidth/2-btnWidth-20 && x < screenWidth/2-20 {
					return g.startGame(engine.White)
				} else if x > screenWidth/2+20 && x < screenWidth/2+20+btnWidth {
					return g.startGame(engine.Black)
				}
			}
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.newGame()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.current = (g.current + 1) % len(g.players)
		log.Printf("bot: %s", g.bot().Name())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.undo()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.logPGN()
	}

	if g.request != nil {
		m, ok := g.request.Poll()
		if !ok {
			return nil
		}
		g.request = nil
		if !m.IsNull() {
			g.play(m, g.bot().Name())
		}
		return nil
	}

	if g.board.Status() != engine.Ongoing {
		return nil
	}
	if g.board.SideToMove() != g.playerColor {
		g.request = bots.RequestMove(context.Background(), g.bot(), g.board, g.legal)
		return nil
	}
	g.handleMouse()
	return nil
}

// handleMouse supports both drag-and-drop and click-click input.
func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()
	if g.dragging {
		g.dragX, g.dragY = x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		sq, ok := g.squareAt(x, y)
		if !ok {
			g.selected = engine.NoSquare
			return
		}
		if g.selected.Valid() && sq != g.selected {
			if m, found := engine.LookupMove(g.legal, g.selected, sq); found {
				g.play(m, "player")
				return
			}
		}
		if g.board.PieceAt(sq).Is(g.playerColor) {
			g.selected = sq
			g.dragging = true
			g.dragX, g.dragY = x, y
		} else {
			g.selected = engine.NoSquare
		}
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.dragging {
		g.dragging = false
		sq, ok := g.squareAt(x, y)
		if !ok || sq == g.selected {
			return
		}
		if m, found := engine.LookupMove(g.legal, g.selected, sq); found {
			g.play(m, "player")
			return
		}
		g.selected = engine.NoSquare
	}
}

// newGame drops the current game and returns to the colour choice screen.
func (g *Game) newGame() {
	if g.request != nil {
		g.request.Cancel()
		g.request = nil
	}
	g.board = nil
	g.legal = nil
	g.selected = engine.NoSquare
	g.dragging = false
	g.gameStarted = false
	log.Printf("game abandoned")
}

// undo takes back moves until it is the player's turn again.
func (g *Game) undo() {
	if g.request != nil {
		g.request.Cancel()
		g.request = nil
	}
	if len(g.board.MoveLog()) == 0 {
		return
	}
	g.board.UndoMove()
	if g.board.SideToMove() != g.playerColor && len(g.board.MoveLog()) > 0 {
		g.board.UndoMove()
	}
	g.selected = engine.NoSquare
	g.dragging = false
	g.refreshLegal()
	log.Printf("undo, %d plies played", len(g.board.MoveLog()))
}

func (g *Game) logPGN() {
	pgn, err := record.PGN(g.startFEN, g.board.MoveLog(), map[string]string{
		"Event": "customchess",
		"Date":  time.Now().Format("2006.01.02"),
	})
	if err != nil {
		log.Printf("pgn: %v", err)
		return
	}
	log.Printf("pgn:\n%s", pgn)
}

// squareAt maps screen coordinates to a board square. The board is drawn
// from the player's side.
func (g *Game) squareAt(x, y int) (engine.Square, bool) {
	x -= g.boardOffsetX
	y -= g.boardOffsetY
	if x < 0 || x >= squareSize*8 || y < 0 || y >= squareSize*8 {
		return engine.NoSquare, false
	}
	row, col := y/squareSize, x/squareSize
	if g.playerColor == engine.Black {
		row, col = 7-row, 7-col
	}
	return engine.Sq(row, col), true
}

func (g *Game) screenPos(s engine.Square) (float32, float32) {
	row, col := int(s.Row), int(s.Col)
	if g.playerColor == engine.Black {
		row, col = 7-row, 7-col
	}
	return float32(col*squareSize + g.boardOffsetX), float32(row*squareSize + g.boardOffsetY)
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.gameStarted {
		ebitenutil.DebugPrintAt(screen, "Chess in Go", screenWidth/2-40, screenHeight/2-50)
		ebitenutil.DebugPrintAt(screen, "Choose your color:", screenWidth/2-60, screenHeight/2)
		ebitenutil.DebugPrintAt(screen, "Opponent: "+g.bot().Name(), screenWidth/2-100, screenHeight/2+30)

		btnY := float32(screenHeight/2 + 100)
		vector.DrawFilledRect(screen, float32(screenWidth/2-220), btnY, 200, 60, color.RGBA{200, 200, 200, 255}, false)
		ebitenutil.DebugPrintAt(screen, "Play white", screenWidth/2-155, int(btnY)+22)
		vector.DrawFilledRect(screen, float32(screenWidth/2+20), btnY, 200, 60, color.RGBA{50, 50, 50, 255}, false)
		ebitenutil.DebugPrintAt(screen, "Play black", screenWidth/2+85, int(btnY)+22)
		return
	}

	g.drawBoard(screen)
	g.drawPieces(screen)
	g.drawInfo(screen)
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	size := float32(squareSize)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			clr := lightSquare
			if (row+col)%2 == 1 {
				clr = darkSquare
			}
			x, y := g.screenPos(engine.Sq(row, col))
			vector.DrawFilledRect(screen, x, y, size, size, clr, false)
		}
	}

	if last, ok := g.board.LastMove(); ok {
		for _, s := range []engine.Square{last.From, last.To} {
			x, y := g.screenPos(s)
			vector.DrawFilledRect(screen, x, y, size, size, lastMoveClr, false)
		}
	}
	if !g.selected.Valid() {
		return
	}
	x, y := g.screenPos(g.selected)
	vector.DrawFilledRect(screen, x, y, size, size, selectedClr, false)
	for _, m := range g.legal {
		if m.From != g.selected {
			continue
		}
		x, y := g.screenPos(m.To)
		vector.DrawFilledCircle(screen, x+size/2, y+size/2, size/8, targetClr, true)
	}
}

func (g *Game) drawPieces(screen *ebiten.Image) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			s := engine.Sq(row, col)
			p := g.board.PieceAt(s)
			if p.IsEmpty() || (g.dragging && s == g.selected) {
				continue
			}
			x, y := g.screenPos(s)
			drawPiece(screen, p, x+float32(squareSize)/2, y+float32(squareSize)/2)
		}
	}

	if g.dragging && g.selected.Valid() {
		drawPiece(screen, g.board.PieceAt(g.selected), float32(g.dragX), float32(g.dragY))
	}
}

func drawPiece(screen *ebiten.Image, p engine.Piece, cx, cy float32) {
	r := float32(squareSize) * 0.38
	fill, rim := whitePiece, blackPiece
	if p.Color() == engine.Black {
		fill, rim = blackPiece, whitePiece
	}
	vector.DrawFilledCircle(screen, cx, cy, r, rim, true)
	vector.DrawFilledCircle(screen, cx, cy, r-2, fill, true)
	ebitenutil.DebugPrintAt(screen, strings.ToUpper(p.String()), int(cx)-3, int(cy)-8)
}

func (g *Game) drawInfo(screen *ebiten.Image) {
	status := "Your move"
	switch {
	case g.board.Checkmate():
		status = fmt.Sprintf("Checkmate, %s wins", g.board.SideToMove().Other())
	case g.board.Stalemate():
		status = "Stalemate"
	case g.request != nil:
		status = "Bot is thinking..."
	case g.board.SideToMove() != g.playerColor:
		status = "Bot to move"
	case g.board.InCheck():
		status = "Your move, check"
	}
	ebitenutil.DebugPrintAt(screen, status, 20, 20)
	ebitenutil.DebugPrintAt(screen, "Bot: "+g.bot().Name(), screenWidth-260, 20)
	ebitenutil.DebugPrintAt(screen, "B: switch bot  Z: undo  P: log PGN  F1: new game", 20, screenHeight-30)

	moves := g.board.MoveLog()
	var lines []string
	for i := 0; i < len(moves); i += 2 {
		line := fmt.Sprintf("%3d. %s", i/2+1, moves[i])
		if i+1 < len(moves) {
			line += " " + moves[i+1].String()
		}
		lines = append(lines, line)
	}
	if len(lines) > logLines {
		lines = lines[len(lines)-logLines:]
	}
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), 20, 60)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	fen := flag.String("fen", "", "start position (default: standard)")
	botName := flag.String("bot", "alphabeta", fmt.Sprintf("opponent, one of %v", bots.Names()))
	depth := flag.Int("depth", bots.DefaultDepth, "search depth")
	limit := flag.Duration("time", bots.DefaultTimeLimit, "time limit per move")
	flag.Parse()

	var players []bots.ChessBot
	current := -1
	for i, name := range bots.Names() {
		bot, err := bots.New(name, *depth, *limit)
		if err != nil {
			log.Fatal(err)
		}
		if name == *botName {
			current = i
		}
		players = append(players, bot)
	}
	if current < 0 {
		log.Fatalf("unknown bot %q (have %v)", *botName, bots.Names())
	}
	if *fen != "" {
		if _, err := engine.ParseFEN(*fen); err != nil {
			log.Fatal(err)
		}
	}

	game := NewGame(*fen, players, current)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Chess in Go")
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
