package ui

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/MasterPandaa/minchess/internal/board"
	"github.com/MasterPandaa/minchess/internal/engine"
	"github.com/MasterPandaa/minchess/internal/storage"
)

// UI constants
const (
	BoardSize     = 640
	SquareSize    = BoardSize / 8
	InfoBarHeight = 80
	ScreenWidth   = BoardSize
	ScreenHeight  = BoardSize + InfoBarHeight
)

// Game implements ebiten.Game: one board, one info bar, a human on one
// side and a move-selection policy on the other.
type Game struct {
	// Core game state
	position *board.Position
	lastMove board.Move

	// UI state
	selectedSquare board.Square
	legalFromSel   []board.Move

	// Opponent
	policy      engine.Policy
	humanColor  board.Color
	aiEnabled   bool
	aiDelay     time.Duration
	aiDeadline  time.Time
	aiScheduled bool

	// Storage
	storage  *storage.Storage
	prefs    *storage.Preferences
	recorded bool

	// Components
	renderer *Renderer
	input    *InputHandler
}

// NewGame creates the game with the standard starting position.
func NewGame() *Game {
	g := &Game{
		position:       board.NewPosition(),
		selectedSquare: board.NoSquare,
		policy:         engine.NewRandom(time.Now().UnixNano()),
		humanColor:     board.White,
		aiEnabled:      true,
		aiDelay:        250 * time.Millisecond,
		renderer:       NewRenderer(BoardSize, SquareSize),
		input:          NewInputHandler(),
	}

	var err error
	g.storage, err = storage.New()
	if err != nil {
		log.Printf("Warning: failed to open storage: %v", err)
	}
	g.loadPreferences()

	g.scheduleAIIfDue()

	return g
}

// loadPreferences applies stored preferences, falling back to defaults.
func (g *Game) loadPreferences() {
	if g.storage == nil {
		g.prefs = storage.DefaultPreferences()
	} else {
		var err error
		g.prefs, err = g.storage.LoadPreferences()
		if err != nil {
			log.Printf("Warning: failed to load preferences: %v", err)
			g.prefs = storage.DefaultPreferences()
		}
	}

	g.aiEnabled = g.prefs.AIEnabled
	if g.prefs.AIDelayMs > 0 {
		g.aiDelay = time.Duration(g.prefs.AIDelayMs) * time.Millisecond
	}
	if g.prefs.PlayerColor == storage.ColorBlack {
		g.humanColor = board.Black
	} else {
		g.humanColor = board.White
	}
	g.renderer.SetFlipped(g.humanColor == board.Black)
}

// Update handles one tick of game logic.
func (g *Game) Update() error {
	g.input.Update()

	if g.position.Outcome != board.NoOutcome {
		g.recordResultOnce()
		if g.input.IsLeftJustPressed() {
			g.resetGame()
		}
		return nil
	}

	if g.isAITurn() {
		g.updateAI()
		return nil
	}

	if g.input.IsLeftJustPressed() {
		mx, my := g.input.MousePosition()
		g.handleClick(mx, my)
	}

	return nil
}

// isAITurn reports whether the policy owns the current move.
func (g *Game) isAITurn() bool {
	return g.aiEnabled && g.position.SideToMove != g.humanColor
}

// updateAI plays the policy's move once the reply delay has elapsed. The
// delay only exists so the reply is visible as a separate event; the
// choice itself is synchronous and runs on the update loop, which is the
// only goroutine ever touching the position.
func (g *Game) updateAI() {
	if !g.aiScheduled {
		g.aiDeadline = time.Now().Add(g.aiDelay)
		g.aiScheduled = true
		return
	}
	if time.Now().Before(g.aiDeadline) {
		return
	}
	g.aiScheduled = false

	m := g.policy.ChooseMove(g.position, g.position.SideToMove)
	if m == board.NoMove {
		// No legal reply: MakeMove already declared the outcome, so
		// this indicates the position was driven outside the engine.
		log.Printf("policy returned no move but outcome is %v", g.position.Outcome)
		return
	}
	g.makeMove(m)
}

// handleClick runs the selection state machine from the original mouse
// scheme: click an own piece to select, click a target to move,
// anything else clears.
func (g *Game) handleClick(mx, my int) {
	sq := g.renderer.ScreenToSquare(mx, my)
	if sq == board.NoSquare {
		return
	}

	piece := g.position.PieceAt(sq)

	// Clicking an own piece selects it (or changes the selection).
	if piece != board.NoPiece && piece.Color() == g.position.SideToMove {
		g.selectSquare(sq)
		return
	}

	// With a selection, clicking a legal target makes the move.
	if g.selectedSquare != board.NoSquare {
		if m := g.findMove(g.selectedSquare, sq); m != board.NoMove {
			g.makeMove(m)
			return
		}
	}

	g.clearSelection()
}

// selectSquare selects a square and caches the legal moves from it.
func (g *Game) selectSquare(sq board.Square) {
	g.selectedSquare = sq
	g.legalFromSel = g.legalFromSel[:0]
	for _, m := range g.position.LegalMoves(g.position.SideToMove) {
		if m.From() == sq {
			g.legalFromSel = append(g.legalFromSel, m)
		}
	}
}

// clearSelection clears the current selection.
func (g *Game) clearSelection() {
	g.selectedSquare = board.NoSquare
	g.legalFromSel = nil
}

// findMove finds the cached legal move from src to dst, or NoMove.
// Promotion needs no disambiguation: it is always the queen.
func (g *Game) findMove(src, dst board.Square) board.Move {
	for _, m := range g.legalFromSel {
		if m.From() == src && m.To() == dst {
			return m
		}
	}
	return board.NoMove
}

// makeMove applies a move obtained from LegalMoves and reacts to the
// resulting state.
func (g *Game) makeMove(m board.Move) {
	g.position.MakeMove(m)
	g.lastMove = m
	g.clearSelection()

	if g.position.Outcome != board.NoOutcome {
		g.recordResultOnce()
		return
	}
	g.scheduleAIIfDue()
}

// scheduleAIIfDue arms the reply timer when the policy is to move.
func (g *Game) scheduleAIIfDue() {
	if g.isAITurn() {
		g.aiDeadline = time.Now().Add(g.aiDelay)
		g.aiScheduled = true
	}
}

// recordResultOnce stores the finished game in the stats, once.
func (g *Game) recordResultOnce() {
	if g.recorded || g.storage == nil {
		return
	}
	g.recorded = true

	result := storage.Result{
		Draw: g.position.Outcome == board.Stalemate,
		Won:  g.position.Outcome == board.Checkmate && g.position.Winner == g.humanColor,
	}
	if err := g.storage.RecordGame(result); err != nil {
		log.Printf("Warning: failed to record game: %v", err)
	}
}

// resetGame starts a fresh game.
func (g *Game) resetGame() {
	g.position = board.NewPosition()
	g.lastMove = board.NoMove
	g.clearSelection()
	g.aiScheduled = false
	g.recorded = false
	g.scheduleAIIfDue()
}

// Draw renders the board, highlights, pieces and info bar.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.DrawBoard(screen)
	g.renderer.DrawHighlights(screen, g.selectedSquare, g.legalFromSel, g.lastMove)
	g.renderer.DrawCheck(screen, g.position)
	g.renderer.DrawPieces(screen, g.position)
	g.renderer.DrawInfoBar(screen, g.statusText(), g.hintText())
}

// Layout returns the fixed window dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// statusText builds the info bar's first line.
func (g *Game) statusText() string {
	switch g.position.Outcome {
	case board.Checkmate:
		return "Checkmate! " + g.position.Winner.String() + " wins. Click anywhere to reset."
	case board.Stalemate:
		return "Stalemate. Click anywhere to reset."
	}

	s := g.position.SideToMove.String() + " to move"
	if g.position.InCheck(g.position.SideToMove) {
		s += " - Check!"
	}
	return s
}

// hintText builds the info bar's second line.
func (g *Game) hintText() string {
	if !g.aiEnabled {
		return "Left click: select/move."
	}
	if g.humanColor == board.White {
		return "Left click: select/move. White is human; Black is AI."
	}
	return "Left click: select/move. Black is human; White is AI."
}

// Close releases game resources.
func (g *Game) Close() {
	if g.storage != nil {
		g.storage.Close()
	}
}
