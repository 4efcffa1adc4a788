package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/MasterPandaa/minchess/internal/board"
)

// Theme defines the color scheme for the board and info bar.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	LegalMoveColor color.RGBA
	LastMoveColor  color.RGBA
	CheckColor     color.RGBA
	InfoBar        color.RGBA
	TextColor      color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{236, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{186, 202, 68, 90},   // Yellow-green overlay
		LegalMoveColor: color.RGBA{140, 162, 70, 200},  // Green dots
		LastMoveColor:  color.RGBA{180, 190, 100, 90},
		CheckColor:     color.RGBA{200, 60, 60, 90}, // Red shade on a checked king
		InfoBar:        color.RGBA{50, 50, 60, 255},
		TextColor:      color.RGBA{240, 240, 240, 255},
	}
}

// Renderer handles all drawing operations.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
	flipped    bool // true when Black's home rank is drawn at the bottom
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
	}
}

// SetFlipped sets whether the board is drawn from Black's point of view.
func (r *Renderer) SetFlipped(flipped bool) {
	r.flipped = flipped
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// DrawBoard draws the chess board squares.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x, y := r.SquareToScreen(board.NewSquare(file, rank))

			var c color.RGBA
			if (rank+file)%2 == 0 {
				c = r.theme.DarkSquare
			} else {
				c = r.theme.LightSquare
			}

			vector.DrawFilledRect(screen, float32(x), float32(y),
				float32(r.squareSize), float32(r.squareSize), c, false)
		}
	}
}

// DrawHighlights draws selection, legal move and last move highlights.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, selected board.Square, legalMoves []board.Move, lastMove board.Move) {
	if lastMove != board.NoMove {
		r.highlightSquare(screen, lastMove.From(), r.theme.LastMoveColor)
		r.highlightSquare(screen, lastMove.To(), r.theme.LastMoveColor)
	}

	if selected != board.NoSquare {
		r.highlightSquare(screen, selected, r.theme.SelectedSquare)
	}

	for _, m := range legalMoves {
		r.drawLegalMoveIndicator(screen, m.To())
	}
}

// DrawCheck shades the king's square of every side currently in check,
// so a mating move lights up the loser's king too.
func (r *Renderer) DrawCheck(screen *ebiten.Image, pos *board.Position) {
	for _, c := range []board.Color{board.White, board.Black} {
		if pos.InCheck(c) {
			r.highlightSquare(screen, pos.KingSquare(c), r.theme.CheckColor)
		}
	}
}

// highlightSquare draws a colored overlay on a square.
func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if sq == board.NoSquare {
		return
	}
	x, y := r.SquareToScreen(sq)
	vector.DrawFilledRect(screen, float32(x), float32(y),
		float32(r.squareSize), float32(r.squareSize), c, false)
}

// drawLegalMoveIndicator draws a dot on a legal move target square.
func (r *Renderer) drawLegalMoveIndicator(screen *ebiten.Image, sq board.Square) {
	x, y := r.SquareToScreen(sq)
	cx := float32(x) + float32(r.squareSize)/2
	cy := float32(y) + float32(r.squareSize)/2
	radius := float32(r.squareSize) * 0.15

	vector.DrawFilledCircle(screen, cx, cy, radius, r.theme.LegalMoveColor, false)
}

// DrawPieces draws all pieces on the board.
func (r *Renderer) DrawPieces(screen *ebiten.Image, pos *board.Position) {
	for sq := board.A1; sq <= board.H8; sq++ {
		piece := pos.PieceAt(sq)
		if piece == board.NoPiece {
			continue
		}
		x, y := r.SquareToScreen(sq)
		r.sprites.DrawPieceAt(screen, piece, x, y)
	}
}

// DrawInfoBar draws the status bar below the board.
func (r *Renderer) DrawInfoBar(screen *ebiten.Image, status, hint string) {
	vector.DrawFilledRect(screen, 0, float32(r.boardSize),
		float32(r.boardSize), float32(InfoBarHeight), r.theme.InfoBar, false)

	if boldFace != nil {
		op := &text.DrawOptions{}
		op.GeoM.Translate(12, float64(r.boardSize)+14)
		op.ColorScale.ScaleWithColor(r.theme.TextColor)
		text.Draw(screen, status, boldFace, op)
	}

	if regularFace != nil {
		op := &text.DrawOptions{}
		op.GeoM.Translate(12, float64(r.boardSize)+46)
		op.ColorScale.ScaleWithColor(r.theme.TextColor)
		text.Draw(screen, hint, regularFace, op)
	}
}

// SquareToScreen converts a board square to screen coordinates. White's
// home rank sits at the bottom unless the board is flipped.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	file := sq.File()
	rank := sq.Rank()
	if r.flipped {
		file = 7 - file
	} else {
		rank = 7 - rank
	}
	return file * r.squareSize, rank * r.squareSize
}

// ScreenToSquare converts screen coordinates to a board square, or
// NoSquare if the point is outside the board.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.NoSquare
	}
	file := x / r.squareSize
	rank := y / r.squareSize
	if r.flipped {
		file = 7 - file
	} else {
		rank = 7 - rank
	}
	return board.NewSquare(file, rank)
}
