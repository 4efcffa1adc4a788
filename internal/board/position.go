package board

import "fmt"

// Outcome represents the terminal state of a game.
type Outcome uint8

const (
	NoOutcome Outcome = iota
	Checkmate
	Stalemate
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "None"
	}
}

// Position represents a complete game position: an 8x8 mailbox grid of
// pieces plus side to move, the move counter and the terminal state.
// A Position is a plain value; Copy gives a fully independent snapshot,
// which is what move legality checks simulate on.
type Position struct {
	// Board holds the piece on each square, NoPiece when empty.
	Board [64]Piece

	// Game state
	SideToMove     Color
	FullMoveNumber int // Full move counter, starts at 1, increments after Black moves

	// Terminal state; Winner is meaningful only for Checkmate.
	Outcome Outcome
	Winner  Color
}

// backRank is the piece order on each side's home rank, file a through h.
var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewPosition creates the standard starting position, White to move.
func NewPosition() *Position {
	p := &Position{}
	p.Clear()

	for file := 0; file < 8; file++ {
		p.Board[NewSquare(file, 0)] = NewPiece(backRank[file], White)
		p.Board[NewSquare(file, 1)] = WhitePawn
		p.Board[NewSquare(file, 6)] = BlackPawn
		p.Board[NewSquare(file, 7)] = NewPiece(backRank[file], Black)
	}

	return p
}

// Copy creates a deep copy of the position. The grid is an array, so the
// copy shares nothing with the original.
func (p *Position) Copy() *Position {
	newPos := *p
	return &newPos
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (p *Position) PieceAt(sq Square) Piece {
	return p.Board[sq]
}

// IsEmpty returns true if the square is empty.
func (p *Position) IsEmpty(sq Square) bool {
	return p.Board[sq] == NoPiece
}

// KingSquare returns the square of the given side's king, or NoSquare if
// the position is corrupt and has none.
func (p *Position) KingSquare(c Color) Square {
	king := NewPiece(King, c)
	for sq := A1; sq <= H8; sq++ {
		if p.Board[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// Clear resets the position to an empty board, White to move.
func (p *Position) Clear() {
	*p = Position{
		FullMoveNumber: 1,
		Winner:         NoColor,
	}
	for sq := A1; sq <= H8; sq++ {
		p.Board[sq] = NoPiece
	}
}

// MakeMove applies a move to the position: the piece at m.From() lands on
// m.To() (as a fresh queen when promoting), any piece already there is
// captured, the side to move flips and the terminal state is re-evaluated.
//
// Precondition: p.Outcome == NoOutcome and m was produced by LegalMoves
// for the current side to move. MakeMove does not re-validate; feeding it
// anything else is a caller bug.
func (p *Position) MakeMove(m Move) {
	p.applyPieceMove(m)

	p.SideToMove = p.SideToMove.Other()
	if p.SideToMove == White {
		p.FullMoveNumber++
	}

	p.updateOutcome()
}

// applyPieceMove performs only the grid mutation of a move.
func (p *Position) applyPieceMove(m Move) {
	piece := p.Board[m.From()]
	if m.IsPromotion() {
		piece = NewPiece(m.Promotion(), piece.Color())
	}
	p.Board[m.To()] = piece
	p.Board[m.From()] = NoPiece
}

// updateOutcome evaluates the terminal state for the side now to move.
// It is a no-op on an already-terminal position, so the outcome is sticky.
func (p *Position) updateOutcome() {
	if p.Outcome != NoOutcome {
		return
	}
	if p.HasLegalMoves(p.SideToMove) {
		return
	}

	if p.InCheck(p.SideToMove) {
		p.Outcome = Checkmate
		p.Winner = p.SideToMove.Other()
	} else {
		p.Outcome = Stalemate
		p.Winner = NoColor
	}
}

// Validate checks the one-king-per-side invariant.
func (p *Position) Validate() error {
	for _, c := range []Color{White, Black} {
		king := NewPiece(King, c)
		count := 0
		for sq := A1; sq <= H8; sq++ {
			if p.Board[sq] == king {
				count++
			}
		}
		if count != 1 {
			return fmt.Errorf("%v must have exactly one king, found %d", c, count)
		}
	}
	return nil
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			piece := p.Board[NewSquare(file, rank)]
			if piece == NoPiece {
				s += ". "
			} else {
				s += piece.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n\n"
	s += fmt.Sprintf("Side to move: %s\n", p.SideToMove)
	s += fmt.Sprintf("Full move: %d\n", p.FullMoveNumber)
	if p.Outcome != NoOutcome {
		s += fmt.Sprintf("Outcome: %s\n", p.Outcome)
	}
	return s
}
