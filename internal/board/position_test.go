package board

import (
	"strings"
	"testing"
)

func TestNewPosition(t *testing.T) {
	pos := NewPosition()

	if err := pos.Validate(); err != nil {
		t.Fatal(err)
	}
	if pos.SideToMove != White {
		t.Errorf("expected White to move, got %v", pos.SideToMove)
	}
	if pos.Outcome != NoOutcome {
		t.Errorf("expected no outcome, got %v", pos.Outcome)
	}
	if pos.Winner != NoColor {
		t.Errorf("expected no winner, got %v", pos.Winner)
	}

	// Spot-check the layout.
	checks := []struct {
		sq   string
		want Piece
	}{
		{"a1", WhiteRook}, {"e1", WhiteKing}, {"d1", WhiteQueen},
		{"b2", WhitePawn}, {"g8", BlackKnight}, {"e8", BlackKing},
		{"h7", BlackPawn}, {"e4", NoPiece},
	}
	for _, c := range checks {
		sq, _ := ParseSquare(c.sq)
		if got := pos.PieceAt(sq); got != c.want {
			t.Errorf("PieceAt(%s) = %v, want %v", c.sq, got, c.want)
		}
	}
}

func TestKingSquare(t *testing.T) {
	pos := NewPosition()

	if got := pos.KingSquare(White); got != E1 {
		t.Errorf("white king on %v, want e1", got)
	}
	if got := pos.KingSquare(Black); got != E8 {
		t.Errorf("black king on %v, want e8", got)
	}

	// A corrupt, kingless board reports NoSquare and never checks.
	pos.Clear()
	if got := pos.KingSquare(White); got != NoSquare {
		t.Errorf("empty board king square = %v, want NoSquare", got)
	}
	if pos.InCheck(White) {
		t.Error("kingless side reported in check")
	}
}

func TestValidate(t *testing.T) {
	pos := NewPosition()
	if err := pos.Validate(); err != nil {
		t.Fatal(err)
	}

	pos.Board[E1] = NoPiece
	if err := pos.Validate(); err == nil {
		t.Error("expected error for missing white king")
	}

	pos.Board[E1] = WhiteKing
	pos.Board[E4] = WhiteKing
	if err := pos.Validate(); err == nil {
		t.Error("expected error for two white kings")
	}
}

func TestPositionString(t *testing.T) {
	s := NewPosition().String()
	if !strings.Contains(s, "a b c d e f g h") {
		t.Error("board dump missing file legend")
	}
	if !strings.Contains(s, "Side to move: White") {
		t.Error("board dump missing side to move")
	}
}
