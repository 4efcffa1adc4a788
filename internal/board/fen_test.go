package board

import (
	"testing"
)

func TestParseFENStart(t *testing.T) {
	pos := mustParseFEN(t, StartFEN)

	fresh := NewPosition()
	if pos.Board != fresh.Board {
		t.Error("parsed start position differs from NewPosition")
	}
	if pos.SideToMove != White {
		t.Errorf("expected White to move, got %v", pos.SideToMove)
	}
	if pos.FullMoveNumber != 1 {
		t.Errorf("expected full move 1, got %d", pos.FullMoveNumber)
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"R6k/6pp/8/8/8/8/8/K7 b - - 0 1",
		"8/8/8/8/8/kq6/8/K7 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1",
	}

	for _, fen := range fens {
		pos := mustParseFEN(t, fen)
		if got := pos.FEN(); got != fen {
			t.Errorf("round trip mismatch:\n in: %s\nout: %s", fen, got)
		}
	}
}

func TestParseFENIgnoresCastlingFields(t *testing.T) {
	// Standard FENs with castling rights and en passant squares parse
	// fine; the engine just does not track those fields.
	pos := mustParseFEN(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if pos.SideToMove != Black {
		t.Errorf("expected Black to move, got %v", pos.SideToMove)
	}
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", // missing side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w - - 0 1", // 7 ranks
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x - - 0 1",
		"rnbqkbnr/ppppplpp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
	}

	for _, fen := range bad {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("expected error for %q", fen)
		}
	}
}
