package board

import (
	"testing"
)

// mustParseFEN parses a fixture FEN or fails the test.
func mustParseFEN(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

// mv builds a move from coordinate squares, e.g. mv("e2", "e4").
func mv(from, to string) Move {
	f, _ := ParseSquare(from)
	t, _ := ParseSquare(to)
	return NewMove(f, t)
}

// findLegal returns the legal move matching from/to, or NoMove.
func findLegal(p *Position, from, to string) Move {
	f, _ := ParseSquare(from)
	t, _ := ParseSquare(to)
	for _, m := range p.LegalMoves(p.SideToMove) {
		if m.From() == f && m.To() == t {
			return m
		}
	}
	return NoMove
}

func TestStartPositionMoveCount(t *testing.T) {
	pos := NewPosition()

	moves := pos.LegalMoves(White)
	if len(moves) != 20 {
		t.Log(pos)
		for _, m := range moves {
			t.Log("  move:", m)
		}
		t.Fatalf("expected 20 legal moves at start, got %d", len(moves))
	}

	// 16 pawn moves (8 single, 8 double), 4 knight moves.
	pawn, knight := 0, 0
	for _, m := range moves {
		switch pos.PieceAt(m.From()).Type() {
		case Pawn:
			pawn++
		case Knight:
			knight++
		default:
			t.Errorf("unexpected mover %v for %v", pos.PieceAt(m.From()), m)
		}
	}
	if pawn != 16 || knight != 4 {
		t.Errorf("expected 16 pawn + 4 knight moves, got %d + %d", pawn, knight)
	}
}

func TestLegalMovesDeterministic(t *testing.T) {
	pos := mustParseFEN(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w - - 0 3")

	first := pos.LegalMoves(White)
	second := pos.LegalMoves(White)

	if len(first) != len(second) {
		t.Fatalf("move counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("move %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestPseudoMovesKnight(t *testing.T) {
	// Knight in the corner has two targets; one is blocked by a friendly pawn.
	pos := mustParseFEN(t, "k7/8/8/8/8/2P5/8/1K5N w - - 0 1")

	sq, _ := ParseSquare("h1")
	moves := pos.PseudoMoves(sq)
	if len(moves) != 2 {
		t.Fatalf("expected 2 knight moves from h1, got %d: %v", len(moves), moves)
	}

	pos.Board[NewSquare(5, 1)] = WhitePawn // f2 blocks one target
	moves = pos.PseudoMoves(sq)
	if len(moves) != 1 {
		t.Errorf("expected 1 knight move with f2 blocked, got %d: %v", len(moves), moves)
	}
}

func TestPseudoMovesSliders(t *testing.T) {
	// Rook on a1: up the a-file until the friendly pawn on a4 (exclusive),
	// along the first rank until the enemy rook on e1 (inclusive capture).
	pos := mustParseFEN(t, "4k3/8/8/8/P7/8/8/R3r2K w - - 0 1")

	sq, _ := ParseSquare("a1")
	moves := pos.PseudoMoves(sq)

	want := map[Move]bool{
		mv("a1", "a2"): true,
		mv("a1", "a3"): true,
		mv("a1", "b1"): true,
		mv("a1", "c1"): true,
		mv("a1", "d1"): true,
		mv("a1", "e1"): true, // capture ends the ray
	}
	if len(moves) != len(want) {
		t.Fatalf("expected %d rook moves, got %d: %v", len(want), len(moves), moves)
	}
	for _, m := range moves {
		if !want[m] {
			t.Errorf("unexpected rook move %v", m)
		}
	}
}

func TestPseudoMovesPawn(t *testing.T) {
	t.Run("DoublePushBlocked", func(t *testing.T) {
		// Piece on e4 blocks only the double push from e2.
		pos := mustParseFEN(t, "4k3/8/8/8/4n3/8/4P3/4K3 w - - 0 1")
		sq, _ := ParseSquare("e2")
		moves := pos.PseudoMoves(sq)
		if len(moves) != 1 || moves[0] != mv("e2", "e3") {
			t.Errorf("expected only e2e3, got %v", moves)
		}
	})

	t.Run("SinglePushBlocked", func(t *testing.T) {
		// Blocking e3 removes the double push as well.
		pos := mustParseFEN(t, "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1")
		sq, _ := ParseSquare("e2")
		if moves := pos.PseudoMoves(sq); len(moves) != 0 {
			t.Errorf("expected no pawn moves, got %v", moves)
		}
	})

	t.Run("Captures", func(t *testing.T) {
		// Enemy pieces on d3 and f3, so push plus two captures.
		pos := mustParseFEN(t, "4k3/8/8/8/8/3n1n2/4P3/4K3 w - - 0 1")
		sq, _ := ParseSquare("e2")
		moves := pos.PseudoMoves(sq)
		if len(moves) != 4 {
			t.Errorf("expected push, double push and 2 captures, got %v", moves)
		}
	})

	t.Run("NoFriendlyCapture", func(t *testing.T) {
		pos := mustParseFEN(t, "4k3/8/8/8/8/3N4/4P3/4K3 w - - 0 1")
		sq, _ := ParseSquare("e2")
		for _, m := range pos.PseudoMoves(sq) {
			if m.To() == NewSquare(3, 2) {
				t.Errorf("pawn captured friendly knight: %v", m)
			}
		}
	})

	t.Run("BlackDirection", func(t *testing.T) {
		pos := mustParseFEN(t, "4k3/4p3/8/8/8/8/8/4K3 b - - 0 1")
		sq, _ := ParseSquare("e7")
		moves := pos.PseudoMoves(sq)
		want := map[Move]bool{mv("e7", "e6"): true, mv("e7", "e5"): true}
		if len(moves) != 2 {
			t.Fatalf("expected 2 black pawn moves, got %v", moves)
		}
		for _, m := range moves {
			if !want[m] {
				t.Errorf("unexpected black pawn move %v", m)
			}
		}
	})
}

func TestPromotionGenerated(t *testing.T) {
	// White pawn on e7 with e8 empty must emit a queen promotion.
	pos := mustParseFEN(t, "8/4P3/8/8/8/k7/8/K7 w - - 0 1")

	sq, _ := ParseSquare("e7")
	moves := pos.PseudoMoves(sq)
	if len(moves) != 1 {
		t.Fatalf("expected 1 pawn move from e7, got %v", moves)
	}

	m := moves[0]
	if !m.IsPromotion() {
		t.Errorf("move %v should be a promotion", m)
	}
	if m.Promotion() != Queen {
		t.Errorf("promotion should be a queen, got %v", m.Promotion())
	}
	if m.String() != "e7e8q" {
		t.Errorf("expected e7e8q, got %v", m)
	}
}

func TestPromotionByCapture(t *testing.T) {
	// Pawn on e7, enemy rook on d8: both the push and the capture promote.
	pos := mustParseFEN(t, "3r4/4P3/8/8/8/k7/8/K7 w - - 0 1")

	sq, _ := ParseSquare("e7")
	for _, m := range pos.PseudoMoves(sq) {
		if !m.IsPromotion() {
			t.Errorf("move %v landing on the last rank should promote", m)
		}
	}
}

func TestPseudoMovesEmptySquare(t *testing.T) {
	pos := NewPosition()
	if moves := pos.PseudoMoves(E4); moves != nil {
		t.Errorf("expected no moves from an empty square, got %v", moves)
	}
}

func TestPinnedPieceFiltered(t *testing.T) {
	// The knight on e2 is pinned by the rook on e8 and may not move.
	pos := mustParseFEN(t, "4r2k/8/8/8/8/8/4N3/4K3 w - - 0 1")

	sq, _ := ParseSquare("e2")
	if pseudo := pos.PseudoMoves(sq); len(pseudo) == 0 {
		t.Fatal("pinned knight should still have pseudo-moves")
	}

	for _, m := range pos.LegalMoves(White) {
		if m.From() == sq {
			t.Errorf("pinned knight move %v leaked through the legality filter", m)
		}
	}
}

func TestMustBlockCheck(t *testing.T) {
	// White is checked by the rook on e8; only blocks, captures of the
	// checker, or king moves off the e-file are legal.
	pos := mustParseFEN(t, "4r2k/8/8/8/8/8/3B4/4K3 w - - 0 1")

	for _, m := range pos.LegalMoves(White) {
		next := pos.Copy()
		next.applyPieceMove(m)
		if next.InCheck(White) {
			t.Errorf("move %v leaves White in check", m)
		}
	}

	// The bishop retreat d2-c1 ignores the check and must be absent.
	if m := findLegal(pos, "d2", "c1"); m != NoMove {
		t.Errorf("d2c1 ignores the check but was generated")
	}
	// The block d2-e3 must be present.
	if m := findLegal(pos, "d2", "e3"); m == NoMove {
		t.Errorf("blocking move d2e3 missing from legal moves")
	}
}
