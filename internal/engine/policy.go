// Package engine provides the computer opponent's move selection.
//
// The selection policy is deliberately an interface: the UI asks a Policy
// for a move and applies it, nothing more, so a stronger policy can be
// swapped in without touching the board engine or the UI.
package engine

import (
	"math/rand"

	"github.com/MasterPandaa/minchess/internal/board"
)

// Policy chooses a move for the given side. Implementations must return
// a move from board.LegalMoves(pos, side), or board.NoMove when that
// side has no legal move.
type Policy interface {
	ChooseMove(pos *board.Position, side board.Color) board.Move
}

// Random picks uniformly among the legal moves. It is the classic
// "plays like a beginner's first opponent" policy.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random policy seeded from seed, so games are
// reproducible when the seed is fixed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// ChooseMove returns a uniformly random legal move for side, or NoMove
// if none exists.
func (r *Random) ChooseMove(pos *board.Position, side board.Color) board.Move {
	moves := pos.LegalMoves(side)
	if len(moves) == 0 {
		return board.NoMove
	}
	return moves[r.rng.Intn(len(moves))]
}
