package board

// Move encodes a chess move in 16 bits:
// bits 0-5:  from square (0-63)
// bits 6-11: to square (0-63)
// bit 12:    promotion flag
//
// Promotion is always to a queen; a pawn move landing on the last rank
// carries the flag, every other move does not.
type Move uint16

const flagPromotion uint16 = 1 << 12

// NoMove represents an invalid or null move.
const NoMove Move = 0

// NewMove creates a normal move.
func NewMove(from, to Square) Move {
	return Move(from) | Move(to)<<6
}

// NewPromotion creates a queen-promotion move.
func NewPromotion(from, to Square) Move {
	return Move(from) | Move(to)<<6 | Move(flagPromotion)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// IsPromotion returns true if this move promotes a pawn to a queen.
func (m Move) IsPromotion() bool {
	return uint16(m)&flagPromotion != 0
}

// Promotion returns the piece type a promoting pawn becomes.
// Only meaningful if IsPromotion() is true.
func (m Move) Promotion() PieceType {
	return Queen
}

// IsCapture returns true if this move captures a piece.
func (m Move) IsCapture(pos *Position) bool {
	return !pos.IsEmpty(m.To())
}

// String returns the coordinate form of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}

	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += "q"
	}
	return s
}
