package board

// Direction tables, expressed as file/rank deltas so board edges fall out
// of the bounds check.
var (
	knightOffsets = [8][2]int{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	kingOffsets = [8][2]int{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
		{0, 1}, {1, -1}, {1, 0}, {1, 1},
	}
	bishopDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	rookDirs   = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// PseudoMoves generates all pseudo-legal moves for the piece on sq:
// moves allowed by piece geometry and occupancy alone, ignoring whether
// they leave the mover's own king in check. Returns nil if sq is empty.
func (p *Position) PseudoMoves(sq Square) []Move {
	piece := p.Board[sq]
	if piece == NoPiece {
		return nil
	}

	var moves []Move
	switch piece.Type() {
	case Pawn:
		moves = p.pawnMoves(moves, sq, piece.Color())
	case Knight:
		moves = p.stepMoves(moves, sq, piece.Color(), knightOffsets)
	case Bishop:
		moves = p.slidingMoves(moves, sq, piece.Color(), bishopDirs[:])
	case Rook:
		moves = p.slidingMoves(moves, sq, piece.Color(), rookDirs[:])
	case Queen:
		moves = p.slidingMoves(moves, sq, piece.Color(), bishopDirs[:])
		moves = p.slidingMoves(moves, sq, piece.Color(), rookDirs[:])
	case King:
		moves = p.stepMoves(moves, sq, piece.Color(), kingOffsets)
	}
	return moves
}

// pawnMoves generates pawn pushes, double pushes from the starting rank
// and diagonal captures. Any move landing on the final rank becomes a
// queen promotion. No en passant.
func (p *Position) pawnMoves(moves []Move, sq Square, c Color) []Move {
	file, rank := sq.File(), sq.Rank()

	dir := 1
	startRank, lastRank := 1, 7
	if c == Black {
		dir = -1
		startRank, lastRank = 6, 0
	}

	// Single push, and double push from the starting rank.
	if next := rank + dir; onBoard(file, next) && p.IsEmpty(NewSquare(file, next)) {
		moves = append(moves, pawnMove(sq, NewSquare(file, next), next == lastRank))

		if rank == startRank {
			jump := rank + 2*dir
			if p.IsEmpty(NewSquare(file, jump)) {
				moves = append(moves, NewMove(sq, NewSquare(file, jump)))
			}
		}
	}

	// Diagonal captures.
	for _, df := range [2]int{-1, 1} {
		nf, nr := file+df, rank+dir
		if !onBoard(nf, nr) {
			continue
		}
		to := NewSquare(nf, nr)
		if target := p.Board[to]; target != NoPiece && target.Color() != c {
			moves = append(moves, pawnMove(sq, to, nr == lastRank))
		}
	}

	return moves
}

func pawnMove(from, to Square, promotes bool) Move {
	if promotes {
		return NewPromotion(from, to)
	}
	return NewMove(from, to)
}

// stepMoves generates fixed-offset moves (knight and king): the target
// must be on the board and not hold a friendly piece.
func (p *Position) stepMoves(moves []Move, sq Square, c Color, offsets [8][2]int) []Move {
	file, rank := sq.File(), sq.Rank()

	for _, off := range offsets {
		nf, nr := file+off[0], rank+off[1]
		if !onBoard(nf, nr) {
			continue
		}
		to := NewSquare(nf, nr)
		if target := p.Board[to]; target != NoPiece && target.Color() == c {
			continue
		}
		moves = append(moves, NewMove(sq, to))
	}

	return moves
}

// slidingMoves ray-casts along dirs one square at a time: empty squares
// extend the ray, an enemy piece is captured and ends it, a friendly
// piece ends it before the square.
func (p *Position) slidingMoves(moves []Move, sq Square, c Color, dirs [][2]int) []Move {
	file, rank := sq.File(), sq.Rank()

	for _, d := range dirs {
		nf, nr := file+d[0], rank+d[1]
		for onBoard(nf, nr) {
			to := NewSquare(nf, nr)
			target := p.Board[to]
			if target != NoPiece {
				if target.Color() != c {
					moves = append(moves, NewMove(sq, to))
				}
				break
			}
			moves = append(moves, NewMove(sq, to))
			nf += d[0]
			nr += d[1]
		}
	}

	return moves
}

// IsLegal reports whether the pseudo-legal move m leaves mover's own king
// safe. It simulates on a throwaway copy, so the live position is never
// observed mid-check: walking into check, ignoring an existing check and
// exposing the king through a pin all fail the same post-move attack test.
func (p *Position) IsLegal(m Move, mover Color) bool {
	next := p.Copy()
	next.applyPieceMove(m)
	return !next.InCheck(mover)
}

// LegalMoves generates all legal moves for the given side, scanning
// squares in row-major order (a1..h8) so the result is deterministic for
// a given position.
func (p *Position) LegalMoves(side Color) []Move {
	var legal []Move
	for sq := A1; sq <= H8; sq++ {
		piece := p.Board[sq]
		if piece == NoPiece || piece.Color() != side {
			continue
		}
		for _, m := range p.PseudoMoves(sq) {
			if p.IsLegal(m, side) {
				legal = append(legal, m)
			}
		}
	}
	return legal
}

// HasLegalMoves reports whether the given side has any legal move,
// stopping at the first one found.
func (p *Position) HasLegalMoves(side Color) bool {
	for sq := A1; sq <= H8; sq++ {
		piece := p.Board[sq]
		if piece == NoPiece || piece.Color() != side {
			continue
		}
		for _, m := range p.PseudoMoves(sq) {
			if p.IsLegal(m, side) {
				return true
			}
		}
	}
	return false
}
