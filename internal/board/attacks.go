package board

// IsAttacked reports whether some pseudo-move of `by` targets sq. It is
// built purely on pseudo-move generation and never consults legality, so
// check detection cannot recurse back into the legality filter.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	for from := A1; from <= H8; from++ {
		piece := p.Board[from]
		if piece == NoPiece || piece.Color() != by {
			continue
		}
		for _, m := range p.PseudoMoves(from) {
			if m.To() == sq {
				return true
			}
		}
	}
	return false
}

// InCheck reports whether the given side's king is attacked by the
// opponent. A kingless (corrupt) position is reported as not in check,
// matching the engine's tolerance for it elsewhere.
func (p *Position) InCheck(c Color) bool {
	ksq := p.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	return p.IsAttacked(ksq, c.Other())
}

// IsCheckmate reports whether the side to move is in check with no legal
// moves.
func (p *Position) IsCheckmate() bool {
	return p.InCheck(p.SideToMove) && !p.HasLegalMoves(p.SideToMove)
}

// IsStalemate reports whether the side to move is not in check but has no
// legal moves.
func (p *Position) IsStalemate() bool {
	return !p.InCheck(p.SideToMove) && !p.HasLegalMoves(p.SideToMove)
}
