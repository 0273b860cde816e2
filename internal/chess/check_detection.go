package chess

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king is never in check.
func (b *Board) IsInCheck(colour Colour) bool {
	king := b.FindKing(colour)
	if king == NoSquare {
		return false
	}
	return b.IsAttacked(king, colour.Opposite())
}

// InCheck reports whether the side to move is in check.
func (b *Board) InCheck() bool {
	return b.IsInCheck(b.ToMove)
}

// IsAttacked returns true if the square is attacked by the given colour.
// Attacks are looked up backwards from the target: a pawn push is never an
// attack, and the square's own occupant does not matter.
func (b *Board) IsAttacked(sq Square, byColour Colour) bool {
	// Pawns attack diagonally forward, so look one row behind the target.
	pawn := MakePiece(byColour, Pawn)
	for _, dc := range [2]int{-1, 1} {
		if b.Get(sq.Offset(-byColour.Forward(), dc)) == pawn {
			return true
		}
	}

	if b.attackedByStepper(sq, MakePiece(byColour, Knight), knightHops) {
		return true
	}
	if b.attackedByStepper(sq, MakePiece(byColour, King), allAround) {
		return true
	}

	queen := MakePiece(byColour, Queen)
	if b.attackedBySlider(sq, MakePiece(byColour, Bishop), queen, diagonal) {
		return true
	}
	return b.attackedBySlider(sq, MakePiece(byColour, Rook), queen, orthogonal)
}

// attackedByStepper checks the single-step offsets around sq for piece.
func (b *Board) attackedByStepper(sq Square, piece Piece, offsets []offset) bool {
	for _, d := range offsets {
		if b.Get(sq.Offset(d.dr, d.dc)) == piece {
			return true
		}
	}
	return false
}

// attackedBySlider walks each direction from sq to the first occupied square
// and checks whether it holds one of the two sliding attackers.
func (b *Board) attackedBySlider(sq Square, piece, queen Piece, dirs []offset) bool {
	for _, d := range dirs {
		s := sq.Offset(d.dr, d.dc)
		for s.Valid() {
			occupant := b.Squares[s.Row][s.Col]
			if occupant != NoPiece {
				if occupant == piece || occupant == queen {
					return true
				}
				break // Blocked
			}
			s = s.Offset(d.dr, d.dc)
		}
	}
	return false
}
