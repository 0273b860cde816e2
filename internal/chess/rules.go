package chess

import "iter"

// offset is a (row, column) step.
type offset struct{ dr, dc int }

var (
	orthogonal = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonal   = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	allAround  = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightHops = []offset{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
)

// moveRule describes how a piece type moves: the directions it walks in and
// whether it keeps going (slides) or stops after one step.
type moveRule struct {
	dirs   []offset
	slides bool
}

// moveRules is indexed by PieceType. Pawns are handled separately.
var moveRules = [NumPieceTypes]moveRule{
	Knight: {dirs: knightHops},
	Bishop: {dirs: diagonal, slides: true},
	Rook:   {dirs: orthogonal, slides: true},
	Queen:  {dirs: allAround, slides: true},
	King:   {dirs: allAround},
}

// Destinations returns the squares the piece could move to from origin,
// ignoring whether the move would leave its own king in check. Castling is
// not included. The sequence is lazy and meant to be ranged over once.
func (p Piece) Destinations(b *Board, origin Square) iter.Seq[Square] {
	if p.Type() == Pawn {
		return pawnDestinations(b, origin, p.Colour())
	}
	rule := moveRules[p.Type()]
	return func(yield func(Square) bool) {
		walk(b, origin, p.Colour(), rule, yield)
	}
}

// walk steps along each direction of rule, yielding empty squares and a
// final enemy-occupied square. A friendly piece or the board edge ends the
// direction. walk returns false if yield asked to stop.
func walk(b *Board, origin Square, colour Colour, rule moveRule, yield func(Square) bool) bool {
	for _, d := range rule.dirs {
		sq := origin.Offset(d.dr, d.dc)
		for sq.Valid() {
			occupant := b.Squares[sq.Row][sq.Col]
			if occupant != NoPiece && occupant.Colour() == colour {
				break
			}
			if !yield(sq) {
				return false
			}
			if occupant != NoPiece || !rule.slides {
				break
			}
			sq = sq.Offset(d.dr, d.dc)
		}
	}
	return true
}

// pawnDestinations yields forward pushes onto empty squares (two from the
// starting rank) and diagonal captures onto enemy pieces or the en-passant
// target.
func pawnDestinations(b *Board, origin Square, colour Colour) iter.Seq[Square] {
	return func(yield func(Square) bool) {
		fwd := colour.Forward()

		one := origin.Offset(fwd, 0)
		if one.Valid() && b.Get(one) == NoPiece {
			if !yield(one) {
				return
			}
			two := origin.Offset(2*fwd, 0)
			if origin.Row == pawnStartRow(colour) && b.Get(two) == NoPiece {
				if !yield(two) {
					return
				}
			}
		}

		for _, dc := range [2]int{-1, 1} {
			target := origin.Offset(fwd, dc)
			if !target.Valid() {
				continue
			}
			occupant := b.Get(target)
			if (occupant != NoPiece && occupant.Colour() != colour) || target == b.EnPassant {
				if !yield(target) {
					return
				}
			}
		}
	}
}

// pawnStartRow returns the row colour's pawns start on.
func pawnStartRow(colour Colour) int {
	if colour == White {
		return 1
	}
	return 6
}

// promotionRow returns the row on which colour's pawns promote.
func promotionRow(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}
