package chess

// FiftyMoveLimit is the halfmove clock value at which the game is drawn.
const FiftyMoveLimit = 100

// Outcome describes whether and how the game has ended.
type Outcome int

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
	FiftyMoveDraw
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case FiftyMoveDraw:
		return "draw by the fifty-move rule"
	default:
		return "ongoing"
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func (b *Board) IsCheckmate() bool {
	return b.InCheck() && !b.HasLegalMoves()
}

// IsStalemate returns true if the game is drawn for the side to move: fifty
// moves without a capture or pawn move, or no legal move while not in check.
func (b *Board) IsStalemate() bool {
	if b.HalfmoveClock >= FiftyMoveLimit {
		return true
	}
	return !b.InCheck() && !b.HasLegalMoves()
}

// Outcome reports the state of the game for the side to move. Checkmate
// takes precedence over the fifty-move rule.
func (b *Board) Outcome() Outcome {
	if !b.HasLegalMoves() {
		if b.InCheck() {
			return Checkmate
		}
		return Stalemate
	}
	if b.HalfmoveClock >= FiftyMoveLimit {
		return FiftyMoveDraw
	}
	return Ongoing
}
