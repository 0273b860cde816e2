package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/oyster-go/internal/errors"
)

// Move represents a single ply together with the state needed to take it back.
// Moves are created by the Board's generators, which fill in the prior-state
// fields from the position they were generated in.
type Move struct {
	// Origin and destination. For castles these are the king's squares,
	// derived from the fixed castling geometry.
	From Square
	To   Square

	// The piece being moved (the pawn, for promotions).
	Piece Piece

	// The piece captured (NoPiece if no capture). For en-passant this is
	// the captured pawn, which does not stand on To.
	Capture Piece

	// The piece promoted to (NoPiece if not a promotion).
	Promotion Piece

	// Castle is NoCastle for every non-castling move.
	Castle CastleSide

	// EnPassant marks a pawn capture onto the en-passant target square.
	EnPassant bool

	// State of the board before this move, restored exactly by UnmakeMove.
	PriorCastle    CastleState
	PriorEnPassant Square
	PriorHalfmove  int
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return m.Capture != NoPiece
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPiece
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Castle != NoCastle
}

// IsDoublePush returns true for a pawn's two-square advance.
func (m Move) IsDoublePush() bool {
	if m.Piece.Type() != Pawn {
		return false
	}
	d := m.To.Row - m.From.Row
	return d == 2 || d == -2
}

// EnPassantSquare returns the square of the pawn taken en-passant: the
// mover's row and the destination's column.
func (m Move) EnPassantSquare() (Square, bool) {
	if !m.EnPassant {
		return NoSquare, false
	}
	return Sq(m.From.Row, m.To.Col), true
}

// String returns the compact long form: "e2e4", "e7e8q", or "O-O".
func (m Move) String() string {
	if m.IsCastle() {
		return m.Castle.String()
	}
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Type().Letter() + ('a' - 'A'))
	}
	return s
}

// LongString returns the hyphenated long form: "e2-e4", "e7-e8=Q", or "O-O".
func (m Move) LongString() string {
	if m.IsCastle() {
		return m.Castle.String()
	}
	s := m.From.String() + "-" + m.To.String()
	if m.IsPromotion() {
		s += "=" + string(m.Promotion.Type().Letter())
	}
	return s
}

// AmbiguityError is returned when notation matches more than one legal move.
// Candidates lists every match so the caller can ask which was meant.
type AmbiguityError struct {
	Notation   string
	Candidates []Move
}

// Error lists the candidate moves.
func (e *AmbiguityError) Error() string {
	names := make([]string, len(e.Candidates))
	for i, m := range e.Candidates {
		names[i] = m.LongString()
	}
	return fmt.Sprintf("%q could be %s: %v", e.Notation, strings.Join(names, ", "), errors.ErrAmbiguousMove)
}

// Unwrap enables errors.Is(err, errors.ErrAmbiguousMove).
func (e *AmbiguityError) Unwrap() error {
	return errors.ErrAmbiguousMove
}

// AmbiguousCandidates returns the candidate set carried by an ambiguity
// error anywhere in err's chain, or nil.
func AmbiguousCandidates(err error) []Move {
	var ambiguous *AmbiguityError
	if errors.As(err, &ambiguous) {
		return ambiguous.Candidates
	}
	return nil
}
