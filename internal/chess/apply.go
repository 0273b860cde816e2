package chess

import (
	"fmt"

	"github.com/lgbarn/oyster-go/internal/errors"
)

// MakeMove applies a move generated for this position. It does not check
// legality; use LegalMoves or ParseSAN to obtain moves.
func (b *Board) MakeMove(m Move) {
	colour := m.Piece.Colour()

	if m.IsCastle() {
		applyCastle(b, colour, m.Castle)
	} else {
		b.Squares[m.From.Row][m.From.Col] = NoPiece
		placed := m.Piece
		if m.IsPromotion() {
			placed = m.Promotion
		}
		b.Squares[m.To.Row][m.To.Col] = placed
		if sq, ok := m.EnPassantSquare(); ok {
			b.Squares[sq.Row][sq.Col] = NoPiece
		}
	}

	b.History = append(b.History, m)

	b.EnPassant = NoSquare
	if m.IsDoublePush() {
		b.EnPassant = Sq((m.From.Row+m.To.Row)/2, m.From.Col)
	}

	b.Castling = b.Castling.Without(rightsLostOn(m.From) | rightsLostOn(m.To))

	if m.IsCapture() || m.Piece.Type() == Pawn {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}

	if colour == Black {
		b.MoveNumber++
	}
	b.ToMove = colour.Opposite()
}

// UnmakeMove takes back m, which must be the most recent move applied to the
// board. Anything else is a caller bug and panics.
func (b *Board) UnmakeMove(m Move) {
	top, ok := b.LastMove()
	if !ok || top != m {
		panic(fmt.Sprintf("chess: unmake %s does not match last move %s", m, top))
	}
	b.History = b.History[:len(b.History)-1]

	colour := m.Piece.Colour()

	if m.IsCastle() {
		undoCastle(b, colour, m.Castle)
	} else {
		b.Squares[m.From.Row][m.From.Col] = m.Piece
		if sq, ok := m.EnPassantSquare(); ok {
			b.Squares[m.To.Row][m.To.Col] = NoPiece
			b.Squares[sq.Row][sq.Col] = m.Capture
		} else {
			b.Squares[m.To.Row][m.To.Col] = m.Capture
		}
	}

	b.Castling = m.PriorCastle
	b.EnPassant = m.PriorEnPassant
	b.HalfmoveClock = m.PriorHalfmove

	if colour == Black {
		b.MoveNumber--
	}
	b.ToMove = colour
}

// applyCastle moves king and rook to their castled squares.
func applyCastle(b *Board, colour Colour, side CastleSide) {
	kingFrom, kingTo, rookFrom, rookTo := CastleSquares(colour, side)
	b.Set(kingFrom, NoPiece)
	b.Set(rookFrom, NoPiece)
	b.Set(kingTo, MakePiece(colour, King))
	b.Set(rookTo, MakePiece(colour, Rook))
}

// undoCastle returns king and rook to their home squares.
func undoCastle(b *Board, colour Colour, side CastleSide) {
	kingFrom, kingTo, rookFrom, rookTo := CastleSquares(colour, side)
	b.Set(kingTo, NoPiece)
	b.Set(rookTo, NoPiece)
	b.Set(kingFrom, MakePiece(colour, King))
	b.Set(rookFrom, MakePiece(colour, Rook))
}

// Push parses notation, in SAN or long form, and applies the move. On error
// the board is unchanged and the error is a *errors.MoveError wrapping one of
// ErrIllegalMove, ErrAmbiguousMove or ErrPromotionRequired.
func (b *Board) Push(notation string) (Move, error) {
	m, err := b.ParseMove(notation)
	if err != nil {
		return Move{}, &errors.MoveError{
			Err:      err,
			MoveText: notation,
			FEN:      b.FEN(),
			PlyNum:   b.Ply() + 1,
		}
	}
	b.MakeMove(m)
	return m, nil
}

// Pop takes back the most recent move.
func (b *Board) Pop() (Move, error) {
	m, ok := b.LastMove()
	if !ok {
		return Move{}, errors.ErrEmptyHistory
	}
	b.UnmakeMove(m)
	return m, nil
}
