package chess

import "strings"

// CastleSide tags a castling move.
type CastleSide uint8

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// String returns the castle token, "O-O" or "O-O-O".
func (s CastleSide) String() string {
	switch s {
	case Kingside:
		return "O-O"
	case Queenside:
		return "O-O-O"
	default:
		return ""
	}
}

// CastleState holds the four castling rights as bits, in FEN order:
// 1000 -> K, 0100 -> Q, 0010 -> k, 0001 -> q.
type CastleState uint8

const (
	WhiteKingside CastleState = 1 << 3 >> iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastleState = 0
	AllCastling             = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// CastleRight returns the single right for a colour and side.
func CastleRight(colour Colour, side CastleSide) CastleState {
	switch {
	case colour == White && side == Kingside:
		return WhiteKingside
	case colour == White && side == Queenside:
		return WhiteQueenside
	case colour == Black && side == Kingside:
		return BlackKingside
	case colour == Black && side == Queenside:
		return BlackQueenside
	}
	return NoCastling
}

// Can reports whether colour still has the right to castle on side.
func (c CastleState) Can(colour Colour, side CastleSide) bool {
	right := CastleRight(colour, side)
	return right != NoCastling && c&right != 0
}

// Without returns a copy with the given rights removed.
func (c CastleState) Without(rights CastleState) CastleState {
	return c &^ rights
}

// ParseCastleState parses the FEN castling field ("KQkq" subset or "-").
// ok is false for any other character or a repeated letter.
func ParseCastleState(s string) (state CastleState, ok bool) {
	if s == "-" {
		return NoCastling, true
	}
	if s == "" {
		return NoCastling, false
	}
	for i := 0; i < len(s); i++ {
		var right CastleState
		switch s[i] {
		case 'K':
			right = WhiteKingside
		case 'Q':
			right = WhiteQueenside
		case 'k':
			right = BlackKingside
		case 'q':
			right = BlackQueenside
		default:
			return NoCastling, false
		}
		if state&right != 0 {
			return NoCastling, false
		}
		state |= right
	}
	return state, true
}

// String returns the FEN castling field.
func (c CastleState) String() string {
	if c&AllCastling == 0 {
		return "-"
	}
	var sb strings.Builder
	if c&WhiteKingside != 0 {
		sb.WriteByte('K')
	}
	if c&WhiteQueenside != 0 {
		sb.WriteByte('Q')
	}
	if c&BlackKingside != 0 {
		sb.WriteByte('k')
	}
	if c&BlackQueenside != 0 {
		sb.WriteByte('q')
	}
	return sb.String()
}

// castlePath is the fixed geometry of one castling option.
type castlePath struct {
	KingFrom, KingTo Square
	RookFrom, RookTo Square
	Between          []Square // must be empty
	KingPath         []Square // must not be attacked, king square included
}

// castlePaths is indexed by [Colour][CastleSide].
var castlePaths = [2][3]castlePath{
	White: {
		Kingside:  newCastlePath(0, Kingside),
		Queenside: newCastlePath(0, Queenside),
	},
	Black: {
		Kingside:  newCastlePath(7, Kingside),
		Queenside: newCastlePath(7, Queenside),
	},
}

func newCastlePath(row int, side CastleSide) castlePath {
	p := castlePath{KingFrom: Sq(row, 4)}
	if side == Kingside {
		p.KingTo, p.RookFrom, p.RookTo = Sq(row, 6), Sq(row, 7), Sq(row, 5)
		p.Between = []Square{Sq(row, 5), Sq(row, 6)}
		p.KingPath = []Square{Sq(row, 4), Sq(row, 5), Sq(row, 6)}
	} else {
		p.KingTo, p.RookFrom, p.RookTo = Sq(row, 2), Sq(row, 0), Sq(row, 3)
		p.Between = []Square{Sq(row, 1), Sq(row, 2), Sq(row, 3)}
		p.KingPath = []Square{Sq(row, 4), Sq(row, 3), Sq(row, 2)}
	}
	return p
}

// CastleSquares returns the king and rook squares of a castling option.
func CastleSquares(colour Colour, side CastleSide) (kingFrom, kingTo, rookFrom, rookTo Square) {
	p := castlePaths[colour][side]
	return p.KingFrom, p.KingTo, p.RookFrom, p.RookTo
}

// rightsLostOn returns the castling rights forfeited when a move starts or
// ends on sq: a king or rook leaving home, or a rook captured at home.
func rightsLostOn(sq Square) CastleState {
	switch sq {
	case Sq(0, 4):
		return WhiteKingside | WhiteQueenside
	case Sq(0, 7):
		return WhiteKingside
	case Sq(0, 0):
		return WhiteQueenside
	case Sq(7, 4):
		return BlackKingside | BlackQueenside
	case Sq(7, 7):
		return BlackKingside
	case Sq(7, 0):
		return BlackQueenside
	}
	return NoCastling
}
