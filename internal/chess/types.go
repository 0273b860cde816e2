// Package chess provides the board, move and rule types of the engine.
package chess

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// PieceType represents a kind of chess piece, independent of colour.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (t PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(t) < len(letters) {
		return letters[t]
	}
	return '?'
}

// PieceTypeFromLetter converts a piece letter of either case to a piece type.
// It returns NoPieceType for anything else.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPieceType
	}
}

// Piece is a coloured piece. The zero value is NoPiece, an empty square.
type Piece uint8

// NoPiece marks an empty square.
const NoPiece Piece = 0

// pieceShift is used for encoding coloured pieces.
const pieceShift = 1

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, t PieceType) Piece {
	return Piece(uint8(t)<<pieceShift | uint8(colour))
}

// W creates a white piece.
func W(t PieceType) Piece {
	return MakePiece(White, t)
}

// B creates a black piece.
func B(t PieceType) Piece {
	return MakePiece(Black, t)
}

// Colour extracts the colour from a coloured piece.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// Type extracts the piece type from a coloured piece.
func (p Piece) Type() PieceType {
	return PieceType(p >> pieceShift)
}

// Letter returns the FEN letter of the piece: uppercase for White.
func (p Piece) Letter() byte {
	if p == NoPiece {
		return '.'
	}
	letter := p.Type().Letter()
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p == NoPiece {
		return "Empty"
	}
	return p.Colour().String() + " " + p.Type().String()
}

// PieceFromLetter converts a FEN letter to a coloured piece.
// Uppercase letters are White. It returns NoPiece for anything else.
func PieceFromLetter(c byte) Piece {
	t := PieceTypeFromLetter(c)
	if t == NoPieceType {
		return NoPiece
	}
	if c >= 'a' && c <= 'z' {
		return MakePiece(Black, t)
	}
	return MakePiece(White, t)
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	FileBase = 'a'
)
