package chess

import "fmt"

// Square is a board coordinate. Row 0 is rank 1 and Col 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// NoSquare is the invalid square used for "none".
var NoSquare = Square{Row: -1, Col: -1}

// Sq builds a square from its row and column.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// ParseSquare converts two-character notation such as "e4" to a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	sq := Square{Row: int(s[1]) - RankBase, Col: int(s[0]) - FileBase}
	if !sq.Valid() {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return sq, nil
}

// MustSquare is like ParseSquare but panics on bad input.
// It is meant for tables and tests.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// File returns the file letter, 'a'-'h'.
func (s Square) File() byte {
	return byte(FileBase + s.Col)
}

// Rank returns the rank digit, '1'-'8'.
func (s Square) Rank() byte {
	return byte(RankBase + s.Row)
}

// Offset returns the square dr rows and dc columns away.
// The result may be off the board.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// String returns file+rank notation, or "-" for an invalid square.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}
