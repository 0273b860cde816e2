package chess

import "strings"

// Board represents a chess position with all state needed for the game.
// It is mutated in place by MakeMove and UnmakeMove and is not safe for
// concurrent use; give each goroutine its own Copy.
type Board struct {
	// The board squares, Squares[row][col], row 0 being rank 1.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// Remaining castling rights.
	Castling CastleState

	// The square a pawn may capture onto en-passant, or NoSquare. It is set
	// only directly after a double pawn push.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// The current move number, starting at 1 and incremented after Black moves.
	MoveNumber int

	// Moves applied to this board, most recent last.
	History []Move
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		EnPassant:  NoSquare,
		MoveNumber: 1,
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]Piece{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = W(backRank[col])
		b.Squares[1][col] = W(Pawn)
		b.Squares[6][col] = B(Pawn)
		b.Squares[7][col] = B(backRank[col])
	}

	b.ToMove = White
	b.Castling = AllCastling
	b.EnPassant = NoSquare
	b.HalfmoveClock = 0
	b.MoveNumber = 1
	b.History = nil
}

// Get returns the piece on a square, or NoPiece for an empty or invalid square.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece on a square. Invalid squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq.Row][sq.Col] = piece
	}
}

// Copy creates a deep copy of the board, history included.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	if b.History != nil {
		newBoard.History = make([]Move, len(b.History), cap(b.History))
		copy(newBoard.History, b.History)
	}
	return newBoard
}

// Ply returns the number of moves applied since the board was created.
func (b *Board) Ply() int {
	return len(b.History)
}

// LastMove returns the most recently applied move.
func (b *Board) LastMove() (Move, bool) {
	if len(b.History) == 0 {
		return Move{}, false
	}
	return b.History[len(b.History)-1], true
}

// FindKing returns the square of colour's king, or NoSquare.
func (b *Board) FindKing(colour Colour) Square {
	king := MakePiece(colour, King)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == king {
				return Sq(row, col)
			}
		}
	}
	return NoSquare
}

// String draws the board from rank 8 down to rank 1 using FEN letters.
func (b *Board) String() string {
	var sb strings.Builder
	for row := BoardSize - 1; row >= 0; row-- {
		sb.WriteByte(byte(RankBase + row))
		sb.WriteByte(' ')
		for col := 0; col < BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(b.Squares[row][col].Letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
