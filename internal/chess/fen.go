package chess

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/oyster-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields is the number of space-separated fields in a full FEN string.
const fenFields = 6

// FromFEN creates a board from a FEN string. On failure no board is returned
// and the error wraps errors.ErrInvalidFEN.
func FromFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != fenFields {
		return nil, fenError("fields", fmt.Sprintf("%d fields", fenFields), strconv.Itoa(len(parts)))
	}

	board := NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts[4], parts[5]); err != nil {
		return nil, err
	}

	return board, nil
}

// MustFEN is like FromFEN but panics on error. It is meant for fixtures.
func MustFEN(fen string) *Board {
	board, err := FromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board
}

func fenError(field, expected, got string) error {
	return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: field, Expected: expected, Got: got}
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != BoardSize {
		return fenError("placement", "8 ranks", positions)
	}

	for i, rankText := range ranks {
		row := BoardSize - 1 - i
		col := 0
		for j := 0; j < len(rankText); j++ {
			c := rankText[j]
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				piece := PieceFromLetter(c)
				if piece == NoPiece {
					return fenError("placement", "piece letter or digit", string(c))
				}
				if col >= BoardSize {
					return fenError("placement", "8 squares per rank", rankText)
				}
				board.Squares[row][col] = piece
				col++
			}
		}
		if col != BoardSize {
			return fenError("placement", "8 squares per rank", rankText)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *Board, field string) error {
	switch field {
	case "w":
		board.ToMove = White
	case "b":
		board.ToMove = Black
	default:
		return fenError("active colour", "w or b", field)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *Board, field string) error {
	state, ok := ParseCastleState(field)
	if !ok {
		return fenError("castling", "KQkq subset or -", field)
	}
	board.Castling = state
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *Board, field string) error {
	board.EnPassant = NoSquare
	if field == "-" {
		return nil
	}
	sq, err := ParseSquare(field)
	if err != nil {
		return fenError("en passant", "square on rank 3 or 6, or -", field)
	}
	// The target sits behind an enemy pawn that has just double-advanced.
	row := 5
	if board.ToMove == Black {
		row = 2
	}
	if sq.Row != row {
		return fenError("en passant", fmt.Sprintf("square on rank %d", row+1), field)
	}
	pushed := sq.Offset(-board.ToMove.Forward(), 0)
	if board.Get(sq) != NoPiece || board.Get(pushed) != MakePiece(board.ToMove.Opposite(), Pawn) {
		return fenError("en passant", "empty square behind a pawn that just double-advanced", field)
	}
	board.EnPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *Board, halfmove, fullmove string) error {
	h, err := strconv.Atoi(halfmove)
	if err != nil || h < 0 {
		return fenError("halfmove clock", "non-negative integer", halfmove)
	}
	f, err := strconv.Atoi(fullmove)
	if err != nil || f < 1 {
		return fenError("fullmove number", "positive integer", fullmove)
	}
	board.HalfmoveClock = h
	board.MoveNumber = f
	return nil
}

// FEN converts the board to a FEN string.
func (b *Board) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, b)
	sb.WriteByte(' ')
	writeSideToMove(&sb, b)
	sb.WriteByte(' ')
	sb.WriteString(b.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(b.EnPassant.String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", b.HalfmoveClock, b.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, b *Board) {
	for row := BoardSize - 1; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < BoardSize; col++ {
			piece := b.Squares[row][col]
			if piece == NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, b *Board) {
	if b.ToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}
