package engine

import "github.com/lgbarn/oyster-go/internal/chess"

// Piece values in centipawns. The king is worth far more than everything
// else combined so the search never trades it.
var pieceValues = [chess.NumPieceTypes]int{
	chess.Pawn:   100,
	chess.Knight: 280,
	chess.Bishop: 320,
	chess.Rook:   479,
	chess.Queen:  929,
	chess.King:   60000,
}

// MateUpper bounds every score the search can return. A side that is
// checkmated scores -MateUpper.
var MateUpper = pieceValues[chess.King] + 10*pieceValues[chess.Queen]

// mobilityWeight is the value of one extra legal move, a tenth of a pawn.
const mobilityWeight = 10

// Piece-square tables, written from White's point of view with rank 8 on
// the first line. Black reads them mirrored.
var pieceSquare = [chess.NumPieceTypes][chess.BoardSize][chess.BoardSize]int{
	chess.Pawn: {
		{0, 0, 0, 0, 0, 0, 0, 0},
		{78, 83, 86, 73, 102, 82, 85, 90},
		{7, 29, 21, 44, 40, 31, 44, 7},
		{-17, 16, -2, 15, 14, 0, 15, -13},
		{-26, 3, 10, 9, 6, 1, 0, -23},
		{-22, 9, 5, -11, -10, -2, 3, -19},
		{-31, 8, -7, -37, -36, -14, 3, -31},
		{0, 0, 0, 0, 0, 0, 0, 0},
	},
	chess.Knight: {
		{-66, -53, -75, -75, -10, -55, -58, -70},
		{-3, -6, 100, -36, 4, 62, -4, -14},
		{10, 67, 1, 74, 73, 27, 62, -2},
		{24, 24, 45, 37, 33, 41, 25, 17},
		{-1, 5, 31, 21, 22, 35, 2, 0},
		{-18, 10, 13, 22, 18, 15, 11, -14},
		{-23, -15, 2, 0, 2, 0, -23, -20},
		{-74, -23, -26, -24, -19, -35, -22, -69},
	},
	chess.Bishop: {
		{-59, -78, -82, -76, -23, -107, -37, -50},
		{-11, 20, 35, -42, -39, 31, 2, -22},
		{-9, 39, -32, 41, 52, -10, 28, -14},
		{25, 17, 20, 34, 26, 25, 15, 10},
		{13, 10, 17, 23, 17, 16, 0, 7},
		{14, 25, 24, 15, 8, 25, 20, 15},
		{19, 20, 11, 6, 7, 6, 20, 16},
		{-7, 2, -15, -12, -14, -15, -10, -10},
	},
	chess.Rook: {
		{35, 29, 33, 4, 37, 33, 56, 50},
		{55, 29, 56, 67, 55, 62, 34, 60},
		{19, 35, 28, 33, 45, 27, 25, 15},
		{0, 5, 16, 13, 18, -4, -9, -6},
		{-28, -35, -16, -21, -13, -29, -46, -30},
		{-42, -28, -42, -25, -25, -35, -26, -46},
		{-53, -38, -31, -26, -29, -43, -44, -53},
		{-30, -24, -18, 5, -2, -18, -31, -32},
	},
	chess.Queen: {
		{6, 1, -8, -104, 69, 24, 88, 26},
		{14, 32, 60, -10, 20, 76, 57, 24},
		{-2, 43, 32, 60, 72, 63, 43, 2},
		{1, -16, 22, 17, 25, 20, -13, -6},
		{-14, -15, -2, -5, -1, -10, -20, -22},
		{-30, -6, -13, -11, -16, -11, -16, -27},
		{-36, -18, 0, -19, -15, -15, -21, -38},
		{-39, -30, -31, -13, -31, -36, -34, -42},
	},
	chess.King: {
		{4, 54, 47, -99, -99, 60, 83, -62},
		{-32, 10, 55, 56, 56, 55, 10, 3},
		{-62, 12, -57, 44, -67, 28, 37, -31},
		{-55, 50, 11, -4, -19, 13, 0, -49},
		{-55, -43, -52, -28, -51, -47, -8, -50},
		{-47, -42, -43, -79, -64, -32, -29, -32},
		{-4, 3, -14, -50, -57, -18, 13, 4},
		{17, 30, -3, -14, 6, -1, 40, 18},
	},
}

// squareBonus returns the piece-square value of p standing on (row, col),
// board row 0 being rank 1.
func squareBonus(p chess.Piece, row, col int) int {
	if p.Colour() == chess.White {
		row = chess.BoardSize - 1 - row
	}
	return pieceSquare[p.Type()][row][col]
}

// Evaluate scores the position in centipawns from the side to move's point
// of view: material, piece-square bonuses and mobility, each taken as
// White's total minus Black's.
func Evaluate(b *chess.Board) int {
	score := 0
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := b.Squares[row][col]
			if p == chess.NoPiece {
				continue
			}
			v := pieceValues[p.Type()] + squareBonus(p, row, col)
			if p.Colour() == chess.White {
				score += v
			} else {
				score -= v
			}
		}
	}

	score += mobilityWeight * (b.Mobility(chess.White) - b.Mobility(chess.Black))

	if b.ToMove == chess.Black {
		return -score
	}
	return score
}
