package engine

import (
	"testing"

	"github.com/lgbarn/oyster-go/internal/chess"
	"github.com/lgbarn/oyster-go/internal/testutil"
)

func TestEvaluate_InitialPositionIsLevel(t *testing.T) {
	board := chess.NewInitialBoard()
	testutil.AssertEqual(t, Evaluate(board), 0)
}

func TestEvaluate_AfterE4(t *testing.T) {
	board := chess.NewInitialBoard()
	testutil.MustPush(t, board, "e4")

	// The pawn gains 6-(-36) on the square table and White's mobility goes
	// from 20 to 30; Black, to move, sees the negation.
	testutil.AssertEqual(t, Evaluate(board), -(42 + 10*mobilityWeight))
}

func TestEvaluate_SideToMove(t *testing.T) {
	white := testutil.MustBoard(t, "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	black := testutil.MustBoard(t, "4k3/8/8/8/8/8/8/Q3K3 b - - 0 1")

	if Evaluate(white) < pieceValues[chess.Queen]-200 {
		t.Errorf("Evaluate(queen up, White to move) = %d; want about a queen", Evaluate(white))
	}
	testutil.AssertEqual(t, Evaluate(black), -Evaluate(white))
}

// TestEvaluate_ColourSymmetry mirrors positions top to bottom with colours
// swapped; the side to move must see the same score.
func TestEvaluate_ColourSymmetry(t *testing.T) {
	tests := []struct {
		fen, mirrored string
	}{
		{
			"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
			"rnbqkbnr/pppp1ppp/8/4p3/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		},
		{
			"4k3/8/8/8/8/8/8/Q3K3 w - - 0 1",
			"q3k3/8/8/8/8/8/8/4K3 b - - 0 1",
		},
	}
	for _, tt := range tests {
		a := testutil.MustBoard(t, tt.fen)
		b := testutil.MustBoard(t, tt.mirrored)
		testutil.AssertEqual(t, Evaluate(a), Evaluate(b), tt.fen)
	}
}

func TestEvaluate_LeavesBoardUnchanged(t *testing.T) {
	board := testutil.MustBoard(t, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	before := board.Copy()
	_ = Evaluate(board)
	testutil.AssertBoardEqual(t, board, before)
}

func TestSquareBonus_Mirrored(t *testing.T) {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			w := squareBonus(chess.W(chess.Knight), row, col)
			b := squareBonus(chess.B(chess.Knight), chess.BoardSize-1-row, col)
			if w != b {
				t.Errorf("knight bonus at (%d,%d) = %d; mirrored black = %d", row, col, w, b)
			}
		}
	}
	// White's b1 knight reads the bottom line of the table.
	testutil.AssertEqual(t, squareBonus(chess.W(chess.Knight), 0, 1), -23)
}
