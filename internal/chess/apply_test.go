package chess_test

import (
	"strings"
	"testing"

	"github.com/lgbarn/oyster-go/internal/chess"
	"github.com/lgbarn/oyster-go/internal/errors"
	"github.com/lgbarn/oyster-go/internal/testutil"
)

// TestMakeUnmake_Inverse checks that unmaking every legal move restores the
// position exactly, clocks and rights included.
func TestMakeUnmake_Inverse(t *testing.T) {
	positions := []string{
		"",
		kiwipete,
		position3,
		position4,
		position5,
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"r3k2r/1P6/8/8/8/8/6p1/R3K2R b KQkq - 7 30",
		"4k3/8/8/3Pp3/8/8/8/4K3 w - e6 0 1",
		"4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1",
	}

	for _, fen := range positions {
		board := testutil.MustBoard(t, fen)
		before := board.Copy()
		beforeFEN := board.FEN()

		for _, m := range board.LegalMoves() {
			board.MakeMove(m)
			if board.ToMove == before.ToMove {
				t.Errorf("%s: side to move unchanged after %v", beforeFEN, m)
			}
			board.UnmakeMove(m)

			if got := board.FEN(); got != beforeFEN {
				t.Errorf("after %v: FEN = %q; want %q", m, got, beforeFEN)
			}
			testutil.AssertBoardEqual(t, board, before, "unmake %v in %s", m, beforeFEN)
		}
	}
}

func TestMakeMove_Clocks(t *testing.T) {
	board := chess.NewInitialBoard()

	testutil.MustPush(t, board, "Nf3")
	testutil.AssertEqual(t, board.HalfmoveClock, 1)
	testutil.AssertEqual(t, board.MoveNumber, 1)
	testutil.AssertEqual(t, board.ToMove, chess.Black)

	testutil.MustPush(t, board, "Nc6")
	testutil.AssertEqual(t, board.HalfmoveClock, 2)
	testutil.AssertEqual(t, board.MoveNumber, 2)

	testutil.MustPush(t, board, "e4")
	testutil.AssertEqual(t, board.HalfmoveClock, 0, "pawn move resets the clock")
	testutil.AssertEqual(t, board.EnPassant, chess.MustSquare("e3"))

	testutil.MustPush(t, board, "Nd4", "Nxd4")
	testutil.AssertEqual(t, board.HalfmoveClock, 0, "capture resets the clock")
	testutil.AssertEqual(t, board.EnPassant, chess.NoSquare)
	testutil.AssertEqual(t, board.FEN(), "r1bqkbnr/pppppppp/8/8/3NP3/8/PPPP1PPP/RNBQKB1R b KQkq - 0 3")
}

func TestMakeMove_Promotion(t *testing.T) {
	board := testutil.MustBoard(t, "4k3/8/8/8/8/8/6p1/4K2R b K - 0 1")
	m, err := board.Push("gxh1=N")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.Capture, chess.W(chess.Rook))
	testutil.AssertEqual(t, board.Get(chess.MustSquare("h1")), chess.B(chess.Knight))
	testutil.AssertEqual(t, board.Castling, chess.NoCastling, "captured rook loses its right")

	_, err = board.Pop()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, board.Get(chess.MustSquare("h1")), chess.W(chess.Rook))
	testutil.AssertEqual(t, board.Get(chess.MustSquare("g2")), chess.B(chess.Pawn))
	testutil.AssertEqual(t, board.Castling, chess.WhiteKingside)
}

func TestMakeMove_EnPassantFromFEN(t *testing.T) {
	board := testutil.MustBoard(t, "4k3/8/8/3Pp3/8/8/8/4K3 w - e6 0 1")
	m := testutil.FindMove(t, board, "d5e6")
	board.MakeMove(m)
	testutil.AssertEqual(t, board.FEN(), "4k3/8/4P3/8/8/8/8/4K3 b - - 0 1")
	testutil.AssertEqual(t, m.Capture, chess.B(chess.Pawn))

	board.UnmakeMove(m)
	testutil.AssertEqual(t, board.FEN(), "4k3/8/8/3Pp3/8/8/8/4K3 w - e6 0 1")
}

func TestUnmakeMove_NotLastPanics(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*chess.Board) chess.Move
	}{
		{"empty history", func(b *chess.Board) chess.Move {
			return b.LegalMoves()[0]
		}},
		{"older move", func(b *chess.Board) chess.Move {
			first, _ := b.Push("e4")
			_, _ = b.Push("e5")
			return first
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := chess.NewInitialBoard()
			m := tt.setup(board)
			before := board.Copy()

			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("UnmakeMove did not panic")
				}
				if !strings.Contains(r.(string), "does not match") {
					t.Errorf("panic = %v", r)
				}
				testutil.AssertBoardEqual(t, board, before, "board after rejected unmake")
			}()
			board.UnmakeMove(m)
		})
	}
}

func TestPush_Errors(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		notation string
		want     error
	}{
		{"illegal pawn move", "", "e5", errors.ErrIllegalMove},
		{"illegal queen move", "", "Qd2", errors.ErrIllegalMove},
		{"garbage", "", "hello", errors.ErrIllegalMove},
		{"illegal castle", "", "O-O", errors.ErrIllegalMove},
		{"ambiguous", "4k3/8/8/8/8/8/8/1N1NK3 w - - 0 1", "Nc3", errors.ErrAmbiguousMove},
		{"missing promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a8", errors.ErrPromotionRequired},
		{"promotion to king", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a8=K", errors.ErrIllegalMove},
		{"promotion off last rank", "", "e4=Q", errors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := testutil.MustBoard(t, tt.fen)
			before := board.Copy()

			_, err := board.Push(tt.notation)
			testutil.AssertErrorIs(t, err, tt.want)

			var moveErr *errors.MoveError
			if !errors.As(err, &moveErr) {
				t.Fatalf("error %v is not a *MoveError", err)
			}
			testutil.AssertEqual(t, moveErr.MoveText, tt.notation)
			testutil.AssertEqual(t, moveErr.FEN, before.FEN())
			testutil.AssertEqual(t, moveErr.PlyNum, 1)
			testutil.AssertBoardEqual(t, board, before, "board after failed push")
		})
	}
}

func TestPop(t *testing.T) {
	board := chess.NewInitialBoard()
	_, err := board.Pop()
	testutil.AssertErrorIs(t, err, errors.ErrEmptyHistory)

	testutil.MustPush(t, board, "e4", "c5", "Nf3")
	m, err := board.Pop()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.String(), "g1f3")
	testutil.AssertEqual(t, board.FEN(), "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2")

	_, _ = board.Pop()
	_, _ = board.Pop()
	testutil.AssertEqual(t, board.FEN(), chess.InitialFEN)
}
