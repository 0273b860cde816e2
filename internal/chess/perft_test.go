package chess_test

import (
	"testing"

	"github.com/lgbarn/oyster-go/internal/testutil"
)

// Standard perft test positions.
const (
	kiwipete  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3 = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4 = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	position5 = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		nodes []uint64 // indexed by depth-1
	}{
		{"initial", "", []uint64{20, 400, 8902, 197281}},
		{"kiwipete", kiwipete, []uint64{48, 2039, 97862}},
		{"position 3", position3, []uint64{14, 191, 2812, 43238}},
		{"position 4", position4, []uint64{6, 264, 9467}},
		{"position 5", position5, []uint64{44, 1486, 62379}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := testutil.MustBoard(t, tt.fen)
			before := board.Copy()
			for i, want := range tt.nodes {
				depth := i + 1
				if testing.Short() && depth > 2 {
					break
				}
				if got := board.Perft(depth); got != want {
					t.Errorf("Perft(%d) = %d; want %d", depth, got, want)
				}
			}
			testutil.AssertBoardEqual(t, board, before, "board after perft")
		})
	}
}

func TestDivide(t *testing.T) {
	board := testutil.MustBoard(t, kiwipete)
	entries := board.Divide(2)

	if len(entries) != 48 {
		t.Fatalf("Divide(2) has %d entries; want 48", len(entries))
	}
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	testutil.AssertEqual(t, total, uint64(2039))

	testutil.AssertEqual(t, len(board.Divide(0)), 0)
}
