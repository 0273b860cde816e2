package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/oyster-go/internal/chess"
)

// MustBoard parses a FEN string and calls t.Fatal if it is invalid.
// An empty string gives the standard starting position.
func MustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	if fen == "" {
		return chess.NewInitialBoard()
	}
	board, err := chess.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q) error: %v", fen, err)
	}
	return board
}

// MustPush applies each notation in turn and calls t.Fatal on the first
// one that fails.
func MustPush(t testing.TB, board *chess.Board, notations ...string) {
	t.Helper()
	for _, n := range notations {
		if _, err := board.Push(n); err != nil {
			t.Fatalf("Push(%q) on %s: %v", n, board.FEN(), err)
		}
	}
}

// FindMove returns the legal move with the given long form ("e2e4", "O-O").
func FindMove(t testing.TB, board *chess.Board, long string) chess.Move {
	t.Helper()
	for _, m := range board.LegalMoves() {
		if m.String() == long {
			return m
		}
	}
	t.Fatalf("%s is not legal in %s", long, board.FEN())
	return chess.Move{}
}

// MoveStrings renders moves in long form, in order.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// AssertBoardEqual compares every field of two boards, history included.
// A nil history and an empty one compare equal.
func AssertBoardEqual(t *testing.T, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		msg := formatMessage(msgAndArgs...)
		if msg == "" {
			msg = "board"
		}
		t.Errorf("%s: mismatch (-want +got):\n%s", msg, diff)
	}
}
