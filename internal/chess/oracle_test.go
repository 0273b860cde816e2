package chess_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/oyster-go/internal/chess"
	"github.com/lgbarn/oyster-go/internal/testutil"
)

// Cross-checks move generation against the dragontoothmg bitboard generator.

// uciMoves renders our legal moves the way dragontoothmg does, castles as
// king moves.
func uciMoves(b *chess.Board) []string {
	moves := b.LegalMoves()
	out := make([]string, len(moves))
	for i, m := range moves {
		if m.IsCastle() {
			out[i] = m.From.String() + m.To.String()
		} else {
			out[i] = m.String()
		}
	}
	slices.Sort(out)
	return out
}

func oracleMoves(b *dragontoothmg.Board) []string {
	moves := b.GenerateLegalMoves()
	out := make([]string, len(moves))
	for i := range moves {
		out[i] = strings.ToLower(moves[i].String())
	}
	slices.Sort(out)
	return out
}

func oraclePerft(b *dragontoothmg.Board, depth int) uint64 {
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += oraclePerft(b, depth-1)
		unapply()
	}
	return nodes
}

func TestOracle_LegalMoves(t *testing.T) {
	for _, fen := range []string{chess.InitialFEN, kiwipete, position3, position4, position5, promotionFEN, castlingFEN} {
		board := testutil.MustBoard(t, fen)
		oracle := dragontoothmg.ParseFen(fen)
		testutil.AssertEqual(t, uciMoves(board), oracleMoves(&oracle), fen)

		// One ply deeper, following each of our moves.
		for _, m := range board.LegalMoves() {
			board.MakeMove(m)
			next := dragontoothmg.ParseFen(board.FEN())
			testutil.AssertEqual(t, uciMoves(board), oracleMoves(&next), "%s after %v", fen, m)
			board.UnmakeMove(m)
		}
	}
}

func TestOracle_Perft(t *testing.T) {
	depth := 3
	if testing.Short() {
		depth = 2
	}
	for _, fen := range []string{chess.InitialFEN, kiwipete, position3, position4, position5} {
		board := testutil.MustBoard(t, fen)
		oracle := dragontoothmg.ParseFen(fen)
		testutil.AssertEqual(t, board.Perft(depth), oraclePerft(&oracle, depth), fen)
	}
}
