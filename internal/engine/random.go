package engine

import (
	"math/rand"

	"github.com/lgbarn/oyster-go/internal/chess"
)

// Random picks a legal move uniformly at random. The sequence of choices is
// fixed by the seed.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random engine seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Name() string { return "random" }

// BestMove returns one of the legal moves.
func (r *Random) BestMove(b *chess.Board) chess.Move {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		panic(noMoves(r.Name(), b))
	}
	return moves[r.rng.Intn(len(moves))]
}
