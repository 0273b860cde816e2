package engine

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/lgbarn/oyster-go/internal/chess"
	"github.com/lgbarn/oyster-go/internal/config"
	"github.com/lgbarn/oyster-go/internal/worker"
)

// Oyster searches a fixed number of plies with negamax and alpha-beta
// pruning. One Oyster may be reused for many searches but not for two at
// once.
type Oyster struct {
	depth     int
	workers   int
	log       io.Writer
	verbosity int

	nodes atomic.Uint64
}

// Option configures an Oyster.
type Option func(*Oyster)

// WithDepth sets the search depth in plies.
func WithDepth(depth int) Option {
	return func(o *Oyster) {
		if depth >= 1 {
			o.depth = depth
		}
	}
}

// WithWorkers sets how many goroutines search root moves. Each works on its
// own copy of the board.
func WithWorkers(n int) Option {
	return func(o *Oyster) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithLog sends search diagnostics to w: a summary line per search at
// verbosity 1, plus a score and node count per root move at verbosity 2.
func WithLog(w io.Writer, verbosity int) Option {
	return func(o *Oyster) {
		if w != nil {
			o.log = w
			o.verbosity = verbosity
		}
	}
}

// NewOyster creates an Oyster engine. It searches config.DefaultDepth plies
// on one goroutine unless configured otherwise.
func NewOyster(opts ...Option) *Oyster {
	o := &Oyster{
		depth:   config.DefaultDepth,
		workers: 1,
		log:     io.Discard,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Oyster) Name() string { return "oyster" }

// Depth returns the configured search depth.
func (o *Oyster) Depth() int { return o.depth }

// Nodes returns the number of nodes visited by the most recent search.
func (o *Oyster) Nodes() uint64 { return o.nodes.Load() }

// BestMove searches the position to the configured depth. The board is
// returned to its original state.
func (o *Oyster) BestMove(b *chess.Board) chess.Move {
	o.nodes.Store(0)
	m, score := o.NegamaxRoot(b, o.depth)
	if o.verbosity >= 1 {
		fmt.Fprintf(o.log, "oyster: depth %d nodes %d score %d move %s\n",
			o.depth, o.Nodes(), score, b.SAN(m))
	}
	return m
}

// NegamaxRoot scores every legal move to depth plies and returns the best
// one with its score. Every root move is searched with the full window, so
// the first of several equally good moves is chosen. It panics if there is
// no legal move.
func (o *Oyster) NegamaxRoot(b *chess.Board, depth int) (chess.Move, int) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		panic(noMoves(o.Name(), b))
	}

	search := searchMove(depth)
	var results []worker.Result
	if o.workers > 1 && len(moves) > 1 {
		pool := worker.New(search, worker.WithWorkers(o.workers), worker.WithQueue(len(moves)))
		results = pool.Run(b, moves)
	} else {
		results = make([]worker.Result, len(moves))
		for i, m := range moves {
			results[i] = search(worker.Job{Board: b, Move: m, Index: i})
		}
	}

	best := 0
	for i, r := range results {
		o.nodes.Add(r.Nodes)
		if o.verbosity >= 2 {
			fmt.Fprintf(o.log, "  %-8s %6d %8d nodes\n", b.SAN(moves[i]), r.Score, r.Nodes)
		}
		if r.Score > results[best].Score {
			best = i
		}
	}
	return moves[best], results[best].Score
}

// searchMove returns the job that scores one root move to depth plies,
// counting the nodes below it.
func searchMove(depth int) worker.SearchFunc {
	return func(job worker.Job) worker.Result {
		var nodes uint64
		job.Board.MakeMove(job.Move)
		score := -negamax(job.Board, depth-1, -MateUpper, MateUpper, &nodes)
		job.Board.UnmakeMove(job.Move)
		return worker.Result{Move: job.Move, Index: job.Index, Score: score, Nodes: nodes}
	}
}

// Negamax returns the score of the position for the side to move, searched
// depth plies deep within the window (alpha, beta). A side with no legal
// move scores -MateUpper when in check and 0 when stalemated.
func (o *Oyster) Negamax(b *chess.Board, depth, alpha, beta int) int {
	var nodes uint64
	score := negamax(b, depth, alpha, beta, &nodes)
	o.nodes.Add(nodes)
	return score
}

func negamax(b *chess.Board, depth, alpha, beta int, nodes *uint64) int {
	*nodes++

	if depth == 0 {
		return Evaluate(b)
	}

	moves := b.LegalMoves()
	if len(moves) == 0 {
		if b.InCheck() {
			return -MateUpper
		}
		return 0
	}

	best := -MateUpper
	for _, m := range moves {
		b.MakeMove(m)
		score := -negamax(b, depth-1, -beta, -alpha, nodes)
		b.UnmakeMove(m)

		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if beta <= alpha {
			break
		}
	}
	return best
}
