// Package worker scores root moves on a fixed set of goroutines.
package worker

import (
	"sync"

	"github.com/lgbarn/oyster-go/internal/chess"
)

// Job is one root move to score. The job owns Board and may make and unmake
// moves on it freely.
type Job struct {
	Board *chess.Board
	Move  chess.Move
	Index int // Position of Move in the root move list
}

// Result is the outcome of one Job.
type Result struct {
	Move  chess.Move
	Index int
	Score int    // From the root mover's point of view
	Nodes uint64 // Positions visited below Move
}

// SearchFunc scores a single job.
type SearchFunc func(Job) Result

// Pool hands jobs to a fixed number of goroutines. A Pool runs one batch:
// Start, Submit and Close it once, or use Run.
type Pool struct {
	size    int
	queue   int
	search  SearchFunc
	jobs    chan Job
	results chan Result
	wg      sync.WaitGroup
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.size = n
		}
	}
}

// WithQueue sets how many jobs and results may wait unread.
func WithQueue(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.queue = n
		}
	}
}

// New returns a pool of one goroutine with a queue of ten unless configured
// otherwise.
func New(search SearchFunc, opts ...Option) *Pool {
	p := &Pool{size: 1, queue: 10, search: search}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.queue)
	p.results = make(chan Result, p.queue)
	return p
}

// Start launches the goroutines.
func (p *Pool) Start() {
	p.wg.Add(p.size)
	for i := 0; i < p.size; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.results <- p.search(job)
			}
		}()
	}
}

// Submit queues a job, blocking while the queue is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Close stops accepting jobs, waits for the goroutines to drain the queue
// and then closes the results.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Collect reads results until Close has run and returns them ordered by
// Index. n is the number of jobs submitted.
func (p *Pool) Collect(n int) []Result {
	ordered := make([]Result, n)
	for r := range p.results {
		if r.Index >= 0 && r.Index < n {
			ordered[r.Index] = r
		}
	}
	return ordered
}

// Run scores every move on its own copy of root and returns the results in
// move order. root is only read.
func (p *Pool) Run(root *chess.Board, moves []chess.Move) []Result {
	p.Start()
	go func() {
		for i, m := range moves {
			p.Submit(Job{Board: root.Copy(), Move: m, Index: i})
		}
		p.Close()
	}()
	return p.Collect(len(moves))
}
