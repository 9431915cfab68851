// Package worker runs independent game subtrees on a fixed set of
// goroutines.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// Subtree is one unit of work: a private copy of the game with Move already
// pushed, and the depth left below it.
type Subtree struct {
	Game  *engine.ChessGame
	Move  chess.Move
	Depth int
	Index int // Position of Move in the root move list
}

// Result is what expanding a Subtree produced.
type Result struct {
	Move    chess.Move
	Index   int
	Nodes   uint64
	Skipped bool // The pool was stopped before the subtree ran
}

// ExpandFunc expands one subtree. It runs on a worker goroutine.
type ExpandFunc func(t Subtree) Result

// Pool feeds subtrees to its workers and collects their results. Every
// subtree owns its game, so workers share nothing but the channels.
type Pool struct {
	workers int
	backlog int
	expand  ExpandFunc

	queue   chan Subtree
	results chan Result
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the capacity of the queue and of the result channel.
// Values below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.backlog = size
		}
	}
}

// NewPool returns a pool that expands subtrees with expand. Without options
// it has one worker and room for 10 pending subtrees.
func NewPool(expand ExpandFunc, opts ...PoolOption) *Pool {
	p := &Pool{workers: 1, backlog: 10, expand: expand}
	for _, opt := range opts {
		opt(p)
	}
	p.queue = make(chan Subtree, p.backlog)
	p.results = make(chan Result, p.backlog)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for range p.workers {
		go p.run()
	}
}

// run drains the queue. Subtrees dequeued after Stop still produce a
// Result, marked Skipped, so a caller can account for every Submit.
func (p *Pool) run() {
	defer p.wg.Done()
	for t := range p.queue {
		if p.stopped.Load() {
			p.results <- Result{Move: t.Move, Index: t.Index, Skipped: true}
			continue
		}
		p.results <- p.expand(t)
	}
}

// Submit queues a subtree, blocking while the queue is full.
func (p *Pool) Submit(t Subtree) {
	p.queue <- t
}

// Stop makes the workers skip whatever is still queued. Subtrees already
// being expanded run to completion.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Close ends submission, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.queue)
	p.wg.Wait()
	close(p.results)
}

// Results delivers one Result per submitted subtree, in completion order.
func (p *Pool) Results() <-chan Result {
	return p.results
}
