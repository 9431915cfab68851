// Package perft counts the leaf positions reachable by full legal move
// expansion. The counts are compared against published reference numbers to
// validate move generation, and double as a throughput benchmark.
package perft

import (
	"context"
	"slices"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// Entry is the node count below one root move.
type Entry struct {
	Move  chess.Move
	Nodes uint64
}

// Count returns the number of leaf positions depth plies below g. g is
// restored before Count returns. Depth 0 counts the position itself.
func Count(g *engine.ChessGame, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := g.GetMoves(false)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		g.Push(m)
		nodes += Count(g, depth-1)
		g.Pop(m)
	}
	return nodes
}

// Divide counts the leaves below each root move, expanding the root moves on
// a pool of workers. Entries come back in coordinate notation order. If ctx
// is cancelled before every subtree has been expanded, the pool skips the
// rest and ctx.Err() is returned; a cancellation arriving after the last
// subtree finished does not discard the result.
func Divide(ctx context.Context, g *engine.ChessGame, depth, workers int) ([]Entry, uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	if depth < 1 {
		return nil, 1, nil
	}
	moves := g.GetMoves(false)

	pool := worker.NewPool(expand,
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(moves)+1),
	)
	pool.Start()

	go func() {
		for i, m := range moves {
			child := g.Clone()
			child.Push(m)
			pool.Submit(worker.Subtree{Game: child, Move: m, Depth: depth - 1, Index: i})
		}
		pool.Close()
	}()

	stop := context.AfterFunc(ctx, pool.Stop)
	defer stop()

	entries, total, complete := gather(pool.Results(), len(moves))
	if !complete {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		return nil, 0, context.Canceled
	}
	return entries, total, nil
}

// gather drains results into entries sorted by move text. complete is false
// if any subtree was skipped, in which case the counts are partial.
func gather(results <-chan worker.Result, n int) (entries []Entry, total uint64, complete bool) {
	entries = make([]Entry, n)
	complete = true
	for r := range results {
		if r.Skipped {
			complete = false
			continue
		}
		entries[r.Index] = Entry{Move: r.Move, Nodes: r.Nodes}
		total += r.Nodes
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Move.String(), b.Move.String())
	})
	return entries, total, complete
}

// expand counts the leaves of one root move's subtree.
func expand(t worker.Subtree) worker.Result {
	return worker.Result{
		Move:  t.Move,
		Index: t.Index,
		Nodes: Count(t.Game, t.Depth),
	}
}
