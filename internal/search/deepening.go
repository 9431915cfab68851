package search

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// Info is reported after every completed depth.
type Info struct {
	Depth int

	// Score is the average of this depth's best score and the previous
	// depth's, which damps the swing between odd and even depths.
	Score chess.Score

	Move    chess.Move
	Nodes   uint64 // Nodes searched so far, all depths included
	Elapsed time.Duration
}

// InfoFunc receives progress reports. It runs on the searching goroutine.
type InfoFunc func(Info)

// Outcome is the result of a timed search.
type Outcome struct {
	Move  chess.Move
	Found bool // False when the position has no legal move
	Score chess.Score
	Depth int // Last completed depth, 0 if none completed

	// Forced is set when the root had a single legal move.
	Forced bool

	// Fallback is set when not even the first depth completed and Move is
	// simply the first move of the cheap ordering.
	Fallback bool

	Nodes   uint64
	Elapsed time.Duration
}

// Think runs iterative deepening on a clone of g until the budget runs out,
// ctx is cancelled, the maximum depth is reached, the root move is forced
// or a forced mate is found. The move of the last completed depth is
// returned; g itself is never modified.
//
// If cancellation arrives before the first depth completes, the first legal
// move in cheap order is returned with Fallback set, so a legal position
// always produces a move. A non-positive budget behaves like one that has
// already expired.
func (s *Searcher) Think(ctx context.Context, g *engine.ChessGame, budget time.Duration, report InfoFunc) Outcome {
	start := time.Now()
	game := g.Clone()

	stop := s.stop
	if stop == nil {
		stop = new(atomic.Bool)
	}
	if budget <= 0 {
		stop.Store(true)
	} else {
		timer := time.AfterFunc(budget, func() { stop.Store(true) })
		defer timer.Stop()
	}
	cancelWatch := context.AfterFunc(ctx, func() { stop.Store(true) })
	defer cancelWatch()

	var (
		out       Outcome
		lastScore chess.Score
		completed bool
	)
	for depth := s.minDepth; depth <= s.maxDepth; depth++ {
		res, err := s.newRun(game, stop).bestMove(game, depth)
		out.Nodes += res.Nodes
		if err != nil {
			s.logger.Debug("search aborted",
				zap.Int("depth", depth),
				zap.Uint64("nodes", out.Nodes),
				zap.Duration("elapsed", time.Since(start)),
			)
			break
		}

		smoothed := res.Score
		if completed {
			smoothed = average(lastScore, res.Score)
		}
		lastScore = res.Score
		completed = true

		out.Move, out.Found, out.Score, out.Forced = res.Move, res.Found, res.Score, res.Forced
		out.Depth = depth

		elapsed := time.Since(start)
		s.logger.Debug("depth completed",
			zap.Int("depth", depth),
			zap.String("move", res.Move.String()),
			zap.Int32("score", int32(res.Score)),
			zap.Bool("mate", chess.IsMateScore(res.Score)),
			zap.Bool("forced", res.Forced),
			zap.Uint64("nodes", out.Nodes),
			zap.Duration("elapsed", elapsed),
		)
		if report != nil {
			report(Info{Depth: depth, Score: smoothed, Move: res.Move, Nodes: out.Nodes, Elapsed: elapsed})
		}

		if !res.Found || res.Forced || chess.IsWinningMate(res.Score) {
			break
		}
	}

	if !completed {
		moves := game.GetMoves(false)
		if len(moves) > 0 {
			orderMoves(game, moves)
			out.Move, out.Found, out.Fallback = moves[0], true, true
		}
		s.logger.Debug("no depth completed", zap.Bool("fallback", out.Fallback))
	}

	out.Elapsed = time.Since(start)
	return out
}

// average returns the mean of two scores without overflowing.
func average(a, b chess.Score) chess.Score {
	return chess.Score((int64(a) + int64(b)) / 2)
}
