package search

import (
	"sync/atomic"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// run is the state of one search.
type run struct {
	stop            *atomic.Bool
	sortDepth       int
	maxExtensionPly int
	rootLen         int
	nodes           uint64
}

// bestMove is the root of the search. Root moves use the cheap ordering and
// every child is searched with alpha pinned just above the minimum and beta
// at the negated best score so far, so a child that cannot beat the current
// best fails fast.
func (r *run) bestMove(g *engine.ChessGame, depth int) (Result, error) {
	moves := g.GetMoves(false)
	switch len(moves) {
	case 0:
		return Result{Score: g.TerminalScore(), Nodes: 1}, nil
	case 1:
		return Result{Move: moves[0], Found: true, Forced: true, Nodes: 1}, nil
	}
	orderMoves(g, moves)

	res := Result{Score: chess.ScoreMin}
	for _, m := range moves {
		g.Push(m)
		score, err := r.search(g, depth-1, chess.ScoreMin+1, -res.Score)
		g.Pop(m)
		if err != nil {
			res.Nodes = r.nodes
			return res, err
		}
		score = -score
		if score > res.Score || !res.Found {
			res.Move, res.Score, res.Found = m, score, true
		}
	}
	res.Nodes = r.nodes
	return res, nil
}

// search is the general fail-hard negamax. The returned score is from the
// point of view of the side to move and is clamped to [alpha, beta].
func (r *run) search(g *engine.ChessGame, depth int, alpha, beta chess.Score) (chess.Score, error) {
	if r.stop.Load() {
		return 0, errors.ErrSearchAborted
	}
	r.nodes++

	switch {
	case depth <= 0:
		return g.RelativeScore(), nil
	case depth == 1:
		return r.searchDepth1(g, alpha, beta), nil
	case depth == 2:
		return r.searchDepth2(g, alpha, beta), nil
	}

	moves := g.GetMoves(false)
	switch {
	case len(moves) == 0:
		return g.TerminalScore(), nil
	case len(moves) == 1 && r.canExtend(g):
		// Forced moves do not consume depth.
		m := moves[0]
		g.Push(m)
		score, err := r.search(g, depth, -beta, -alpha)
		g.Pop(m)
		return -score, err
	}

	if depth >= r.sortDepth {
		if err := r.orderByShallowSearch(g, moves, depth, alpha, beta); err != nil {
			return 0, err
		}
	} else {
		orderMoves(g, moves)
	}

	for _, m := range moves {
		g.Push(m)
		score, err := r.search(g, depth-1, -beta, -alpha)
		g.Pop(m)
		if err != nil {
			return 0, err
		}
		alpha = max(alpha, -score)
		if alpha >= beta {
			break
		}
	}
	return alpha, nil
}

// searchDepth2 is search unrolled for two plies: cheap ordering, then the
// horizon routine below every move.
func (r *run) searchDepth2(g *engine.ChessGame, alpha, beta chess.Score) chess.Score {
	moves := g.GetMoves(false)
	switch {
	case len(moves) == 0:
		return g.TerminalScore()
	case len(moves) == 1 && r.canExtend(g):
		m := moves[0]
		g.Push(m)
		score := -r.searchDepth2(g, -beta, -alpha)
		g.Pop(m)
		return score
	}

	orderMoves(g, moves)
	for _, m := range moves {
		g.Push(m)
		score := -r.searchDepth1(g, -beta, -alpha)
		g.Pop(m)
		alpha = max(alpha, score)
		if alpha >= beta {
			break
		}
	}
	return alpha
}

// searchDepth1 is the horizon: every move is made with the shallow
// PushDepth1 and scored by the static evaluation of the result, which is
// all a depth 0 search would return.
func (r *run) searchDepth1(g *engine.ChessGame, alpha, beta chess.Score) chess.Score {
	moves := g.GetMoves(false)
	switch {
	case len(moves) == 0:
		return g.TerminalScore()
	case len(moves) == 1 && r.canExtend(g):
		m := moves[0]
		g.Push(m)
		score := -r.searchDepth1(g, -beta, -alpha)
		g.Pop(m)
		return score
	}

	for _, m := range moves {
		g.PushDepth1(m)
		score := -g.RelativeScore()
		g.PopDepth1(m)
		r.nodes++
		alpha = max(alpha, score)
		if alpha >= beta {
			break
		}
	}
	return alpha
}

// canExtend reports whether a single-reply node at g may still be searched
// without consuming depth.
func (r *run) canExtend(g *engine.ChessGame) bool {
	return g.Len()-r.rootLen < r.maxExtensionPly
}
