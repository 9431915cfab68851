package search

import (
	"cmp"
	"slices"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// compareMoves returns the cheap move ordering for a node whose previous
// move landed on lastTo. A negative result searches a before b.
//
// Promotions come first, queen ahead of the under-promotions. Captures
// follow, most valuable victim first; among equal victims a recapture on
// lastTo goes first, then the cheaper attacker. Quiet moves are ordered by
// the moving piece, pawns first.
func compareMoves(lastTo chess.Position) func(a, b chess.Move) int {
	return func(a, b chess.Move) int {
		if pa, pb := a.IsPromotion(), b.IsPromotion(); pa != pb {
			return first(pa)
		} else if pa {
			if c := cmp.Compare(b.Promote, a.Promote); c != 0 {
				return c
			}
		}

		ca, cb := a.IsCapture(), b.IsCapture()
		if ca != cb {
			return first(ca)
		}
		if ca {
			if c := cmp.Compare(b.Captured.Type(), a.Captured.Type()); c != 0 {
				return c
			}
			if ra, rb := a.To == lastTo, b.To == lastTo; ra != rb {
				return first(ra)
			}
		}
		return cmp.Compare(a.Piece.Type(), b.Piece.Type())
	}
}

// first orders the move for which aWins is reported ahead of the other.
func first(aWins bool) int {
	if aWins {
		return -1
	}
	return 1
}

// orderMoves sorts moves in place with the cheap ordering. The sort is
// stable so generation order breaks the remaining ties.
func orderMoves(g *engine.ChessGame, moves []chess.Move) {
	slices.SortStableFunc(moves, compareMoves(g.State().LastTo))
}

// scoredMove pairs a move with its shallow search key.
type scoredMove struct {
	move chess.Move
	key  chess.Score
}

// orderByShallowSearch is the expensive ordering used at deep nodes: every
// move is scored by a search sortDepth plies shallower than the node and
// the moves are sorted by the opponent's resulting score, lowest first.
func (r *run) orderByShallowSearch(g *engine.ChessGame, moves []chess.Move, depth int, alpha, beta chess.Score) error {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		g.Push(m)
		key, err := r.search(g, depth-r.sortDepth, -beta, -alpha)
		g.Pop(m)
		if err != nil {
			return err
		}
		scored[i] = scoredMove{move: m, key: key}
	}
	slices.SortStableFunc(scored, func(a, b scoredMove) int {
		return cmp.Compare(a.key, b.key)
	})
	for i := range scored {
		moves[i] = scored[i].move
	}
	return nil
}
