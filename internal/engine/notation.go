package engine

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// ParseMove converts coordinate notation into the matching legal move of the
// current position. Syntax errors wrap errors.ErrInvalidNotation; well formed
// moves that are not legal here wrap errors.ErrIllegalMove.
func (g *ChessGame) ParseMove(s string) (chess.Move, error) {
	n, err := chess.ParseNotation(s)
	if err != nil {
		return chess.Move{}, err
	}
	for _, m := range g.GetMoves(false) {
		if n.Matches(m) {
			return m, nil
		}
	}
	return chess.Move{}, fmt.Errorf("move %q: %w", s, errors.ErrIllegalMove)
}
