package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// IsCheckmate returns true if the side to move is checkmated.
func (g *ChessGame) IsCheckmate() bool {
	return g.InCheck() && !g.HasLegalMoves()
}

// IsStalemate returns true if the side to move has no legal move but is not
// in check.
func (g *ChessGame) IsStalemate() bool {
	return !g.InCheck() && !g.HasLegalMoves()
}

// TerminalScore scores a position without legal moves from the point of view
// of the side to move: 0 for stalemate, a mate score that grows toward zero
// with the game length for checkmate.
func (g *ChessGame) TerminalScore() chess.Score {
	if g.InCheck() {
		return chess.MateScore(g.Len())
	}
	return 0
}
