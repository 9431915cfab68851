package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

var (
	knightOffsets   = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs    = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs    = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	promotionPieces = [4]chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}
)

// IsTargeted returns true if any piece of side's opponent attacks pos.
func (g *ChessGame) IsTargeted(pos chess.Position, side chess.Colour) bool {
	return g.isSquareAttacked(pos, side.Opposite())
}

// isSquareAttacked returns true if the square is attacked by the given colour.
func (g *ChessGame) isSquareAttacked(pos chess.Position, byColour chess.Colour) bool {
	// Pawns attack from the rank behind them
	pawn := chess.MakePiece(byColour, chess.Pawn)
	back := -byColour.Forward()
	for _, df := range [2]int{-1, 1} {
		if sq, ok := pos.Offset(df, back); ok && g.board[sq] == pawn {
			return true
		}
	}

	knight := chess.MakePiece(byColour, chess.Knight)
	for _, o := range knightOffsets {
		if sq, ok := pos.Offset(o[0], o[1]); ok && g.board[sq] == knight {
			return true
		}
	}

	king := chess.MakePiece(byColour, chess.King)
	for _, o := range kingOffsets {
		if sq, ok := pos.Offset(o[0], o[1]); ok && g.board[sq] == king {
			return true
		}
	}

	queen := chess.MakePiece(byColour, chess.Queen)
	bishop := chess.MakePiece(byColour, chess.Bishop)
	for _, dir := range diagonalDirs {
		if p := g.firstPieceAlong(pos, dir); p == bishop || p == queen {
			return true
		}
	}

	rook := chess.MakePiece(byColour, chess.Rook)
	for _, dir := range straightDirs {
		if p := g.firstPieceAlong(pos, dir); p == rook || p == queen {
			return true
		}
	}

	return false
}

// firstPieceAlong walks from pos in direction dir and returns the first
// piece met, NoPiece if the ray leaves the board.
func (g *ChessGame) firstPieceAlong(pos chess.Position, dir [2]int) chess.Piece {
	sq, ok := pos.Offset(dir[0], dir[1])
	for ok {
		if p := g.board[sq]; p != chess.NoPiece {
			return p
		}
		sq, ok = sq.Offset(dir[0], dir[1])
	}
	return chess.NoPiece
}
