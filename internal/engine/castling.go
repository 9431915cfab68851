package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// castlingMoves generates castling for a king standing on its home square.
// The right must still be held, the rook must be in its corner, the squares
// between them must be empty and the king may not start on, pass through or
// land on an attacked square.
func (g *ChessGame) castlingMoves(dst []chess.Move, from chess.Position, king chess.Piece) []chess.Move {
	us := king.Colour()
	home := chess.E1
	if us == chess.Black {
		home = chess.E8
	}
	rights := g.state.Castling
	if from != home || rights&(chess.Kingside(us)|chess.Queenside(us)) == 0 {
		return dst
	}
	them := us.Opposite()
	if g.isSquareAttacked(home, them) {
		return dst
	}
	rook := chess.MakePiece(us, chess.Rook)

	if rights.Has(chess.Kingside(us)) {
		f, gsq, h := home+1, home+2, home+3
		if g.board[f] == chess.NoPiece && g.board[gsq] == chess.NoPiece && g.board[h] == rook &&
			!g.isSquareAttacked(f, them) && !g.isSquareAttacked(gsq, them) {
			dst = append(dst, chess.Move{Kind: chess.Normal, Piece: king, From: home, To: gsq})
		}
	}
	if rights.Has(chess.Queenside(us)) {
		d, c, b, a := home-1, home-2, home-3, home-4
		if g.board[d] == chess.NoPiece && g.board[c] == chess.NoPiece && g.board[b] == chess.NoPiece && g.board[a] == rook &&
			!g.isSquareAttacked(d, them) && !g.isSquareAttacked(c, them) {
			dst = append(dst, chess.Move{Kind: chess.Normal, Piece: king, From: home, To: c})
		}
	}
	return dst
}

// castlingRookSquares returns where the rook starts and ends for a castling
// king landing on kingTo.
func castlingRookSquares(kingTo chess.Position) (from, to chess.Position) {
	if kingTo.File() == 6 {
		return kingTo + 1, kingTo - 1
	}
	return kingTo - 2, kingTo + 1
}

// moveCastlingRook shifts the rook of a castling move, forwards on push and
// back on pop.
func (g *ChessGame) moveCastlingRook(kingTo chess.Position, undo bool) {
	from, to := castlingRookSquares(kingTo)
	if undo {
		from, to = to, from
	}
	g.place(to, g.remove(from))
}
