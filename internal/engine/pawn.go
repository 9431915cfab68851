package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// pawnMoves generates pushes, double pushes, captures, en passant and
// promotions for one pawn. Promotions count as noisy, so they survive
// capturesOnly even when they capture nothing.
func (g *ChessGame) pawnMoves(dst []chess.Move, from chess.Position, pawn chess.Piece, capturesOnly bool) []chess.Move {
	us := pawn.Colour()
	fwd := us.Forward()
	startRank, lastRank := 1, 7
	if us == chess.Black {
		startRank, lastRank = 6, 0
	}

	if one, ok := from.Offset(0, fwd); ok && g.board[one] == chess.NoPiece {
		if one.Rank() == lastRank {
			dst = g.addPromotions(dst, pawn, from, one, chess.NoPiece)
		} else if !capturesOnly {
			dst = g.addIfLegal(dst, chess.Move{Kind: chess.Normal, Piece: pawn, From: from, To: one})
			if from.Rank() == startRank {
				if two, ok := one.Offset(0, fwd); ok && g.board[two] == chess.NoPiece {
					dst = g.addIfLegal(dst, chess.Move{Kind: chess.Normal, Piece: pawn, From: from, To: two})
				}
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to, ok := from.Offset(df, fwd)
		if !ok {
			continue
		}
		target := g.board[to]
		switch {
		case target != chess.NoPiece && target.Colour() != us:
			if to.Rank() == lastRank {
				dst = g.addPromotions(dst, pawn, from, to, target)
			} else {
				dst = g.addIfLegal(dst, chess.Move{Kind: chess.Normal, Piece: pawn, From: from, To: to, Captured: target})
			}
		case target == chess.NoPiece && to == g.state.EnPassant:
			victim := chess.MakePiece(us.Opposite(), chess.Pawn)
			dst = g.addIfLegal(dst, chess.Move{Kind: chess.Normal, Piece: pawn, From: from, To: to, Captured: victim})
		}
	}
	return dst
}

// addPromotions appends the four promotions of a pawn move, queen first.
func (g *ChessGame) addPromotions(dst []chess.Move, pawn chess.Piece, from, to chess.Position, captured chess.Piece) []chess.Move {
	m := chess.Move{Kind: chess.Promotion, Piece: pawn, From: from, To: to, Captured: captured}
	if !g.leavesKingSafe(m) {
		return dst
	}
	for _, pt := range promotionPieces {
		m.Promote = pt
		dst = append(dst, m)
	}
	return dst
}

// captureSquare returns where the piece taken by m stands. For en passant
// that is beside the moving pawn rather than on its destination.
func captureSquare(m chess.Move, enPassant chess.Position) chess.Position {
	if m.Piece.Type() == chess.Pawn && m.To == enPassant {
		return chess.NewPosition(m.To.File(), m.From.Rank())
	}
	return m.To
}

// enPassantTarget returns the square a two-step pawn push skipped over, or
// NoPosition for any other move.
func enPassantTarget(m chess.Move) chess.Position {
	if m.Piece.Type() != chess.Pawn {
		return chess.NoPosition
	}
	if abs(m.To.Rank()-m.From.Rank()) == 2 {
		return chess.NewPosition(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
	}
	return chess.NoPosition
}
