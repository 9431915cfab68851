package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// GetMoves returns every legal move of the side to move. With capturesOnly
// set, only captures (en passant included) and promotions are produced.
func (g *ChessGame) GetMoves(capturesOnly bool) []chess.Move {
	return g.AppendMoves(make([]chess.Move, 0, 48), capturesOnly)
}

// AppendMoves appends the legal moves of the side to move to dst and
// returns the extended slice.
func (g *ChessGame) AppendMoves(dst []chess.Move, capturesOnly bool) []chess.Move {
	us := g.toMove
	for i, p := range g.board {
		if p == chess.NoPiece || p.Colour() != us {
			continue
		}
		from := chess.Position(i)
		switch p.Type() {
		case chess.Pawn:
			dst = g.pawnMoves(dst, from, p, capturesOnly)
		case chess.Knight:
			dst = g.stepMoves(dst, from, p, knightOffsets[:], capturesOnly)
		case chess.Bishop:
			dst = g.slidingMoves(dst, from, p, diagonalDirs[:], capturesOnly)
		case chess.Rook:
			dst = g.slidingMoves(dst, from, p, straightDirs[:], capturesOnly)
		case chess.Queen:
			dst = g.slidingMoves(dst, from, p, diagonalDirs[:], capturesOnly)
			dst = g.slidingMoves(dst, from, p, straightDirs[:], capturesOnly)
		case chess.King:
			dst = g.stepMoves(dst, from, p, kingOffsets[:], capturesOnly)
			if !capturesOnly {
				dst = g.castlingMoves(dst, from, p)
			}
		}
	}
	return dst
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (g *ChessGame) HasLegalMoves() bool {
	var buf [64]chess.Move
	return len(g.AppendMoves(buf[:0], false)) > 0
}

// stepMoves generates knight and king moves.
func (g *ChessGame) stepMoves(dst []chess.Move, from chess.Position, p chess.Piece, offsets [][2]int, capturesOnly bool) []chess.Move {
	for _, o := range offsets {
		to, ok := from.Offset(o[0], o[1])
		if !ok {
			continue
		}
		target := g.board[to]
		switch {
		case target == chess.NoPiece:
			if !capturesOnly {
				dst = g.addIfLegal(dst, chess.Move{Kind: chess.Normal, Piece: p, From: from, To: to})
			}
		case target.Colour() != p.Colour():
			dst = g.addIfLegal(dst, chess.Move{Kind: chess.Normal, Piece: p, From: from, To: to, Captured: target})
		}
	}
	return dst
}

// slidingMoves generates bishop, rook and queen moves along the given rays.
func (g *ChessGame) slidingMoves(dst []chess.Move, from chess.Position, p chess.Piece, dirs [][2]int, capturesOnly bool) []chess.Move {
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			target := g.board[to]
			if target != chess.NoPiece {
				if target.Colour() != p.Colour() {
					dst = g.addIfLegal(dst, chess.Move{Kind: chess.Normal, Piece: p, From: from, To: to, Captured: target})
				}
				break // Blocked
			}
			if !capturesOnly {
				dst = g.addIfLegal(dst, chess.Move{Kind: chess.Normal, Piece: p, From: from, To: to})
			}
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return dst
}

// addIfLegal appends m when it does not leave the mover's king attacked.
func (g *ChessGame) addIfLegal(dst []chess.Move, m chess.Move) []chess.Move {
	if g.leavesKingSafe(m) {
		return append(dst, m)
	}
	return dst
}

// leavesKingSafe plays m on the bare board, checks the mover's king and
// puts the board back. Score, state and history are not touched. This is
// where pins and checks are resolved.
func (g *ChessGame) leavesKingSafe(m chess.Move) bool {
	us := m.Piece.Colour()
	captured := g.board[m.To]

	victim := chess.NoPosition
	if m.Captured != chess.NoPiece {
		if sq := captureSquare(m, g.state.EnPassant); sq != m.To {
			victim = sq
			g.board[victim] = chess.NoPiece
		}
	}
	g.board[m.From] = chess.NoPiece
	g.board[m.To] = m.Piece

	king := g.kings[us]
	if m.Piece.Type() == chess.King {
		king = m.To
	}
	safe := !g.isSquareAttacked(king, us.Opposite())

	g.board[m.To] = captured
	g.board[m.From] = m.Piece
	if victim != chess.NoPosition {
		g.board[victim] = m.Captured
	}
	return safe
}
