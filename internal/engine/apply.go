package engine

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Push plays a legal move. Everything it changes is either recorded in the
// history entry or recomputable from the move itself, so Pop restores the
// game exactly.
func (g *ChessGame) Push(m chess.Move) {
	us := g.toMove
	prev := g.state
	g.history = append(g.history, HistoryEntry{Move: m, State: prev})

	if m.Captured != chess.NoPiece {
		g.remove(captureSquare(m, prev.EnPassant))
	}
	g.remove(m.From)
	g.place(m.To, landingPiece(m))

	if m.Piece.Type() == chess.King {
		g.kings[us] = m.To
		if m.IsCastle() {
			g.moveCastlingRook(m.To, false)
		}
	}

	next := chess.GameState{
		Castling:  prev.Castling.Update(m.From, m.To),
		EnPassant: enPassantTarget(m),
		LastTo:    m.To,
		Halfmove:  prev.Halfmove + 1,
	}
	if m.Piece.Type() == chess.Pawn || m.Captured != chess.NoPiece {
		next.Halfmove = 0
	}
	g.state = next
	g.toMove = us.Opposite()
}

// Pop undoes m, which must be the last move pushed.
func (g *ChessGame) Pop(m chess.Move) {
	last := len(g.history) - 1
	prev := g.history[last].State
	g.history[last] = HistoryEntry{}
	g.history = g.history[:last]

	us := g.toMove.Opposite()
	g.toMove = us

	if m.Piece.Type() == chess.King {
		g.kings[us] = m.From
		if m.IsCastle() {
			g.moveCastlingRook(m.To, true)
		}
	}
	g.remove(m.To)
	g.place(m.From, m.Piece)
	if m.Captured != chess.NoPiece {
		g.place(captureSquare(m, prev.EnPassant), m.Captured)
	}
	g.state = prev
}

// PushDepth1 is the horizon variant of Push. It updates only the board, the
// score and the side to move, which is all a static evaluation of the
// resulting position reads. The game must be restored with PopDepth1 before
// anything else is done with it.
func (g *ChessGame) PushDepth1(m chess.Move) {
	if m.Captured != chess.NoPiece {
		g.remove(captureSquare(m, g.state.EnPassant))
	}
	g.remove(m.From)
	g.place(m.To, landingPiece(m))
	if m.IsCastle() {
		g.moveCastlingRook(m.To, false)
	}
	g.toMove = g.toMove.Opposite()
}

// PopDepth1 undoes PushDepth1.
func (g *ChessGame) PopDepth1(m chess.Move) {
	g.toMove = g.toMove.Opposite()
	if m.IsCastle() {
		g.moveCastlingRook(m.To, true)
	}
	g.remove(m.To)
	g.place(m.From, m.Piece)
	if m.Captured != chess.NoPiece {
		g.place(captureSquare(m, g.state.EnPassant), m.Captured)
	}
}

// PushHistory commits a move coming from outside the search. It checks the
// move against the legal moves of the position first.
func (g *ChessGame) PushHistory(m chess.Move) error {
	for _, legal := range g.GetMoves(false) {
		if legal == m {
			g.Push(m)
			return nil
		}
	}
	return fmt.Errorf("%s: %w", m, errors.ErrIllegalMove)
}

// landingPiece is the piece that ends up on the destination square.
func landingPiece(m chess.Move) chess.Piece {
	if m.Kind == chess.Promotion {
		return chess.MakePiece(m.Piece.Colour(), m.Promote)
	}
	return m.Piece
}
