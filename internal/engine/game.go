// Package engine provides the chess game state: board representation, legal
// move generation, make/unmake and the incremental evaluation.
package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// HistoryEntry pairs a pushed move with the state that was current before
// it, which is exactly what Pop needs to restore.
type HistoryEntry struct {
	Move  chess.Move
	State chess.GameState
}

// ChessGame owns a board and everything needed to make and unmake moves on
// it. A ChessGame must not be shared between goroutines; use Clone to hand
// an independent copy to a search.
type ChessGame struct {
	board  [chess.NumSquares]chess.Piece
	toMove chess.Colour

	// Evaluation of the board from White's point of view, kept up to date
	// by every board change.
	score chess.Score

	// Where each king stands, indexed by colour.
	kings [2]chess.Position

	state   chess.GameState
	history []HistoryEntry

	evaluator Evaluator

	// The position the game started from and its fullmove number.
	startFEN      string
	startFullmove int
}

// Option configures a ChessGame.
type Option func(*ChessGame)

// WithEvaluator sets the evaluator used for the incremental score.
func WithEvaluator(e Evaluator) Option {
	return func(g *ChessGame) {
		if e != nil {
			g.evaluator = e
		}
	}
}

// NewGame creates a game at the standard starting position.
func NewGame(opts ...Option) *ChessGame {
	g, err := NewGameFromFEN(InitialFEN, opts...)
	if err != nil {
		panic("engine: initial position rejected: " + err.Error())
	}
	return g
}

// newEmptyGame creates a game with no pieces, used by the FEN parser.
func newEmptyGame(opts ...Option) *ChessGame {
	g := &ChessGame{
		toMove:        chess.White,
		kings:         [2]chess.Position{chess.NoPosition, chess.NoPosition},
		state:         chess.GameState{EnPassant: chess.NoPosition, LastTo: chess.NoPosition},
		evaluator:     DefaultEvaluator(),
		startFullmove: 1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Clone returns a deep copy that shares nothing with g.
func (g *ChessGame) Clone() *ChessGame {
	c := *g
	c.history = make([]HistoryEntry, len(g.history), cap(g.history))
	copy(c.history, g.history)
	return &c
}

// ToMove returns the side to move.
func (g *ChessGame) ToMove() chess.Colour {
	return g.toMove
}

// PieceAt returns the piece on a square, NoPiece when it is empty.
func (g *ChessGame) PieceAt(pos chess.Position) chess.Piece {
	return g.board[pos]
}

// KingPosition returns where the king of the given side stands.
func (g *ChessGame) KingPosition(side chess.Colour) chess.Position {
	return g.kings[side]
}

// Len returns the number of plies pushed since the game was created.
func (g *ChessGame) Len() int {
	return len(g.history)
}

// State returns the current side information snapshot.
func (g *ChessGame) State() chess.GameState {
	return g.state
}

// Score returns the incremental evaluation from White's point of view.
func (g *ChessGame) Score() chess.Score {
	return g.score
}

// RelativeScore returns the incremental evaluation from the point of view
// of the side to move.
func (g *ChessGame) RelativeScore() chess.Score {
	return g.score * g.toMove.Sign()
}

// Evaluate recomputes the evaluation of the whole board from scratch. The
// result always equals Score().
func (g *ChessGame) Evaluate() chess.Score {
	var s chess.Score
	for sq, p := range g.board {
		if p != chess.NoPiece {
			s += g.evaluator.PieceScore(p, chess.Position(sq))
		}
	}
	return s
}

// InCheck reports whether the side to move is in check.
func (g *ChessGame) InCheck() bool {
	return g.IsTargeted(g.kings[g.toMove], g.toMove)
}

// Moves returns the moves pushed so far, oldest first.
func (g *ChessGame) Moves() []chess.Move {
	moves := make([]chess.Move, len(g.history))
	for i, h := range g.history {
		moves[i] = h.Move
	}
	return moves
}

// LastMove returns the most recent move, and false if none was pushed.
func (g *ChessGame) LastMove() (chess.Move, bool) {
	if len(g.history) == 0 {
		return chess.Move{}, false
	}
	return g.history[len(g.history)-1].Move, true
}

// StartFEN returns the position the game was created from.
func (g *ChessGame) StartFEN() string {
	return g.startFEN
}

// Fullmove returns the current fullmove number as written in FEN.
func (g *ChessGame) Fullmove() int {
	ply := len(g.history)
	// A game starting with Black to move begins half way through a move.
	if g.startsWithBlack() {
		ply++
	}
	return g.startFullmove + ply/2
}

// startsWithBlack reports whether the first ply of the game was Black's.
func (g *ChessGame) startsWithBlack() bool {
	first := g.toMove
	if len(g.history)%2 == 1 {
		first = first.Opposite()
	}
	return first == chess.Black
}

// place puts a piece on an empty square and adds it to the score.
func (g *ChessGame) place(pos chess.Position, p chess.Piece) {
	g.board[pos] = p
	g.score += g.evaluator.PieceScore(p, pos)
}

// remove lifts the piece off a square, subtracts it from the score and
// returns it.
func (g *ChessGame) remove(pos chess.Position) chess.Piece {
	p := g.board[pos]
	g.board[pos] = chess.NoPiece
	g.score -= g.evaluator.PieceScore(p, pos)
	return p
}
