package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
)

// DrawRuleResult contains the automatic draw rules that hold for the current
// position. The search ignores them; drivers such as self-play use them to
// end a game.
type DrawRuleResult struct {
	// Has75MoveRule is true once 75 moves (150 half-moves) have been made
	// without a pawn move or capture.
	Has75MoveRule bool

	// Has5FoldRepetition is true if the current position occurred 5 or more
	// times in the game.
	Has5FoldRepetition bool

	// HasInsufficientMaterial is true if neither side can mate.
	HasInsufficientMaterial bool
}

// IsDraw reports whether any rule holds.
func (r DrawRuleResult) IsDraw() bool {
	return r.Has75MoveRule || r.Has5FoldRepetition || r.HasInsufficientMaterial
}

// AnalyzeDrawRules checks the current position against the automatic draw
// rules. Repetitions are counted by replaying the game from its start.
func (g *ChessGame) AnalyzeDrawRules() DrawRuleResult {
	result := DrawRuleResult{
		Has75MoveRule:           g.state.Halfmove >= 150,
		HasInsufficientMaterial: g.HasInsufficientMaterial(),
	}

	replay, err := NewGameFromFEN(g.startFEN, WithEvaluator(MaterialEvaluator{}))
	if err != nil {
		return result
	}
	current := g.Hash()
	counter := hashing.NewPositionCounter()
	counter.Add(replay.Hash())
	for _, h := range g.history {
		replay.Push(h.Move)
		counter.Add(replay.Hash())
	}
	result.Has5FoldRepetition = counter.Count(current) >= 5

	return result
}

// Hash returns the Zobrist key of the current position. The en passant
// square only contributes while a legal en passant capture exists, so a
// position reached by a double step hashes like the same position reached
// any other way.
func (g *ChessGame) Hash() uint64 {
	return hashing.Hash(&g.board, g.toMove, g.state.Castling, g.capturableEnPassant())
}

// capturableEnPassant returns the en passant square if the side to move can
// legally capture on it, NoPosition otherwise.
func (g *ChessGame) capturableEnPassant() chess.Position {
	ep := g.state.EnPassant
	if ep == chess.NoPosition {
		return ep
	}
	us := g.toMove
	pawn := chess.MakePiece(us, chess.Pawn)
	victim := chess.MakePiece(us.Opposite(), chess.Pawn)
	for _, df := range [2]int{-1, 1} {
		from, ok := ep.Offset(df, -us.Forward())
		if !ok || g.board[from] != pawn {
			continue
		}
		if g.leavesKingSafe(chess.Move{Kind: chess.Normal, Piece: pawn, From: from, To: ep, Captured: victim}) {
			return ep
		}
	}
	return chess.NoPosition
}

// HasInsufficientMaterial reports whether neither side can deliver mate:
// bare kings, a single minor piece, or one bishop each on squares of the
// same colour.
func (g *ChessGame) HasInsufficientMaterial() bool {
	var minors [2]int
	var bishopShade [2]int // 1 dark, 2 light, 0 none
	for sq, p := range g.board {
		switch p.Type() {
		case chess.NoPieceType, chess.King:
		case chess.Knight:
			minors[p.Colour()]++
		case chess.Bishop:
			minors[p.Colour()]++
			bishopShade[p.Colour()] = 1 + (chess.Position(sq).File()+chess.Position(sq).Rank())%2
		default:
			return false
		}
	}

	w, b := minors[chess.White], minors[chess.Black]
	switch {
	case w+b <= 1:
		return true
	case w == 1 && b == 1:
		return bishopShade[chess.White] != 0 && bishopShade[chess.White] == bishopShade[chess.Black]
	default:
		return false
	}
}
