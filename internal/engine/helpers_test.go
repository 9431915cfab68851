package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// mustGame parses fen or fails the test.
func mustGame(t testing.TB, fen string, opts ...Option) *ChessGame {
	t.Helper()
	g, err := NewGameFromFEN(fen, opts...)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) failed: %v", fen, err)
	}
	return g
}

// sq converts a square name for test tables.
func sq(s string) chess.Position {
	p, err := chess.ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

// mustMove parses a move in the current position or fails the test.
func mustMove(t testing.TB, g *ChessGame, s string) chess.Move {
	t.Helper()
	m, err := g.ParseMove(s)
	if err != nil {
		t.Fatalf("ParseMove(%q) in %s failed: %v", s, g.FEN(), err)
	}
	return m
}

// perft counts leaf nodes with full push/pop.
func perft(g *ChessGame, depth int) uint64 {
	moves := g.GetMoves(false)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		g.Push(m)
		nodes += perft(g, depth-1)
		g.Pop(m)
	}
	return nodes
}

// checkInvariants verifies the cached fields against the board.
func checkInvariants(t testing.TB, g *ChessGame) {
	t.Helper()
	if got, want := g.Score(), g.Evaluate(); got != want {
		t.Fatalf("%s: incremental score %d, recomputed %d", g.FEN(), got, want)
	}
	for _, side := range []chess.Colour{chess.White, chess.Black} {
		king := chess.MakePiece(side, chess.King)
		if p := g.PieceAt(g.KingPosition(side)); p != king {
			t.Fatalf("%s: %s king cached on %s which holds %v", g.FEN(), side, g.KingPosition(side), p)
		}
	}
}
