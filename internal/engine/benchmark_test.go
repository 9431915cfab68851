package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

var benchFENs = map[string]string{
	"Initial":   testutil.StartFEN,
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   testutil.KiwipeteFEN,
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkNewGameFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewGameFromFEN(fen)
			}
		})
	}
}

func BenchmarkFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			g := mustGame(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.FEN()
			}
		})
	}
}

func BenchmarkGetMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			g := mustGame(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.GetMoves(false)
			}
		})
	}
}

func BenchmarkPushPop(b *testing.B) {
	g := mustGame(b, benchFENs["Complex"])
	moves := g.GetMoves(false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := moves[i%len(moves)]
		g.Push(m)
		g.Pop(m)
	}
}

func BenchmarkPushPopDepth1(b *testing.B) {
	g := mustGame(b, benchFENs["Complex"])
	moves := g.GetMoves(false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := moves[i%len(moves)]
		g.PushDepth1(m)
		g.PopDepth1(m)
	}
}

func BenchmarkPerft3(b *testing.B) {
	g := NewGame()
	for i := 0; i < b.N; i++ {
		perft(g, 3)
	}
}
