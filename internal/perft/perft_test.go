package perft

import (
	"context"
	"runtime"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

func mustGame(t testing.TB, fen string) *engine.ChessGame {
	t.Helper()
	g, err := engine.NewGameFromFEN(fen)
	testutil.AssertNoError(t, err, "NewGameFromFEN(%q)", fen)
	return g
}

func TestCount(t *testing.T) {
	for _, c := range testutil.PerftCases() {
		t.Run(c.Name, func(t *testing.T) {
			g := mustGame(t, c.FEN)
			before := g.FEN()
			for i, want := range c.Counts {
				if testing.Short() && want > 10000 {
					t.Skipf("skipping depth %d in short mode", i+1)
				}
				if got := Count(g, i+1); got != want {
					t.Errorf("Count(%d) = %d, want %d", i+1, got, want)
				}
			}
			if g.FEN() != before {
				t.Errorf("Count changed the game: %s", g.FEN())
			}
		})
	}
}

func TestCount_DepthZero(t *testing.T) {
	if got := Count(engine.NewGame(), 0); got != 1 {
		t.Errorf("Count(0) = %d, want 1", got)
	}
}

func TestDivide_MatchesCount(t *testing.T) {
	for _, fen := range []string{testutil.StartFEN, testutil.KiwipeteFEN, testutil.Position3} {
		g := mustGame(t, fen)
		entries, total, err := Divide(context.Background(), g, 3, runtime.NumCPU())
		testutil.AssertNoError(t, err)

		if want := Count(g, 3); total != want {
			t.Errorf("%s: Divide total = %d, Count = %d", fen, total, want)
		}
		if len(entries) != len(g.GetMoves(false)) {
			t.Errorf("%s: %d entries for %d root moves", fen, len(entries), len(g.GetMoves(false)))
		}

		var sum uint64
		for i, e := range entries {
			sum += e.Nodes
			if i > 0 && entries[i-1].Move.String() >= e.Move.String() {
				t.Errorf("entries not sorted: %s before %s", entries[i-1].Move, e.Move)
			}
			child := g.Clone()
			child.Push(e.Move)
			if want := Count(child, 2); e.Nodes != want {
				t.Errorf("%s: %d nodes, want %d", e.Move, e.Nodes, want)
			}
		}
		testutil.AssertEqual(t, sum, total)
	}
}

func TestDivide_StartPosition(t *testing.T) {
	entries, total, err := Divide(context.Background(), engine.NewGame(), 2, 4)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, total, uint64(400))
	testutil.AssertEqual(t, len(entries), 20)
	testutil.AssertEqual(t, entries[0].Move.String(), "a2a3")
	testutil.AssertEqual(t, entries[0].Nodes, uint64(20))
}

func TestDivide_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := Divide(ctx, engine.NewGame(), 3, 2)
	testutil.AssertErrorIs(t, err, context.Canceled)
}

func TestGather(t *testing.T) {
	moves := engine.NewGame().GetMoves(false)[:3]
	tests := []struct {
		name         string
		results      []worker.Result
		wantTotal    uint64
		wantComplete bool
	}{
		{
			"all expanded",
			[]worker.Result{
				{Move: moves[2], Index: 2, Nodes: 5},
				{Move: moves[0], Index: 0, Nodes: 7},
				{Move: moves[1], Index: 1, Nodes: 1},
			},
			13, true,
		},
		{
			"one skipped",
			[]worker.Result{
				{Move: moves[0], Index: 0, Nodes: 7},
				{Move: moves[1], Index: 1, Skipped: true},
				{Move: moves[2], Index: 2, Nodes: 5},
			},
			12, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := make(chan worker.Result, len(tt.results))
			for _, r := range tt.results {
				ch <- r
			}
			close(ch)

			entries, total, complete := gather(ch, len(moves))
			testutil.AssertEqual(t, total, tt.wantTotal)
			testutil.AssertEqual(t, complete, tt.wantComplete)
			testutil.AssertEqual(t, len(entries), len(moves))
			if complete {
				for i := 1; i < len(entries); i++ {
					if entries[i-1].Move.String() >= entries[i].Move.String() {
						t.Errorf("entries not sorted: %s before %s", entries[i-1].Move, entries[i].Move)
					}
				}
			}
		})
	}
}

func BenchmarkCount(b *testing.B) {
	g := engine.NewGame()
	for i := 0; i < b.N; i++ {
		Count(g, 3)
	}
}
