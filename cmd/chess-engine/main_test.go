package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

// quickConfig keeps searches to two plies.
func quickConfig() *config.Config {
	return config.NewConfigBuilder().
		WithDepthLimits(1, 2).
		WithDivideWorkers(2).
		Build()
}

func runCommand(t *testing.T, cfg *config.Config, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), cfg, args, strings.NewReader(input), &out, zap.NewNop())
	return out.String(), err
}

func TestRun_UCI(t *testing.T) {
	out, err := runCommand(t, quickConfig(), "uci\nisready\nquit\n")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, testutil.Lines(out), []string{"id name Go Chess Engine", "id author lgbarn", "uciok", "readyok"})
}

func TestRun_Perft(t *testing.T) {
	tests := []struct {
		depth string
		want  string
	}{
		{"1", "20\n"},
		{"2", "400\n"},
		{"3", "8902\n"},
	}

	for _, tt := range tests {
		t.Run(tt.depth, func(t *testing.T) {
			out, err := runCommand(t, quickConfig(), "", "perft", tt.depth)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, out, tt.want)
		})
	}
}

func TestRun_BadDepth(t *testing.T) {
	for _, args := range [][]string{
		{"perft", "deep"},
		{"perft", "0"},
		{"teststart", "-1"},
		{"divide"},
		{"divide", "x"},
	} {
		if _, err := runCommand(t, quickConfig(), "", args...); err == nil {
			t.Errorf("run(%v) error = nil, want error", args)
		}
	}
}

func TestRun_Divide(t *testing.T) {
	out, err := runCommand(t, quickConfig(), "", "divide", "2")
	testutil.AssertNoError(t, err)

	lines := testutil.Lines(out)
	testutil.AssertEqual(t, len(lines), 21)
	testutil.AssertEqual(t, lines[0], "a2a3: 20")
	testutil.AssertEqual(t, lines[20], "Nodes searched: 400")
}

func TestRun_DivideFEN(t *testing.T) {
	args := append([]string{"divide", "1"}, strings.Fields(testutil.KiwipeteFEN)...)
	out, err := runCommand(t, quickConfig(), "", args...)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, testutil.LinesWithPrefix(out, "Nodes searched:"), []string{"Nodes searched: 48"})

	_, err = runCommand(t, quickConfig(), "", "divide", "1", "not/a/fen")
	if err == nil {
		t.Error("divide with a bad FEN succeeded")
	}
}

func TestRun_TestStart(t *testing.T) {
	out, err := runCommand(t, quickConfig(), "", "teststart", "3")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(testutil.LinesWithPrefix(out, "depth 3 bestmove ")), 1)
}

func TestRun_Bench(t *testing.T) {
	out, err := runCommand(t, quickConfig(), "", "bench", "3")
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, len(testutil.LinesWithPrefix(out, "position ")), len(benchPositions))
	testutil.AssertContains(t, out, "position 6 depth 3 bestmove ")
	testutil.AssertEqual(t, len(testutil.LinesWithPrefix(out, "Nodes searched: ")), 1)
}

func TestBenchPositionsParse(t *testing.T) {
	for i, fen := range benchPositions {
		if _, err := gameFromArgs(strings.Fields(fen)); err != nil {
			t.Errorf("bench position %d: %v", i+1, err)
		}
	}
}

func TestRun_AutoMates(t *testing.T) {
	args := append([]string{"auto", "5000"}, strings.Fields("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")...)
	out, err := runCommand(t, quickConfig(), "", args...)
	testutil.AssertNoError(t, err)

	blocks := strings.Split(strings.TrimSpace(out), "\n\n")
	last := blocks[len(blocks)-1]
	testutil.AssertContains(t, last, "Ra8#")
	testutil.AssertContains(t, last, "1-0")
	testutil.AssertContains(t, out, `[FEN "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"]`)
}

func TestRun_AutoStops(t *testing.T) {
	t.Run("insufficient material", func(t *testing.T) {
		args := append([]string{"auto", "10"}, strings.Fields("8/8/8/4k3/8/8/8/4K3 w - - 0 1")...)
		out, err := runCommand(t, quickConfig(), "", args...)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, strings.Count(out, `[Event "Self-play"]`), 1)
	})

	t.Run("ply limit", func(t *testing.T) {
		cfg := config.FromConfig(quickConfig()).WithMaxGamePlies(2).Build()
		out, err := runCommand(t, cfg, "", "auto", "5000")
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, strings.Count(out, `[Event "Self-play"]`), 3)
		testutil.AssertNotContains(t, out, " 2. ")
	})
}

func TestRun_AutoArgs(t *testing.T) {
	for _, args := range [][]string{
		{"auto"},
		{"auto", "soon"},
		{"auto", "0"},
		{"auto", "10", "bad", "fen"},
	} {
		if _, err := runCommand(t, quickConfig(), "", args...); err == nil {
			t.Errorf("run(%v) error = nil, want error", args)
		}
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	_, err := runCommand(t, quickConfig(), "", "fly")
	if err == nil {
		t.Fatal("run(fly) error = nil, want error")
	}
	testutil.AssertContains(t, err.Error(), `unknown command "fly"`)
}

func TestAutoStopReason(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name     string
		ctx      context.Context
		fen      string
		maxPlies int
		want     string
	}{
		{"playing", context.Background(), testutil.StartFEN, 400, ""},
		{"interrupted", cancelled, testutil.StartFEN, 400, "interrupted"},
		{"ply limit", context.Background(), testutil.StartFEN, 0, "ply limit"},
		{"75-move rule", context.Background(), "4k3/8/8/8/8/8/4P3/R3K3 w - - 150 100", 400, "75-move rule"},
		{"bare kings", context.Background(), "8/8/8/4k3/8/8/8/4K3 w - - 0 1", 400, "insufficient material"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := gameFromArgs(strings.Fields(tt.fen))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, autoStopReason(tt.ctx, g, tt.maxPlies), tt.want)
		})
	}
}
