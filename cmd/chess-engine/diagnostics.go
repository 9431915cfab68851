// diagnostics.go - Perft, benchmark and self-play subcommands
package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/perft"
	"github.com/lgbarn/chess-engine-go/internal/pgn"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// defaultDiagnosticDepth is used when a subcommand is given no depth.
const defaultDiagnosticDepth = 7

// benchPositions are searched by the bench command. Besides the start
// position they are the usual perft suite positions and a quiet middlegame.
var benchPositions = []string{
	engine.InitialFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
}

// parseDepth reads an optional positive depth argument.
func parseDepth(args []string) (int, error) {
	if len(args) == 0 {
		return defaultDiagnosticDepth, nil
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 {
		return 0, fmt.Errorf("depth %q: want a positive number", args[0])
	}
	return depth, nil
}

// gameFromArgs builds a game from a FEN spread over args, or the start
// position when args is empty.
func gameFromArgs(args []string) (*engine.ChessGame, error) {
	if len(args) == 0 {
		return engine.NewGame(), nil
	}
	return engine.NewGameFromFEN(strings.Join(args, " "))
}

// runPerft prints the leaf count of the start position.
func runPerft(out io.Writer, args []string) error {
	depth, err := parseDepth(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, perft.Count(engine.NewGame(), depth))
	return nil
}

// runDivide prints the leaf count below every root move and the total.
func runDivide(ctx context.Context, cfg *config.Config, out io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("divide: missing depth")
	}
	depth, err := parseDepth(args[:1])
	if err != nil {
		return err
	}
	g, err := gameFromArgs(args[1:])
	if err != nil {
		return err
	}

	entries, total, err := perft.Divide(ctx, g, depth, cfg.Search.DivideWorkers)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s: %d\n", e.Move, e.Nodes)
	}
	fmt.Fprintf(out, "\nNodes searched: %d\n", total)
	return nil
}

// runBench searches every bench position at each depth from 3 up to the
// requested depth.
func runBench(cfg *config.Config, out io.Writer, args []string, logger *zap.Logger) error {
	depth, err := parseDepth(args)
	if err != nil {
		return err
	}
	searcher := search.FromConfig(cfg.Search, search.WithLogger(logger))

	start := time.Now()
	var nodes uint64
	for i, fen := range benchPositions {
		g, err := engine.NewGameFromFEN(fen)
		if err != nil {
			return fmt.Errorf("bench position %d: %w", i+1, err)
		}
		for d := 3; d <= depth; d++ {
			res, elapsed, err := timedBestMove(searcher, g, d)
			if err != nil {
				return err
			}
			nodes += res.Nodes
			fmt.Fprintf(out, "position %d depth %d bestmove %s score %d nodes %d time %d\n",
				i+1, d, res.Move, res.Score, res.Nodes, elapsed.Milliseconds())
		}
	}

	elapsed := time.Since(start)
	fmt.Fprintf(out, "\nNodes searched: %d\nTime: %d ms\n", nodes, elapsed.Milliseconds())
	logger.Info("bench finished",
		zap.Int("depth", depth),
		zap.Uint64("nodes", nodes),
		zap.Duration("elapsed", elapsed),
	)
	return nil
}

// runTestStart searches the start position once at a fixed depth.
func runTestStart(cfg *config.Config, out io.Writer, args []string, logger *zap.Logger) error {
	depth, err := parseDepth(args)
	if err != nil {
		return err
	}
	searcher := search.FromConfig(cfg.Search, search.WithLogger(logger))
	res, elapsed, err := timedBestMove(searcher, engine.NewGame(), depth)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "depth %d bestmove %s score %d nodes %d time %d\n",
		depth, res.Move, res.Score, res.Nodes, elapsed.Milliseconds())
	return nil
}

func timedBestMove(s *search.Searcher, g *engine.ChessGame, depth int) (search.Result, time.Duration, error) {
	start := time.Now()
	res, err := s.BestMove(g, depth)
	return res, time.Since(start), err
}

// runAuto lets the engine play itself with a fixed time per move. The game
// so far is printed as PGN before every move. Play ends when the side to
// move has no legal move, an automatic draw rule applies, the ply limit is
// reached or ctx is cancelled.
func runAuto(ctx context.Context, cfg *config.Config, out io.Writer, args []string, logger *zap.Logger) error {
	if len(args) == 0 {
		return fmt.Errorf("auto: missing time per move")
	}
	ms, err := strconv.Atoi(args[0])
	if err != nil || ms < 1 {
		return fmt.Errorf("auto: time per move %q: want a positive number of milliseconds", args[0])
	}
	budget := time.Duration(ms) * time.Millisecond

	g, err := gameFromArgs(args[1:])
	if err != nil {
		return err
	}
	tags := map[string]string{
		"Event": "Self-play",
		"White": "chess-engine-go " + programVersion,
		"Black": "chess-engine-go " + programVersion,
	}
	searcher := search.FromConfig(cfg.Search, search.WithLogger(logger))

	for {
		text, err := pgn.FromGame(g, tags)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n\n", text)

		if reason := autoStopReason(ctx, g, cfg.Search.MaxGamePlies); reason != "" {
			logger.Info("self-play finished", zap.String("reason", reason), zap.Int("plies", g.Len()))
			return nil
		}

		outcome := searcher.Think(ctx, g, budget, nil)
		if !outcome.Found {
			logger.Info("self-play finished", zap.String("reason", "no legal move"), zap.Int("plies", g.Len()))
			return nil
		}
		if err := g.PushHistory(outcome.Move); err != nil {
			return err
		}
		logger.Debug("self-play move",
			zap.Int("ply", g.Len()),
			zap.String("move", outcome.Move.String()),
			zap.Int("depth", outcome.Depth),
			zap.Int32("score", int32(outcome.Score)),
		)
	}
}

// autoStopReason reports why self-play should end before the next search,
// or "" to keep playing.
func autoStopReason(ctx context.Context, g *engine.ChessGame, maxPlies int) string {
	switch rules := g.AnalyzeDrawRules(); {
	case ctx.Err() != nil:
		return "interrupted"
	case g.Len() >= maxPlies:
		return "ply limit"
	case rules.Has75MoveRule:
		return "75-move rule"
	case rules.Has5FoldRepetition:
		return "fivefold repetition"
	case rules.HasInsufficientMaterial:
		return "insufficient material"
	default:
		return ""
	}
}
