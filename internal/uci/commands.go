package uci

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// nullMove is sent as the best move of a position without legal moves.
const nullMove = "0000"

func (s *Session) handleUCI() {
	s.send("id name %s", s.cfg.Engine.Name)
	s.send("id author %s", s.cfg.Engine.Author)
	s.send("uciok")
}

// handlePosition handles "position startpos [moves ...]" and
// "position fen <fen> [moves ...]". A FEN that does not parse leaves the
// current game untouched. Moves are applied one by one; the first one that
// is malformed or illegal, and everything after it, is dropped.
func (s *Session) handlePosition(args []string) {
	if len(args) == 0 {
		s.logger.Warn("position without arguments")
		return
	}

	var moves []string
	switch args[0] {
	case "startpos":
		s.game = engine.NewGame()
		moves = movesAfter(args[1:])
	case "fen":
		fenFields, rest := splitAt(args[1:], "moves")
		fen := strings.Join(fenFields, " ")
		g, err := engine.NewGameFromFEN(fen)
		if err != nil {
			s.logger.Warn("position rejected", zap.String("fen", fen), zap.Error(err))
			return
		}
		s.game = g
		moves = movesAfter(rest)
	default:
		s.logger.Warn("unknown position form", zap.String("form", args[0]))
		return
	}

	if err := s.applyMoves(moves); err != nil {
		s.logger.Warn("move list rejected", zap.Error(err), zap.Int("plies", s.game.Len()))
	}
	s.logger.Debug("position set",
		zap.String("start_fen", s.game.StartFEN()),
		zap.String("moves", moveString(s.game.Moves())),
	)
}

// applyMoves plays moves on the session game until one fails or the game
// reaches the ply limit.
func (s *Session) applyMoves(moves []string) error {
	limit := s.cfg.Search.MaxGamePlies
	for i, text := range moves {
		if s.game.Len() >= limit {
			s.logger.Warn("ply limit reached", zap.Int("limit", limit), zap.Int("dropped", len(moves)-i))
			return nil
		}
		m, err := s.game.ParseMove(text)
		if err != nil {
			return &errors.MoveError{Err: err, PlyNum: i + 1, MoveText: text}
		}
		s.game.Push(m)
	}
	return nil
}

// handleGo searches the session game and commits the move it sends.
// "movetime <ms>" sets the budget; other search limits are ignored.
func (s *Session) handleGo(ctx context.Context, args []string) {
	budget := s.cfg.Search.MoveTime()
	if ms, ok := goMoveTime(args); ok {
		budget = time.Duration(ms) * time.Millisecond
	}

	logger := s.logger.With(zap.String("search_id", uuid.NewString()))
	logger.Debug("search started",
		zap.String("fen", s.game.FEN()),
		zap.Duration("budget", budget),
	)

	searcher := search.FromConfig(s.cfg.Search, search.WithLogger(logger))
	out := searcher.Think(ctx, s.game, budget, func(info search.Info) {
		s.send("info depth %d", info.Depth)
		s.send("info score cp %d", info.Score)
	})

	if !out.Found {
		logger.Info("no legal move", zap.Int32("score", int32(out.Score)))
		s.send("bestmove %s", nullMove)
		return
	}

	logger.Info("search finished",
		zap.String("move", out.Move.String()),
		zap.Int("depth", out.Depth),
		zap.Int32("score", int32(out.Score)),
		zap.Bool("forced", out.Forced),
		zap.Bool("fallback", out.Fallback),
		zap.Uint64("nodes", out.Nodes),
		zap.Duration("elapsed", out.Elapsed),
	)
	s.send("bestmove %s", out.Move)
	if err := s.game.PushHistory(out.Move); err != nil {
		logger.Error("commit best move", zap.Error(err))
	}
}

// goMoveTime finds a positive "movetime <ms>" pair among the go arguments.
func goMoveTime(args []string) (int, bool) {
	for i := 0; i+1 < len(args); i++ {
		if args[i] != "movetime" {
			continue
		}
		ms, err := strconv.Atoi(args[i+1])
		if err != nil || ms <= 0 {
			return 0, false
		}
		return ms, true
	}
	return 0, false
}

// movesAfter returns the tokens following a leading "moves" keyword.
func movesAfter(args []string) []string {
	if len(args) == 0 || args[0] != "moves" {
		return nil
	}
	return args[1:]
}

// splitAt splits args before the first occurrence of sep.
func splitAt(args []string, sep string) (before, from []string) {
	for i, a := range args {
		if a == sep {
			return args[:i], args[i:]
		}
	}
	return args, nil
}

// moveString renders a move list in coordinate notation.
func moveString(moves []chess.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
