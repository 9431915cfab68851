// Package uci speaks the Universal Chess Interface over a line oriented
// stream. It keeps one game per session and answers "go" with the move the
// searcher finds in the time budget.
package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

const (
	// maxLineBytes bounds one command line. Longer lines are discarded
	// whole; a full 400 ply move list needs about 2 KiB.
	maxLineBytes = 1 << 20

	readBufferSize = 64 << 10
)

// Session is one conversation with a GUI. It is not safe for concurrent
// use; Run processes commands one at a time.
type Session struct {
	cfg    *config.Config
	in     io.Reader
	out    io.Writer
	logger *zap.Logger
	game   *engine.ChessGame

	// writeErr is the first error writing to out.
	writeErr error
}

// NewSession creates a session starting from the initial position. A nil
// logger discards the logs.
func NewSession(cfg *config.Config, in io.Reader, out io.Writer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		cfg:    cfg,
		in:     in,
		out:    out,
		logger: logger,
		game:   engine.NewGame(),
	}
}

// Game returns the session's current game. The session keeps using it, so
// callers must not modify it.
func (s *Session) Game() *engine.ChessGame {
	return s.game
}

// Run reads commands until "quit", the end of the input or the
// cancellation of ctx. It returns nil on quit and at the end of the input.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("uci session started",
		zap.String("engine", s.cfg.Engine.Name),
		zap.Duration("movetime", s.cfg.Search.MoveTime()),
	)

	r := bufio.NewReaderSize(s.in, readBufferSize)
	for {
		line, dropped, err := readLine(r, maxLineBytes)
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read commands: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if dropped {
			s.logger.Warn("line too long, dropped", zap.Int("limit", maxLineBytes))
			continue
		}
		s.logger.Debug("command", zap.String("line", line))
		if quit := s.handleLine(ctx, line); quit {
			s.logger.Info("uci session ended")
			return s.writeErr
		}
		if s.writeErr != nil {
			return s.writeErr
		}
	}
	s.logger.Info("uci session ended", zap.String("reason", "end of input"))
	return s.writeErr
}

// readLine returns the next line without its terminator. A line longer
// than limit is consumed up to its end and reported as dropped instead.
// io.EOF is only returned when no more lines remain.
func readLine(r *bufio.Reader, limit int) (line string, dropped bool, err error) {
	var buf []byte
	started := false
	for {
		chunk, more, err := r.ReadLine()
		if err != nil {
			if err == io.EOF && started {
				return string(buf), dropped, nil
			}
			return "", false, err
		}
		started = true
		if !dropped {
			if len(buf)+len(chunk) > limit {
				dropped, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !more {
			return string(buf), dropped, nil
		}
	}
}

// handleLine runs the commands of one input line and reports whether the
// session should end. Tokens that are not commands are skipped, so a line
// may carry leading noise.
func (s *Session) handleLine(ctx context.Context, line string) bool {
	tokens := strings.Fields(line)
	for i := 0; i < len(tokens); i++ {
		switch tokens[i] {
		case "uci":
			s.handleUCI()
			return false
		case "isready":
			s.send("readyok")
			return false
		case "ucinewgame":
			s.game = engine.NewGame()
			return false
		case "position":
			s.handlePosition(tokens[i+1:])
			return false
		case "go":
			s.handleGo(ctx, tokens[i+1:])
			return false
		case "setoption", "register", "debug", "stop", "ponderhit":
			// Accepted and ignored; their arguments must not be read as commands.
			return false
		case "quit":
			return true
		}
	}
	return false
}

// send writes one protocol line. Only the first write error is kept.
func (s *Session) send(format string, args ...any) {
	if s.writeErr != nil {
		return
	}
	if _, err := fmt.Fprintf(s.out, format+"\n", args...); err != nil {
		s.writeErr = fmt.Errorf("write response: %w", err)
		s.logger.Error("write failed", zap.Error(err))
	}
}
