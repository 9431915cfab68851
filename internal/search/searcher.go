// Package search finds the best move of a position with a time-bounded,
// iteratively deepened alpha-beta search.
//
// The searched game is borrowed exclusively for the length of a call and is
// returned in the state it was handed over in. Searches are cancelled
// cooperatively through an atomic flag that is polled at every node.
package search

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// Defaults used when no option overrides them.
const (
	DefaultMinDepth        = 5
	DefaultMaxDepth        = 64
	DefaultSortDepth       = 5
	DefaultMaxExtensionPly = 64
)

// Searcher holds the search settings. It keeps no per-search state, so one
// Searcher may run searches on several goroutines as long as each has its
// own game and, when WithStopFlag is used, they are meant to stop together.
type Searcher struct {
	minDepth        int
	maxDepth        int
	sortDepth       int
	maxExtensionPly int
	stop            *atomic.Bool
	logger          *zap.Logger
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithDepthLimits sets the first and last depth of iterative deepening.
func WithDepthLimits(minDepth, maxDepth int) Option {
	return func(s *Searcher) {
		if minDepth >= 1 && maxDepth >= minDepth {
			s.minDepth, s.maxDepth = minDepth, maxDepth
		}
	}
}

// WithSortDepth sets the depth from which moves are ordered by a shallow
// search instead of the cheap comparator. The shallow search runs that many
// plies less deep than the node.
func WithSortDepth(depth int) Option {
	return func(s *Searcher) {
		if depth >= 1 {
			s.sortDepth = depth
		}
	}
}

// WithMaxExtensionPly bounds how many plies beyond the root a node with a
// single legal move may still be searched without consuming depth.
func WithMaxExtensionPly(plies int) Option {
	return func(s *Searcher) {
		if plies >= 0 {
			s.maxExtensionPly = plies
		}
	}
}

// WithStopFlag makes the searcher poll an externally owned cancellation
// flag. Think stores true into it when the budget runs out; resetting it
// before the next search is the owner's job.
func WithStopFlag(flag *atomic.Bool) Option {
	return func(s *Searcher) {
		s.stop = flag
	}
}

// WithLogger sets the logger. Progress is logged at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Searcher) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Searcher.
func New(opts ...Option) *Searcher {
	s := &Searcher{
		minDepth:        DefaultMinDepth,
		maxDepth:        DefaultMaxDepth,
		sortDepth:       DefaultSortDepth,
		maxExtensionPly: DefaultMaxExtensionPly,
		logger:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromConfig creates a Searcher from the search section of the config.
// Options given afterwards override the configured values.
func FromConfig(cfg config.SearchConfig, opts ...Option) *Searcher {
	base := []Option{
		WithDepthLimits(cfg.MinDepth, cfg.MaxDepth),
		WithSortDepth(cfg.SortDepth),
		WithMaxExtensionPly(cfg.MaxExtensionPly),
	}
	return New(append(base, opts...)...)
}

// Result is the outcome of a single fixed-depth root search.
type Result struct {
	Move  chess.Move
	Found bool // False when the position has no legal move

	// Score is from the point of view of the side to move. Without legal
	// moves it is the terminal score; for a forced move it is 0.
	Score chess.Score

	// Forced is set when the root had exactly one legal move, which is
	// returned without searching.
	Forced bool

	Nodes uint64
}

// BestMove searches g to a fixed depth and returns the best root move. It
// polls the searcher's stop flag, if any, and returns errors.ErrSearchAborted
// when it is set. g is restored before BestMove returns.
func (s *Searcher) BestMove(g *engine.ChessGame, depth int) (Result, error) {
	stop := s.stop
	if stop == nil {
		stop = new(atomic.Bool)
	}
	return s.newRun(g, stop).bestMove(g, depth)
}

// newRun prepares the per-search state for a search rooted at g.
func (s *Searcher) newRun(g *engine.ChessGame, stop *atomic.Bool) *run {
	return &run{
		stop:            stop,
		sortDepth:       s.sortDepth,
		maxExtensionPly: s.maxExtensionPly,
		rootLen:         g.Len(),
	}
}
