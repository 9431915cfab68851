// Package errors holds the engine's sentinel errors and the error types that
// carry parsing and move-replay context. Match them with Is and As.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidFEN marks a position string that could not be parsed.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidNotation marks a move or square string with bad syntax.
	ErrInvalidNotation = errors.New("invalid move notation")

	// ErrIllegalMove marks a well-formed move the position does not allow.
	ErrIllegalMove = errors.New("illegal move")

	// ErrSearchAborted is returned when the stop flag ends a search early.
	// Running out of time produces it routinely.
	ErrSearchAborted = errors.New("search aborted")

	// ErrInvalidConfig marks configuration that failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError reports which move of a replayed list was rejected.
type MoveError struct {
	Err      error  // Cause, usually ErrInvalidNotation or ErrIllegalMove
	PlyNum   int    // 1-based index in the list, 0 when unknown
	MoveText string // Move as given by the caller
}

func (e *MoveError) Error() string {
	var ctx []string
	if e.PlyNum > 0 {
		ctx = append(ctx, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		ctx = append(ctx, fmt.Sprintf("move %q", e.MoveText))
	}
	return describe(strings.Join(ctx, ", "), e.Err, "move error")
}

func (e *MoveError) Unwrap() error { return e.Err }

// ParseError locates a parse failure inside structured input such as a FEN
// record.
type ParseError struct {
	Err      error
	Source   string // Input kind or file name, e.g. "FEN"
	Field    string // Failing field
	Expected string
	Got      string
}

func (e *ParseError) Error() string {
	var ctx []string
	if loc := strings.TrimSpace(e.Source + " " + e.Field); loc != "" {
		ctx = append(ctx, loc)
	}
	switch {
	case e.Expected != "" && e.Got != "":
		ctx = append(ctx, "expected "+e.Expected+", got "+e.Got)
	case e.Expected != "":
		ctx = append(ctx, "expected "+e.Expected)
	case e.Got != "":
		ctx = append(ctx, "unexpected "+e.Got)
	}
	return describe(strings.Join(ctx, ": "), e.Err, "parse error")
}

func (e *ParseError) Unwrap() error { return e.Err }

// describe joins a context prefix with the cause, falling back to fallback
// when both are empty.
func describe(ctx string, cause error, fallback string) string {
	switch {
	case ctx != "" && cause != nil:
		return ctx + ": " + cause.Error()
	case ctx != "":
		return ctx
	case cause != nil:
		return cause.Error()
	default:
		return fallback
	}
}

// Wrap prefixes err with context. It returns nil for a nil err.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf is Wrap with a formatted context.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is is errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
