package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Only success paths are exercised; a failing assertion would fail this test.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42)
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
}

func TestAssertEqual_WithOptions(t *testing.T) {
	type hidden struct{ n int }
	AssertEqual(t, hidden{n: 1}, hidden{n: 1}, cmp.AllowUnexported(hidden{}))
}

func TestAssertErrorIs_Success(t *testing.T) {
	base := errors.New("base")
	AssertErrorIs(t, base, base)
	AssertErrorIs(t, fmt.Errorf("context: %w", base), base)
}

func TestAssertNoError_Success(t *testing.T) {
	AssertNoError(t, nil)
	AssertNoError(t, nil, "operation %s", "should succeed")
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "hello world", "world")
	AssertNotContains(t, "hello world", "foo")
	AssertTrue(t, len("hello") == 5)
}

func TestLines(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []string
	}{
		{"empty", "", nil},
		{"single", "uciok\n", []string{"uciok"}},
		{"blank lines dropped", "a\n\n  b  \n", []string{"a", "b"}},
		{"crlf", "readyok\r\nbestmove e2e4\r\n", []string{"readyok", "bestmove e2e4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			AssertEqual(t, Lines(tt.output), tt.want)
		})
	}
}

func TestLinesWithPrefix(t *testing.T) {
	out := "info depth 5\ninfo score cp 12\ninfo depth 6\nbestmove e2e4\n"
	AssertEqual(t, LinesWithPrefix(out, "info depth"), []string{"info depth 5", "info depth 6"})
	AssertEqual(t, LinesWithPrefix(out, "uciok"), []string(nil))
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want string
	}{
		{"no args", nil, ""},
		{"single string", []any{"hello"}, "hello"},
		{"single int", []any{42}, "42"},
		{"format string", []any{"hello %s", "world"}, "hello world"},
		{"format multiple", []any{"%s %d %s", "test", 42, "end"}, "test 42 end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestPerftCases(t *testing.T) {
	for _, c := range PerftCases() {
		AssertTrue(t, c.FEN != "" && len(c.Counts) > 0, "case %s", c.Name)
	}
}
