package chess

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	rankBase = '1'
	fileBase = 'a'
)

// Position is a square on the board, numbered a1 = 0, b1 = 1, ..., h8 = 63.
type Position uint8

// NoPosition is the "no square" sentinel (e.g. no en-passant target).
const NoPosition Position = NumSquares

// Named squares used by castling and tests.
const (
	A1 Position = 0
	B1 Position = 1
	C1 Position = 2
	D1 Position = 3
	E1 Position = 4
	F1 Position = 5
	G1 Position = 6
	H1 Position = 7
	A8 Position = 56
	B8 Position = 57
	C8 Position = 58
	D8 Position = 59
	E8 Position = 60
	F8 Position = 61
	G8 Position = 62
	H8 Position = 63
)

// NewPosition builds a position from zero-based file and rank.
func NewPosition(file, rank int) Position {
	return Position(rank*BoardSize + file)
}

// File returns the zero-based file (0 = a).
func (p Position) File() int {
	return int(p) % BoardSize
}

// Rank returns the zero-based rank (0 = rank 1).
func (p Position) Rank() int {
	return int(p) / BoardSize
}

// IsValid reports whether p is on the board.
func (p Position) IsValid() bool {
	return p < NoPosition
}

// Offset returns the square df files and dr ranks away, and false when
// that square is off the board.
func (p Position) Offset(df, dr int) (Position, bool) {
	f := p.File() + df
	r := p.Rank() + dr
	if f < 0 || f >= BoardSize || r < 0 || r >= BoardSize {
		return NoPosition, false
	}
	return NewPosition(f, r), true
}

// Mirror returns the square reflected across the middle of the board
// (a1 <-> a8). Used to share piece-square tables between colours.
func (p Position) Mirror() Position {
	return p ^ 56
}

// String returns the square in coordinate notation, e.g. "e4".
func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return string([]byte{byte(fileBase + p.File()), byte(rankBase + p.Rank())})
}

// ParsePosition parses a two character square such as "e4".
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return NoPosition, fmt.Errorf("square %q: %w", s, errors.ErrInvalidNotation)
	}
	f := int(s[0]) - fileBase
	r := int(s[1]) - rankBase
	if f < 0 || f >= BoardSize || r < 0 || r >= BoardSize {
		return NoPosition, fmt.Errorf("square %q: %w", s, errors.ErrInvalidNotation)
	}
	return NewPosition(f, r), nil
}
