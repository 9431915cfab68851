package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// MoveKind tags the variant held by a Move.
type MoveKind uint8

const (
	// Normal covers quiet moves, captures, en passant and castling. Castling
	// is the king's two-file move; en passant carries the captured pawn even
	// though the destination square is empty.
	Normal MoveKind = iota
	// Promotion is a pawn reaching the last rank, optionally capturing.
	Promotion
)

// Move describes one ply. It is a small comparable value and is never
// mutated after generation.
type Move struct {
	Kind MoveKind

	// The piece being moved (the pawn, for promotions).
	Piece Piece

	From Position
	To   Position

	// The piece captured, NoPiece for quiet moves.
	Captured Piece

	// The piece type promoted to; NoPieceType unless Kind == Promotion.
	Promote PieceType
}

// IsCapture returns true if this move captures a piece.
func (m Move) IsCapture() bool {
	return m.Captured != NoPiece
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Kind == Promotion
}

// IsCastle returns true if this is the king's two-file castling move.
func (m Move) IsCastle() bool {
	if m.Piece.Type() != King {
		return false
	}
	df := m.To.File() - m.From.File()
	return df == 2 || df == -2
}

// String returns the move in coordinate notation: start square, end square
// and an optional lower case promotion letter, e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	var sb strings.Builder
	sb.Grow(5)
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.Kind == Promotion {
		sb.WriteByte(m.Promote.Letter() + ('a' - 'A'))
	}
	return sb.String()
}

// Notation is the syntactic content of a coordinate notation move string.
type Notation struct {
	From    Position
	To      Position
	Promote PieceType
}

// ParseNotation parses a 4 or 5 character coordinate notation string. It
// checks syntax only; matching against legal moves is the game's job.
func ParseNotation(s string) (Notation, error) {
	if len(s) != 4 && len(s) != 5 {
		return Notation{}, fmt.Errorf("move %q: bad length: %w", s, errors.ErrInvalidNotation)
	}
	from, err := ParsePosition(s[0:2])
	if err != nil {
		return Notation{}, fmt.Errorf("move %q: %w", s, err)
	}
	to, err := ParsePosition(s[2:4])
	if err != nil {
		return Notation{}, fmt.Errorf("move %q: %w", s, err)
	}
	n := Notation{From: from, To: to}
	if len(s) == 5 {
		switch pt := PieceTypeFromLetter(s[4]); pt {
		case Knight, Bishop, Rook, Queen:
			n.Promote = pt
		default:
			return Notation{}, fmt.Errorf("move %q: bad promotion piece: %w", s, errors.ErrInvalidNotation)
		}
	}
	return n, nil
}

// Matches reports whether m is the move described by n.
func (n Notation) Matches(m Move) bool {
	if m.From != n.From || m.To != n.To {
		return false
	}
	if m.Kind == Promotion {
		return m.Promote == n.Promote
	}
	return n.Promote == NoPieceType
}
