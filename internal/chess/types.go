// Package chess provides the value types shared by the engine: colours,
// pieces, board positions, moves, game state snapshots and scores.
package chess

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	return c ^ 1
}

// Sign returns +1 for White and -1 for Black. Multiplying a White-relative
// score by the sign of the side to move gives the mover's view of it.
func (c Colour) Sign() Score {
	if c == White {
		return 1
	}
	return -1
}

// Forward returns the rank direction pawns of this colour move in.
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// PieceType identifies a kind of piece. The declaration order is the
// order used by move ordering: pawn is the cheapest, king the dearest.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (pt PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(pt) < len(names) {
		return names[pt]
	}
	return "Unknown"
}

// Letter returns the upper case letter of a piece type.
func (pt PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(pt) < len(letters) {
		return letters[pt]
	}
	return '?'
}

// PieceTypeFromLetter converts a FEN or notation letter of either case to a
// piece type. NoPieceType is returned for anything else.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPieceType
	}
}

// Piece is a coloured piece packed into one byte. The zero value is NoPiece,
// an empty square.
type Piece uint8

// NoPiece marks an empty square or the absence of a captured piece.
const NoPiece Piece = 0

// pieceShift leaves the low bit for the colour.
const pieceShift = 1

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, pt PieceType) Piece {
	return Piece(uint8(pt)<<pieceShift | uint8(colour))
}

// Type extracts the piece type.
func (p Piece) Type() PieceType {
	return PieceType(p >> pieceShift)
}

// Colour extracts the colour. Meaningless for NoPiece.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// Letter returns the FEN letter: upper case for White, lower case for Black.
func (p Piece) Letter() byte {
	if p == NoPiece {
		return '.'
	}
	l := p.Type().Letter()
	if p.Colour() == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p == NoPiece {
		return "None"
	}
	return p.Colour().String() + " " + p.Type().String()
}
