package chess

// CastlingRights is a set of the four castling options.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

const (
	NoCastling  CastlingRights = 0
	AllCastling CastlingRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether every right in r is present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// Kingside returns the kingside right of a colour.
func Kingside(colour Colour) CastlingRights {
	if colour == White {
		return WhiteKingside
	}
	return BlackKingside
}

// Queenside returns the queenside right of a colour.
func Queenside(colour Colour) CastlingRights {
	if colour == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// String returns the FEN castling field.
func (c CastlingRights) String() string {
	if c == NoCastling {
		return "-"
	}
	var b []byte
	if c.Has(WhiteKingside) {
		b = append(b, 'K')
	}
	if c.Has(WhiteQueenside) {
		b = append(b, 'Q')
	}
	if c.Has(BlackKingside) {
		b = append(b, 'k')
	}
	if c.Has(BlackQueenside) {
		b = append(b, 'q')
	}
	return string(b)
}

// castlingMask[sq] is ANDed into the rights whenever a move starts or ends
// on sq, so king and rook moves and rook captures drop the right they touch.
var castlingMask = func() [NumSquares]CastlingRights {
	var m [NumSquares]CastlingRights
	for i := range m {
		m[i] = AllCastling
	}
	m[E1] &^= WhiteKingside | WhiteQueenside
	m[H1] &^= WhiteKingside
	m[A1] &^= WhiteQueenside
	m[E8] &^= BlackKingside | BlackQueenside
	m[H8] &^= BlackKingside
	m[A8] &^= BlackQueenside
	return m
}()

// Update returns the rights left after a move from one square to another.
func (c CastlingRights) Update(from, to Position) CastlingRights {
	return c & castlingMask[from] & castlingMask[to]
}

// GameState is the side information of a position that a move cannot
// reconstruct when it is undone. One snapshot is stored per ply pushed.
type GameState struct {
	Castling CastlingRights

	// The square a pawn skipped over on the previous two-step push, or
	// NoPosition.
	EnPassant Position

	// Destination square of the previous move, or NoPosition. Used to spot
	// recaptures during move ordering.
	LastTo Position

	// Half-moves since the last capture or pawn move.
	Halfmove uint16
}
