// Package hashing provides Zobrist position keys and a position counter used
// to detect repetitions.
package hashing

import "github.com/lgbarn/chess-engine-go/internal/chess"

// numPieceCodes covers every coloured Piece value.
const numPieceCodes = (int(chess.King)<<1 | 1) + 1

var (
	pieceKeys    [numPieceCodes][chess.NumSquares]uint64
	whiteKey     uint64
	castlingKeys [16]uint64
	epFileKeys   [chess.BoardSize]uint64
)

func init() {
	// Fixed seed so keys, and anything derived from them, are reproducible.
	state := uint64(0x9E3779B97F4A7C15)
	for p := range pieceKeys {
		for sq := range pieceKeys[p] {
			pieceKeys[p][sq] = splitmix64(&state)
		}
	}
	whiteKey = splitmix64(&state)
	for i := range castlingKeys {
		castlingKeys[i] = splitmix64(&state)
	}
	for i := range epFileKeys {
		epFileKeys[i] = splitmix64(&state)
	}
}

// splitmix64 advances state and returns the next pseudo random value.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Hash returns the Zobrist key of a position: the board, the side to move,
// the castling rights and the en passant file. Positions that compare equal
// under the repetition rules get equal keys.
func Hash(board *[chess.NumSquares]chess.Piece, toMove chess.Colour, castling chess.CastlingRights, enPassant chess.Position) uint64 {
	var h uint64
	for sq, p := range board {
		if p != chess.NoPiece {
			h ^= pieceKeys[p][sq]
		}
	}
	if toMove == chess.White {
		h ^= whiteKey
	}
	h ^= castlingKeys[castling&0xF]
	if enPassant != chess.NoPosition {
		h ^= epFileKeys[enPassant.File()]
	}
	return h
}
