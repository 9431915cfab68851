package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Evaluator scores a single piece standing on a single square, positive
// for White. The evaluation of a position is the sum over its pieces, which
// is what lets ChessGame maintain it incrementally on every move.
type Evaluator interface {
	PieceScore(p chess.Piece, pos chess.Position) chess.Score
}

// pieceValues is the material value of each piece type in centipawns.
// Kings are always on the board, so their value would only shift every
// score by a constant.
var pieceValues = [chess.NumPieceTypes]chess.Score{
	chess.Pawn:   100,
	chess.Knight: 320,
	chess.Bishop: 330,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   0,
}

// PieceValue returns the material value of a piece type.
func PieceValue(pt chess.PieceType) chess.Score {
	if pt >= chess.NumPieceTypes {
		return 0
	}
	return pieceValues[pt]
}

// MaterialEvaluator counts material only.
type MaterialEvaluator struct{}

// PieceScore implements Evaluator.
func (MaterialEvaluator) PieceScore(p chess.Piece, _ chess.Position) chess.Score {
	if p == chess.NoPiece {
		return 0
	}
	return PieceValue(p.Type()) * p.Colour().Sign()
}

// PieceSquareEvaluator adds a bonus per square on top of material.
type PieceSquareEvaluator struct{}

// DefaultEvaluator returns the evaluator games use unless told otherwise.
func DefaultEvaluator() Evaluator {
	return PieceSquareEvaluator{}
}

// PieceScore implements Evaluator.
func (PieceSquareEvaluator) PieceScore(p chess.Piece, pos chess.Position) chess.Score {
	if p == chess.NoPiece {
		return 0
	}
	pt := p.Type()
	// Tables are written from White's side with a1 in the bottom left.
	// Black reads them mirrored.
	sq := pos
	if p.Colour() == chess.Black {
		sq = pos.Mirror()
	}
	s := pieceValues[pt] + pieceSquareTables[pt][tableIndex(sq)]
	return s * p.Colour().Sign()
}

// tableIndex converts a square to an index into a table laid out the way
// it is read: rank 8 first.
func tableIndex(pos chess.Position) int {
	return (7-pos.Rank())*chess.BoardSize + pos.File()
}

var pieceSquareTables = [chess.NumPieceTypes][chess.NumSquares]chess.Score{
	chess.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	chess.Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	chess.Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	chess.Rook: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	},
	chess.Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	chess.King: {
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	},
}
