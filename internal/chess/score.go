package chess

import "math"

// Score is a signed evaluation in centipawns.
type Score int32

// ScoreMax and ScoreMin are reserved sentinels. They are symmetric so that
// negating any score inside the range never overflows.
const (
	ScoreMax Score = math.MaxInt32
	ScoreMin Score = -ScoreMax
)

// mateBase keeps mate scores clear of the ScoreMin sentinel itself.
const mateBase = 100

// mateMargin is how close to a sentinel a score must be to count as a mate.
const mateMargin = 1000

// MateScore is the score of the side to move being checkmated after ply
// half-moves. Later mates score higher, so the winning side prefers the
// shortest mate and the losing side the longest defence.
func MateScore(ply int) Score {
	return ScoreMin + mateBase + Score(ply)
}

// IsMateScore reports whether s encodes a forced mate for either side.
func IsMateScore(s Score) bool {
	return s > ScoreMax-mateMargin || s < ScoreMin+mateMargin
}

// IsWinningMate reports whether s is a forced mate for the side it is
// relative to.
func IsWinningMate(s Score) bool {
	return s > ScoreMax-mateMargin
}
