package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func TestParseMove_RoundTrip(t *testing.T) {
	for _, fen := range testutil.SuiteFENs() {
		g := mustGame(t, fen)
		for _, m := range g.GetMoves(false) {
			got, err := g.ParseMove(m.String())
			if err != nil {
				t.Fatalf("%s: ParseMove(%q) failed: %v", fen, m, err)
			}
			if got != m {
				t.Errorf("%s: ParseMove(%q) = %+v, want %+v", fen, m, got, m)
			}
		}
	}
}

func TestParseMove_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		move    string
		wantErr error
	}{
		{"empty", InitialFEN, "", errors.ErrInvalidNotation},
		{"too short", InitialFEN, "e2e", errors.ErrInvalidNotation},
		{"off board", InitialFEN, "e2e9", errors.ErrInvalidNotation},
		{"bad promotion letter", InitialFEN, "e2e4k", errors.ErrInvalidNotation},
		{"not legal", InitialFEN, "e2e5", errors.ErrIllegalMove},
		{"wrong side", InitialFEN, "e7e5", errors.ErrIllegalMove},
		{"missing promotion", "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1", "b7b8", errors.ErrIllegalMove},
		{"promotion on quiet move", InitialFEN, "e2e4q", errors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGame(t, tt.fen)
			_, err := g.ParseMove(tt.move)
			testutil.AssertErrorIs(t, err, tt.wantErr)
		})
	}
}
