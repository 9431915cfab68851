package pgn

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		startFEN string
		moves    []string
		want     []string
	}{
		{
			name:  "opening",
			moves: []string{"e2e4", "e7e5", "g1f3"},
			want:  []string{"1. e4 e5 2. Nf3"},
		},
		{
			name:     "explicit start position",
			startFEN: engine.InitialFEN,
			moves:    []string{"d2d4"},
			want:     []string{"1. d4"},
		},
		{
			name:  "checkmate",
			moves: []string{"f2f3", "e7e5", "g2g4", "d8h4"},
			want:  []string{"Qh4#", "0-1"},
		},
		{
			name:  "castling",
			moves: []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6", "e1g1"},
			want:  []string{"4. O-O"},
		},
		{
			name:     "from FEN",
			startFEN: "4k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			moves:    []string{"a7a8q"},
			want:     []string{`[SetUp "1"]`, `[FEN "4k3/P7/8/8/8/8/8/4K3 w - - 0 1"]`, "a8=Q+"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.startFEN, tt.moves, nil)
			testutil.AssertNoError(t, err)
			for _, w := range tt.want {
				testutil.AssertContains(t, got, w)
			}
		})
	}
}

func TestRender_Tags(t *testing.T) {
	got, err := Render("", nil, map[string]string{"White": "engine", "Black": "engine"})
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, got, `[White "engine"]`)
	testutil.AssertContains(t, got, `[Black "engine"]`)
	testutil.AssertNotContains(t, got, "SetUp")
	testutil.AssertContains(t, got, `[Site "?"]`)
	testutil.AssertContains(t, got, `[Date "????.??.??"]`)
	testutil.AssertContains(t, got, `[Result "*"]`)
}

func TestRender_ResultFollowsGame(t *testing.T) {
	got, err := Render("", []string{"f2f3", "e7e5", "g2g4", "d8h4"}, map[string]string{"Result": "1-0"})
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, got, `[Result "0-1"]`)
}

func TestWithRoster(t *testing.T) {
	tags := map[string]string{"White": "engine", "Annotator": "me"}
	got := withRoster(tags)

	for _, tag := range SevenTagRoster[:6] {
		if _, ok := got[tag]; !ok {
			t.Errorf("roster tag %s missing", tag)
		}
	}
	testutil.AssertEqual(t, got["White"], "engine")
	testutil.AssertEqual(t, got["Black"], "?")
	testutil.AssertEqual(t, got["Annotator"], "me")
	testutil.AssertEqual(t, len(tags), 2)
}
