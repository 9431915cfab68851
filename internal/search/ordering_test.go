package search

import (
	"slices"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func moveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

func mustMoveFrom(t *testing.T, g *engine.ChessGame, s string) chess.Move {
	t.Helper()
	m, err := g.ParseMove(s)
	testutil.AssertNoError(t, err, "ParseMove(%q)", s)
	return m
}

func captures(moves []chess.Move) []string {
	var out []string
	for _, m := range moves {
		if m.IsCapture() && !m.IsPromotion() {
			out = append(out, m.String())
		}
	}
	return out
}

func TestOrderMoves_Promotions(t *testing.T) {
	g := mustGame(t, "1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	moves := g.GetMoves(false)
	orderMoves(g, moves)

	want := []string{"a7b8q", "a7a8q", "a7b8r", "a7a8r", "a7b8b", "a7a8b", "a7b8n", "a7a8n"}
	testutil.AssertEqual(t, moveStrings(moves[:len(want)]), want)
}

func TestOrderMoves_Captures(t *testing.T) {
	// e4xd5 wins a rook; b4xc5 and Rc2xc5 both win a pawn.
	g := mustGame(t, "4k3/8/2q5/2pr4/1P2P3/8/2R1N3/4K3 w - - 0 1")
	moves := g.GetMoves(false)
	orderMoves(g, moves)

	want := []string{"e4d5", "b4c5", "c2c5"}
	testutil.AssertEqual(t, moveStrings(moves[:len(want)]), want)
	testutil.AssertEqual(t, captures(moves), want)
}

func TestOrderMoves_RecaptureFirst(t *testing.T) {
	g := mustGame(t, "4k3/8/5n2/1n1P4/P7/8/8/3RK3 b - - 0 1")
	g.Push(mustMoveFrom(t, g, "f6d5"))

	moves := g.GetMoves(false)
	orderMoves(g, moves)

	// Both captures take a knight; taking back on d5 goes first even though
	// the rook is the dearer attacker.
	testutil.AssertEqual(t, moveStrings(moves[:2]), []string{"d1d5", "a4b5"})
}

func TestOrderMoves_QuietByPiece(t *testing.T) {
	g := engine.NewGame()
	moves := g.GetMoves(false)
	sorted := slices.Clone(moves)
	orderMoves(g, sorted)

	// Pawn moves keep generation order and come before knight moves.
	testutil.AssertEqual(t, sorted[0].String(), "a2a3")
	testutil.AssertEqual(t, sorted[1].String(), "a2a4")
	testutil.AssertEqual(t, sorted[16].Piece.Type(), chess.Knight)
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Piece.Type() > sorted[i].Piece.Type() {
			t.Errorf("%s sorted before %s", sorted[i-1], sorted[i])
		}
	}
}

func TestCompareMoves_Symmetric(t *testing.T) {
	g := mustGame(t, testutil.KiwipeteFEN)
	moves := g.GetMoves(false)
	cmpFn := compareMoves(g.State().LastTo)
	for _, a := range moves {
		for _, b := range moves {
			if x, y := cmpFn(a, b), cmpFn(b, a); (x < 0) != (y > 0) {
				t.Fatalf("compare(%s, %s) = %d but compare(%s, %s) = %d", a, b, x, b, a, y)
			}
		}
	}
}
