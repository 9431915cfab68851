package testutil

// PerftCase is a reference position with its published leaf counts, indexed
// by depth minus one.
type PerftCase struct {
	Name   string
	FEN    string
	Counts []uint64
}

// Reference positions from the chess programming wiki perft results.
const (
	StartFEN    = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	Position3   = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	Position4   = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	Position5   = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	Position6   = "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10"
)

// PerftCases lists the reference positions. Counts deeper than a few
// hundred thousand nodes are left out so the suite stays quick.
func PerftCases() []PerftCase {
	return []PerftCase{
		{Name: "start", FEN: StartFEN, Counts: []uint64{20, 400, 8902, 197281}},
		{Name: "kiwipete", FEN: KiwipeteFEN, Counts: []uint64{48, 2039, 97862}},
		{Name: "position3", FEN: Position3, Counts: []uint64{14, 191, 2812, 43238}},
		{Name: "position4", FEN: Position4, Counts: []uint64{6, 264, 9467}},
		{Name: "position5", FEN: Position5, Counts: []uint64{44, 1486, 62379}},
		{Name: "position6", FEN: Position6, Counts: []uint64{46, 2079, 89890}},
	}
}

// SuiteFENs returns positions that between them exercise castling, en
// passant, promotion, pins and checks.
func SuiteFENs() []string {
	return []string{
		StartFEN,
		KiwipeteFEN,
		Position3,
		Position4,
		Position5,
		Position6,
		"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
		"8/8/8/KPp4r/8/8/8/7k w - c6 0 2",
		"4k3/1P6/8/8/8/8/6p1/4K2R w K - 0 1",
		"4k3/8/8/8/8/8/4q3/4K3 w - - 0 1",
	}
}
