package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGameFromFEN creates a game from a FEN string. Only the placement field
// is mandatory; missing trailing fields take their starting-position
// defaults. Errors wrap errors.ErrInvalidFEN and no game is returned.
func NewGameFromFEN(fen string, opts ...Option) (*ChessGame, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fenError("", "", "", "empty FEN string")
	}
	if len(parts) > 6 {
		return nil, fenError("", "at most 6 fields", strconv.Itoa(len(parts)), "")
	}

	g := newEmptyGame(opts...)

	if err := g.parsePiecePositions(parts[0]); err != nil {
		return nil, err
	}
	if err := g.parseSideToMove(parts); err != nil {
		return nil, err
	}
	if err := g.parseCastlingRights(parts); err != nil {
		return nil, err
	}
	if err := g.parseEnPassant(parts); err != nil {
		return nil, err
	}
	if err := g.parseClocks(parts); err != nil {
		return nil, err
	}

	if g.IsTargeted(g.kings[g.toMove.Opposite()], g.toMove.Opposite()) {
		return nil, fenError("placement", "", "", "side not to move is in check")
	}

	g.startFEN = g.FEN()
	return g, nil
}

// fenError builds a ParseError wrapping ErrInvalidFEN.
func fenError(field, expected, got, detail string) error {
	err := &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Source:   "FEN",
		Field:    field,
		Expected: expected,
		Got:      got,
	}
	if detail != "" {
		return errors.Wrap(err, detail)
	}
	return err
}

// parsePiecePositions parses the piece placement field, rank 8 first.
func (g *ChessGame) parsePiecePositions(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return fenError("placement", "8 ranks", strconv.Itoa(len(ranks)), "")
	}

	var kings [2]int
	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			pt := chess.PieceTypeFromLetter(c)
			if pt == chess.NoPieceType {
				return fenError("placement", "piece letter or digit", strconv.QuoteRune(rune(c)), "")
			}
			if file >= chess.BoardSize {
				return fenError("placement", "8 files in rank "+strconv.Itoa(rank+1), row, "")
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			if pt == chess.Pawn && (rank == 0 || rank == chess.BoardSize-1) {
				return fenError("placement", "", "", "pawn on back rank")
			}
			pos := chess.NewPosition(file, rank)
			g.place(pos, chess.MakePiece(colour, pt))
			if pt == chess.King {
				g.kings[colour] = pos
				kings[colour]++
			}
			file++
		}
		if file != chess.BoardSize {
			return fenError("placement", "8 files in rank "+strconv.Itoa(rank+1), row, "")
		}
	}

	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return fenError("placement", "", "", "need exactly one king per side")
	}
	return nil
}

// parseSideToMove parses the side to move field.
func (g *ChessGame) parseSideToMove(parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		g.toMove = chess.White
	case "b":
		g.toMove = chess.Black
	default:
		return fenError("side to move", "w or b", parts[1], "")
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Rights whose
// king or rook is not on its home square are dropped.
func (g *ChessGame) parseCastlingRights(parts []string) error {
	if len(parts) < 3 {
		g.state.Castling = chess.AllCastling
	} else if parts[2] != "-" {
		for _, c := range parts[2] {
			switch c {
			case 'K':
				g.state.Castling |= chess.WhiteKingside
			case 'Q':
				g.state.Castling |= chess.WhiteQueenside
			case 'k':
				g.state.Castling |= chess.BlackKingside
			case 'q':
				g.state.Castling |= chess.BlackQueenside
			default:
				return fenError("castling", "KQkq or -", parts[2], "")
			}
		}
	}

	for _, r := range []struct {
		right      chess.CastlingRights
		king, rook chess.Position
		colour     chess.Colour
	}{
		{chess.WhiteKingside, chess.E1, chess.H1, chess.White},
		{chess.WhiteQueenside, chess.E1, chess.A1, chess.White},
		{chess.BlackKingside, chess.E8, chess.H8, chess.Black},
		{chess.BlackQueenside, chess.E8, chess.A8, chess.Black},
	} {
		if g.board[r.king] != chess.MakePiece(r.colour, chess.King) ||
			g.board[r.rook] != chess.MakePiece(r.colour, chess.Rook) {
			g.state.Castling &^= r.right
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field. A target that
// no pawn could have just skipped is ignored.
func (g *ChessGame) parseEnPassant(parts []string) error {
	g.state.EnPassant = chess.NoPosition
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	pos, err := chess.ParsePosition(parts[3])
	if err != nil {
		return fenError("en passant", "square or -", parts[3], "")
	}

	// The pawn that skipped pos belongs to the side not to move.
	mover := g.toMove.Opposite()
	wantRank := 2
	if mover == chess.Black {
		wantRank = 5
	}
	if pos.Rank() != wantRank {
		return fenError("en passant", fmt.Sprintf("square on rank %d", wantRank+1), parts[3], "")
	}
	victim, _ := pos.Offset(0, mover.Forward())
	if g.board[pos] == chess.NoPiece && g.board[victim] == chess.MakePiece(mover, chess.Pawn) {
		g.state.EnPassant = pos
	}
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func (g *ChessGame) parseClocks(parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.ParseUint(parts[4], 10, 16)
		if err != nil {
			return fenError("halfmove clock", "non-negative number", parts[4], "")
		}
		g.state.Halfmove = uint16(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fenError("fullmove number", "positive number", parts[5], "")
		}
		g.startFullmove = n
	}
	return nil
}

// FEN serialises the current position.
func (g *ChessGame) FEN() string {
	var sb strings.Builder

	g.writePiecePositions(&sb)
	sb.WriteByte(' ')
	if g.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(g.state.Castling.String())
	sb.WriteByte(' ')
	if g.state.EnPassant == chess.NoPosition {
		sb.WriteByte('-')
	} else {
		sb.WriteString(g.state.EnPassant.String())
	}
	fmt.Fprintf(&sb, " %d %d", g.state.Halfmove, g.Fullmove())

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func (g *ChessGame) writePiecePositions(sb *strings.Builder) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			p := g.board[chess.NewPosition(file, rank)]
			if p == chess.NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}
