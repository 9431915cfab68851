// Package pgn renders engine games as Portable Game Notation.
package pgn

import (
	"fmt"

	chesslib "github.com/corentings/chess/v2"

	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Render replays moves, given in coordinate notation, from startFEN and
// returns the game as PGN with SAN movetext. Missing Seven Tag Roster tags
// get their unknown values and Result always reflects the game. An empty
// startFEN means the standard starting position; any other start adds the
// SetUp and FEN tags.
// A move that cannot be played is reported as an *errors.MoveError wrapping
// errors.ErrIllegalMove.
func Render(startFEN string, moves []string, tags map[string]string) (string, error) {
	var opts []func(*chesslib.Game)
	custom := startFEN != "" && startFEN != engine.InitialFEN
	if custom {
		fenOpt, err := chesslib.FEN(startFEN)
		if err != nil {
			return "", fmt.Errorf("start position %q: %v: %w", startFEN, err, errors.ErrInvalidFEN)
		}
		opts = append(opts, fenOpt)
	}

	game := chesslib.NewGame(opts...)
	for k, v := range withRoster(tags) {
		if k == "Result" {
			continue
		}
		game.AddTagPair(k, v)
	}
	if custom {
		game.AddTagPair("SetUp", "1")
		game.AddTagPair("FEN", startFEN)
	}

	for i, mv := range moves {
		if err := game.PushNotationMove(mv, chesslib.UCINotation{}, nil); err != nil {
			return "", &errors.MoveError{
				Err:      fmt.Errorf("%v: %w", err, errors.ErrIllegalMove),
				PlyNum:   i + 1,
				MoveText: mv,
			}
		}
	}
	game.AddTagPair("Result", string(game.Outcome()))
	return game.String(), nil
}

// FromGame renders the moves played in g from its start position.
func FromGame(g *engine.ChessGame, tags map[string]string) (string, error) {
	played := g.Moves()
	moves := make([]string, len(played))
	for i, m := range played {
		moves[i] = m.String()
	}
	return Render(g.StartFEN(), moves, tags)
}
