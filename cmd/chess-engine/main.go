// chess-engine is a UCI chess engine with a few diagnostic subcommands.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/obslog"
	"github.com/lgbarn/chess-engine-go/internal/uci"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-engine-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	closeLog, err := obslog.Init(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, flag.Args(), os.Stdin, os.Stdout, obslog.L())
	stop()
	if err != nil {
		obslog.L().Error("exiting", zap.Error(err))
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	closeLog()
}

// run dispatches to the subcommand named by args[0], or talks UCI over in
// and out when there is none.
func run(ctx context.Context, cfg *config.Config, args []string, in io.Reader, out io.Writer, logger *zap.Logger) error {
	if len(args) == 0 {
		return uci.NewSession(cfg, in, out, logger).Run(ctx)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "perft":
		return runPerft(out, rest)
	case "divide":
		return runDivide(ctx, cfg, out, rest)
	case "bench":
		return runBench(cfg, out, rest, logger)
	case "teststart":
		return runTestStart(cfg, out, rest, logger)
	case "auto":
		return runAuto(ctx, cfg, out, rest, logger)
	default:
		return fmt.Errorf("unknown command %q (run with -h for help)", cmd)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-engine [options] [command [args...]]\n\n")
	fmt.Fprintf(os.Stderr, "Without a command the engine speaks UCI on stdin and stdout.\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  perft [depth]          Count leaf nodes from the start position (default depth 7)\n")
	fmt.Fprintf(os.Stderr, "  divide <depth> [fen]   Count leaf nodes per root move\n")
	fmt.Fprintf(os.Stderr, "  bench [depth]          Search six positions from depth 3 up to depth (default 7)\n")
	fmt.Fprintf(os.Stderr, "  teststart [depth]      Search the start position once (default depth 7)\n")
	fmt.Fprintf(os.Stderr, "  auto <ms> [fen]        Let the engine play itself, printing PGN after every move\n")
	fmt.Fprintf(os.Stderr, "\nOptions:\n")
	flag.PrintDefaults()
}
