// Command reversi prints the best move for one position.
//
//	reversi --fen 8/8/8/3Dd3/3dD3/8/8/8 --side black --depth 4 --explain
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/config"
	"github.com/domino14/reversi/evaluation"
	"github.com/domino14/reversi/position"
	"github.com/domino14/reversi/search"
)

var (
	GitVersion string
)

func setupLogger(debug bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	return logger
}

func main() {
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	exPath := filepath.Dir(ex)

	fs := pflag.NewFlagSet("position", pflag.ContinueOnError)
	fen := fs.String("fen", "", "position to search; empty means the starting position")
	sideName := fs.String("side", "black", "side to move: black or white")
	depth := fs.Int("depth", 0, "search depth in plies; 0 uses default-depth")
	explain := fs.Bool("explain", false, "print the evaluation terms of the position")

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:], fs); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.AdjustRelativePaths(exPath)
	logger := setupLogger(cfg.GetBool(config.ConfigDebug))
	logger.Debug().Str("version", GitVersion).Interface("settings", cfg.SanitizedSettings()).
		Msg("loaded config")

	if cfg.GetString(config.ConfigCPUProfile) != "" {
		f, err := os.Create(cfg.GetString(config.ConfigCPUProfile))
		if err != nil {
			panic("could not create CPU profile: " + err.Error())
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			panic("could not start CPU profile: " + err.Error())
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(logger.WithContext(context.Background()), cfg, *fen, *sideName, *depth, *explain); err != nil {
		log.Error().Err(err).Msg("search failed")
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, fen, sideName string, depth int, explain bool) error {
	b := board.Start.Board()
	if fen != "" {
		var err error
		if b, err = board.ParseFEN(fen); err != nil {
			return err
		}
	}
	pos, err := board.Encode(b)
	if err != nil {
		return err
	}
	side, err := position.ParseSide(sideName)
	if err != nil {
		return err
	}
	if depth == 0 {
		depth = cfg.GetInt(config.ConfigDefaultDepth)
	}

	ev, err := evaluation.NewEvaluatorFromConfig(cfg)
	if err != nil {
		return err
	}
	solver := search.NewSolver(ev)
	solver.SetThreads(cfg.GetInt(config.ConfigThreads))

	fmt.Println(b.ToDisplayText())
	fmt.Printf("%v to move, searching %d plies\n", side, depth)
	if explain {
		fmt.Print(ev.Breakdown(pos))
	}
	sol, err := solver.Solve(ctx, pos, side, depth)
	if err != nil {
		return err
	}
	fmt.Print(sol)
	fmt.Println(sol.Notation)
	return nil
}
