// Command autoplay plays a batch of computer vs computer games and writes
// per-turn and per-game CSV logs.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/domino14/reversi/automatic"
	"github.com/domino14/reversi/config"
)

const progressInterval = 5 * time.Second

func setupLogger(debug bool) {
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
}

func main() {
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	exPath := filepath.Dir(ex)

	fs := pflag.NewFlagSet("autoplay", pflag.ContinueOnError)
	games := fs.Int("games", 100, "number of games to play")
	workers := fs.Int("workers", runtime.NumCPU(), "games played at once")
	blackDepth := fs.Int("black-depth", 0, "black's search depth; 0 uses default-depth")
	whiteDepth := fs.Int("white-depth", 0, "white's search depth; 0 uses default-depth")
	seedFile := fs.String("seeds", "", "file of opening seeds; created with --new-seeds if missing")
	newSeeds := fs.Int("new-seeds", 0, "generate this many seeds into the --seeds file")
	out := fs.String("out", "autoplay", "prefix of the output CSV files")

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:], fs); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.AdjustRelativePaths(exPath)
	setupLogger(cfg.GetBool(config.ConfigDebug))

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

	opts := automatic.CVCOptions{
		NumGames:        *games,
		Threads:         *workers,
		BlackDepth:      *blackDepth,
		WhiteDepth:      *whiteDepth,
		TurnLogFilename: *out + "-turns.csv",
		GameLogFilename: *out + "-games.csv",
	}
	if *seedFile != "" {
		if opts.Seeds, err = loadOrCreateSeeds(*seedFile, *newSeeds); err != nil {
			log.Error().Err(err).Msg("seeds")
			return
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go reportProgress(ctx, *games)

	tally, err := automatic.StartCompVCompGames(ctx, cfg, opts)
	if err != nil {
		log.Error().Err(err).Msg("autoplay failed")
	}
	if tally != nil {
		log.Info().Int("games", tally.Games()).Float64("black-score", tally.BlackScore()).
			Msg("autoplay finished")
	}
	summary, err := automatic.AnalyzeLogFile(opts.GameLogFilename)
	if err != nil {
		log.Error().Err(err).Msg("analyze")
		return
	}
	fmt.Print(summary)
}

func loadOrCreateSeeds(path string, n int) ([][32]byte, error) {
	if n > 0 {
		seeds := automatic.GenerateSeeds(n)
		if err := automatic.SaveSeeds(seeds, path); err != nil {
			return nil, err
		}
		log.Info().Int("seeds", n).Str("path", path).Msg("wrote seeds")
		return seeds, nil
	}
	return automatic.LoadSeeds(path)
}

func reportProgress(ctx context.Context, total int) {
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			log.Info().
				Int64("finished", automatic.CVCCounter.Value()).
				Int("total", total).
				Int64("playing", automatic.IsPlaying.Value()).
				Msg("progress")
		}
	}
}
