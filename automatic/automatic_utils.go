package automatic

// Data collection for automatic games: many computer vs computer games
// spread over worker goroutines, logged to CSV files.

import (
	"bufio"
	"context"
	"errors"
	"expvar"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/reversi/config"
	"github.com/domino14/reversi/stats"
)

// GameLogHeader is the header of the per-game CSV log.
const GameLogHeader = "gameID,opening,black,white,blackDepth,whiteDepth\n"

var (
	CVCCounter *expvar.Int
	IsPlaying  *expvar.Int
)

var ErrAlreadyPlaying = errors.New("games are already being played, please wait till complete")

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

// CVCOptions controls a batch of computer vs computer games.
type CVCOptions struct {
	NumGames int
	Threads  int
	// Depths of black and white. Zero means the configured default depth.
	BlackDepth int
	WhiteDepth int
	// Seeds, if given, make game i use seeds[i % len(seeds)] for its random
	// opening plies.
	Seeds [][32]byte

	TurnLogFilename string
	GameLogFilename string
}

// StartCompVCompGames plays opts.NumGames games and blocks until they are
// all finished or ctx is done. It returns the outcome tally of the games
// that finished.
func StartCompVCompGames(ctx context.Context, cfg *config.Config, opts CVCOptions) (*stats.Tally, error) {
	if IsPlaying.Value() > 0 {
		return nil, ErrAlreadyPlaying
	}
	threads := max(opts.Threads, 1)

	log.Info().Int("games", opts.NumGames).Int("threads", threads).Msg("starting-cvc")
	CVCCounter.Set(0)

	jobs := make(chan int, 100)
	logChan := make(chan string, 100)
	gameChan := make(chan string, 100)
	results := make(chan *GameRecord, 100)

	writers := errgroup.Group{}
	writers.Go(func() error { return writeLines(opts.TurnLogFilename, TurnLogHeader, logChan) })
	writers.Go(func() error { return writeLines(opts.GameLogFilename, GameLogHeader, gameChan) })

	tally := &stats.Tally{}
	collected := make(chan struct{})
	go func() {
		for rec := range results {
			tally.Add(rec.Counts())
		}
		close(collected)
	}()

	players, pctx := errgroup.WithContext(ctx)
	for i := 0; i < threads; i++ {
		players.Go(func() error {
			r, err := NewGameRunner(logChan, cfg)
			if err != nil {
				return err
			}
			r.gamechan = gameChan
			if opts.BlackDepth > 0 || opts.WhiteDepth > 0 {
				r.SetDepths(orDefault(opts.BlackDepth, r.depths[0]), orDefault(opts.WhiteDepth, r.depths[1]))
			}
			IsPlaying.Add(1)
			defer IsPlaying.Add(-1)
			for id := range jobs {
				if len(opts.Seeds) > 0 {
					r.SetSeed(opts.Seeds[id%len(opts.Seeds)])
				}
				rec, err := r.PlayGame(pctx, id)
				if err != nil {
					return err
				}
				results <- rec
				CVCCounter.Add(1)
			}
			return nil
		})
	}

	players.Go(func() error {
		defer close(jobs)
		for i := 0; i < opts.NumGames; i++ {
			if i > 0 && i%1000 == 0 {
				log.Info().Int("queued", i).Msg("queued-jobs")
			}
			select {
			case jobs <- i:
			case <-pctx.Done():
				log.Info().Msg("Got stop signal, exiting soon...")
				return nil
			}
		}
		log.Info().Msg("Finished queueing all jobs.")
		return nil
	})

	playErr := players.Wait()
	close(logChan)
	close(gameChan)
	close(results)
	<-collected
	writeErr := writers.Wait()
	log.Info().Int64("games", CVCCounter.Value()).Msg("All games finished.")

	if playErr != nil && !errors.Is(playErr, context.Canceled) {
		return tally, playErr
	}
	return tally, writeErr
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

// writeLines copies lines to a file, or drains them when filename is empty.
func writeLines(filename, header string, lines <-chan string) error {
	if filename == "" {
		for range lines {
		}
		return nil
	}
	f, err := os.Create(filename)
	if err != nil {
		for range lines {
		}
		return err
	}
	w := bufio.NewWriter(f)
	w.WriteString(header)
	for line := range lines {
		w.WriteString(line)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
