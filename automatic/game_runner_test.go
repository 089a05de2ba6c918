package automatic

import (
	"context"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/reversi/config"
	"github.com/domino14/reversi/movegen"
	"github.com/domino14/reversi/position"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func shallowConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigDefaultDepth, 1)
	cfg.Set(config.ConfigRandomOpeningPlies, 4)
	return &cfg
}

func TestPlayGame(t *testing.T) {
	is := is.New(t)
	logchan := make(chan string, 200)
	runner, err := NewGameRunner(logchan, shallowConfig())
	is.NoErr(err)
	runner.SetSeed([32]byte{1, 2, 3})

	rec, err := runner.PlayGame(context.Background(), 7)
	is.NoErr(err)
	close(logchan)

	is.Equal(rec.ID, 7)
	is.True(movegen.GameOver(rec.Final))
	is.NoErr(rec.Final.Validate())
	black, white := rec.Counts()
	is.True(black+white <= 64)
	is.True(len(rec.Turns) > 4)
	for i, turn := range rec.Turns {
		is.Equal(turn.Ply, i)
		is.Equal(turn.Random, i < 4)
		if i > 0 && turn.Move == 0 {
			// A pass leaves the counts alone.
			is.Equal(turn.Black, rec.Turns[i-1].Black)
			is.Equal(turn.White, rec.Turns[i-1].White)
		}
	}
	is.Equal(rec.Turns[0].Side, position.Black)
	last := rec.Turns[len(rec.Turns)-1]
	is.Equal(last.Black, black)
	is.Equal(last.White, white)

	lines := 0
	for range logchan {
		lines++
	}
	is.Equal(lines, len(rec.Turns))
}

func TestSeedReplaysOpening(t *testing.T) {
	is := is.New(t)
	cfg := shallowConfig()
	seed := [32]byte{42}

	var games [2]*GameRecord
	for i := range games {
		runner, err := NewGameRunner(nil, cfg)
		is.NoErr(err)
		runner.SetSeed(seed)
		games[i], err = runner.PlayGame(context.Background(), i)
		is.NoErr(err)
	}
	// The search is deterministic too, so the whole game repeats.
	is.Equal(games[0].Moves(), games[1].Moves())
	is.Equal(games[0].Opening, games[1].Opening)
	is.Equal(games[0].Final, games[1].Final)
}

func TestPlayGameCanceled(t *testing.T) {
	is := is.New(t)
	runner, err := NewGameRunner(nil, shallowConfig())
	is.NoErr(err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = runner.PlayGame(ctx, 0)
	is.Equal(err, context.Canceled)
}

func BenchmarkPlayGame(b *testing.B) {
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigDefaultDepth, 2)
	runner, err := NewGameRunner(nil, &cfg)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := runner.PlayGame(context.Background(), i); err != nil {
			b.Fatal(err)
		}
	}
}
