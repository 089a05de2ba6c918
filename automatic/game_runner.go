// Package automatic plays computer-vs-computer reversi games, for checking
// a weight table or a search depth against another over many games.
package automatic

import (
	"context"
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/reversi/bitboard"
	"github.com/domino14/reversi/config"
	"github.com/domino14/reversi/movegen"
	"github.com/domino14/reversi/position"
	"github.com/domino14/reversi/search"
)

// TurnLogHeader is the header of the per-turn CSV log.
const TurnLogHeader = "gameID,ply,side,move,score,black,white,random\n"

// Turn is one ply of a finished game. A pass has Move 0.
type Turn struct {
	Ply    int
	Side   position.Side
	Move   bitboard.Bitboard
	Score  float64
	Black  int
	White  int
	Random bool
}

// GameRecord is a finished game.
type GameRecord struct {
	ID    int
	Turns []Turn
	Final position.Position
	// Opening fingerprints the random opening plies, so games that started
	// the same way can be grouped.
	Opening uint64
}

// Counts returns the final disc counts.
func (g *GameRecord) Counts() (black, white int) {
	return g.Final.Black.Count(), g.Final.White.Count()
}

// Moves lists every move in notation, passes included.
func (g *GameRecord) Moves() []string {
	out := make([]string, len(g.Turns))
	for i, t := range g.Turns {
		out[i] = bitboard.MoveString(t.Move)
	}
	return out
}

// GameRunner plays games between two solvers.
type GameRunner struct {
	config      *config.Config
	solvers     [2]*search.Solver
	depths      [2]int
	randomPlies int
	rng         *frand.RNG

	logchan  chan string
	gamechan chan string
}

// NewGameRunner builds a runner where both sides use the configured weight
// table and default depth.
func NewGameRunner(logchan chan string, cfg *config.Config) (*GameRunner, error) {
	r := &GameRunner{logchan: logchan, config: cfg, rng: frand.New()}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

// Init (re)builds the solvers from the runner's config.
func (r *GameRunner) Init() error {
	for idx := range r.solvers {
		s, err := search.NewSolverFromConfig(r.config)
		if err != nil {
			return err
		}
		r.solvers[idx] = s
	}
	depth := r.config.GetInt(config.ConfigDefaultDepth)
	r.depths = [2]int{depth, depth}
	r.randomPlies = r.config.GetInt(config.ConfigRandomOpeningPlies)
	return nil
}

// SetDepths sets the search depth of each side.
func (r *GameRunner) SetDepths(black, white int) {
	r.depths = [2]int{black, white}
}

// SetRandomPlies sets how many uniformly random moves start each game.
func (r *GameRunner) SetRandomPlies(n int) {
	r.randomPlies = n
}

// SetSeed makes the random openings reproducible.
func (r *GameRunner) SetSeed(seed [32]byte) {
	r.rng = frand.NewCustom(seed[:], 1024, 12)
}

// PlayGame plays one game from the starting position to the end.
func (r *GameRunner) PlayGame(ctx context.Context, id int) (*GameRecord, error) {
	pos := position.StartingPosition()
	side := position.Black
	rec := &GameRecord{ID: id}
	var opening strings.Builder

	for ply := 0; !movegen.GameOver(pos); ply++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		turn := Turn{Ply: ply, Side: side}
		moves := movegen.Generate(pos, side).Moves()
		switch {
		case len(moves) == 0:
			// Forced pass; the move stays 0.
		case ply < r.randomPlies:
			turn.Move = moves[r.rng.Intn(len(moves))]
			turn.Random = true
			opening.WriteString(bitboard.MoveString(turn.Move))
		default:
			sol, err := r.solvers[side].Solve(ctx, pos, side, r.depths[side])
			if err != nil {
				return nil, fmt.Errorf("game %d ply %d: %w", id, ply, err)
			}
			turn.Move = sol.Move
			turn.Score = sol.Score
		}
		if turn.Move != 0 {
			pos = movegen.Apply(pos, side, turn.Move)
		}
		turn.Black, turn.White = pos.Black.Count(), pos.White.Count()
		rec.Turns = append(rec.Turns, turn)
		side = side.Opponent()
	}
	rec.Final = pos
	rec.Opening = xxhash.Sum64String(opening.String())
	r.logGame(rec)

	black, white := rec.Counts()
	log.Debug().Int("game", id).Int("black", black).Int("white", white).
		Int("plies", len(rec.Turns)).Msg("game-over")
	return rec, nil
}

func (r *GameRunner) logGame(rec *GameRecord) {
	if r.logchan != nil {
		for _, t := range rec.Turns {
			r.logchan <- fmt.Sprintf("%d,%d,%v,%v,%.3f,%d,%d,%v\n",
				rec.ID, t.Ply, t.Side, bitboard.MoveString(t.Move), t.Score,
				t.Black, t.White, t.Random)
		}
	}
	if r.gamechan != nil {
		black, white := rec.Counts()
		r.gamechan <- fmt.Sprintf("%d,%016x,%d,%d,%d,%d\n",
			rec.ID, rec.Opening, black, white, r.depths[position.Black], r.depths[position.White])
	}
}
