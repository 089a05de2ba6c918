package search

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/reversi/bitboard"
	"github.com/domino14/reversi/config"
	"github.com/domino14/reversi/evaluation"
	"github.com/domino14/reversi/movegen"
	"github.com/domino14/reversi/position"
)

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

var (
	ErrInvalidDepth = errors.New("search depth must be positive")
	ErrBranchFailed = errors.New("root branch failed")
)

// MoveScore is the searched value of one root move.
type MoveScore struct {
	Move  bitboard.Bitboard
	Score float64
}

func (ms MoveScore) String() string {
	return fmt.Sprintf("%s %.3f", bitboard.MoveString(ms.Move), ms.Score)
}

// Solution is the result of a root search.
type Solution struct {
	// Move is the chosen move, or 0 for a pass.
	Move     bitboard.Bitboard
	Notation string
	// Score is from black's point of view.
	Score      float64
	RootScores []MoveScore
	Depth      int
	Nodes      uint64
	Elapsed    time.Duration
}

func (sol *Solution) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "best: %s (%.3f), depth %d, %d nodes in %v\n",
		sol.Notation, sol.Score, sol.Depth, sol.Nodes, sol.Elapsed)
	if len(sol.RootScores) > 0 {
		sb.WriteString("root: ")
		sb.WriteString(strings.Join(lo.Map(sol.RootScores, func(ms MoveScore, _ int) string {
			return ms.String()
		}), ", "))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Solver runs root searches. One root move is searched per goroutine. A
// Solver may be reused, but not for two searches at once.
type Solver struct {
	ev      Evaluator
	threads int
	nodes   atomic.Uint64
}

// NewSolver returns a solver that evaluates leaves with ev.
func NewSolver(ev Evaluator) *Solver {
	return &Solver{ev: ev}
}

// NewSolverFromConfig builds the evaluator and thread limit from cfg.
func NewSolverFromConfig(cfg *config.Config) (*Solver, error) {
	ev, err := evaluation.NewEvaluatorFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	s := NewSolver(ev)
	s.SetThreads(cfg.GetInt(config.ConfigThreads))
	return s, nil
}

// SetThreads bounds how many root branches run at once. Zero or less means
// one goroutine per root move.
func (s *Solver) SetThreads(threads int) {
	s.threads = max(threads, 0)
}

// Nodes is the number of positions visited by the last search.
func (s *Solver) Nodes() uint64 {
	return s.nodes.Load()
}

// Solve searches pos to depth plies with side to move and returns the best
// move. Black takes the highest score and white the lowest; equal scores go
// to the lowest square index. With no root move the answer is a pass scored
// by the static evaluation of pos.
//
// Only the start of each branch checks ctx; a running branch is not
// interrupted. A panic in any branch fails the whole search.
func (s *Solver) Solve(ctx context.Context, pos position.Position, side position.Side,
	depth int) (*Solution, error) {

	logger := zerolog.Ctx(ctx)
	if depth < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}
	if !side.Valid() {
		return nil, fmt.Errorf("%w: %v", position.ErrUnknownSide, side)
	}
	if err := pos.Validate(); err != nil {
		return nil, err
	}

	tstart := time.Now()
	s.nodes.Store(0)
	moves := movegen.Generate(pos, side).Moves()
	logger.Debug().Int("depth", depth).Str("side", side.String()).
		Int("root-moves", len(moves)).Msg("solve-start")

	if len(moves) == 0 {
		s.nodes.Store(1)
		sol := &Solution{
			Notation: bitboard.PassNotation,
			Score:    s.ev.Evaluate(pos),
			Depth:    depth,
			Nodes:    1,
			Elapsed:  time.Since(tstart),
		}
		logger.Debug().Float64("score", sol.Score).Bool("game-over", movegen.GameOver(pos)).
			Msg("solve-pass")
		return sol, nil
	}

	rootMaximizing := side == position.Black
	scores := make([]float64, len(moves))

	g, gctx := errgroup.WithContext(ctx)
	if s.threads > 0 {
		g.SetLimit(s.threads)
	}
	for i, m := range moves {
		i, m := i, m
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: %s: %v", ErrBranchFailed, bitboard.MoveString(m), r)
				}
			}()
			if err := gctx.Err(); err != nil {
				return err
			}
			sr := searcher{ev: s.ev}
			child := movegen.Apply(pos, side, m)
			scores[i] = sr.minimax(child, depth-1, negInf, posInf, !rootMaximizing, side.Opponent())
			s.nodes.Add(sr.nodes + 1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("solve-failed")
		return nil, err
	}

	// Moves are in ascending square order and only a strictly better score
	// replaces the incumbent, so ties keep the lowest square.
	best := 0
	for i := 1; i < len(scores); i++ {
		if (rootMaximizing && scores[i] > scores[best]) ||
			(!rootMaximizing && scores[i] < scores[best]) {
			best = i
		}
	}

	sol := &Solution{
		Move:     moves[best],
		Notation: bitboard.MoveString(moves[best]),
		Score:    scores[best],
		Depth:    depth,
		Nodes:    s.nodes.Load(),
		Elapsed:  time.Since(tstart),
	}
	sol.RootScores = lo.Map(moves, func(m bitboard.Bitboard, i int) MoveScore {
		return MoveScore{Move: m, Score: scores[i]}
	})
	logger.Info().
		Str("move", sol.Notation).
		Float64("score", sol.Score).
		Uint64("nodes", sol.Nodes).
		Float64("time-elapsed-sec", sol.Elapsed.Seconds()).
		Msg("solve-returning")
	return sol, nil
}
