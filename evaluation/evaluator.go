// Package evaluation scores reversi positions from black's point of view.
//
// The score is a weighted sum of five terms. Each term compares a black
// quantity a with the matching white quantity b as 100*(a-b)/(a+b), so every
// term lies in [-100, 100] whenever the quantities are non-negative. The
// weights depend on the game phase and come from a WeightTable.
package evaluation

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/reversi/bitboard"
	"github.com/domino14/reversi/config"
	"github.com/domino14/reversi/movegen"
	"github.com/domino14/reversi/position"
)

// Term names one component of the evaluation.
type Term int

const (
	CoinParity Term = iota
	Mobility
	Corners
	Stability
	Positional

	NumTerms = 5
)

var allTerms = []Term{CoinParity, Mobility, Corners, Stability, Positional}

func (t Term) String() string {
	switch t {
	case CoinParity:
		return "coin_parity"
	case Mobility:
		return "mobility"
	case Corners:
		return "corners"
	case Stability:
		return "stability"
	case Positional:
		return "weights"
	}
	return "unknown"
}

// CornerSquares are the squares the corners term counts: indices 0, 8, 55
// and 63. The shipped weight table was tuned against exactly these squares.
const CornerSquares bitboard.Bitboard = 1<<0 | 1<<8 | 1<<55 | 1<<63

// MobilityMode picks how the mobility term is counted.
type MobilityMode int

const (
	// LegacyMobility compares black's move count with itself, so the term is
	// always zero. The shipped weight table was tuned this way.
	LegacyMobility MobilityMode = iota
	// SymmetricMobility compares black's move count with white's. Use it
	// only with a table tuned for it.
	SymmetricMobility
)

func (m MobilityMode) String() string {
	if m == SymmetricMobility {
		return "symmetric"
	}
	return "legacy"
}

// ParseMobilityMode reads the mobility-mode setting.
func ParseMobilityMode(s string) (MobilityMode, error) {
	switch s {
	case "", "legacy":
		return LegacyMobility, nil
	case "symmetric":
		return SymmetricMobility, nil
	}
	return LegacyMobility, fmt.Errorf("unknown mobility mode %q", s)
}

// PercentDiff is 100*(a-b)/(a+b), or 0 when a+b is not positive.
func PercentDiff(a, b float64) float64 {
	if a+b <= 0 {
		return 0
	}
	return 100 * (a - b) / (a + b)
}

// Evaluator holds a weight table and is safe for concurrent use.
type Evaluator struct {
	table    *WeightTable
	mobility MobilityMode
}

// NewEvaluator wraps a table. A nil table means the built-in one.
func NewEvaluator(table *WeightTable, mobility MobilityMode) *Evaluator {
	if table == nil {
		table = DefaultWeightTable()
	}
	return &Evaluator{table: table, mobility: mobility}
}

// NewEvaluatorFromConfig loads the configured table and mobility mode.
func NewEvaluatorFromConfig(cfg *config.Config) (*Evaluator, error) {
	table, err := LoadWeightTable(cfg)
	if err != nil {
		return nil, err
	}
	mode, err := ParseMobilityMode(cfg.GetString(config.ConfigMobilityMode))
	if err != nil {
		return nil, err
	}
	return NewEvaluator(table, mode), nil
}

// Table returns the weight table in use.
func (e *Evaluator) Table() *WeightTable {
	return e.table
}

// Breakdown is an evaluation split into its terms.
type Breakdown struct {
	Phase   position.Phase
	Terms   [NumTerms]float64
	Weights PhaseWeights
}

// Score is the weighted sum of the terms.
func (b Breakdown) Score() float64 {
	return lo.SumBy(allTerms, func(t Term) float64 {
		return b.Terms[t] * b.Weights.Of(t)
	})
}

func (b Breakdown) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "phase: %v\n", b.Phase)
	for _, t := range allTerms {
		fmt.Fprintf(&sb, "  %-12s %8.2f x %.4f = %8.3f\n", t, b.Terms[t], b.Weights.Of(t),
			b.Terms[t]*b.Weights.Of(t))
	}
	fmt.Fprintf(&sb, "  %-12s %29.3f\n", "total", b.Score())
	return sb.String()
}

// Breakdown computes every term for pos.
func (e *Evaluator) Breakdown(pos position.Position) Breakdown {
	blackDiscs := pos.Black.Count()
	whiteDiscs := pos.White.Count()
	phase := position.PhaseOf(blackDiscs + whiteDiscs)

	b := Breakdown{Phase: phase, Weights: e.table.For(phase)}
	b.Terms[CoinParity] = PercentDiff(float64(blackDiscs), float64(whiteDiscs))

	blackMoves := movegen.LegalMoves(pos.Black, pos.White).Count()
	whiteMoves := blackMoves
	if e.mobility == SymmetricMobility {
		whiteMoves = movegen.LegalMoves(pos.White, pos.Black).Count()
	}
	b.Terms[Mobility] = PercentDiff(float64(blackMoves), float64(whiteMoves))

	b.Terms[Corners] = PercentDiff(float64((pos.Black & CornerSquares).Count()),
		float64((pos.White & CornerSquares).Count()))

	b.Terms[Stability] = PercentDiff(float64(NetStability(pos, position.Black)),
		float64(NetStability(pos, position.White)))

	b.Terms[Positional] = PercentDiff(float64(e.table.Heatmap.Sum(pos.Black)),
		float64(e.table.Heatmap.Sum(pos.White)))
	return b
}

// Evaluate scores pos. Higher is better for black. The result depends only
// on pos and the evaluator's fixed settings.
func (e *Evaluator) Evaluate(pos position.Position) float64 {
	return e.Breakdown(pos).Score()
}
