package evaluation

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/domino14/reversi/bitboard"
	"github.com/domino14/reversi/cache"
	"github.com/domino14/reversi/config"
	"github.com/domino14/reversi/position"
)

//go:embed weights.yaml
var defaultWeightsYAML []byte

const weightsCachePrefix = "weights:"

var ErrBadWeights = errors.New("bad weight table")

// PhaseWeights are the multipliers for the five evaluation terms in one
// game phase.
type PhaseWeights struct {
	CoinParity float64 `yaml:"coin_parity"`
	Mobility   float64 `yaml:"mobility"`
	Corners    float64 `yaml:"corners"`
	Stability  float64 `yaml:"stability"`
	Weights    float64 `yaml:"weights"`
}

// Of returns the weight for one term.
func (pw PhaseWeights) Of(t Term) float64 {
	switch t {
	case CoinParity:
		return pw.CoinParity
	case Mobility:
		return pw.Mobility
	case Corners:
		return pw.Corners
	case Stability:
		return pw.Stability
	case Positional:
		return pw.Weights
	}
	return 0
}

// Heatmap is the positional value of each square, indexed by square.
type Heatmap [bitboard.NumSquares]int

// Sum adds up the values of every square in b.
func (h *Heatmap) Sum(b bitboard.Bitboard) int {
	total := 0
	for b != 0 {
		total += h[b.LowestSquare()]
		b &= b - 1
	}
	return total
}

// WeightTable is loaded once and then only read, so one table can be shared
// by any number of concurrent searches.
type WeightTable struct {
	Phases  [position.NumPhases]PhaseWeights
	Heatmap Heatmap
}

// For returns the weights of a phase.
func (t *WeightTable) For(p position.Phase) PhaseWeights {
	return t.Phases[p]
}

type weightFile struct {
	Opening    PhaseWeights `yaml:"opening"`
	Middlegame PhaseWeights `yaml:"middlegame"`
	Endgame    PhaseWeights `yaml:"endgame"`
	Heatmap    [][]int      `yaml:"heatmap"`
}

// ReadWeightTable decodes and validates a YAML weight table.
func ReadWeightTable(r io.Reader) (*WeightTable, error) {
	var wf weightFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&wf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadWeights, err)
	}
	t := &WeightTable{}
	t.Phases[position.Opening] = wf.Opening
	t.Phases[position.Middlegame] = wf.Middlegame
	t.Phases[position.Endgame] = wf.Endgame

	if len(wf.Heatmap) != bitboard.Dim {
		return nil, fmt.Errorf("%w: heatmap has %d rows", ErrBadWeights, len(wf.Heatmap))
	}
	for row, vals := range wf.Heatmap {
		if len(vals) != bitboard.Dim {
			return nil, fmt.Errorf("%w: heatmap row %d has %d values", ErrBadWeights, row+1, len(vals))
		}
		for col, v := range vals {
			t.Heatmap[bitboard.SquareAt(col, row)] = v
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks that every weight is finite and non-negative and that the
// heatmap is mirror-symmetric across both board axes.
func (t *WeightTable) Validate() error {
	for p, pw := range t.Phases {
		for _, term := range allTerms {
			w := pw.Of(term)
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				return fmt.Errorf("%w: %v weight for %v is %v", ErrBadWeights,
					term, position.Phase(p), w)
			}
		}
	}
	last := bitboard.Dim - 1
	for row := 0; row < bitboard.Dim; row++ {
		for col := 0; col < bitboard.Dim; col++ {
			v := t.Heatmap[bitboard.SquareAt(col, row)]
			if v != t.Heatmap[bitboard.SquareAt(last-col, row)] ||
				v != t.Heatmap[bitboard.SquareAt(col, last-row)] {
				return fmt.Errorf("%w: heatmap is not symmetric at %v", ErrBadWeights,
					bitboard.SquareAt(col, row))
			}
		}
	}
	return nil
}

// WriteYAML writes the table in the format ReadWeightTable accepts.
func (t *WeightTable) WriteYAML(w io.Writer) error {
	wf := weightFile{
		Opening:    t.Phases[position.Opening],
		Middlegame: t.Phases[position.Middlegame],
		Endgame:    t.Phases[position.Endgame],
		Heatmap:    make([][]int, bitboard.Dim),
	}
	for row := range wf.Heatmap {
		wf.Heatmap[row] = make([]int, bitboard.Dim)
		for col := range wf.Heatmap[row] {
			wf.Heatmap[row][col] = t.Heatmap[bitboard.SquareAt(col, row)]
		}
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(wf); err != nil {
		return err
	}
	return enc.Close()
}

var defaultWeightTable = sync.OnceValue(func() *WeightTable {
	t, err := ReadWeightTable(bytes.NewReader(defaultWeightsYAML))
	if err != nil {
		panic(err)
	}
	return t
})

// DefaultWeightTable is the built-in tuned table. Callers must not modify it.
func DefaultWeightTable() *WeightTable {
	return defaultWeightTable()
}

func weightTableLoadFunc(cfg *config.Config, key string) (any, error) {
	path := strings.TrimPrefix(key, weightsCachePrefix)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadWeightTable(f)
}

// LoadWeightTable returns the table named by the weights-path setting, or
// the built-in one when the setting is empty. Tables read from disk are
// cached for the life of the process.
func LoadWeightTable(cfg *config.Config) (*WeightTable, error) {
	path := cfg.GetString(config.ConfigWeightsPath)
	if path == "" {
		return DefaultWeightTable(), nil
	}
	obj, err := cache.Load(cfg, weightsCachePrefix+path, weightTableLoadFunc)
	if err != nil {
		return nil, err
	}
	return obj.(*WeightTable), nil
}
