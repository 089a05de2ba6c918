package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
)

// Outcome is the result of one finished game.
type Outcome int

const (
	BlackWin Outcome = iota
	WhiteWin
	Draw
)

func (o Outcome) String() string {
	switch o {
	case BlackWin:
		return "black"
	case WhiteWin:
		return "white"
	}
	return "draw"
}

// OutcomeOf maps a final disc count to an outcome.
func OutcomeOf(black, white int) Outcome {
	switch {
	case black > white:
		return BlackWin
	case white > black:
		return WhiteWin
	}
	return Draw
}

// Tally counts outcomes and tracks black's final disc margin.
type Tally struct {
	counts  [3]int
	margins Statistic
	values  []float64
}

// Add records one finished game.
func (t *Tally) Add(black, white int) {
	t.counts[OutcomeOf(black, white)]++
	margin := float64(black - white)
	t.margins.Push(margin)
	t.values = append(t.values, margin)
}

func (t *Tally) Games() int {
	return t.margins.Iterations()
}

func (t *Tally) Count(o Outcome) int {
	return t.counts[o]
}

// BlackScore is black's result as a fraction, a draw counting as half a win.
func (t *Tally) BlackScore() float64 {
	if t.Games() == 0 {
		return 0
	}
	return (float64(t.counts[BlackWin]) + 0.5*float64(t.counts[Draw])) / float64(t.Games())
}

// Margins is the running statistic of black minus white.
func (t *Tally) Margins() *Statistic {
	return &t.margins
}

// FprintHistogram draws the margin distribution as a text histogram.
func (t *Tally) FprintHistogram(w io.Writer, bins, width int) error {
	if len(t.values) == 0 {
		_, err := fmt.Fprintln(w, "no games")
		return err
	}
	return histogram.Fprint(w, histogram.Hist(bins, t.values), histogram.Linear(width))
}

func (t *Tally) String() string {
	var sb strings.Builder
	games := t.Games()
	fmt.Fprintf(&sb, "Games played: %d\n", games)
	for _, o := range []Outcome{BlackWin, WhiteWin, Draw} {
		pct := 0.0
		if games > 0 {
			pct = 100 * float64(t.counts[o]) / float64(games)
		}
		fmt.Fprintf(&sb, "%-6s %d (%.3f%%)\n", o, t.counts[o], pct)
	}
	fmt.Fprintf(&sb, "Black score: %.3f\n", t.BlackScore())
	fmt.Fprintf(&sb, "Black margin: %.3f ± %.3f (95%%)  Stdev: %.3f\n",
		t.margins.Mean(), t.margins.ConfidenceInterval(95), t.margins.Stdev())
	return sb.String()
}
