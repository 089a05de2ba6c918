package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestTally(t *testing.T) {
	is := is.New(t)
	var tally Tally
	is.Equal(tally.BlackScore(), 0.0)

	tally.Add(40, 24)
	tally.Add(20, 44)
	tally.Add(32, 32)
	tally.Add(64, 0)

	is.Equal(tally.Games(), 4)
	is.Equal(tally.Count(BlackWin), 2)
	is.Equal(tally.Count(WhiteWin), 1)
	is.Equal(tally.Count(Draw), 1)
	is.Equal(tally.BlackScore(), 0.625)
	is.True(FuzzyEqual(tally.Margins().Mean(), 14))

	s := tally.String()
	is.True(strings.Contains(s, "Games played: 4"))
	is.True(strings.Contains(s, "Black score: 0.625"))
}

func TestOutcomeOf(t *testing.T) {
	is := is.New(t)
	is.Equal(OutcomeOf(33, 31), BlackWin)
	is.Equal(OutcomeOf(0, 1), WhiteWin)
	is.Equal(OutcomeOf(30, 30), Draw)
	is.Equal(Draw.String(), "draw")
}

func TestHistogram(t *testing.T) {
	is := is.New(t)
	var tally Tally
	var buf bytes.Buffer
	is.NoErr(tally.FprintHistogram(&buf, 5, 20))
	is.Equal(buf.String(), "no games\n")

	for _, m := range []int{10, 12, 20, 30, 40, 2} {
		tally.Add(32+m/2, 32-m/2)
	}
	buf.Reset()
	is.NoErr(tally.FprintHistogram(&buf, 4, 20))
	is.True(buf.Len() > 0)
}

func TestConfidenceInterval(t *testing.T) {
	is := is.New(t)
	s := &Statistic{}
	is.Equal(s.ConfidenceInterval(95), 0.0)
	for _, v := range []float64{10, 12, 23, 23, 16, 23, 21, 16} {
		s.Push(v)
	}
	// 1.96 * 5.2372 / sqrt(8)
	is.True(FuzzyEqual(s.ConfidenceInterval(95), ZVal(95)*5.2372293656638/2.8284271247461903))
	is.True(s.ConfidenceInterval(99) > s.ConfidenceInterval(95))
}
