package evaluation

import (
	"math"
	"sync"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/reversi/bitboard"
	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/movegen"
	"github.com/domino14/reversi/position"
	"github.com/domino14/reversi/testcommon"
)

func encode(t *testing.T, n board.Named) position.Position {
	t.Helper()
	pos, err := board.Encode(n.Board())
	if err != nil {
		t.Fatal(err)
	}
	return pos
}

func TestPercentDiff(t *testing.T) {
	is := is.New(t)
	is.Equal(PercentDiff(3, 1), 50.0)
	is.Equal(PercentDiff(1, 3), -50.0)
	is.Equal(PercentDiff(4, 0), 100.0)
	is.Equal(PercentDiff(0, 0), 0.0)
	// Net stability can be negative for both sides.
	is.Equal(PercentDiff(-2, -2), 0.0)
	is.Equal(PercentDiff(-3, 1), 0.0)
}

func TestStableDiscsCornerBlock(t *testing.T) {
	is := is.New(t)
	pos := encode(t, board.CornerBlock)
	stable := StableDiscs(pos.Black)
	is.Equal(stable.Count(), 6)
	for _, n := range []string{"A1", "B1", "C1", "A2", "B2", "A3"} {
		sq, err := bitboard.ParseSquare(n)
		is.NoErr(err)
		is.True(stable.Has(sq))
	}
	is.Equal(StableDiscs(pos.White), bitboard.Empty)
}

func TestStableDiscsNeedCorner(t *testing.T) {
	is := is.New(t)
	pos := position.StartingPosition()
	is.Equal(StableDiscs(pos.Black), bitboard.Empty)
	is.Equal(StableDiscs(pos.White), bitboard.Empty)

	// Everything is stable on a full board split into two halves.
	full := testcommon.FullBoard()
	is.Equal(StableDiscs(full.Black), full.Black)
	is.Equal(StableDiscs(full.White), full.White)
}

func TestStableDiscsAreOwned(t *testing.T) {
	for _, n := range testcommon.ReachablePositions(7, 20) {
		for _, side := range []position.Side{position.Black, position.White} {
			own := n.Pos.Discs(side)
			stable := StableDiscs(own)
			assert.Equal(t, bitboard.Empty, stable&^own)
			assert.Equal(t, bitboard.Empty, UnstableDiscs(n.Pos, side)&^own)
		}
	}
}

func TestUnstableDiscsAreReplyFlips(t *testing.T) {
	for _, n := range testcommon.ReachablePositions(11, 20) {
		for _, side := range []position.Side{position.Black, position.White} {
			own, opp := n.Pos.Sides(side)
			var flipped bitboard.Bitboard
			for _, m := range movegen.LegalMoves(opp, own).Moves() {
				flipped |= movegen.Flips(opp, own, m)
			}
			assert.Equal(t, flipped, UnstableDiscs(n.Pos, side))
		}
	}
}

func TestStartingPositionIsBalanced(t *testing.T) {
	is := is.New(t)
	pos := position.StartingPosition()
	// Each side has two discs, one of which some reply flips.
	is.Equal(UnstableDiscs(pos, position.Black).Count(), 2)
	is.Equal(NetStability(pos, position.White), -2)

	ev := NewEvaluator(nil, LegacyMobility)
	is.Equal(ev.Evaluate(pos), 0.0)
	is.Equal(ev.Evaluate(encode(t, board.Start)), 0.0)
}

func TestFullBoard(t *testing.T) {
	is := is.New(t)
	pos := testcommon.FullBoard()
	for _, mode := range []MobilityMode{LegacyMobility, SymmetricMobility} {
		bd := NewEvaluator(nil, mode).Breakdown(pos)
		is.Equal(bd.Phase, position.Endgame)
		is.Equal(bd.Terms[Mobility], 0.0)
		is.Equal(bd.Terms[CoinParity], 0.0)
		is.True(!math.IsNaN(bd.Score()) && !math.IsInf(bd.Score(), 0))
	}
}

func TestMobilityModes(t *testing.T) {
	legacy := NewEvaluator(nil, LegacyMobility)
	symmetric := NewEvaluator(nil, SymmetricMobility)
	nonzero := 0
	for _, n := range testcommon.ReachablePositions(3, 10) {
		assert.Equal(t, 0.0, legacy.Breakdown(n.Pos).Terms[Mobility])

		black := float64(movegen.Generate(n.Pos, position.Black).Count())
		white := float64(movegen.Generate(n.Pos, position.White).Count())
		got := symmetric.Breakdown(n.Pos).Terms[Mobility]
		assert.Equal(t, PercentDiff(black, white), got)
		if got != 0 {
			nonzero++
		}
	}
	assert.Greater(t, nonzero, 0)
}

func TestTermsBounded(t *testing.T) {
	ev := NewEvaluator(nil, SymmetricMobility)
	for _, n := range testcommon.ReachablePositions(5, 10) {
		bd := ev.Breakdown(n.Pos)
		for _, term := range []Term{CoinParity, Mobility, Corners} {
			assert.LessOrEqual(t, math.Abs(bd.Terms[term]), 100.0, "term %v", term)
		}
	}
}

func TestCornersTermSquares(t *testing.T) {
	is := is.New(t)
	ev := NewEvaluator(nil, LegacyMobility)
	// Index 8 (A2) counts toward the corners term; H1 (index 7) does not.
	pos := position.Position{Black: bitboard.Bitboard(1) << 8, White: bitboard.Bitboard(1) << 7}
	is.Equal(ev.Breakdown(pos).Terms[Corners], 100.0)
	pos = position.Position{Black: bitboard.Bitboard(1) << 55, White: bitboard.Bitboard(1) << 63}
	is.Equal(ev.Breakdown(pos).Terms[Corners], 0.0)
}

func TestColorSwapNegates(t *testing.T) {
	ev := NewEvaluator(nil, LegacyMobility)
	for _, n := range testcommon.ReachablePositions(9, 10) {
		swapped := position.Position{Black: n.Pos.White, White: n.Pos.Black}
		assert.InDelta(t, -ev.Evaluate(n.Pos), ev.Evaluate(swapped), 1e-9)
	}
}

func TestEvaluateIsPure(t *testing.T) {
	is := is.New(t)
	ev := NewEvaluator(nil, LegacyMobility)
	pos := encode(t, board.Midgame)
	is.Equal(pos.Phase(), position.Middlegame)
	want := ev.Evaluate(pos)

	var wg sync.WaitGroup
	results := make([]float64, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = ev.Evaluate(pos)
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		is.Equal(r, want)
	}
	is.Equal(ev.Breakdown(pos).Score(), want)
}

func TestParseMobilityMode(t *testing.T) {
	is := is.New(t)
	m, err := ParseMobilityMode("symmetric")
	is.NoErr(err)
	is.Equal(m, SymmetricMobility)
	m, err = ParseMobilityMode("")
	is.NoErr(err)
	is.Equal(m, LegacyMobility)
	_, err = ParseMobilityMode("both")
	is.True(err != nil)
}
