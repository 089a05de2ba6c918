package bitboard

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestSquareNotation(t *testing.T) {
	is := is.New(t)
	is.Equal(Square(0).String(), "A1")
	is.Equal(Square(7).String(), "H1")
	is.Equal(Square(56).String(), "A8")
	is.Equal(Square(63).String(), "H8")
	is.Equal(SquareAt(3, 2).String(), "D3")

	for sq := Square(0); sq < NumSquares; sq++ {
		parsed, err := ParseSquare(sq.String())
		is.NoErr(err)
		is.Equal(parsed, sq)
	}
	sq, err := ParseSquare("e6")
	is.NoErr(err)
	is.Equal(sq, Square(44))

	for _, bad := range []string{"", "I1", "A9", "A0", "AA", "A10"} {
		_, err := ParseSquare(bad)
		is.True(err != nil)
	}
}

func TestMoveString(t *testing.T) {
	is := is.New(t)
	is.Equal(MoveString(0), "Pass")
	is.Equal(MoveString(SquareAt(5, 4).Bit()), "F5")

	m, err := ParseMove("pass")
	is.NoErr(err)
	is.Equal(m, Bitboard(0))
	m, err = ParseMove("C4")
	is.NoErr(err)
	is.Equal(m, SquareAt(2, 3).Bit())
}

func TestShiftDoesNotWrap(t *testing.T) {
	is := is.New(t)
	is.Equal(FileH.Shift(East), Empty)
	is.Equal(FileA.Shift(West), Empty)
	is.Equal(FileH.Shift(NorthEast), Empty)
	is.Equal(FileH.Shift(SouthEast), Empty)
	is.Equal(FileA.Shift(NorthWest), Empty)
	is.Equal(FileA.Shift(SouthWest), Empty)
	is.Equal(Rank8.Shift(North), Empty)
	is.Equal(Rank1.Shift(South), Empty)
}

func TestShiftMatchesStep(t *testing.T) {
	for sq := Square(0); sq < NumSquares; sq++ {
		for _, d := range Directions {
			next, ok := sq.Step(d)
			var want Bitboard
			if ok {
				want = next.Bit()
			}
			assert.Equal(t, want, sq.Bit().Shift(d), "square %v direction %d", sq, d)
		}
	}
}

func TestIteration(t *testing.T) {
	b := SquareAt(0, 0).Bit() | SquareAt(4, 3).Bit() | SquareAt(7, 7).Bit()
	assert.Equal(t, 3, b.Count())
	assert.Equal(t, []Square{0, 28, 63}, b.Squares())
	assert.Equal(t, []Bitboard{1, 1 << 28, 1 << 63}, b.Moves())
	assert.Equal(t, Square(0), b.LowestSquare())
	assert.Equal(t, NoSquare, Empty.LowestSquare())
}
