package board

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/reversi/bitboard"
	"github.com/domino14/reversi/position"
)

func TestEncodeStart(t *testing.T) {
	is := is.New(t)
	pos, err := Encode(Start.Board())
	is.NoErr(err)
	is.Equal(pos, position.StartingPosition())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	is := is.New(t)
	for _, n := range []Named{Start, BlackPasses, Filled, CornerBlock, Midgame} {
		b := n.Board()
		pos, err := Encode(b)
		is.NoErr(err)
		is.NoErr(pos.Validate())
		is.Equal(Decode(pos), b)

		black, white := b.Counts()
		is.Equal(black, pos.Black.Count())
		is.Equal(white, pos.White.Count())
	}
}

func TestEncodeSquareIndex(t *testing.T) {
	is := is.New(t)
	b := &Board{}
	b.Set(bitboard.SquareAt(2, 5), Black) // C6
	b.Set(bitboard.SquareAt(7, 0), White) // H1
	pos, err := Encode(b)
	is.NoErr(err)
	is.Equal(pos.Black, bitboard.Bitboard(1)<<(2+5*8))
	is.Equal(pos.White, bitboard.Bitboard(1)<<7)
	is.Equal(b.At(bitboard.SquareAt(2, 5)), Black)
}

func TestEncodeRejectsBadCells(t *testing.T) {
	is := is.New(t)
	b := &Board{}
	b[3][3] = Cell(9)
	_, err := Encode(b)
	is.True(errors.Is(err, ErrMalformed))
}

func TestFEN(t *testing.T) {
	is := is.New(t)
	b := Start.Board()
	is.Equal(b.FEN(), "8/8/8/3Dd3/3dD3/8/8/8")

	parsed, err := ParseFEN(b.FEN())
	is.NoErr(err)
	is.Equal(parsed, b)

	for _, n := range []Named{BlackPasses, Filled, CornerBlock, Midgame} {
		b := n.Board()
		parsed, err := ParseFEN(b.FEN())
		is.NoErr(err)
		is.Equal(parsed, b)
	}
}

func TestParseFENErrors(t *testing.T) {
	cases := []string{
		"",
		"8/8/8/8/8/8/8",
		"8/8/8/3Dd3/3dD3/8/8/9",
		"8/8/8/3Dd4/3dD3/8/8/8",
		"8/8/8/3Dx3/3dD3/8/8/8",
		"8/8/8/3Dd2/3dD3/8/8/8",
		"dddddddddd/8/8/8/8/8/8/8",
	}
	for _, c := range cases {
		_, err := ParseFEN(c)
		assert.ErrorIs(t, err, ErrMalformed, "fen %q", c)
	}
}

func TestDisplayTextRoundTrip(t *testing.T) {
	is := is.New(t)
	for _, n := range []Named{Start, BlackPasses, Filled, CornerBlock, Midgame} {
		b := n.Board()
		again, err := FromDisplayText(b.ToDisplayText())
		is.NoErr(err)
		is.Equal(again, b)
	}
	is.Equal(Start.Board().ToDisplayText(), string(Start))
}

func TestFromDisplayTextErrors(t *testing.T) {
	_, err := FromDisplayText(" 1|. . .|\n")
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = FromDisplayText(" 9|. . . . . . . .|\n")
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = FromDisplayText(" 1|. . . . Z . . .|\n")
	assert.ErrorIs(t, err, ErrMalformed)
}
