// Package board is the symbolic 8x8 board that callers hand to the engine,
// and the codec between it and the two-occupancy Position.
package board

import (
	"errors"
	"fmt"

	"github.com/domino14/reversi/bitboard"
	"github.com/domino14/reversi/position"
)

var ErrMalformed = errors.New("malformed board")

// Cell is the content of one square.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

// DisplayString is the single character used in display text.
func (c Cell) DisplayString() string {
	switch c {
	case Empty:
		return "."
	case Black:
		return "X"
	case White:
		return "O"
	}
	return "?"
}

// Board is indexed [row][col]; row 0 is rank 1 and col 0 is the A file.
type Board [bitboard.Dim][bitboard.Dim]Cell

// At returns the cell on a square.
func (b *Board) At(sq bitboard.Square) Cell {
	return b[sq.Row()][sq.Col()]
}

// Set puts a cell on a square.
func (b *Board) Set(sq bitboard.Square, c Cell) {
	b[sq.Row()][sq.Col()] = c
}

// Validate makes sure every cell is one of Empty, Black or White.
func (b *Board) Validate() error {
	for row := range b {
		for col, c := range b[row] {
			if c > White {
				return fmt.Errorf("%w: cell %v holds %d", ErrMalformed,
					bitboard.SquareAt(col, row), c)
			}
		}
	}
	return nil
}

// Encode turns the board into its black and white occupancies.
func Encode(b *Board) (position.Position, error) {
	if err := b.Validate(); err != nil {
		return position.Position{}, err
	}
	var p position.Position
	for row := range b {
		for col, c := range b[row] {
			bit := bitboard.SquareAt(col, row).Bit()
			switch c {
			case Black:
				p.Black |= bit
			case White:
				p.White |= bit
			}
		}
	}
	return p, nil
}

// Decode is the inverse of Encode. The position must satisfy Validate;
// overlapping squares come out black.
func Decode(p position.Position) *Board {
	b := &Board{}
	for sq := bitboard.Square(0); sq < bitboard.NumSquares; sq++ {
		switch {
		case p.Black.Has(sq):
			b.Set(sq, Black)
		case p.White.Has(sq):
			b.Set(sq, White)
		}
	}
	return b
}

// Counts returns the number of black and white discs.
func (b *Board) Counts() (black, white int) {
	for row := range b {
		for _, c := range b[row] {
			switch c {
			case Black:
				black++
			case White:
				white++
			}
		}
	}
	return
}
