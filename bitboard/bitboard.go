// Package bitboard holds the 64-bit occupancy representation of an 8x8
// reversi board, plus the directional shifts and square notation that the
// move generator and evaluator are built on.
//
// Bit i of a Bitboard stands for the square at column i%8, row i/8. Column 0
// is the A file and row 0 is rank 1, so A1 is bit 0 and H8 is bit 63.
package bitboard

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

const (
	Dim        = 8
	NumSquares = Dim * Dim

	// PassNotation is what a zero (empty) move renders as.
	PassNotation = "Pass"
)

// Bitboard is a set of squares.
type Bitboard uint64

const (
	Empty Bitboard = 0
	Full  Bitboard = ^Empty

	FileA Bitboard = 0x0101010101010101
	FileH Bitboard = FileA << 7
	Rank1 Bitboard = 0xFF
	Rank8 Bitboard = Rank1 << 56

	// NotFileA and NotFileH are the masks applied after a horizontal or
	// diagonal shift so that discs never wrap from one edge to the other.
	NotFileA = ^FileA
	NotFileH = ^FileH
)

var ErrBadSquare = errors.New("bad square notation")

// Square is a square index in [0, 64).
type Square int8

// NoSquare is returned by LowestSquare on an empty set.
const NoSquare Square = -1

// SquareAt returns the square for a zero-based column and row.
func SquareAt(col, row int) Square {
	return Square(col + row*Dim)
}

func (s Square) Col() int { return int(s) % Dim }
func (s Square) Row() int { return int(s) / Dim }

// Bit returns a bitboard with only this square set.
func (s Square) Bit() Bitboard {
	return Bitboard(1) << uint(s)
}

// String renders the square as a file letter followed by a rank digit,
// e.g. D3.
func (s Square) String() string {
	if s < 0 || s >= NumSquares {
		return "??"
	}
	return fmt.Sprintf("%c%d", 'A'+s.Col(), s.Row()+1)
}

// ParseSquare reads notation like "d3" or "D3".
func ParseSquare(n string) (Square, error) {
	n = strings.TrimSpace(n)
	if len(n) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrBadSquare, n)
	}
	col := int(strings.ToUpper(n[:1])[0]) - 'A'
	row := int(n[1]) - '1'
	if col < 0 || col >= Dim || row < 0 || row >= Dim {
		return NoSquare, fmt.Errorf("%w: %q", ErrBadSquare, n)
	}
	return SquareAt(col, row), nil
}

// Has reports whether the square is in the set.
func (b Bitboard) Has(s Square) bool {
	return b&s.Bit() != 0
}

// Count is the number of squares in the set.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// LowestBit isolates the least significant set bit (0 if empty).
func (b Bitboard) LowestBit() Bitboard {
	return b & -b
}

// LowestSquare returns the index of the least significant set bit.
func (b Bitboard) LowestSquare() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Squares lists the set members in ascending index order.
func (b Bitboard) Squares() []Square {
	sqs := make([]Square, 0, b.Count())
	for b != 0 {
		sqs = append(sqs, b.LowestSquare())
		b &= b - 1
	}
	return sqs
}

// Moves splits the set into single-bit bitboards, lowest square first.
func (b Bitboard) Moves() []Bitboard {
	moves := make([]Bitboard, 0, b.Count())
	for b != 0 {
		m := b.LowestBit()
		moves = append(moves, m)
		b &^= m
	}
	return moves
}

// MoveString renders a single-bit move in algebraic notation, or "Pass" for
// the empty move.
func MoveString(m Bitboard) string {
	if m == 0 {
		return PassNotation
	}
	return Square(63 - bits.LeadingZeros64(uint64(m))).String()
}

// ParseMove is the inverse of MoveString.
func ParseMove(n string) (Bitboard, error) {
	if strings.EqualFold(strings.TrimSpace(n), PassNotation) {
		return 0, nil
	}
	sq, err := ParseSquare(n)
	if err != nil {
		return 0, err
	}
	return sq.Bit(), nil
}

// String draws the set as an 8x8 grid, rank 8 on top.
func (b Bitboard) String() string {
	var sb strings.Builder
	for row := Dim - 1; row >= 0; row-- {
		for col := 0; col < Dim; col++ {
			if b.Has(SquareAt(col, row)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
