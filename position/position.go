// Package position defines the two-occupancy position value that the engine
// searches over, along with the side to move and the game phase.
package position

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/reversi/bitboard"
)

var (
	ErrOverlap     = errors.New("black and white occupy the same square")
	ErrUnknownSide = errors.New("unknown side")
)

// Side is the colour of a player.
type Side uint8

const (
	Black Side = iota
	White
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	return s ^ 1
}

func (s Side) String() string {
	switch s {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return fmt.Sprintf("side(%d)", uint8(s))
}

// Valid reports whether s is Black or White.
func (s Side) Valid() bool {
	return s == Black || s == White
}

// ParseSide accepts "b", "black", "w", "white" in any case.
func ParseSide(str string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "b", "black":
		return Black, nil
	case "w", "white":
		return White, nil
	}
	return Black, fmt.Errorf("%w: %q", ErrUnknownSide, str)
}

// Position is a pair of occupancies. It is a value: every move produces a
// new Position and none is ever modified in place.
type Position struct {
	Black bitboard.Bitboard
	White bitboard.Bitboard
}

// StartingPosition has white on D4 and E5, black on E4 and D5.
func StartingPosition() Position {
	return Position{
		Black: bitboard.SquareAt(4, 3).Bit() | bitboard.SquareAt(3, 4).Bit(),
		White: bitboard.SquareAt(3, 3).Bit() | bitboard.SquareAt(4, 4).Bit(),
	}
}

// FromSides builds a Position from the mover's and the opponent's discs.
func FromSides(side Side, own, opp bitboard.Bitboard) Position {
	if side == Black {
		return Position{Black: own, White: opp}
	}
	return Position{Black: opp, White: own}
}

// Discs returns the occupancy of one side.
func (p Position) Discs(s Side) bitboard.Bitboard {
	if s == Black {
		return p.Black
	}
	return p.White
}

// Sides returns (own, opponent) occupancies from the point of view of s.
func (p Position) Sides(s Side) (own, opp bitboard.Bitboard) {
	if s == Black {
		return p.Black, p.White
	}
	return p.White, p.Black
}

func (p Position) Occupied() bitboard.Bitboard {
	return p.Black | p.White
}

func (p Position) EmptySquares() bitboard.Bitboard {
	return ^p.Occupied()
}

// DiscCount is the total number of discs on the board.
func (p Position) DiscCount() int {
	return p.Occupied().Count()
}

// Phase classifies the position by total disc count.
func (p Position) Phase() Phase {
	return PhaseOf(p.DiscCount())
}

// Validate checks the disjointness invariant.
func (p Position) Validate() error {
	if overlap := p.Black & p.White; overlap != 0 {
		return fmt.Errorf("%w: %v", ErrOverlap, overlap.Squares())
	}
	return nil
}

func (p Position) String() string {
	return fmt.Sprintf("black=%#016x white=%#016x", uint64(p.Black), uint64(p.White))
}
