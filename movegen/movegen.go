// Package movegen computes legal reversi moves and the result of playing
// them. Everything here works on whole bitboards at once; there is no
// per-square board representation.
package movegen

import (
	"github.com/domino14/reversi/bitboard"
	"github.com/domino14/reversi/position"
)

// The longest run of opponent discs a move can flank on an 8x8 board.
const maxFlankRun = bitboard.Dim - 2

// LegalMoves returns every empty square where the owner of `own` may place a
// disc: for at least one of the eight directions, walking out from the square
// crosses one or more `opp` discs and then lands on an `own` disc without
// leaving the board. A zero result means the side must pass.
func LegalMoves(own, opp bitboard.Bitboard) bitboard.Bitboard {
	empty := ^(own | opp)
	var moves bitboard.Bitboard
	for _, d := range bitboard.Directions {
		// Grow runs of opponent discs outward from our own discs; any empty
		// square right past the end of such a run flanks it from the far side.
		run := own.Shift(d) & opp
		for i := 1; i < maxFlankRun; i++ {
			run |= run.Shift(d) & opp
		}
		moves |= run.Shift(d) & empty
	}
	return moves
}

// Generate returns the legal moves for side in pos.
func Generate(pos position.Position, side position.Side) bitboard.Bitboard {
	own, opp := pos.Sides(side)
	return LegalMoves(own, opp)
}

// HasMoves reports whether side has any legal move.
func HasMoves(pos position.Position, side position.Side) bool {
	return Generate(pos, side) != 0
}

// GameOver is true when neither side can move. A full board is always over.
func GameOver(pos position.Position) bool {
	return LegalMoves(pos.Black, pos.White) == 0 && LegalMoves(pos.White, pos.Black) == 0
}
