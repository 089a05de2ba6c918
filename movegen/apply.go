package movegen

import (
	"github.com/domino14/reversi/bitboard"
	"github.com/domino14/reversi/position"
)

// Flips returns the opponent discs that placing `move` would turn over.
// `move` must be a single bit taken from LegalMoves(own, opp); it is not
// re-validated here.
func Flips(own, opp, move bitboard.Bitboard) bitboard.Bitboard {
	var flips bitboard.Bitboard
	for _, d := range bitboard.Directions {
		var line bitboard.Bitboard
		cursor := move.Shift(d)
		for cursor&opp != 0 {
			line |= cursor
			cursor = cursor.Shift(d)
		}
		// Only a run closed off by one of our discs is captured.
		if cursor&own != 0 {
			flips |= line
		}
	}
	return flips
}

// Apply plays `move` for side and returns the resulting position. The input
// is left untouched. The same precondition as Flips applies.
func Apply(pos position.Position, side position.Side, move bitboard.Bitboard) position.Position {
	own, opp := pos.Sides(side)
	flips := Flips(own, opp, move)
	own |= flips | move
	opp &^= flips
	return position.FromSides(side, own, opp)
}
