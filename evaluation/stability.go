package evaluation

import (
	"github.com/domino14/reversi/bitboard"
	"github.com/domino14/reversi/movegen"
	"github.com/domino14/reversi/position"
)

// anchor describes one corner for stability propagation. A disc is stable
// with respect to the corner once its neighbour toward the corner along the
// file and its neighbour toward the corner along the rank are both stable,
// or lie off the board.
type anchor struct {
	// Directions pointing away from the corner.
	alongRank bitboard.Direction
	alongFile bitboard.Direction
	// The file and rank that meet at the corner. Squares on them have no
	// neighbour toward the corner along one of the axes.
	edgeFile bitboard.Bitboard
	edgeRank bitboard.Bitboard
}

var anchors = [4]anchor{
	{bitboard.East, bitboard.North, bitboard.FileA, bitboard.Rank1}, // A1
	{bitboard.West, bitboard.North, bitboard.FileH, bitboard.Rank1}, // H1
	{bitboard.East, bitboard.South, bitboard.FileA, bitboard.Rank8}, // A8
	{bitboard.West, bitboard.South, bitboard.FileH, bitboard.Rank8}, // H8
}

// stableFrom grows the stable set from one corner until nothing changes.
// Each pass moves the frontier one square further out, so this ends after
// at most 15 passes.
func (a anchor) stableFrom(own bitboard.Bitboard) bitboard.Bitboard {
	var stable bitboard.Bitboard
	for {
		rankOK := a.edgeFile | stable.Shift(a.alongRank)
		fileOK := a.edgeRank | stable.Shift(a.alongFile)
		next := own & rankOK & fileOK
		if next == stable {
			return stable
		}
		stable = next
	}
}

// StableDiscs approximates the discs of `own` that can never be flipped:
// those connected to an owned corner through a block of owned discs, grown
// from each corner separately. An unowned corner contributes nothing.
func StableDiscs(own bitboard.Bitboard) bitboard.Bitboard {
	var stable bitboard.Bitboard
	for _, a := range anchors {
		stable |= a.stableFrom(own)
	}
	return stable
}

// SurvivingDiscs is the intersection, over every legal reply of side's
// opponent, of side's discs after that reply. With no replies it is the
// full board.
func SurvivingDiscs(pos position.Position, side position.Side) bitboard.Bitboard {
	opp := side.Opponent()
	surviving := bitboard.Full
	for _, m := range movegen.Generate(pos, opp).Moves() {
		surviving &= movegen.Apply(pos, opp, m).Discs(side)
	}
	return surviving
}

// UnstableDiscs are side's discs that at least one opponent reply flips.
// This only looks one ply ahead; a disc outside it may still fall later.
func UnstableDiscs(pos position.Position, side position.Side) bitboard.Bitboard {
	return pos.Discs(side) &^ SurvivingDiscs(pos, side)
}

// NetStability is |stable| - |unstable| for side.
func NetStability(pos position.Position, side position.Side) int {
	return StableDiscs(pos.Discs(side)).Count() - UnstableDiscs(pos, side).Count()
}
