// Package testcommon has fixtures shared by the package tests: seeded random
// games and a handful of hand-built positions.
package testcommon

import (
	"lukechampine.com/frand"

	"github.com/domino14/reversi/bitboard"
	"github.com/domino14/reversi/movegen"
	"github.com/domino14/reversi/position"
)

// Node is a position together with the side to move in it.
type Node struct {
	Pos  position.Position
	Side position.Side
}

// SeededRNG returns a deterministic generator, so a failing random test
// reproduces on the next run.
func SeededRNG(seed byte) *frand.RNG {
	key := make([]byte, 32)
	for i := range key {
		key[i] = seed + byte(i)
	}
	return frand.NewCustom(key, 1024, 12)
}

// RandomGame plays uniformly random legal moves from the starting position
// until the game ends, and returns every position it passed through (the
// starting position included). Forced passes hand the turn over without
// adding a node.
func RandomGame(rng *frand.RNG) []Node {
	pos := position.StartingPosition()
	side := position.Black
	nodes := []Node{{Pos: pos, Side: side}}
	for !movegen.GameOver(pos) {
		moves := movegen.Generate(pos, side).Moves()
		if len(moves) == 0 {
			side = side.Opponent()
			continue
		}
		m := moves[rng.Intn(len(moves))]
		pos = movegen.Apply(pos, side, m)
		side = side.Opponent()
		nodes = append(nodes, Node{Pos: pos, Side: side})
	}
	return nodes
}

// ReachablePositions collects the nodes of `games` random games.
func ReachablePositions(seed byte, games int) []Node {
	rng := SeededRNG(seed)
	var all []Node
	for i := 0; i < games; i++ {
		all = append(all, RandomGame(rng)...)
	}
	return all
}

// BlackMustPass has a lone white disc on A1 next to a black disc on B1.
// Black cannot flank anything; white can play C1.
func BlackMustPass() position.Position {
	return position.Position{
		Black: bitboard.SquareAt(1, 0).Bit(),
		White: bitboard.SquareAt(0, 0).Bit(),
	}
}

// FullBoard is black on ranks 1-4 and white on ranks 5-8.
func FullBoard() position.Position {
	lower := bitboard.Bitboard(0x00000000FFFFFFFF)
	return position.Position{Black: lower, White: ^lower}
}
