// Package search picks a move with a fixed-depth minimax search and
// alpha-beta pruning. Scores are always from black's point of view: black
// maximizes and white minimizes.
package search

import (
	"github.com/domino14/reversi/movegen"
	"github.com/domino14/reversi/position"
)

// Evaluator scores a leaf position. Implementations must be safe for
// concurrent use, since root branches are searched in parallel.
type Evaluator interface {
	Evaluate(pos position.Position) float64
}

// Minimax returns the minimax value of pos searched to depth plies, with
// side to move. maximizing says whether side is the maximizing player at
// this node.
//
// A side with no legal move passes: the same position is searched one ply
// shallower with the other side to move. Moves are tried in ascending
// square order. Pruning never changes the returned value compared with a
// full-width search of the same depth.
func Minimax(ev Evaluator, pos position.Position, depth int, alpha, beta float64,
	maximizing bool, side position.Side) float64 {

	s := searcher{ev: ev}
	return s.minimax(pos, depth, alpha, beta, maximizing, side)
}

// searcher is the state of one synchronous search. Each root branch owns one.
type searcher struct {
	ev    Evaluator
	nodes uint64
}

func (s *searcher) minimax(pos position.Position, depth int, alpha, beta float64,
	maximizing bool, side position.Side) float64 {

	s.nodes++
	if depth <= 0 || movegen.GameOver(pos) {
		return s.ev.Evaluate(pos)
	}
	moves := movegen.Generate(pos, side)
	if moves == 0 {
		// Forced pass. There are no siblings to compare against.
		return s.minimax(pos, depth-1, alpha, beta, !maximizing, side.Opponent())
	}

	if maximizing {
		best := negInf
		for moves != 0 {
			m := moves.LowestBit()
			moves ^= m
			v := s.minimax(movegen.Apply(pos, side, m), depth-1, alpha, beta, false, side.Opponent())
			best = max(best, v)
			alpha = max(alpha, v)
			if beta <= alpha {
				break // beta cut-off
			}
		}
		return best
	}

	best := posInf
	for moves != 0 {
		m := moves.LowestBit()
		moves ^= m
		v := s.minimax(movegen.Apply(pos, side, m), depth-1, alpha, beta, true, side.Opponent())
		best = min(best, v)
		beta = min(beta, v)
		if beta <= alpha {
			break // alpha cut-off
		}
	}
	return best
}
