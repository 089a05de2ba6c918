package bitboard

// Direction is one of the eight compass rays. The value is the change in
// square index per step.
type Direction int

const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	NorthEast Direction = 9
	NorthWest Direction = 7
	SouthEast Direction = -7
	SouthWest Direction = -9
)

// Directions is every ray, in a fixed order.
var Directions = [8]Direction{West, East, South, North, SouthEast, NorthWest, SouthWest, NorthEast}

// Shift moves every square of b one step in direction d. Squares that would
// leave the board, or wrap between the A and H files, are dropped.
func (b Bitboard) Shift(d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b << 1) & NotFileA
	case West:
		return (b >> 1) & NotFileH
	case NorthEast:
		return (b << 9) & NotFileA
	case NorthWest:
		return (b << 7) & NotFileH
	case SouthEast:
		return (b >> 7) & NotFileA
	case SouthWest:
		return (b >> 9) & NotFileH
	}
	return 0
}

// Step returns the square one step from s in direction d, and false if that
// step leaves the board.
func (s Square) Step(d Direction) (Square, bool) {
	col, row := s.Col(), s.Row()
	switch d {
	case North:
		row++
	case South:
		row--
	case East:
		col++
	case West:
		col--
	case NorthEast:
		col, row = col+1, row+1
	case NorthWest:
		col, row = col-1, row+1
	case SouthEast:
		col, row = col+1, row-1
	case SouthWest:
		col, row = col-1, row-1
	default:
		return NoSquare, false
	}
	if col < 0 || col >= Dim || row < 0 || row >= Dim {
		return NoSquare, false
	}
	return SquareAt(col, row), true
}
