package board

// This file contains some sample boards, used solely for testing.

// Named is a display-text representation of a board.
type Named string

const (
	// Start is the standard opening position.
	Start Named = `
   A B C D E F G H
   ----------------
 1|. . . . . . . .|
 2|. . . . . . . .|
 3|. . . . . . . .|
 4|. . . O X . . .|
 5|. . . X O . . .|
 6|. . . . . . . .|
 7|. . . . . . . .|
 8|. . . . . . . .|
   ----------------
`
	// BlackPasses leaves black with nothing to flank while white can take
	// B1 by playing C1.
	BlackPasses Named = `
   A B C D E F G H
   ----------------
 1|O X . . . . . .|
 2|. . . . . . . .|
 3|. . . . . . . .|
 4|. . . . . . . .|
 5|. . . . . . . .|
 6|. . . . . . . .|
 7|. . . . . . . .|
 8|. . . . . . . .|
   ----------------
`
	// Filled has no empty squares at all.
	Filled Named = `
   A B C D E F G H
   ----------------
 1|X X X X X X X X|
 2|X X X X X X X X|
 3|X X X X X X X X|
 4|X X X X X X X X|
 5|O O O O O O O O|
 6|O O O O O O O O|
 7|O O O O O O O O|
 8|O O O O O O O O|
   ----------------
`
	// CornerBlock has black owning the A1 corner region, so stability
	// propagates out along rank 1 and the A file.
	CornerBlock Named = `
   A B C D E F G H
   ----------------
 1|X X X O . . . .|
 2|X X . . . . . .|
 3|X . . . . . . .|
 4|O . . O X . . .|
 5|. . . X O . . .|
 6|. . . . . . . .|
 7|. . . . . . . .|
 8|. . . . . . . .|
   ----------------
`
	// Midgame is a middlegame position from a random self-play game.
	Midgame Named = `
   A B C D E F G H
   ----------------
 1|. . . . . . . .|
 2|. . . O . . . .|
 3|. . X O O X . .|
 4|. X X X O O . .|
 5|. . X O X O O .|
 6|. . O X X X . .|
 7|. . . . X . . .|
 8|. . . . . . . .|
   ----------------
`
)

// Board parses the sample. It panics on a malformed sample.
func (n Named) Board() *Board {
	b, err := FromDisplayText(string(n))
	if err != nil {
		panic(err)
	}
	return b
}
