package board

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/domino14/reversi/bitboard"
)

// FEN characters. This is the notation the game layer stores positions in:
// ranks 1 through 8 separated by slashes, digits for runs of empty squares.
const (
	fenBlack     = 'd'
	fenWhite     = 'D'
	fenSeparator = '/'
)

var boardPlaintextRegex = regexp.MustCompile(`^\s*(\d)\|([^|]+)\|`)

// FEN renders the board.
func (b *Board) FEN() string {
	var sb strings.Builder
	for row := 0; row < bitboard.Dim; row++ {
		empties := 0
		for col := 0; col < bitboard.Dim; col++ {
			c := b[row][col]
			if c == Empty {
				empties++
				continue
			}
			if empties > 0 {
				sb.WriteString(strconv.Itoa(empties))
				empties = 0
			}
			if c == Black {
				sb.WriteRune(fenBlack)
			} else {
				sb.WriteRune(fenWhite)
			}
		}
		if empties > 0 {
			sb.WriteString(strconv.Itoa(empties))
		}
		if row < bitboard.Dim-1 {
			sb.WriteRune(fenSeparator)
		}
	}
	return sb.String()
}

// ParseFEN reads a board written by FEN.
func ParseFEN(fen string) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(fen), string(fenSeparator))
	if len(rows) != bitboard.Dim {
		return nil, fmt.Errorf("%w: fen has %d rows", ErrMalformed, len(rows))
	}
	b := &Board{}
	for row, text := range rows {
		col := 0
		for _, ch := range text {
			switch {
			case ch >= '1' && ch <= '8':
				col += int(ch - '0')
			case ch == fenBlack || ch == fenWhite:
				if col >= bitboard.Dim {
					return nil, fmt.Errorf("%w: fen row %d is too long", ErrMalformed, row+1)
				}
				if ch == fenBlack {
					b[row][col] = Black
				} else {
					b[row][col] = White
				}
				col++
			default:
				return nil, fmt.Errorf("%w: unexpected %q in fen row %d", ErrMalformed, ch, row+1)
			}
			if col > bitboard.Dim {
				return nil, fmt.Errorf("%w: fen row %d is too long", ErrMalformed, row+1)
			}
		}
		if col != bitboard.Dim {
			return nil, fmt.Errorf("%w: fen row %d has %d squares", ErrMalformed, row+1, col)
		}
	}
	return b, nil
}

// ToDisplayText draws the board with rank 1 on top, black as X and white
// as O.
func (b *Board) ToDisplayText() string {
	var str string
	n := bitboard.Dim
	row := "  "
	for i := 0; i < n; i++ {
		row = row + " " + fmt.Sprintf("%c", 'A'+i)
	}
	str = str + row + "\n"
	str = str + "   " + strings.Repeat("-", n*2) + "\n"
	for i := 0; i < n; i++ {
		row := fmt.Sprintf("%2d|", i+1)
		for j := 0; j < n; j++ {
			row = row + b[i][j].DisplayString()
			if j < n-1 {
				row += " "
			}
		}
		row = row + "|"
		str = str + row + "\n"
	}
	str = str + "   " + strings.Repeat("-", n*2) + "\n"
	return "\n" + str
}

// FromDisplayText parses the output of ToDisplayText. Only the eight
// numbered rows matter; headers and rulers are ignored.
func FromDisplayText(text string) (*Board, error) {
	b := &Board{}
	seen := 0
	for _, line := range strings.Split(text, "\n") {
		m := boardPlaintextRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		rank, _ := strconv.Atoi(m[1])
		if rank < 1 || rank > bitboard.Dim {
			return nil, fmt.Errorf("%w: rank %d", ErrMalformed, rank)
		}
		cells := strings.Fields(m[2])
		if len(cells) != bitboard.Dim {
			return nil, fmt.Errorf("%w: rank %d has %d cells", ErrMalformed, rank, len(cells))
		}
		for col, cell := range cells {
			switch cell {
			case ".":
				b[rank-1][col] = Empty
			case "X", "x":
				b[rank-1][col] = Black
			case "O", "o":
				b[rank-1][col] = White
			default:
				return nil, fmt.Errorf("%w: unknown cell %q at %v", ErrMalformed, cell,
					bitboard.SquareAt(col, rank-1))
			}
		}
		seen++
	}
	if seen != bitboard.Dim {
		return nil, fmt.Errorf("%w: found %d ranks", ErrMalformed, seen)
	}
	return b, nil
}
