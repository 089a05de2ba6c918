package position

// Phase selects which weight set the evaluator uses.
type Phase int

const (
	Opening Phase = iota
	Middlegame
	Endgame

	NumPhases = 3
)

const (
	openingDiscLimit    = 20
	middlegameDiscLimit = 40
)

// PhaseOf classifies a total disc count: opening below 20 discs, middlegame
// below 40, endgame otherwise.
func PhaseOf(totalDiscs int) Phase {
	switch {
	case totalDiscs < openingDiscLimit:
		return Opening
	case totalDiscs < middlegameDiscLimit:
		return Middlegame
	}
	return Endgame
}

func (p Phase) String() string {
	switch p {
	case Opening:
		return "opening"
	case Middlegame:
		return "middlegame"
	case Endgame:
		return "endgame"
	}
	return "unknown"
}
