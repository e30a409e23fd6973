package entity

type OutcomeState string

const (
	OutcomeInProgress OutcomeState = "in_progress"
	OutcomeWin        OutcomeState = "win"
	OutcomeTie        OutcomeState = "tie"
)

// WinCombos are checked in this order: rows, columns, diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Outcome is the result of evaluating a board. Winner is set only for OutcomeWin.
type Outcome struct {
	State  OutcomeState `json:"state"`
	Winner Cell         `json:"winner,omitempty"`
}

func InProgress() Outcome {
	return Outcome{State: OutcomeInProgress}
}

func Win(symbol Cell) Outcome {
	return Outcome{State: OutcomeWin, Winner: symbol}
}

func Tie() Outcome {
	return Outcome{State: OutcomeTie}
}

func (that Outcome) IsWin() bool {
	return that.State == OutcomeWin
}

func (that Outcome) IsTie() bool {
	return that.State == OutcomeTie
}

func (that Outcome) IsFinal() bool {
	return that.IsWin() || that.IsTie()
}

// Evaluate determines the outcome for the given cells. A winning line always takes
// priority over a full board.
func Evaluate(cells [BoardSize]Cell) Outcome {
	for _, combo := range WinCombos {
		a, b, c := cells[combo[0]], cells[combo[1]], cells[combo[2]]
		if a != Empty && a == b && b == c {
			return Win(a)
		}
	}

	// the game will continue until all the squares are full
	if !isFull(cells) {
		return InProgress()
	}

	return Tie()
}
