package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusFinished   Status = "finished"
)

// MoveResult describes an accepted move and the outcome it produced.
type MoveResult struct {
	Index   int     `json:"index"`
	Symbol  Cell    `json:"symbol"`
	Player  *Player `json:"player"`
	Outcome Outcome `json:"outcome"`
	Turn    int     `json:"turn"`
}

// GameState is a point-in-time copy of a game for renderers.
type GameState struct {
	ID            string          `json:"id"`
	Board         [BoardSize]Cell `json:"board"`
	Turn          int             `json:"turn"`
	Status        Status          `json:"status"`
	Outcome       Outcome         `json:"outcome"`
	Players       [2]Player       `json:"players"`
	CurrentPlayer *Player         `json:"current_player,omitempty"`
	Winner        *Player         `json:"winner,omitempty"`
}

// Game is a single tic-tac-toe session. It is not safe for concurrent use.
type Game struct {
	ID      string
	board   *Board
	players [2]*Player
	turn    int
	status  Status
	outcome Outcome
}

func NewGame(id string) *Game {
	return &Game{
		ID:      id,
		board:   NewBoard(),
		status:  StatusNotStarted,
		outcome: InProgress(),
	}
}

// Start discards any previous state and begins a new game. Player 1 plays X and moves first.
func (that *Game) Start(name1, name2 string) {
	that.players = [2]*Player{
		NewPlayer(name1, DefaultPlayer1Name, SymbolA),
		NewPlayer(name2, DefaultPlayer2Name, SymbolB),
	}
	that.board.Reset()
	that.turn = 1
	that.status = StatusInProgress
	that.outcome = InProgress()
}

// SubmitMove places the current player's symbol on the cell and evaluates the board once.
func (that *Game) SubmitMove(index int) (MoveResult, error) {
	if !that.IsInProgress() {
		return MoveResult{}, apperror.ErrInvalidState
	}

	if !IsValidIndex(index) {
		return MoveResult{}, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	player := that.CurrentPlayer()
	if !that.board.Place(player.Symbol, index) {
		return MoveResult{}, apperror.ErrCellOccupied
	}

	that.turn++

	outcome := Evaluate(that.board.Snapshot())
	if outcome.IsFinal() {
		that.status = StatusFinished
		that.outcome = outcome
	}

	mover := *player

	return MoveResult{
		Index:   index,
		Symbol:  player.Symbol,
		Player:  &mover,
		Outcome: outcome,
		Turn:    that.turn,
	}, nil
}

// End abandons a running game. The outcome stays as it was.
func (that *Game) End() {
	if that.IsInProgress() {
		that.status = StatusFinished
	}
}

func (that *Game) Snapshot() [BoardSize]Cell {
	return that.board.Snapshot()
}

func (that *Game) Outcome() Outcome {
	return that.outcome
}

func (that *Game) Status() Status {
	return that.status
}

// Turn is the number of the next move, starting at 1.
func (that *Game) Turn() int {
	return that.turn
}

func (that *Game) Players() [2]*Player {
	return that.players
}

// CurrentPlayer returns whose turn it is, or nil when no game is running.
// Odd turns belong to X, even turns to O.
func (that *Game) CurrentPlayer() *Player {
	if !that.IsInProgress() {
		return nil
	}

	return that.players[(that.turn+1)%2]
}

// Winner returns the player holding the winning symbol, or nil.
func (that *Game) Winner() *Player {
	if !that.outcome.IsWin() {
		return nil
	}

	for _, player := range that.players {
		if player.Symbol == that.outcome.Winner {
			return player
		}
	}

	return nil
}

func (that *Game) State() GameState {
	state := GameState{
		ID:      that.ID,
		Board:   that.board.Snapshot(),
		Turn:    that.turn,
		Status:  that.status,
		Outcome: that.outcome,
	}

	for i, player := range that.players {
		if player != nil {
			state.Players[i] = *player
		}
	}

	if current := that.CurrentPlayer(); current != nil {
		player := *current
		state.CurrentPlayer = &player
	}

	if winner := that.Winner(); winner != nil {
		player := *winner
		state.Winner = &player
	}

	return state
}

func (that *Game) IsInProgress() bool {
	return that.status == StatusInProgress
}

func (that *Game) IsFinished() bool {
	return that.status == StatusFinished
}
