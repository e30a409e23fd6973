package entity

import "strings"

const (
	DefaultPlayer1Name = "Player 1"
	DefaultPlayer2Name = "Player 2"
)

type Player struct {
	Name   string `json:"name"`
	Symbol Cell   `json:"symbol"`
}

func NewPlayer(name, fallback string, symbol Cell) *Player {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fallback
	}

	return &Player{
		Name:   name,
		Symbol: symbol,
	}
}
