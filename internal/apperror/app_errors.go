package apperror

import "errors"

var (
	ErrInvalidState = errors.New("please start a new game")
	ErrCellOccupied = errors.New("square taken, try another move")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrGameNotFound = errors.New("game not found")
)
