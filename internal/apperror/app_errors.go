package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrColumnFull    = errors.New("column is full")
	ErrBoardNotFound = errors.New("board not found")
	ErrInvalidBoard  = errors.New("invalid board settings")
)
