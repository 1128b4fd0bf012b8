package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrGameIsNotStarted  = errors.New("game is not started")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrUnknownGameStatus = errors.New("unknown game status")
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrBotNotFound       = errors.New("bot player not found")
	ErrInvalidInput      = errors.New("invalid input")
)
