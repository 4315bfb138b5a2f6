package tetris

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMove is returned when a translation would collide or leave
	// the grid. The piece is unchanged.
	ErrInvalidMove = errors.New("tetris: invalid move")

	// ErrInvalidRotation is returned when a rotation and all of its kicks
	// collide. The piece is unchanged.
	ErrInvalidRotation = errors.New("tetris: invalid rotation")

	// ErrHoldUnavailable is returned when hold was already used since the
	// last spawn or is disabled.
	ErrHoldUnavailable = errors.New("tetris: hold unavailable")

	// ErrNoActivePiece is returned by piece operations while no piece is
	// falling, for example during the entry or line clear delay.
	ErrNoActivePiece = errors.New("tetris: no active piece")

	// ErrPieceActive is returned by SpawnNext while a piece is still falling.
	ErrPieceActive = errors.New("tetris: piece already active")

	// ErrGameOver is returned once the spawn position was blocked. The
	// session stays over until Reset.
	ErrGameOver = errors.New("tetris: game over")

	ErrUnknownAction = errors.New("tetris: unknown action")
)

// ConfigError reports a rejected configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("tetris: invalid config %s: %s", e.Field, e.Reason)
}
