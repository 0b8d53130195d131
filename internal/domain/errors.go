package domain

import (
	"errors"
	"fmt"
)

var ErrNotEnoughPlayers = errors.New("not enough players")

type InvalidPlayerIDError struct {
	ID PlayerID
}

func (e *InvalidPlayerIDError) Error() string {
	return fmt.Sprintf("player id is not valid: %d", e.ID)
}

type PlayerNotRegisteredError struct {
	Name string
}

func (e *PlayerNotRegisteredError) Error() string {
	return fmt.Sprintf("player name is not registered: %s", e.Name)
}

type PlayerAlreadyRegisteredError struct {
	Name string
	ID   PlayerID
}

func (e *PlayerAlreadyRegisteredError) Error() string {
	return fmt.Sprintf("player name is already registered: %s", e.Name)
}

type InvalidPlayerNameError struct {
	Name string
}

func (e *InvalidPlayerNameError) Error() string {
	return fmt.Sprintf("player name is not valid: %q", e.Name)
}

type WinnerNotInMatchError struct {
	ID PlayerID
}

func (e *WinnerNotInMatchError) Error() string {
	return fmt.Sprintf("player is not in the match: %d", e.ID)
}

type GameNotFoundError struct {
	Index int
}

func (e *GameNotFoundError) Error() string {
	return fmt.Sprintf("game not found: %d", e.Index)
}
