package game

import (
	"errors"
	"fmt"

	"github.com/10igma/spacetrader-web/internal/domain/encounter"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
)

// Domain errors for game commands

var (
	// ErrGameOver is returned for any command after the game has ended
	ErrGameOver = errors.New("game is over")

	// ErrEncounterPending is returned when a command needs the commander docked
	// while an encounter is waiting for an answer
	ErrEncounterPending = errors.New("an encounter is pending")

	// ErrNoEncounter is returned for an encounter action without an encounter
	ErrNoEncounter = errors.New("no encounter is pending")

	// ErrDebtTooLarge blocks warping until the debt drops below the ceiling
	ErrDebtTooLarge = errors.New("debt too large to leave the system")

	// ErrAlreadyHere is returned when warping to the current system
	ErrAlreadyHere = errors.New("already in the target system")

	// ErrNoCrewSpace is returned when every crew seat is taken
	ErrNoCrewSpace = errors.New("no free crew quarters")

	// ErrNotForHire is returned when the mercenary is not at the current system
	ErrNotForHire = errors.New("mercenary is not available here")

	// ErrNotInCrew is returned when firing someone who is not aboard
	ErrNotInCrew = errors.New("mercenary is not part of the crew")

	// ErrInsufficientCredits is returned when a fixed price cannot be paid
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrAlreadyOwned is returned when buying an escape pod twice
	ErrAlreadyOwned = errors.New("already owned")

	// ErrNoEscapePod is returned when insuring a ship without an escape pod
	ErrNoEscapePod = errors.New("insurance requires an escape pod")
)

// OutOfRangeError is returned when the target is beyond the fuel range and
// not connected by a wormhole
type OutOfRangeError struct {
	*shared.DomainError
	Target   int
	Distance int
	Fuel     int
}

func NewOutOfRangeError(target, distance, fuel int) *OutOfRangeError {
	return &OutOfRangeError{
		DomainError: shared.NewDomainError(fmt.Sprintf("system %d is %d parsecs away, fuel for %d", target, distance, fuel)),
		Target:      target,
		Distance:    distance,
		Fuel:        fuel,
	}
}

// ActionNotAllowedError is returned when the encounter does not offer the action
type ActionNotAllowedError struct {
	*shared.DomainError
	Action    Action
	Encounter encounter.Type
}

func NewActionNotAllowedError(action Action, t encounter.Type) *ActionNotAllowedError {
	return &ActionNotAllowedError{
		DomainError: shared.NewDomainError(fmt.Sprintf("cannot %s during %s", action, t)),
		Action:      action,
		Encounter:   t,
	}
}
