package shared

import (
	"errors"
	"fmt"
)

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// ErrInvalidSeed is returned when a PRNG seed is negative or wider than 32 bits.
var ErrInvalidSeed = errors.New("seed must be a non-negative 32-bit value")

// Contract violations. These indicate a defect in the caller, never a game condition.

type IndexOutOfRangeError struct {
	*DomainError
	Kind  string
	Index int
	Limit int
}

func NewIndexOutOfRangeError(kind string, index, limit int) *IndexOutOfRangeError {
	return &IndexOutOfRangeError{
		DomainError: &DomainError{Message: fmt.Sprintf("%s index %d out of range [0, %d)", kind, index, limit)},
		Kind:        kind,
		Index:       index,
		Limit:       limit,
	}
}

// CheckIndex returns an IndexOutOfRangeError when index is outside [0, limit).
func CheckIndex(kind string, index, limit int) error {
	if index < 0 || index >= limit {
		return NewIndexOutOfRangeError(kind, index, limit)
	}
	return nil
}

type NegativeAmountError struct {
	*DomainError
	Field  string
	Amount int
}

func NewNegativeAmountError(field string, amount int) *NegativeAmountError {
	return &NegativeAmountError{
		DomainError: &DomainError{Message: fmt.Sprintf("%s must not be negative, got %d", field, amount)},
		Field:       field,
		Amount:      amount,
	}
}

// CheckAmount rejects negative counts and credit amounts.
func CheckAmount(field string, amount int) error {
	if amount < 0 {
		return NewNegativeAmountError(field, amount)
	}
	return nil
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
