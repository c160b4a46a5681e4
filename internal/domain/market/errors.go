package market

import "errors"

// Domain errors for market operations

var (
	// ErrInvalidGameID is returned when a price record has no game id
	ErrInvalidGameID = errors.New("invalid game id")

	// ErrInvalidPrice is returned when a price is negative
	ErrInvalidPrice = errors.New("invalid price")

	// ErrInvalidQuantity is returned when a stock quantity is negative
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrUnknownOperation is returned for a sell operation outside Sell, Dump and Jettison
	ErrUnknownOperation = errors.New("unknown cargo operation")
)
