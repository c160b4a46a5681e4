package ledger

import (
	"fmt"

	"github.com/google/uuid"
)

// TransactionID identifies a journal entry
type TransactionID struct {
	value string
}

func NewTransactionID() TransactionID {
	return TransactionID{value: uuid.New().String()}
}

// ParseTransactionID validates a stored UUID string
func ParseTransactionID(id string) (TransactionID, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TransactionID{}, fmt.Errorf("invalid transaction id %q: %w", id, err)
	}
	return TransactionID{value: id}, nil
}

func (t TransactionID) String() string {
	return t.value
}

func (t TransactionID) IsZero() bool {
	return t.value == ""
}
