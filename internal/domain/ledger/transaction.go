// Package ledger holds the commander's economy rules (worth, bank,
// insurance, payroll) and the journal of credit movements.
package ledger

import (
	"fmt"
	"time"
)

// Transaction records one credit movement. Transactions are immutable once
// created; balanceAfter always equals balanceBefore plus amount.
type Transaction struct {
	id              TransactionID
	gameID          string
	day             int
	timestamp       time.Time
	transactionType TransactionType
	category        Category
	amount          int // Positive for income, negative for expenses
	balanceBefore   int
	balanceAfter    int
	description     string
	metadata        map[string]interface{}
}

// NewTransaction creates a new transaction with validation
func NewTransaction(
	gameID string,
	day int,
	timestamp time.Time,
	transactionType TransactionType,
	amount int,
	balanceBefore int,
	description string,
	metadata map[string]interface{},
) (*Transaction, error) {
	if gameID == "" {
		return nil, &ErrInvalidTransaction{Field: "game_id", Reason: "game_id cannot be empty"}
	}
	if day < 0 {
		return nil, &ErrInvalidTransaction{Field: "day", Reason: fmt.Sprintf("day cannot be negative: %d", day)}
	}

	category, err := transactionType.ToCategory()
	if err != nil {
		return nil, &ErrInvalidTransaction{Field: "transaction_type", Reason: err.Error()}
	}

	t := &Transaction{
		id:              NewTransactionID(),
		gameID:          gameID,
		day:             day,
		timestamp:       timestamp,
		transactionType: transactionType,
		category:        category,
		amount:          amount,
		balanceBefore:   balanceBefore,
		balanceAfter:    balanceBefore + amount,
		description:     description,
		metadata:        metadata,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// ReconstructTransaction rebuilds a transaction from persistence
func ReconstructTransaction(
	id TransactionID,
	gameID string,
	day int,
	timestamp time.Time,
	transactionType TransactionType,
	category Category,
	amount int,
	balanceBefore int,
	balanceAfter int,
	description string,
	metadata map[string]interface{},
) *Transaction {
	return &Transaction{
		id:              id,
		gameID:          gameID,
		day:             day,
		timestamp:       timestamp,
		transactionType: transactionType,
		category:        category,
		amount:          amount,
		balanceBefore:   balanceBefore,
		balanceAfter:    balanceAfter,
		description:     description,
		metadata:        metadata,
	}
}

// Validate checks the amount and balance invariants
func (t *Transaction) Validate() error {
	if t.amount == 0 {
		return &ErrInvalidTransaction{Field: "amount", Reason: "amount cannot be zero"}
	}
	expected := t.balanceBefore + t.amount
	if t.balanceAfter != expected {
		return &ErrBalanceInvariantViolation{
			BalanceBefore: t.balanceBefore,
			Amount:        t.amount,
			BalanceAfter:  t.balanceAfter,
			Expected:      expected,
		}
	}
	return nil
}

// Getters (all fields are immutable)

func (t *Transaction) ID() TransactionID {
	return t.id
}

func (t *Transaction) GameID() string {
	return t.gameID
}

func (t *Transaction) Day() int {
	return t.day
}

func (t *Transaction) Timestamp() time.Time {
	return t.timestamp
}

func (t *Transaction) TransactionType() TransactionType {
	return t.transactionType
}

func (t *Transaction) Category() Category {
	return t.category
}

func (t *Transaction) Amount() int {
	return t.amount
}

func (t *Transaction) BalanceBefore() int {
	return t.balanceBefore
}

func (t *Transaction) BalanceAfter() int {
	return t.balanceAfter
}

func (t *Transaction) Description() string {
	return t.description
}

func (t *Transaction) Metadata() map[string]interface{} {
	if t.metadata == nil {
		return nil
	}
	out := make(map[string]interface{}, len(t.metadata))
	for k, v := range t.metadata {
		out[k] = v
	}
	return out
}

// IsIncome returns true if the transaction added credits
func (t *Transaction) IsIncome() bool {
	return t.amount > 0
}

func (t *Transaction) String() string {
	return fmt.Sprintf("Transaction[%s, day=%d, type=%s, amount=%d, balance=%d->%d]",
		t.id, t.day, t.transactionType, t.amount, t.balanceBefore, t.balanceAfter)
}
