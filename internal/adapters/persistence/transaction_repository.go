package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/10igma/spacetrader-web/internal/domain/ledger"
)

// GormTransactionRepository implements TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GORM transaction repository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// Create persists a batch of transactions in one database transaction
func (r *GormTransactionRepository) Create(ctx context.Context, transactions []*ledger.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	models := make([]*TransactionModel, len(transactions))
	for i, tx := range transactions {
		model, err := r.transactionToModel(tx)
		if err != nil {
			return fmt.Errorf("failed to convert transaction to model: %w", err)
		}
		model.Position = i
		models[i] = model
	}

	return r.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		if err := db.Create(models).Error; err != nil {
			return fmt.Errorf("failed to create transactions: %w", err)
		}
		return nil
	})
}

// FindByGame retrieves transactions of a game with optional filtering.
// Entries come back in the order they were recorded.
func (r *GormTransactionRepository) FindByGame(ctx context.Context, gameID string, opts ledger.QueryOptions) ([]*ledger.Transaction, error) {
	query := r.db.WithContext(ctx).Where("game_id = ?", gameID)

	// Apply filters
	query = r.applyFilters(query, opts)

	query = query.Order("day ASC").Order("timestamp ASC").Order("position ASC")

	// Apply pagination
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}

	var models []TransactionModel
	result := query.Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find transactions: %w", result.Error)
	}

	// Convert models to domain entities
	transactions := make([]*ledger.Transaction, len(models))
	for i := range models {
		tx, err := r.modelToTransaction(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert transaction model: %w", err)
		}
		transactions[i] = tx
	}

	return transactions, nil
}

// CountByGame returns the count of transactions matching the criteria
func (r *GormTransactionRepository) CountByGame(ctx context.Context, gameID string, opts ledger.QueryOptions) (int, error) {
	query := r.db.WithContext(ctx).Model(&TransactionModel{}).Where("game_id = ?", gameID)

	// Apply filters
	query = r.applyFilters(query, opts)

	var count int64
	result := query.Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", result.Error)
	}

	return int(count), nil
}

// applyFilters applies query options to a GORM query
func (r *GormTransactionRepository) applyFilters(query *gorm.DB, opts ledger.QueryOptions) *gorm.DB {
	// Day range filtering
	if opts.FromDay != nil {
		query = query.Where("day >= ?", *opts.FromDay)
	}
	if opts.ToDay != nil {
		query = query.Where("day <= ?", *opts.ToDay)
	}

	// Category filtering
	if opts.Category != nil {
		query = query.Where("category = ?", opts.Category.String())
	}

	// Transaction type filtering
	if opts.TransactionType != nil {
		query = query.Where("transaction_type = ?", opts.TransactionType.String())
	}

	return query
}

// modelToTransaction converts database model to domain entity
func (r *GormTransactionRepository) modelToTransaction(model *TransactionModel) (*ledger.Transaction, error) {
	// Parse transaction ID
	id, err := ledger.ParseTransactionID(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction ID in database: %w", err)
	}

	// Parse transaction type
	transactionType, err := ledger.ParseTransactionType(model.TransactionType)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction type in database: %w", err)
	}

	// Parse category
	category, err := ledger.ParseCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("invalid category in database: %w", err)
	}

	// Parse metadata
	var metadata map[string]interface{}
	if model.Metadata != "" {
		if err := json.Unmarshal([]byte(model.Metadata), &metadata); err != nil {
			// If unmarshal fails, leave metadata as nil
			metadata = nil
		}
	}

	// Reconstruct transaction entity
	return ledger.ReconstructTransaction(
		id,
		model.GameID,
		model.Day,
		model.Timestamp,
		transactionType,
		category,
		model.Amount,
		model.BalanceBefore,
		model.BalanceAfter,
		model.Description,
		metadata,
	), nil
}

// transactionToModel converts domain entity to database model
func (r *GormTransactionRepository) transactionToModel(tx *ledger.Transaction) (*TransactionModel, error) {
	// Marshal metadata to JSON
	var metadataJSON string
	if tx.Metadata() != nil {
		bytes, err := json.Marshal(tx.Metadata())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal metadata: %w", err)
		}
		metadataJSON = string(bytes)
	}

	return &TransactionModel{
		ID:              tx.ID().String(),
		GameID:          tx.GameID(),
		Day:             tx.Day(),
		Timestamp:       tx.Timestamp(),
		TransactionType: tx.TransactionType().String(),
		Category:        tx.Category().String(),
		Amount:          tx.Amount(),
		BalanceBefore:   tx.BalanceBefore(),
		BalanceAfter:    tx.BalanceAfter(),
		Description:     tx.Description(),
		Metadata:        metadataJSON,
	}, nil
}
