package persistence

import (
	"time"
)

// GameModel represents the games table. State holds the lz4-compressed
// JSON of the whole game; the other columns are denormalized for listing.
type GameModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	Commander  string    `gorm:"column:commander;not null"`
	Difficulty string    `gorm:"column:difficulty;not null"`
	Day        int       `gorm:"column:day;not null;default:0"`
	Credits    int       `gorm:"column:credits;not null"`
	Debt       int       `gorm:"column:debt;not null;default:0"`
	Ended      bool      `gorm:"column:ended;not null;default:false"`
	State      []byte    `gorm:"column:state;not null"`
	StateSize  int       `gorm:"column:state_size;not null"`     // Uncompressed JSON length
	Digest     string    `gorm:"column:digest;size:64;not null"` // blake3 of the uncompressed JSON
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null"`
}

func (GameModel) TableName() string {
	return "games"
}

// TransactionModel represents the transactions table
type TransactionModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	GameID          string    `gorm:"column:game_id;not null;index:idx_transactions_game_day"`
	Day             int       `gorm:"column:day;not null;index:idx_transactions_game_day"`
	Timestamp       time.Time `gorm:"column:timestamp;not null"`
	Position        int       `gorm:"column:position;not null;default:0"` // Order within one command
	TransactionType string    `gorm:"column:transaction_type;not null"`
	Category        string    `gorm:"column:category;not null"`
	Amount          int       `gorm:"column:amount;not null"`
	BalanceBefore   int       `gorm:"column:balance_before;not null"`
	BalanceAfter    int       `gorm:"column:balance_after;not null"`
	Description     string    `gorm:"column:description;type:text"`
	Metadata        string    `gorm:"column:metadata;type:text"` // JSON as text
}

func (TransactionModel) TableName() string {
	return "transactions"
}

// PriceHistoryModel represents the price_history table
type PriceHistoryModel struct {
	ID         int       `gorm:"column:id;primaryKey;autoIncrement"`
	GameID     string    `gorm:"column:game_id;not null;index:idx_price_history_lookup"`
	SystemID   int       `gorm:"column:system_id;not null;index:idx_price_history_lookup"`
	Commodity  int       `gorm:"column:commodity;not null;index:idx_price_history_lookup"`
	Day        int       `gorm:"column:day;not null"`
	BuyPrice   int       `gorm:"column:buy_price;not null"`
	SellPrice  int       `gorm:"column:sell_price;not null"`
	Quantity   int       `gorm:"column:quantity;not null"`
	RecordedAt time.Time `gorm:"column:recorded_at;not null"`
}

func (PriceHistoryModel) TableName() string {
	return "price_history"
}

// AllModels lists the models AutoMigrate creates
func AllModels() []interface{} {
	return []interface{}{
		&GameModel{},
		&TransactionModel{},
		&PriceHistoryModel{},
	}
}
