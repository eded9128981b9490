package models

import (
	"time"

	"gorm.io/gorm"
)

// TransactionKind defines whether a transaction is income or expense
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// Transaction is a single income or expense entry owned by a user.
// Soft deletion is an explicit flag so binned entries stay queryable;
// a permanent delete removes the row entirely.
type Transaction struct {
	gorm.Model
	UserID    uint            `gorm:"not null;index" json:"user"`
	Text      string          `gorm:"not null" json:"text"`
	Amount    float64         `gorm:"not null" json:"amount"`
	Kind      TransactionKind `gorm:"type:varchar(10);not null" json:"type"`
	Category  string          `gorm:"default:'General'" json:"category"`
	IsDeleted bool            `gorm:"default:false" json:"isDeleted"`
	Date      time.Time       `gorm:"not null" json:"date"`
	Month     int             `json:"month"` // 0-11, cached from Date for filtering
	Year      int             `json:"year"`  // cached from Date for filtering

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Transaction) TableName() string {
	return "transactions"
}
