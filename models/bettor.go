package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Bettor struct {
	gorm.Model
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex; size:64"`
	DisplayName *string
	Bankroll    decimal.Decimal `gorm:"type:decimal(12,2)"`
}
