package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	KindSpread = "spread"
	KindTotal  = "total"

	PickOver  = "Over"
	PickUnder = "Under"

	OutcomeWin  = "W"
	OutcomeLoss = "L"
	OutcomePush = "P"
)

type Wager struct {
	gorm.Model
	ID         uint   `gorm:"primaryKey"`
	Bettor     string `gorm:"size:64;index"`
	GameLabel  string
	Sport      string          `gorm:"size:64"`
	Kind       string          `gorm:"size:16"`
	Selection  string          `gorm:"size:128"`
	Line       decimal.Decimal `gorm:"type:decimal(10,2)"`
	Stake      decimal.Decimal `gorm:"type:decimal(10,2)"`
	WaiveJuice bool            `gorm:"default:false"`
	Settled    bool            `gorm:"default:false"`
	Settlement Settlement      `gorm:"embedded;embeddedPrefix:settlement_"`
	Imported   bool            `gorm:"default:false"`
}

// Settlement is the computed result of one wager. It is written wholesale on
// settlement (or re-settlement) and never field-patched afterwards: ProfitLoss
// is always derived from (Outcome, Stake, WaiveJuice).
type Settlement struct {
	Outcome        string          `gorm:"size:1"`
	ProfitLoss     decimal.Decimal `gorm:"type:decimal(10,2)"`
	Payout         decimal.Decimal `gorm:"type:decimal(10,2)"`
	ResolvedAt     *time.Time
	FinalScoreText string
}
