package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyRecord is one reconciled inventory line. TotalCost is computed once at
// reconciliation time from the UnitCost and OnHand stored on the same record
// and is never recomputed afterward.
type DailyRecord struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Item       string          `gorm:"size:255" json:"item"`
	OnHand     decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"onHand"`
	UnitCost   decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"unitCost"`
	TotalCost  decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"totalCost"`
	CapturedAt time.Time       `gorm:"not null;index" json:"capturedAt"`
}
