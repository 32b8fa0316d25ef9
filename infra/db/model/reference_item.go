package model

import "github.com/shopspring/decimal"

type ReferenceItem struct {
	ID       int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Item     string          `gorm:"size:255;not null;index" json:"item"`
	UnitCost decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"unitCost"`
}
