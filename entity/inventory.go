package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TableRow is one decoded sheet row, keyed by header label. A header whose
// cell was empty maps to ""; trailing cells missing from the sheet row are
// absent from the map. Both are treated the same by the parsers.
type TableRow map[string]string

type ParsedReferenceRow struct {
	Item     string
	UnitCost decimal.Decimal
}

type ParsedDailyRow struct {
	Item   string
	OnHand decimal.Decimal
}

// ReferenceJSONRequest carries parallel arrays zipped by index:
// UnitCosts[i] prices Items[i], missing or zero entries default to 1.
type ReferenceJSONRequest struct {
	Items     []string          `json:"items"`
	UnitCosts []decimal.Decimal `json:"unitCosts"`
}

type Band string

const (
	BandLow    Band = "LOW"
	BandMedium Band = "MEDIUM"
	BandHigh   Band = "HIGH"
)

// DailySeriesPoint is one day of the banded cost series. Day is a UTC
// calendar date at midnight; TotalMillions is rounded to two decimals for
// display, banding is done on the unrounded total.
type DailySeriesPoint struct {
	Day           time.Time       `json:"day"`
	TotalMillions decimal.Decimal `json:"totalMillions"`
	Band          Band            `json:"band"`
}

type DailySummary struct {
	TotalMillions decimal.Decimal    `json:"totalMillions"`
	Series        []DailySeriesPoint `json:"series"`
}
