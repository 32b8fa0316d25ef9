package inventory

import (
	"sort"
	"time"

	"github.com/radhian/inventory-costing/consts"
	"github.com/radhian/inventory-costing/entity"
	"github.com/radhian/inventory-costing/infra/db/model"

	"github.com/shopspring/decimal"
)

// Aggregate groups records by UTC calendar day, sums total cost per day,
// converts to millions, and classifies each day into a band. The series is
// sorted ascending by day. The grand total is summed across all records
// independent of the grouping. Pure function: the input is not mutated and
// re-running it yields the same output.
func Aggregate(records []model.DailyRecord) *entity.DailySummary {
	millions := decimal.NewFromInt(consts.MillionsDivisor)

	byDay := make(map[time.Time]decimal.Decimal)
	grandTotal := decimal.Zero
	for _, rec := range records {
		day := utcDay(rec.CapturedAt)
		byDay[day] = byDay[day].Add(rec.TotalCost)
		grandTotal = grandTotal.Add(rec.TotalCost)
	}

	series := make([]entity.DailySeriesPoint, 0, len(byDay))
	for day, total := range byDay {
		totalMillions := total.Div(millions)
		series = append(series, entity.DailySeriesPoint{
			Day:           day,
			TotalMillions: totalMillions.Round(2),
			Band:          classifyBand(totalMillions),
		})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Day.Before(series[j].Day)
	})

	return &entity.DailySummary{
		TotalMillions: grandTotal.Div(millions).Round(2),
		Series:        series,
	}
}

func (u *inventoryUsecase) DailySummary() (*entity.DailySummary, error) {
	records, err := u.dao.GetDailyRecords()
	if err != nil {
		return nil, err
	}
	return Aggregate(records), nil
}

func utcDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// classifyBand bands a day's total in millions: LOW below 4, MEDIUM below 8,
// HIGH from 8 up. Totals past 12 stay HIGH; clipping is a chart concern.
func classifyBand(totalMillions decimal.Decimal) entity.Band {
	switch {
	case totalMillions.LessThan(decimal.NewFromInt(consts.BandMediumFloor)):
		return entity.BandLow
	case totalMillions.LessThan(decimal.NewFromInt(consts.BandHighFloor)):
		return entity.BandMedium
	default:
		return entity.BandHigh
	}
}
