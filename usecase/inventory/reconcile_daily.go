package inventory

import (
	"time"

	"github.com/labstack/gommon/log"
	"github.com/radhian/inventory-costing/consts"
	"github.com/radhian/inventory-costing/entity"
	"github.com/radhian/inventory-costing/infra/db/model"

	"github.com/shopspring/decimal"
)

// ReconcileDailyBatch resolves each daily row against the current reference
// table, computes the extended cost, stamps every record with the same
// capture instant, and appends the batch as one bulk write. Output order
// matches input row order. Any parse or storage error rejects the whole
// batch; nothing is partially persisted.
func (u *inventoryUsecase) ReconcileDailyBatch(rows []entity.TableRow, now time.Time) ([]model.DailyRecord, error) {
	parsed := make([]entity.ParsedDailyRow, 0, len(rows))
	for _, row := range rows {
		p, err := parseDailyRow(row)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, p)
	}

	reference, err := u.dao.GetReferenceItems()
	if err != nil {
		return nil, err
	}
	costs := buildCostLookup(reference)

	records := make([]model.DailyRecord, 0, len(parsed))
	for _, p := range parsed {
		unitCost, found := costs[p.Item]
		if !found {
			unitCost = decimal.NewFromInt(consts.DefaultUnitCost)
		}

		records = append(records, model.DailyRecord{
			Item:       p.Item,
			OnHand:     p.OnHand,
			UnitCost:   unitCost,
			TotalCost:  unitCost.Mul(p.OnHand),
			CapturedAt: now,
		})
	}

	if err := u.dao.CreateDailyRecords(records); err != nil {
		return nil, err
	}

	log.Infof("[Reconcile] Persisted %d daily records captured at %s", len(records), now.UTC().Format(time.RFC3339))
	return records, nil
}

// buildCostLookup builds the item→unit-cost map in insertion order. When the
// table holds duplicate item names the first occurrence wins.
func buildCostLookup(reference []model.ReferenceItem) map[string]decimal.Decimal {
	costs := make(map[string]decimal.Decimal, len(reference))
	for _, ref := range reference {
		if _, seen := costs[ref.Item]; seen {
			continue
		}
		costs[ref.Item] = ref.UnitCost
	}
	return costs
}
