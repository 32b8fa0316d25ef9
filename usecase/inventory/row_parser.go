package inventory

import (
	"strings"

	"github.com/radhian/inventory-costing/consts"
	"github.com/radhian/inventory-costing/entity"

	"github.com/shopspring/decimal"
)

// parseReferenceRow normalizes one reference-table row. Rows without an item
// name are dropped (ok == false). An absent or empty unit cost defaults to 1;
// an explicit 0 is kept.
func parseReferenceRow(row entity.TableRow) (entity.ParsedReferenceRow, bool, error) {
	item := strings.TrimSpace(row[consts.HeaderItem])
	if item == "" {
		return entity.ParsedReferenceRow{}, false, nil
	}

	unitCost, err := numericField(row, consts.HeaderUnitCost, consts.DefaultUnitCost)
	if err != nil {
		return entity.ParsedReferenceRow{}, false, err
	}

	return entity.ParsedReferenceRow{Item: item, UnitCost: unitCost}, true, nil
}

// parseDailyRow normalizes one daily snapshot row. Unlike reference rows,
// rows without an item name are retained and produce a record with an empty
// item field.
func parseDailyRow(row entity.TableRow) (entity.ParsedDailyRow, error) {
	item := strings.TrimSpace(row[consts.HeaderItem])

	onHand, err := numericField(row, consts.HeaderOnHand, consts.DefaultOnHand)
	if err != nil {
		return entity.ParsedDailyRow{}, err
	}

	return entity.ParsedDailyRow{Item: item, OnHand: onHand}, nil
}

func numericField(row entity.TableRow, column string, fallback int64) (decimal.Decimal, error) {
	raw, ok := row[column]
	if !ok || strings.TrimSpace(raw) == "" {
		return decimal.NewFromInt(fallback), nil
	}

	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, &entity.MalformedValueError{Column: column, Value: raw}
	}
	return value, nil
}
