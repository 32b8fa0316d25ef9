package inventory

import (
	"github.com/labstack/gommon/log"
	"github.com/radhian/inventory-costing/consts"
	"github.com/radhian/inventory-costing/entity"
	"github.com/radhian/inventory-costing/infra/db/model"

	"github.com/shopspring/decimal"
)

// IngestReferenceBatch parses decoded sheet rows in reference mode and
// appends them. Rows with an empty item name are excluded from the batch and
// from the returned count. Any malformed unit cost fails the whole batch
// before the write.
func (u *inventoryUsecase) IngestReferenceBatch(rows []entity.TableRow) (int64, error) {
	items := make([]model.ReferenceItem, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		parsed, ok, err := parseReferenceRow(row)
		if err != nil {
			return 0, err
		}
		if !ok {
			dropped++
			continue
		}
		items = append(items, model.ReferenceItem{
			Item:     parsed.Item,
			UnitCost: parsed.UnitCost,
		})
	}

	if err := u.dao.CreateReferenceItems(items); err != nil {
		return 0, err
	}

	log.Infof("[ReferenceIngest] Inserted %d reference items (%d rows dropped)", len(items), dropped)
	return int64(len(items)), nil
}

// IngestReferenceJSON zips the parallel items and unitCosts arrays by index.
// A cost that is missing for its index, or zero, defaults to 1.
func (u *inventoryUsecase) IngestReferenceJSON(req entity.ReferenceJSONRequest) (int64, error) {
	if req.Items == nil {
		return 0, entity.ErrSchemaAbsence
	}

	items := make([]model.ReferenceItem, 0, len(req.Items))
	for i, item := range req.Items {
		unitCost := decimal.NewFromInt(consts.DefaultUnitCost)
		if i < len(req.UnitCosts) && !req.UnitCosts[i].IsZero() {
			unitCost = req.UnitCosts[i]
		}
		items = append(items, model.ReferenceItem{Item: item, UnitCost: unitCost})
	}

	if err := u.dao.CreateReferenceItems(items); err != nil {
		return 0, err
	}

	log.Infof("[ReferenceIngest] Inserted %d reference items via JSON", len(items))
	return int64(len(items)), nil
}
