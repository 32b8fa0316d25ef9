package inventory

import (
	"time"

	"github.com/radhian/inventory-costing/entity"
	"github.com/radhian/inventory-costing/infra/db/dao"
	"github.com/radhian/inventory-costing/infra/db/model"
)

type InventoryUsecase interface {
	IngestReferenceBatch(rows []entity.TableRow) (int64, error)
	IngestReferenceJSON(req entity.ReferenceJSONRequest) (int64, error)
	ListReferenceItems() ([]model.ReferenceItem, error)
	ReconcileDailyBatch(rows []entity.TableRow, now time.Time) ([]model.DailyRecord, error)
	ListDailyRecords() ([]model.DailyRecord, error)
	DailySummary() (*entity.DailySummary, error)
}

type inventoryUsecase struct {
	dao dao.DaoMethod
}

func NewInventoryUsecase(d dao.DaoMethod) InventoryUsecase {
	return &inventoryUsecase{dao: d}
}
