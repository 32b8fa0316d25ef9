package inventory

import (
	"github.com/radhian/inventory-costing/infra/db/model"
)

func (u *inventoryUsecase) ListReferenceItems() ([]model.ReferenceItem, error) {
	return u.dao.GetReferenceItems()
}

func (u *inventoryUsecase) ListDailyRecords() ([]model.DailyRecord, error) {
	return u.dao.GetDailyRecords()
}
