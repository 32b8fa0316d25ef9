package dao

import (
	"github.com/radhian/inventory-costing/entity"
	"github.com/radhian/inventory-costing/infra/db/model"
)

// CreateReferenceItems appends the batch inside one transaction so a failed
// insert leaves nothing behind. Pure append: no dedup, no upsert.
func (d *dao) CreateReferenceItems(items []model.ReferenceItem) error {
	tx := d.db.Begin()
	if tx.Error != nil {
		return &entity.StorageError{Op: "reference bulk insert", Err: tx.Error}
	}

	for i := range items {
		if err := tx.Create(&items[i]).Error; err != nil {
			tx.Rollback()
			return &entity.StorageError{Op: "reference bulk insert", Err: err}
		}
	}

	if err := tx.Commit().Error; err != nil {
		return &entity.StorageError{Op: "reference bulk insert", Err: err}
	}
	return nil
}

// GetReferenceItems returns the full table in insertion order, so duplicate
// item names resolve to the first occurrence during lookup construction.
func (d *dao) GetReferenceItems() ([]model.ReferenceItem, error) {
	var items []model.ReferenceItem
	if err := d.db.Order("id ASC").Find(&items).Error; err != nil {
		return nil, &entity.StorageError{Op: "reference fetch", Err: err}
	}
	return items, nil
}
