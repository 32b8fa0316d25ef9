package dao

import (
	"github.com/radhian/inventory-costing/entity"
	"github.com/radhian/inventory-costing/infra/db/model"
)

// CreateDailyRecords appends the reconciled batch inside one transaction:
// either every record persists or the whole request fails.
func (d *dao) CreateDailyRecords(records []model.DailyRecord) error {
	tx := d.db.Begin()
	if tx.Error != nil {
		return &entity.StorageError{Op: "daily bulk insert", Err: tx.Error}
	}

	for i := range records {
		if err := tx.Create(&records[i]).Error; err != nil {
			tx.Rollback()
			return &entity.StorageError{Op: "daily bulk insert", Err: err}
		}
	}

	if err := tx.Commit().Error; err != nil {
		return &entity.StorageError{Op: "daily bulk insert", Err: err}
	}
	return nil
}

func (d *dao) GetDailyRecords() ([]model.DailyRecord, error) {
	var records []model.DailyRecord
	if err := d.db.Order("captured_at DESC, id DESC").Find(&records).Error; err != nil {
		return nil, &entity.StorageError{Op: "daily fetch", Err: err}
	}
	return records, nil
}
