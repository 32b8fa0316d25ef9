package dao

import (
	"github.com/radhian/inventory-costing/infra/db/model"

	"github.com/jinzhu/gorm"
)

type DaoMethod interface {
	CreateReferenceItems(items []model.ReferenceItem) error
	GetReferenceItems() ([]model.ReferenceItem, error)
	CreateDailyRecords(records []model.DailyRecord) error
	GetDailyRecords() ([]model.DailyRecord, error)
}

type dao struct {
	db *gorm.DB
}

func NewDaoMethod(db *gorm.DB) DaoMethod {
	return &dao{db: db}
}
