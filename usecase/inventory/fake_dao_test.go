package inventory

import (
	"errors"
	"sort"

	"github.com/radhian/inventory-costing/entity"
	"github.com/radhian/inventory-costing/infra/db/model"
)

// fakeDao is an in-memory DaoMethod for usecase tests.
type fakeDao struct {
	refs   []model.ReferenceItem
	daily  []model.DailyRecord
	nextID int64

	failCreate bool
	failFetch  bool
}

func (f *fakeDao) CreateReferenceItems(items []model.ReferenceItem) error {
	if f.failCreate {
		return &entity.StorageError{Op: "reference bulk insert", Err: errors.New("insert failed")}
	}
	for i := range items {
		f.nextID++
		items[i].ID = f.nextID
		f.refs = append(f.refs, items[i])
	}
	return nil
}

func (f *fakeDao) GetReferenceItems() ([]model.ReferenceItem, error) {
	if f.failFetch {
		return nil, &entity.StorageError{Op: "reference fetch", Err: errors.New("fetch failed")}
	}
	out := make([]model.ReferenceItem, len(f.refs))
	copy(out, f.refs)
	return out, nil
}

func (f *fakeDao) CreateDailyRecords(records []model.DailyRecord) error {
	if f.failCreate {
		return &entity.StorageError{Op: "daily bulk insert", Err: errors.New("insert failed")}
	}
	for i := range records {
		f.nextID++
		records[i].ID = f.nextID
		f.daily = append(f.daily, records[i])
	}
	return nil
}

func (f *fakeDao) GetDailyRecords() ([]model.DailyRecord, error) {
	if f.failFetch {
		return nil, &entity.StorageError{Op: "daily fetch", Err: errors.New("fetch failed")}
	}
	out := make([]model.DailyRecord, len(f.daily))
	copy(out, f.daily)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CapturedAt.Equal(out[j].CapturedAt) {
			return out[i].CapturedAt.After(out[j].CapturedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
