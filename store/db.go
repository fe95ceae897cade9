package store

import (
	"context"

	"gorm.io/gorm"

	"junket/metrics"
)

// DBLoader reads the five collections straight from Postgres.
type DBLoader struct {
	DB *gorm.DB
}

func NewDBLoader(db *gorm.DB) *DBLoader {
	return &DBLoader{DB: db}
}

func (l *DBLoader) Load(ctx context.Context) (*metrics.Snapshot, error) {
	snap := &metrics.Snapshot{}
	db := l.DB.WithContext(ctx)

	if err := db.Find(&snap.Agents).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&snap.Customers).Error; err != nil {
		return nil, err
	}
	if err := db.
		Preload("Participants").
		Preload("Expenses").
		Preload("Sharing").
		Find(&snap.Trips).Error; err != nil {
		return nil, err
	}
	if err := db.Order("recorded_at").Find(&snap.RollingRecords).Error; err != nil {
		return nil, err
	}
	if err := db.Order("recorded_at").Find(&snap.BuyInOutRecords).Error; err != nil {
		return nil, err
	}
	return snap, nil
}
