package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LocalStorageRepository is a small persistent key/value store, the
// client-side equivalent of browser localStorage.
type LocalStorageRepository struct {
	db *gorm.DB
}

func NewLocalStorageRepository(db *gorm.DB) *LocalStorageRepository {
	return &LocalStorageRepository{db: db}
}

type storageItemModel struct {
	Key       string    `gorm:"column:item_key;primaryKey"`
	Value     string    `gorm:"column:item_value;type:text"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (storageItemModel) TableName() string { return "local_storage" }

func (r *LocalStorageRepository) Migrate() error {
	return r.db.AutoMigrate(&storageItemModel{})
}

func (r *LocalStorageRepository) GetItem(ctx context.Context, key string) (string, bool, error) {
	var m storageItemModel
	err := r.db.WithContext(ctx).Where("item_key = ?", key).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return m.Value, true, nil
}

func (r *LocalStorageRepository) SetItem(ctx context.Context, key, value string) error {
	m := storageItemModel{Key: key, Value: value, UpdatedAt: time.Now()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"item_value", "updated_at"}),
		}).
		Create(&m).Error
}

func (r *LocalStorageRepository) RemoveItem(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("item_key = ?", key).Delete(&storageItemModel{}).Error
}
