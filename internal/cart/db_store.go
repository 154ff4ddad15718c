package cart

import (
	"context"
	"errors"
	"time"

	"github.com/pawpantry/storefront-backend/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DBStore keeps carts in the cart_kv table.
type DBStore struct {
	db *gorm.DB
}

func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

func (s *DBStore) Get(ctx context.Context, key string) (string, bool, error) {
	var row models.CartKV
	err := s.db.WithContext(ctx).First(&row, "storage_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return row.Payload, true, nil
}

func (s *DBStore) Set(ctx context.Context, key, value string) error {
	row := models.CartKV{StorageKey: key, Payload: value, UpdatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
}
