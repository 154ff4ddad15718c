package models

import "time"

// CartKV stores one serialized cart ledger under its namespaced key.
type CartKV struct {
	StorageKey string    `gorm:"column:storage_key;primaryKey"`
	Payload    string    `gorm:"column:payload;not null"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (CartKV) TableName() string { return "cart_kv" }
