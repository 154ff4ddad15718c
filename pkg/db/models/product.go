package models

import (
	"time"

	"github.com/lib/pq"
)

// Product is the persisted catalog row.
type Product struct {
	ID           int            `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name         string         `gorm:"column:name;not null"`
	Image        string         `gorm:"column:image;not null;default:''"`
	Price        float64        `gorm:"column:price;not null"`
	Description  string         `gorm:"column:description;not null;default:''"`
	PetType      string         `gorm:"column:pet_type;not null"`
	MeatType     string         `gorm:"column:meat_type;not null"`
	AgeGroup     string         `gorm:"column:age_group;not null"`
	FoodType     string         `gorm:"column:food_type;not null"`
	PackageValue float64        `gorm:"column:package_value;not null"`
	PackageUnit  string         `gorm:"column:package_unit;not null"`
	Features     pq.StringArray `gorm:"column:features;type:text"`
	Rating       *float64       `gorm:"column:rating"`
	CatalogOrder int            `gorm:"column:catalog_order;not null;default:0"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (Product) TableName() string { return "products" }
