package catalog

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"github.com/pawpantry/storefront-backend/pkg/db"
	"github.com/pawpantry/storefront-backend/pkg/db/models"
	"github.com/pawpantry/storefront-backend/pkg/enums"
	pkgerrors "github.com/pawpantry/storefront-backend/pkg/errors"
	"gorm.io/gorm"
)

// Repository persists catalog products in the products table. It doubles as
// a Source for deployments that keep the catalog in SQL.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

func (r *Repository) Name() string { return "db" }

// Fetch lists the catalog in display order.
func (r *Repository) Fetch(ctx context.Context) ([]Product, error) {
	return r.List(ctx)
}

// List returns every product ordered by catalog position.
func (r *Repository) List(ctx context.Context) ([]Product, error) {
	var rows []models.Product
	if err := r.db.WithContext(ctx).
		Order("catalog_order ASC").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	out := make([]Product, 0, len(rows))
	for i := range rows {
		out = append(out, fromModel(&rows[i]))
	}
	return out, nil
}

// FindByID loads one product.
func (r *Repository) FindByID(ctx context.Context, id int) (*Product, error) {
	var row models.Product
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find product")
	}
	p := fromModel(&row)
	return &p, nil
}

// Seed inserts products in order, skipping ids that already exist. It
// returns how many rows were written.
func (r *Repository) Seed(ctx context.Context, products []Product) (int, error) {
	inserted := 0
	for i, p := range products {
		if err := p.Validate(); err != nil {
			return inserted, err
		}
		row := toModel(p, i)
		err := r.db.WithContext(ctx).Create(&row).Error
		if db.IsUniqueViolation(err, "") {
			continue
		}
		if err != nil {
			return inserted, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seed product")
		}
		inserted++
	}
	return inserted, nil
}

func toModel(p Product, order int) models.Product {
	row := models.Product{
		ID:           p.ID,
		Name:         p.Name,
		Image:        p.Image,
		Price:        p.Price,
		Description:  p.Description,
		PetType:      p.PetType.String(),
		MeatType:     p.MeatType.String(),
		AgeGroup:     p.AgeGroup.String(),
		FoodType:     p.FoodType.String(),
		PackageValue: p.PackageSize.Value,
		PackageUnit:  p.PackageSize.Unit.String(),
		CatalogOrder: order,
	}
	if len(p.Features) > 0 {
		row.Features = pq.StringArray(append([]string{}, p.Features...))
	}
	if p.Rating != nil {
		v := *p.Rating
		row.Rating = &v
	}
	return row
}

func fromModel(row *models.Product) Product {
	p := Product{
		ID:          row.ID,
		Name:        row.Name,
		Image:       row.Image,
		Price:       row.Price,
		Description: row.Description,
		PetType:     enums.PetType(row.PetType),
		MeatType:    enums.MeatType(row.MeatType),
		AgeGroup:    enums.AgeGroup(row.AgeGroup),
		FoodType:    enums.FoodType(row.FoodType),
		PackageSize: PackageSize{Value: row.PackageValue, Unit: enums.PackageUnit(row.PackageUnit)},
		Rating:      row.Rating,
	}
	if len(row.Features) > 0 {
		p.Features = append([]string{}, row.Features...)
	}
	return p
}
