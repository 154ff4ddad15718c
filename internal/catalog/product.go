package catalog

import (
	"fmt"
	"strings"

	"github.com/pawpantry/storefront-backend/pkg/enums"
	pkgerrors "github.com/pawpantry/storefront-backend/pkg/errors"
)

// PackageSize is the net weight of one package.
type PackageSize struct {
	Value float64           `json:"value" yaml:"value"`
	Unit  enums.PackageUnit `json:"unit" yaml:"unit"`
}

func (p PackageSize) String() string {
	return fmt.Sprintf("%g%s", p.Value, p.Unit)
}

// Product is one immutable catalog listing.
type Product struct {
	ID          int            `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Image       string         `json:"image" yaml:"image"`
	Price       float64        `json:"price" yaml:"price"`
	Description string         `json:"description" yaml:"description"`
	PetType     enums.PetType  `json:"petType" yaml:"petType"`
	MeatType    enums.MeatType `json:"meatType" yaml:"meatType"`
	AgeGroup    enums.AgeGroup `json:"ageGroup" yaml:"ageGroup"`
	FoodType    enums.FoodType `json:"foodType" yaml:"foodType"`
	PackageSize PackageSize    `json:"packageSize" yaml:"packageSize"`
	Features    []string       `json:"features,omitempty" yaml:"features,omitempty"`
	Rating      *float64       `json:"rating,omitempty" yaml:"rating,omitempty"`
}

// Validate checks the listing invariants a catalog relies on.
func (p Product) Validate() error {
	var problems []string
	if p.ID <= 0 {
		problems = append(problems, "id must be positive")
	}
	if strings.TrimSpace(p.Name) == "" {
		problems = append(problems, "name is required")
	}
	if p.Price < 0 {
		problems = append(problems, "price must not be negative")
	}
	if !p.PetType.IsValid() {
		problems = append(problems, fmt.Sprintf("unknown pet type %q", p.PetType))
	}
	if !p.MeatType.IsValid() {
		problems = append(problems, fmt.Sprintf("unknown meat type %q", p.MeatType))
	}
	if !p.AgeGroup.IsValid() {
		problems = append(problems, fmt.Sprintf("unknown age group %q", p.AgeGroup))
	}
	if !p.FoodType.IsValid() {
		problems = append(problems, fmt.Sprintf("unknown food type %q", p.FoodType))
	}
	if p.PackageSize.Value <= 0 {
		problems = append(problems, "package size must be positive")
	}
	if !p.PackageSize.Unit.IsValid() {
		problems = append(problems, fmt.Sprintf("unknown package unit %q", p.PackageSize.Unit))
	}
	if p.Rating != nil && (*p.Rating < 0 || *p.Rating > 5) {
		problems = append(problems, "rating must be between 0 and 5")
	}
	if len(problems) == 0 {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("product %d is invalid", p.ID)).
		WithDetails(map[string]any{"problems": problems})
}

// HasFeature reports whether the product carries the exact feature tag.
func (p Product) HasFeature(tag string) bool {
	for _, f := range p.Features {
		if f == tag {
			return true
		}
	}
	return false
}
