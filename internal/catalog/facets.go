package catalog

import "github.com/pawpantry/storefront-backend/pkg/enums"

// Facets lists the distinct values present in a catalog, in order of first
// appearance, for building filter controls.
type Facets struct {
	PetTypes   []enums.PetType  `json:"petTypes"`
	MeatTypes  []enums.MeatType `json:"meatTypes"`
	AgeGroups  []enums.AgeGroup `json:"ageGroups"`
	FoodTypes  []enums.FoodType `json:"foodTypes"`
	Features   []string         `json:"features"`
	PriceRange PriceRange       `json:"priceRange"`
}

// BuildFacets derives the facets of products.
func BuildFacets(products []Product) Facets {
	f := Facets{
		PetTypes:   []enums.PetType{},
		MeatTypes:  []enums.MeatType{},
		AgeGroups:  []enums.AgeGroup{},
		FoodTypes:  []enums.FoodType{},
		Features:   []string{},
		PriceRange: PriceBounds(products),
	}
	seenPets := map[enums.PetType]bool{}
	seenMeats := map[enums.MeatType]bool{}
	seenAges := map[enums.AgeGroup]bool{}
	seenFoods := map[enums.FoodType]bool{}
	seenFeatures := map[string]bool{}

	for _, p := range products {
		f.PetTypes = appendUnique(f.PetTypes, seenPets, p.PetType)
		f.MeatTypes = appendUnique(f.MeatTypes, seenMeats, p.MeatType)
		f.AgeGroups = appendUnique(f.AgeGroups, seenAges, p.AgeGroup)
		f.FoodTypes = appendUnique(f.FoodTypes, seenFoods, p.FoodType)
		for _, feature := range p.Features {
			f.Features = appendUnique(f.Features, seenFeatures, feature)
		}
	}
	return f
}

// PriceBounds returns the min and max catalog price, or the default range
// when the catalog is empty.
func PriceBounds(products []Product) PriceRange {
	if len(products) == 0 {
		return DefaultPriceRange()
	}
	bounds := PriceRange{Min: products[0].Price, Max: products[0].Price}
	for _, p := range products[1:] {
		bounds.Min = min(bounds.Min, p.Price)
		bounds.Max = max(bounds.Max, p.Price)
	}
	return bounds
}

func appendUnique[T comparable](out []T, seen map[T]bool, v T) []T {
	if seen[v] {
		return out
	}
	seen[v] = true
	return append(out, v)
}
