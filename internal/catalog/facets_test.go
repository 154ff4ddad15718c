package catalog

import (
	"testing"

	"github.com/pawpantry/storefront-backend/pkg/enums"
	"github.com/stretchr/testify/assert"
)

func TestBuildFacets_FirstAppearanceOrder(t *testing.T) {
	f := BuildFacets(SampleProducts())

	assert.Equal(t, []enums.PetType{enums.PetTypeDog, enums.PetTypeCat, enums.PetTypeRodent, enums.PetTypeFish}, f.PetTypes)
	assert.Equal(t, []enums.FoodType{enums.FoodTypeDry, enums.FoodTypeWet}, f.FoodTypes)
	assert.Equal(t, []enums.AgeGroup{enums.AgeGroupAdult, enums.AgeGroupKitten, enums.AgeGroupSenior}, f.AgeGroups)
	assert.Equal(t, "immunity support", f.Features[0])

	seen := map[string]int{}
	for _, feature := range f.Features {
		seen[feature]++
	}
	for feature, count := range seen {
		assert.Equal(t, 1, count, "feature %q repeated", feature)
	}
	assert.Equal(t, PriceRange{Min: 85, Max: 4200}, f.PriceRange)
}

func TestPriceBounds_EmptyCatalogUsesDefault(t *testing.T) {
	assert.Equal(t, PriceRange{Min: 0, Max: 5000}, PriceBounds(nil))

	f := BuildFacets(nil)
	assert.NotNil(t, f.PetTypes)
	assert.Empty(t, f.Features)
}
