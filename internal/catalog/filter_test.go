package catalog

import (
	"testing"

	"github.com/pawpantry/storefront-backend/pkg/enums"
	pkgerrors "github.com/pawpantry/storefront-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(products []Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter_EmptyStateKeepsEverything(t *testing.T) {
	products := SampleProducts()
	got := Filter(products, FilterState{})
	assert.Equal(t, ids(products), ids(got))
}

func TestFilter_CategoricalDimensions(t *testing.T) {
	products := SampleProducts()

	cases := []struct {
		name  string
		state FilterState
		want  []int
	}{
		{name: "cats", state: FilterState{PetTypes: []enums.PetType{enums.PetTypeCat}}, want: []int{2, 4, 8, 9}},
		{name: "or within dimension", state: FilterState{PetTypes: []enums.PetType{enums.PetTypeFish, enums.PetTypeRodent}}, want: []int{11, 12}},
		{name: "chicken", state: FilterState{MeatTypes: []enums.MeatType{enums.MeatTypeChicken}}, want: []int{1, 2, 5, 8, 9}},
		{name: "and across dimensions", state: FilterState{
			PetTypes:  []enums.PetType{enums.PetTypeDog},
			FoodTypes: []enums.FoodType{enums.FoodTypeWet},
		}, want: []int{10}},
		{name: "senior or kitten", state: FilterState{AgeGroups: []enums.AgeGroup{enums.AgeGroupSenior, enums.AgeGroupKitten}}, want: []int{2, 5}},
		{name: "no birds stocked", state: FilterState{PetTypes: []enums.PetType{enums.PetTypeBird}}, want: []int{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(Filter(products, tc.state)))
		})
	}
}

func TestFilter_PriceRangeIsInclusive(t *testing.T) {
	products := SampleProducts()

	got := Filter(products, FilterState{PriceRange: &PriceRange{Min: 85, Max: 120}})
	assert.Equal(t, []int{9, 10}, ids(got))

	got = Filter(products, FilterState{PriceRange: &PriceRange{Min: 100, Max: 1000}})
	assert.Equal(t, []int{10, 11, 12}, ids(got))
}

func TestFilter_FeaturesMatchAny(t *testing.T) {
	products := SampleProducts()

	got := Filter(products, FilterState{Features: []string{"grain-free", "hypoallergenic"}})
	assert.Equal(t, []int{4, 6, 7}, ids(got))

	featureless := Product{ID: 99, Name: "Plain", PetType: enums.PetTypeDog}
	assert.False(t, Matches(featureless, FilterState{Features: []string{"grain-free"}}))
	assert.True(t, Matches(featureless, FilterState{}))
}

func TestFilter_TextQuery(t *testing.T) {
	products := SampleProducts()

	assert.Equal(t, []int{4, 7}, ids(Filter(products, FilterState{Query: "  GRAIN  "})))
	assert.Equal(t, []int{1, 5}, ids(Filter(products, FilterState{Query: "royal canin"})))
	// feature-only hit
	assert.Equal(t, []int{8}, ids(Filter(products, FilterState{Query: "urinary"})))
	// whitespace-only disables the text filter
	assert.Len(t, Filter(products, FilterState{Query: "   "}), len(products))
	assert.Empty(t, Filter(products, FilterState{Query: "caviar"}))
}

func TestFilter_EmptyCatalog(t *testing.T) {
	got := Filter(nil, FilterState{PetTypes: []enums.PetType{enums.PetTypeCat}})
	assert.Empty(t, got)
}

func TestFilterState_Validate(t *testing.T) {
	require.NoError(t, FilterState{}.Validate())
	require.NoError(t, FilterState{PriceRange: &PriceRange{Min: 10, Max: 10}}.Validate())

	err := FilterState{PriceRange: &PriceRange{Min: 11, Max: 10}}.Validate()
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestFilterState_MergeOnlyReplacesProvidedFields(t *testing.T) {
	base := FilterState{
		PetTypes:   []enums.PetType{enums.PetTypeDog},
		PriceRange: &PriceRange{Min: 85, Max: 4200},
		Features:   []string{"grain-free"},
		Query:      "royal",
	}

	cats := []enums.PetType{enums.PetTypeCat}
	query := ""
	merged := base.Merge(FilterPatch{PetTypes: &cats, Query: &query})

	assert.Equal(t, []enums.PetType{enums.PetTypeCat}, merged.PetTypes)
	assert.Equal(t, "", merged.Query)
	assert.Equal(t, []string{"grain-free"}, merged.Features)
	require.NotNil(t, merged.PriceRange)
	assert.Equal(t, PriceRange{Min: 85, Max: 4200}, *merged.PriceRange)

	// the original state is untouched
	cats[0] = enums.PetTypeFish
	merged.PriceRange.Max = 1
	assert.Equal(t, []enums.PetType{enums.PetTypeDog}, base.PetTypes)
	assert.Equal(t, 4200.0, base.PriceRange.Max)
	assert.Equal(t, enums.PetTypeCat, merged.PetTypes[0])
}
