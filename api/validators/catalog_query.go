package validators

import (
	"math"
	"net/url"

	"go.uber.org/multierr"

	"github.com/pawpantry/storefront-backend/internal/catalog"
	"github.com/pawpantry/storefront-backend/pkg/enums"
	pkgerrors "github.com/pawpantry/storefront-backend/pkg/errors"
	"github.com/pawpantry/storefront-backend/pkg/pagination"
)

const (
	QueryPetType  = "pet_type"
	QueryMeatType = "meat_type"
	QueryAgeGroup = "age_group"
	QueryFoodType = "food_type"
	QueryFeature  = "feature"
	QueryPriceMin = "price_min"
	QueryPriceMax = "price_max"
	QuerySearch   = "q"
	QueryPage     = "page"
	QueryPageSize = "page_size"

	maxSearchLength = 200
	maxPage         = 100000
)

// CatalogQueryDefaults fill in what a request leaves out.
type CatalogQueryDefaults struct {
	PageSize int
}

// CatalogQuery is a parsed product listing request.
type CatalogQuery struct {
	Filters  catalog.FilterState
	Page     int
	PageSize int
}

// ParseCatalogQuery reads the listing parameters. Every invalid parameter
// is reported in one validation error. Price filtering only applies when
// at least one bound is given; a missing bound leaves that side open.
func ParseCatalogQuery(values url.Values, defaults CatalogQueryDefaults) (CatalogQuery, error) {
	var (
		q    CatalogQuery
		errs error
		err  error
	)

	q.Filters.PetTypes, err = parseEnumList(values, QueryPetType, enums.ParsePetType)
	errs = multierr.Append(errs, err)
	q.Filters.MeatTypes, err = parseEnumList(values, QueryMeatType, enums.ParseMeatType)
	errs = multierr.Append(errs, err)
	q.Filters.AgeGroups, err = parseEnumList(values, QueryAgeGroup, enums.ParseAgeGroup)
	errs = multierr.Append(errs, err)
	q.Filters.FoodTypes, err = parseEnumList(values, QueryFoodType, enums.ParseFoodType)
	errs = multierr.Append(errs, err)
	q.Filters.Features = ParseQueryList(values, QueryFeature)
	q.Filters.Query = SanitizeString(values.Get(QuerySearch), maxSearchLength)

	minPrice, hasMin, err := ParseQueryFloat(values, QueryPriceMin)
	errs = multierr.Append(errs, err)
	maxPrice, hasMax, err := ParseQueryFloat(values, QueryPriceMax)
	errs = multierr.Append(errs, err)
	if hasMin || hasMax {
		r := catalog.PriceRange{Min: 0, Max: math.MaxFloat64}
		if hasMin {
			r.Min = minPrice
		}
		if hasMax {
			r.Max = maxPrice
		}
		q.Filters.PriceRange = &r
	}

	pageSize := defaults.PageSize
	if pageSize <= 0 {
		pageSize = pagination.DefaultPageSize
	}
	q.Page, err = ParseQueryInt(values, QueryPage, 1, 1, maxPage)
	errs = multierr.Append(errs, err)
	q.PageSize, err = ParseQueryInt(values, QueryPageSize, pageSize, 1, pagination.MaxPageSize)
	errs = multierr.Append(errs, err)

	if errs == nil {
		errs = q.Filters.Validate()
	}
	if errs != nil {
		return CatalogQuery{}, invalidQuery(errs)
	}
	return q, nil
}

func invalidQuery(err error) error {
	if typed := pkgerrors.As(err); typed != nil && len(multierr.Errors(err)) == 1 {
		return typed
	}
	problems := make([]string, 0)
	for _, e := range multierr.Errors(err) {
		if typed := pkgerrors.As(e); typed != nil {
			problems = append(problems, typed.Message())
			continue
		}
		problems = append(problems, e.Error())
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid catalog query").
		WithDetails(map[string]any{"problems": problems})
}
