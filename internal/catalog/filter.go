package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pawpantry/storefront-backend/pkg/enums"
	pkgerrors "github.com/pawpantry/storefront-backend/pkg/errors"
)

const (
	DefaultPriceMin = 0
	DefaultPriceMax = 5000
)

// PriceRange is an inclusive price interval.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DefaultPriceRange is used when no catalog bounds are known.
func DefaultPriceRange() PriceRange {
	return PriceRange{Min: DefaultPriceMin, Max: DefaultPriceMax}
}

// Contains reports whether price lies in [Min, Max].
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// FilterState is the user's current selection. Empty dimensions do not
// restrict, a nil PriceRange disables price filtering.
type FilterState struct {
	PetTypes   []enums.PetType  `json:"petTypes"`
	MeatTypes  []enums.MeatType `json:"meatTypes"`
	AgeGroups  []enums.AgeGroup `json:"ageGroups"`
	FoodTypes  []enums.FoodType `json:"foodTypes"`
	PriceRange *PriceRange      `json:"priceRange,omitempty"`
	Features   []string         `json:"features"`
	Query      string           `json:"searchQuery"`
}

// Validate rejects inverted price ranges.
func (s FilterState) Validate() error {
	if s.PriceRange != nil && s.PriceRange.Min > s.PriceRange.Max {
		return pkgerrors.New(pkgerrors.CodeValidation, "price range min must not exceed max").
			WithDetails(map[string]any{"min": s.PriceRange.Min, "max": s.PriceRange.Max})
	}
	return nil
}

// Clone returns a deep copy so callers may mutate the result freely.
func (s FilterState) Clone() FilterState {
	out := FilterState{
		PetTypes:  slices.Clone(s.PetTypes),
		MeatTypes: slices.Clone(s.MeatTypes),
		AgeGroups: slices.Clone(s.AgeGroups),
		FoodTypes: slices.Clone(s.FoodTypes),
		Features:  slices.Clone(s.Features),
		Query:     s.Query,
	}
	if s.PriceRange != nil {
		r := *s.PriceRange
		out.PriceRange = &r
	}
	return out
}

// FilterPatch carries a partial update: nil fields leave the current value.
type FilterPatch struct {
	PetTypes   *[]enums.PetType
	MeatTypes  *[]enums.MeatType
	AgeGroups  *[]enums.AgeGroup
	FoodTypes  *[]enums.FoodType
	PriceRange *PriceRange
	Features   *[]string
	Query      *string
}

// Merge applies the patch over s and returns the new state.
func (s FilterState) Merge(p FilterPatch) FilterState {
	out := s.Clone()
	if p.PetTypes != nil {
		out.PetTypes = slices.Clone(*p.PetTypes)
	}
	if p.MeatTypes != nil {
		out.MeatTypes = slices.Clone(*p.MeatTypes)
	}
	if p.AgeGroups != nil {
		out.AgeGroups = slices.Clone(*p.AgeGroups)
	}
	if p.FoodTypes != nil {
		out.FoodTypes = slices.Clone(*p.FoodTypes)
	}
	if p.PriceRange != nil {
		r := *p.PriceRange
		out.PriceRange = &r
	}
	if p.Features != nil {
		out.Features = slices.Clone(*p.Features)
	}
	if p.Query != nil {
		out.Query = *p.Query
	}
	return out
}

func (s FilterState) String() string {
	return fmt.Sprintf("pet=%v meat=%v age=%v food=%v price=%v features=%v q=%q",
		s.PetTypes, s.MeatTypes, s.AgeGroups, s.FoodTypes, s.PriceRange, s.Features, s.Query)
}

// Matches reports whether a product satisfies every active dimension.
func Matches(p Product, s FilterState) bool {
	return compile(s).match(p)
}

// Filter returns the products matching s, preserving catalog order.
func Filter(products []Product, s FilterState) []Product {
	m := compile(s)
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if m.match(p) {
			out = append(out, p)
		}
	}
	return out
}

// matcher is a FilterState prepared for repeated evaluation.
type matcher struct {
	pets     map[enums.PetType]struct{}
	meats    map[enums.MeatType]struct{}
	ages     map[enums.AgeGroup]struct{}
	foods    map[enums.FoodType]struct{}
	price    *PriceRange
	features []string
	query    string
}

func compile(s FilterState) matcher {
	m := matcher{
		pets:     toSet(s.PetTypes),
		meats:    toSet(s.MeatTypes),
		ages:     toSet(s.AgeGroups),
		foods:    toSet(s.FoodTypes),
		price:    s.PriceRange,
		features: s.Features,
		query:    strings.ToLower(strings.TrimSpace(s.Query)),
	}
	return m
}

func (m matcher) match(p Product) bool {
	if !inSet(m.pets, p.PetType) ||
		!inSet(m.meats, p.MeatType) ||
		!inSet(m.ages, p.AgeGroup) ||
		!inSet(m.foods, p.FoodType) {
		return false
	}
	if m.price != nil && !m.price.Contains(p.Price) {
		return false
	}
	if len(m.features) > 0 && !hasAnyFeature(p, m.features) {
		return false
	}
	if m.query != "" && !matchesQuery(p, m.query) {
		return false
	}
	return true
}

func hasAnyFeature(p Product, tags []string) bool {
	for _, tag := range tags {
		if p.HasFeature(tag) {
			return true
		}
	}
	return false
}

// matchesQuery expects q already trimmed and lower-cased.
func matchesQuery(p Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, f := range p.Features {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func toSet[T comparable](values []T) map[T]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// inSet treats an empty set as no restriction.
func inSet[T comparable](set map[T]struct{}, v T) bool {
	if len(set) == 0 {
		return true
	}
	_, ok := set[v]
	return ok
}
