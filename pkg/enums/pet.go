package enums

import "fmt"

// PetType is the animal a product is formulated for.
type PetType string

const (
	PetTypeDog    PetType = "dog"
	PetTypeCat    PetType = "cat"
	PetTypeBird   PetType = "bird"
	PetTypeFish   PetType = "fish"
	PetTypeRodent PetType = "rodent"
)

var validPetTypes = []PetType{
	PetTypeDog,
	PetTypeCat,
	PetTypeBird,
	PetTypeFish,
	PetTypeRodent,
}

// String implements fmt.Stringer.
func (p PetType) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PetType.
func (p PetType) IsValid() bool {
	return isKnown(validPetTypes, p)
}

// ParsePetType converts raw input into a PetType.
func ParsePetType(value string) (PetType, error) {
	return parseKnown(validPetTypes, value, "pet type")
}

// MeatType is the main protein or base ingredient of a product.
type MeatType string

const (
	MeatTypeChicken    MeatType = "chicken"
	MeatTypeBeef       MeatType = "beef"
	MeatTypeFish       MeatType = "fish"
	MeatTypeLamb       MeatType = "lamb"
	MeatTypeTurkey     MeatType = "turkey"
	MeatTypeVegetarian MeatType = "vegetarian"
	MeatTypeGrainFree  MeatType = "grain_free"
)

var validMeatTypes = []MeatType{
	MeatTypeChicken,
	MeatTypeBeef,
	MeatTypeFish,
	MeatTypeLamb,
	MeatTypeTurkey,
	MeatTypeVegetarian,
	MeatTypeGrainFree,
}

// String implements fmt.Stringer.
func (m MeatType) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MeatType.
func (m MeatType) IsValid() bool {
	return isKnown(validMeatTypes, m)
}

// ParseMeatType converts raw input into a MeatType.
func ParseMeatType(value string) (MeatType, error) {
	return parseKnown(validMeatTypes, value, "meat type")
}

// AgeGroup is the life stage a product targets.
type AgeGroup string

const (
	AgeGroupPuppy   AgeGroup = "puppy"
	AgeGroupKitten  AgeGroup = "kitten"
	AgeGroupAdult   AgeGroup = "adult"
	AgeGroupSenior  AgeGroup = "senior"
	AgeGroupAllAges AgeGroup = "all_ages"
)

var validAgeGroups = []AgeGroup{
	AgeGroupPuppy,
	AgeGroupKitten,
	AgeGroupAdult,
	AgeGroupSenior,
	AgeGroupAllAges,
}

// String implements fmt.Stringer.
func (a AgeGroup) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AgeGroup.
func (a AgeGroup) IsValid() bool {
	return isKnown(validAgeGroups, a)
}

// ParseAgeGroup converts raw input into an AgeGroup.
func ParseAgeGroup(value string) (AgeGroup, error) {
	return parseKnown(validAgeGroups, value, "age group")
}

// FoodType is the form factor of a product.
type FoodType string

const (
	FoodTypeDry         FoodType = "dry"
	FoodTypeWet         FoodType = "wet"
	FoodTypeSemiWet     FoodType = "semi_wet"
	FoodTypeTreats      FoodType = "treats"
	FoodTypeSupplements FoodType = "supplements"
)

var validFoodTypes = []FoodType{
	FoodTypeDry,
	FoodTypeWet,
	FoodTypeSemiWet,
	FoodTypeTreats,
	FoodTypeSupplements,
}

// String implements fmt.Stringer.
func (f FoodType) String() string {
	return string(f)
}

// IsValid reports whether the value is a known FoodType.
func (f FoodType) IsValid() bool {
	return isKnown(validFoodTypes, f)
}

// ParseFoodType converts raw input into a FoodType.
func ParseFoodType(value string) (FoodType, error) {
	return parseKnown(validFoodTypes, value, "food type")
}

// PackageUnit is the unit a package size is expressed in.
type PackageUnit string

const (
	PackageUnitGram     PackageUnit = "g"
	PackageUnitKilogram PackageUnit = "kg"
)

var validPackageUnits = []PackageUnit{PackageUnitGram, PackageUnitKilogram}

// String implements fmt.Stringer.
func (u PackageUnit) String() string {
	return string(u)
}

// IsValid reports whether the value is a known PackageUnit.
func (u PackageUnit) IsValid() bool {
	return isKnown(validPackageUnits, u)
}

// ParsePackageUnit converts raw input into a PackageUnit.
func ParsePackageUnit(value string) (PackageUnit, error) {
	return parseKnown(validPackageUnits, value, "package unit")
}

func isKnown[T ~string](valid []T, value T) bool {
	for _, candidate := range valid {
		if candidate == value {
			return true
		}
	}
	return false
}

func parseKnown[T ~string](valid []T, value, kind string) (T, error) {
	for _, candidate := range valid {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid %s %q", kind, value)
}
