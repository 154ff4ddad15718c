package catalog

import "github.com/pawpantry/storefront-backend/pkg/enums"

// SampleProducts returns the demo catalog served by the mock data endpoint.
// Each call returns a fresh copy.
func SampleProducts() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Royal Canin Maxi Adult",
			Image:       "1",
			Price:       3200,
			Description: "Dry food for adult large-breed dogs with chicken",
			PetType:     enums.PetTypeDog,
			MeatType:    enums.MeatTypeChicken,
			AgeGroup:    enums.AgeGroupAdult,
			FoodType:    enums.FoodTypeDry,
			PackageSize: PackageSize{Value: 15, Unit: enums.PackageUnitKilogram},
			Features:    []string{"immunity support", "joint health", "easy digestion"},
			Rating:      rating(4.8),
		},
		{
			ID:          2,
			Name:        "Hill's Science Plan Kitten",
			Image:       "2",
			Price:       1800,
			Description: "Dry food for kittens with chicken for healthy growth and development",
			PetType:     enums.PetTypeCat,
			MeatType:    enums.MeatTypeChicken,
			AgeGroup:    enums.AgeGroupKitten,
			FoodType:    enums.FoodTypeDry,
			PackageSize: PackageSize{Value: 2, Unit: enums.PackageUnitKilogram},
			Features:    []string{"immunity support", "brain development", "digestive health"},
			Rating:      rating(4.7),
		},
		{
			ID:          3,
			Name:        "Purina Pro Plan Sensitive",
			Image:       "3",
			Price:       2800,
			Description: "Dry food for dogs with sensitive digestion, with salmon",
			PetType:     enums.PetTypeDog,
			MeatType:    enums.MeatTypeFish,
			AgeGroup:    enums.AgeGroupAdult,
			FoodType:    enums.FoodTypeDry,
			PackageSize: PackageSize{Value: 7, Unit: enums.PackageUnitKilogram},
			Features:    []string{"for sensitive digestion", "wheat-free", "omega-3 & omega-6"},
			Rating:      rating(4.6),
		},
		{
			ID:          4,
			Name:        "Acana Wild Prairie Cat",
			Image:       "1",
			Price:       3500,
			Description: "Grain-free food for cats of all ages with chicken and turkey",
			PetType:     enums.PetTypeCat,
			MeatType:    enums.MeatTypeTurkey,
			AgeGroup:    enums.AgeGroupAdult,
			FoodType:    enums.FoodTypeDry,
			PackageSize: PackageSize{Value: 4.5, Unit: enums.PackageUnitKilogram},
			Features:    []string{"grain-free", "high protein", "natural ingredients"},
			Rating:      rating(4.9),
		},
		{
			ID:          5,
			Name:        "Royal Canin Mini Senior",
			Image:       "2",
			Price:       1900,
			Description: "Dry food for senior dogs of small breeds",
			PetType:     enums.PetTypeDog,
			MeatType:    enums.MeatTypeChicken,
			AgeGroup:    enums.AgeGroupSenior,
			FoodType:    enums.FoodTypeDry,
			PackageSize: PackageSize{Value: 3, Unit: enums.PackageUnitKilogram},
			Features:    []string{"vitality support", "dental health", "kidney support"},
			Rating:      rating(4.5),
		},
		{
			ID:          6,
			Name:        "Grandorf 4 Meat & Brown Rice",
			Image:       "3",
			Price:       4200,
			Description: "Dry food for adult dogs of all breeds with 4 kinds of meat and brown rice",
			PetType:     enums.PetTypeDog,
			MeatType:    enums.MeatTypeBeef,
			AgeGroup:    enums.AgeGroupAdult,
			FoodType:    enums.FoodTypeDry,
			PackageSize: PackageSize{Value: 12, Unit: enums.PackageUnitKilogram},
			Features:    []string{"4 kinds of meat", "hypoallergenic", "natural ingredients"},
			Rating:      rating(4.7),
		},
		{
			ID:          7,
			Name:        "Farmina N&D Pumpkin Lamb",
			Image:       "1",
			Price:       3800,
			Description: "Grain-free food for dogs with lamb and pumpkin",
			PetType:     enums.PetTypeDog,
			MeatType:    enums.MeatTypeLamb,
			AgeGroup:    enums.AgeGroupAdult,
			FoodType:    enums.FoodTypeDry,
			PackageSize: PackageSize{Value: 7, Unit: enums.PackageUnitKilogram},
			Features:    []string{"grain-free", "with pumpkin", "for sensitive digestion"},
			Rating:      rating(4.8),
		},
		{
			ID:          8,
			Name:        "Purina ONE Sterilized",
			Image:       "2",
			Price:       1600,
			Description: "Dry food for sterilized cats and neutered toms with chicken",
			PetType:     enums.PetTypeCat,
			MeatType:    enums.MeatTypeChicken,
			AgeGroup:    enums.AgeGroupAdult,
			FoodType:    enums.FoodTypeDry,
			PackageSize: PackageSize{Value: 3, Unit: enums.PackageUnitKilogram},
			Features:    []string{"weight control", "urinary tract health", "healthy skin and coat"},
			Rating:      rating(4.5),
		},
		{
			ID:          9,
			Name:        "Sheba Pleasure",
			Image:       "3",
			Price:       85,
			Description: "Wet food for cats with chicken and turkey in sauce",
			PetType:     enums.PetTypeCat,
			MeatType:    enums.MeatTypeChicken,
			AgeGroup:    enums.AgeGroupAdult,
			FoodType:    enums.FoodTypeWet,
			PackageSize: PackageSize{Value: 85, Unit: enums.PackageUnitGram},
			Features:    []string{"single-serve pouches", "in sauce", "tender pieces"},
			Rating:      rating(4.4),
		},
		{
			ID:          10,
			Name:        "Pedigree Vital Protection",
			Image:       "1",
			Price:       120,
			Description: "Wet food for dogs with beef and lamb in jelly",
			PetType:     enums.PetTypeDog,
			MeatType:    enums.MeatTypeBeef,
			AgeGroup:    enums.AgeGroupAdult,
			FoodType:    enums.FoodTypeWet,
			PackageSize: PackageSize{Value: 100, Unit: enums.PackageUnitGram},
			Features:    []string{"in jelly", "balanced formula", "convenient packaging"},
			Rating:      rating(4.2),
		},
		{
			ID:          11,
			Name:        "Versele-Laga Nature Fibrefood",
			Image:       "2",
			Price:       950,
			Description: "Food for rabbits with extra fibre",
			PetType:     enums.PetTypeRodent,
			MeatType:    enums.MeatTypeVegetarian,
			AgeGroup:    enums.AgeGroupAdult,
			FoodType:    enums.FoodTypeDry,
			PackageSize: PackageSize{Value: 1, Unit: enums.PackageUnitKilogram},
			Features:    []string{"high fibre", "with herbs", "for dental health"},
			Rating:      rating(4.6),
		},
		{
			ID:          12,
			Name:        "Tetra Goldfish",
			Image:       "3",
			Price:       350,
			Description: "Flake food for goldfish",
			PetType:     enums.PetTypeFish,
			MeatType:    enums.MeatTypeVegetarian,
			AgeGroup:    enums.AgeGroupAdult,
			FoodType:    enums.FoodTypeDry,
			PackageSize: PackageSize{Value: 250, Unit: enums.PackageUnitGram},
			Features:    []string{"for vivid colour", "easily digested", "keeps water clear"},
			Rating:      rating(4.5),
		},
	}
}

func rating(v float64) *float64 {
	return &v
}
