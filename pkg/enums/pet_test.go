package enums

import "testing"

func TestParsePetType(t *testing.T) {
	got, err := ParsePetType("cat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != PetTypeCat {
		t.Fatalf("expected cat, got %s", got)
	}
	if _, err := ParsePetType("dragon"); err == nil {
		t.Fatalf("expected unknown pet type to fail")
	}
	if _, err := ParsePetType("CAT"); err == nil {
		t.Fatalf("parsing is case sensitive")
	}
}

func TestEnumValidity(t *testing.T) {
	if !MeatTypeGrainFree.IsValid() || MeatType("tofu").IsValid() {
		t.Fatalf("unexpected meat type validity")
	}
	if !AgeGroupAllAges.IsValid() || AgeGroup("teen").IsValid() {
		t.Fatalf("unexpected age group validity")
	}
	if !FoodTypeSemiWet.IsValid() || FoodType("frozen").IsValid() {
		t.Fatalf("unexpected food type validity")
	}
	if !PackageUnitKilogram.IsValid() || PackageUnit("lb").IsValid() {
		t.Fatalf("unexpected package unit validity")
	}
}

func TestParseOthers(t *testing.T) {
	if v, err := ParseMeatType("turkey"); err != nil || v != MeatTypeTurkey {
		t.Fatalf("expected turkey, got %q err=%v", v, err)
	}
	if v, err := ParseAgeGroup("senior"); err != nil || v != AgeGroupSenior {
		t.Fatalf("expected senior, got %q err=%v", v, err)
	}
	if v, err := ParseFoodType("wet"); err != nil || v != FoodTypeWet {
		t.Fatalf("expected wet, got %q err=%v", v, err)
	}
	if v, err := ParsePackageUnit("g"); err != nil || v != PackageUnitGram {
		t.Fatalf("expected g, got %q err=%v", v, err)
	}
}
