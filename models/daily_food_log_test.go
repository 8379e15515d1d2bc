package models

import (
	"testing"
	"time"
)

func TestCalculateCalories(t *testing.T) {
	cases := []struct {
		name      string
		quantityG float64
		per100g   float64
		want      float64
	}{
		{"150g at 200", 150, 200, 300},
		{"100g at 89", 100, 89, 89},
		{"33g at 150", 33, 150, 49.5},
		{"small quantity", 0.01, 900, 0.09},
		{"rounds to 2dp", 123.45, 61, 75.3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CalculateCalories(tc.quantityG, tc.per100g); got != tc.want {
				t.Fatalf("CalculateCalories(%v, %v) = %v, want %v", tc.quantityG, tc.per100g, got, tc.want)
			}
		})
	}
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2025, 3, 14, 15, 9, 26, 535, time.UTC)
	got := DateOnly(ts)
	want := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("DateOnly(%v) = %v, want %v", ts, got, want)
	}
}

func TestFoodCategoryDisplay(t *testing.T) {
	f := Food{Name: "Toor Dal (Cooked)", Category: CategoryDal}
	if got := f.CategoryDisplay(); got != "Dal/Lentils" {
		t.Fatalf("expected Dal/Lentils, got %q", got)
	}

	f.Category = "mystery"
	if got := f.CategoryDisplay(); got != "mystery" {
		t.Fatalf("unknown categories should pass through, got %q", got)
	}
}
