package utils

import (
	"math"
	"testing"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 70)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(bmi-22.86) > 0.01 {
		t.Fatalf("expected BMI ~22.86, got %v", bmi)
	}

	if _, err := CalculateBMI(0, 70); err == nil {
		t.Fatal("expected error for zero height")
	}
}

func TestBMICategory(t *testing.T) {
	cases := map[float64]string{
		17.0: "Underweight",
		22.0: "Normal weight",
		27.5: "Overweight",
		33.0: "Obese",
	}
	for bmi, want := range cases {
		if got := BMICategory(bmi); got != want {
			t.Fatalf("BMICategory(%v) = %q, want %q", bmi, got, want)
		}
	}
}
