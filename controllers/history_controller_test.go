package controllers

import (
	"testing"
	"time"
)

func TestParseDateOr(t *testing.T) {
	fallback := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)
	fallbackDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	if got := parseDateOr("2025-06-01", fallback); !got.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("valid date parsed wrong: %v", got)
	}
	if got := parseDateOr("", fallback); !got.Equal(fallbackDate) {
		t.Fatalf("empty value should fall back, got %v", got)
	}
	// malformed filters fall back silently, they are not an error
	for _, bad := range []string{"not-a-date", "06/01/2025", "2025-13-40"} {
		if got := parseDateOr(bad, fallback); !got.Equal(fallbackDate) {
			t.Fatalf("%q should fall back, got %v", bad, got)
		}
	}
}

func TestMondayOf(t *testing.T) {
	cases := []struct {
		in   time.Time
		want time.Time
	}{
		{time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC), time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)},  // Wednesday
		{time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)},  // Monday itself
		{time.Date(2025, 6, 8, 23, 0, 0, 0, time.UTC), time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)}, // Sunday
	}

	for _, tc := range cases {
		if got := mondayOf(tc.in); !got.Equal(tc.want) {
			t.Fatalf("mondayOf(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
