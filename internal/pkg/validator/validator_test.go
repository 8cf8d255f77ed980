package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-01-31"); !ok {
		t.Error("IsValidDate(2025-01-31) = false, want true")
	}
	for _, s := range []string{"2025-13-01", "2025-02-30", "31-01-2025", "2025/01/31", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	month, ok := IsValidMonth("2025-06")
	if !ok {
		t.Fatal("IsValidMonth(2025-06) = false, want true")
	}
	if month.Year() != 2025 || int(month.Month()) != 6 || month.Day() != 1 {
		t.Errorf("IsValidMonth(2025-06) parsed to %v, want 2025-06-01", month)
	}
	for _, s := range []string{"2025-13", "2025-6", "06-2025", ""} {
		if _, ok := IsValidMonth(s); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", s)
		}
	}
}

func TestCoordinateRanges(t *testing.T) {
	cases := []struct {
		lat, lon float64
		latOK    bool
		lonOK    bool
	}{
		{0, 0, true, true},
		{-90, -180, true, true},
		{90, 180, true, true},
		{90.0001, 180.0001, false, false},
		{-91, 181, false, false},
	}
	for _, c := range cases {
		if got := IsValidLatitude(c.lat); got != c.latOK {
			t.Errorf("IsValidLatitude(%v) = %v, want %v", c.lat, got, c.latOK)
		}
		if got := IsValidLongitude(c.lon); got != c.lonOK {
			t.Errorf("IsValidLongitude(%v) = %v, want %v", c.lon, got, c.lonOK)
		}
	}
}

func TestOptionalString(t *testing.T) {
	if got := OptionalString(nil); got != nil {
		t.Errorf("OptionalString(nil) = %v, want nil", *got)
	}

	empty := "   "
	if got := OptionalString(&empty); got != nil {
		t.Errorf("OptionalString(%q) = %v, want nil", empty, *got)
	}

	padded := "  office visit  "
	got := OptionalString(&padded)
	if got == nil || *got != "office visit" {
		t.Errorf("OptionalString(%q) = %v, want %q", padded, got, "office visit")
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"present", "absent"}
	if !IsInSlice("present", slice) {
		t.Error("IsInSlice(present) = false, want true")
	}
	if IsInSlice("late", slice) {
		t.Error("IsInSlice(late) = true, want false")
	}
	if IsInSlice("present", nil) {
		t.Error("IsInSlice on nil slice = true, want false")
	}
}
