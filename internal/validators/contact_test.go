package validators

import "testing"

func TestIsEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"guest.name+tag@example.ca", true},
		{"", false},
		{"   ", false},
		{"no-at-sign", false},
		{"missing@", false},
		{"@example.com", false},
	}

	for _, tt := range tests {
		if got := IsEmail(tt.email); got != tt.want {
			t.Errorf("IsEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Owner@EverestCuisine.CA \t"); got != "owner@everestcuisine.ca" {
		t.Errorf("NormalizeEmail() = %q", got)
	}
}

func TestIsCanadianPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+16135551234", true},
		{"613-555-1234", true},
		{"(416) 555-2345", true},
		{"", false},
		{"12345", false},
		{"not a phone", false},
		{"+442079460958", false},
	}

	for _, tt := range tests {
		if got := IsCanadianPhone(tt.phone); got != tt.want {
			t.Errorf("IsCanadianPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}
