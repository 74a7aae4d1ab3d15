package utils

import "testing"

func TestIsValidPhoneNumber(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"0101234567", true},
		{"01012345678", true},
		{"01987654321", true},
		{"  01012345678  ", true},
		{"010123456", false},     // too short
		{"010123456789", false},  // too long
		{"02012345678", false},   // wrong prefix
		{"010-1234-5678", false}, // separators not allowed
		{"", false},
		{"abc", false},
	}
	for _, tc := range cases {
		if got := IsValidPhoneNumber(tc.input); got != tc.want {
			t.Errorf("IsValidPhoneNumber(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestIsStrongPassword(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"abcd1234", true},
		{"p4ssword", true},
		{"short1", false},
		{"12345678", false}, // digits only
		{"abcdefgh", false}, // letters only
		{"", false},
	}
	for _, tc := range cases {
		if got := IsStrongPassword(tc.input); got != tc.want {
			t.Errorf("IsStrongPassword(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	if !IsValidEmail("user@example.com") {
		t.Errorf("expected user@example.com to be valid")
	}
	for _, bad := range []string{"user@", "@example.com", "user example.com", "user@host", ""} {
		if IsValidEmail(bad) {
			t.Errorf("expected %q to be invalid", bad)
		}
	}
}
