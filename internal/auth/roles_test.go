package auth

import (
	"testing"
)

func TestSatisfies(t *testing.T) {
	tests := []struct {
		actual   string
		required string
		want     bool
	}{
		{"developer", "admin", true},
		{"developer", "developer", true},
		{"developer", "moderator", true},
		{"admin", "admin", true},
		{"admin", "developer", false},
		{"admin", "moderator", true},
		{"moderator", "admin", false},
		{"moderator", "moderator", true},
		{"moderator", "developer", false},
		{"", "moderator", false},
		{"superuser", "moderator", false},
		{"admin", "unknown", false},
	}

	for _, tt := range tests {
		if got := Satisfies(tt.actual, tt.required); got != tt.want {
			t.Errorf("Satisfies(%q, %q) = %v, want %v", tt.actual, tt.required, got, tt.want)
		}
	}
}
