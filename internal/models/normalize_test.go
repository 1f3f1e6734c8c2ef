package models

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"jean dupont", "Jean Dupont"},
		{"  jean dupont  ", "Jean Dupont"},
		{"JEAN DUPONT", "Jean Dupont"},
		{"coffee beans", "Coffee Beans"},
		{"Already Titled", "Already Titled"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
