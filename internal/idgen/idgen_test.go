package idgen

import (
	"regexp"
	"testing"
)

func TestProductCode_Format(t *testing.T) {
	gen := NewProductCode()
	pattern := regexp.MustCompile(`^PROD-[A-Z0-9]{4}$`)

	for range 100 {
		code := gen.NewCode()
		if !pattern.MatchString(code) {
			t.Fatalf("code %q does not match PROD-XXXX", code)
		}
	}
}

func TestFixed_Sequence(t *testing.T) {
	gen := &Fixed{Codes: []string{"PROD-AAAA", "PROD-BBBB"}}

	if got := gen.NewCode(); got != "PROD-AAAA" {
		t.Errorf("expected PROD-AAAA, got %q", got)
	}
	if got := gen.NewCode(); got != "PROD-BBBB" {
		t.Errorf("expected PROD-BBBB, got %q", got)
	}
	// The last code repeats once the sequence runs out.
	if got := gen.NewCode(); got != "PROD-BBBB" {
		t.Errorf("expected PROD-BBBB again, got %q", got)
	}
}
