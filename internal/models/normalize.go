package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeName trims and title-cases a product or client name. This is part
// of the write contract: every create/update path stores the normalized form,
// and client identity matching compares normalized names.
func NormalizeName(name string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(name))
}
