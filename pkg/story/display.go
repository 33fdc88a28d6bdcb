package story

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// DisplayName derives a human-readable name from a snake_case content
// ID, e.g. "village_square" -> "Village Square". Used for requirement
// failure hints and anywhere content supplies no explicit name.
func DisplayName(id string) string {
	return titleCaser.String(strings.ReplaceAll(id, "_", " "))
}
