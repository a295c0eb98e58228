package migration

import (
	"fmt"
	"strings"
)

// Sanitize replaces every rune outside [A-Za-z0-9_] with an underscore and
// lowercases the result.
func Sanitize(name string) string {
	s := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			return r
		}
		return '_'
	}, name)
	return strings.ToLower(s)
}

func BuildStem(index int, name string) string {
	return fmt.Sprintf("%0*d_%s", IndexWidth, index, name)
}
