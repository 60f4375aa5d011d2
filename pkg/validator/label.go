package validator

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label turns a field name such as "first_name", "first-name" or "firstName"
// into a display label ("First Name"). A Caser is stateful, so one is built
// per call.
func Label(field string) string {
	var b strings.Builder
	var prev rune
	for i, r := range field {
		switch {
		case r == '_' || r == '-' || r == '.':
			b.WriteByte(' ')
		case i > 0 && r >= 'A' && r <= 'Z' && prev >= 'a' && prev <= 'z':
			b.WriteByte(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
		prev = r
	}
	return cases.Title(language.English).String(strings.Join(strings.Fields(b.String()), " "))
}
