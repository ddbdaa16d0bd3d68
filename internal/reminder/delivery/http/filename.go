package http

import (
	"strings"
	"unicode"

	"reminder-extractor/internal/export"
)

// exportFileName builds "reminders-<list>.<ext>" with the list reduced to a
// safe slug.
func exportFileName(list string, format export.Format) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return unicode.ToLower(r)
		case r == ' ', r == '-', r == '_':
			return '-'
		}
		return -1
	}, list)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "reminders." + string(format)
	}
	return "reminders-" + slug + "." + string(format)
}
