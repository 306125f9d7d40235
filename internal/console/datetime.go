package console

import "strings"

// The backend exchanges times as "2006-01-02 15:04"; editors show the
// datetime-local form "2006-01-02T15:04".

func ToWidgetTime(s string) string {
	return strings.Replace(s, " ", "T", 1)
}

func FromWidgetTime(s string) string {
	return strings.Replace(strings.TrimSpace(s), "T", " ", 1)
}
