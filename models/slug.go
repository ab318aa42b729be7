package models

import "strings"

// Slugify derives a URL-safe identifier from a human-readable title: the
// input is lowercased, runs of non-alphanumeric characters collapse into a
// single hyphen, and edge hyphens are trimmed.
//
// "My Awesome Project" -> "my-awesome-project"
func Slugify(title string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		alphanumeric := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alphanumeric {
			pendingHyphen = true
			continue
		}
		if pendingHyphen && b.Len() > 0 {
			b.WriteByte('-')
		}
		pendingHyphen = false
		b.WriteRune(r)
	}
	return b.String()
}
