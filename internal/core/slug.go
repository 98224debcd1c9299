package core

import "strings"

// Slugify converts an agent display name into a branch/filesystem-safe slug.
// - lowercase
// - allowed: [a-z0-9_-]
// - every maximal run of other characters becomes a single hyphen
// - trim leading/trailing hyphens
// if result empty => "agent"
// Pure function of name; idempotent.
func Slugify(name string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
		default:
			pending = true
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "agent"
	}
	return slug
}
