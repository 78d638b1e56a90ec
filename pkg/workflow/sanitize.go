package workflow

import "strings"

// SanitizeName makes a string usable as a workflow or action name on the
// target platform: every character outside [A-Za-z0-9_-] is removed, an empty
// result becomes "Item", and a leading digit gets an "Action_" prefix.
func SanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}

	sanitized := b.String()
	if sanitized == "" {
		return "Item"
	}

	if sanitized[0] >= '0' && sanitized[0] <= '9' {
		return "Action_" + sanitized
	}

	return sanitized
}
