package entities

import "strings"

// normalizeEmail lower-cases an already validated address so lookups and
// uniqueness checks are case-insensitive.
func normalizeEmail(s string) string {
	return strings.ToLower(s)
}
