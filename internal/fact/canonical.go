package fact

import "strings"

// Canonical returns the table key for a spoken item name.
// Lookup is on the lower-cased name exactly as heard.
func Canonical(name string) string {
	return strings.ToLower(name)
}

// TableKey cleans a key read from a fact source before it is stored.
func TableKey(name string) string {
	return Canonical(strings.TrimSpace(name))
}
