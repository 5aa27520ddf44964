// Package urlutil holds small helpers for working with URL strings.
package urlutil

import "strings"

// StripScheme removes a leading "http:" or "https:" from rawURL and leaves
// the remainder, including any "//", untouched. Matching is case-sensitive
// and the result is not validated.
func StripScheme(rawURL string) string {
	for _, scheme := range []string{"https:", "http:"} {
		if rest, ok := strings.CutPrefix(rawURL, scheme); ok {
			return rest
		}
	}
	return rawURL
}
