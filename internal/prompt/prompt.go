// Package prompt fills named placeholders in analysis prompt templates.
package prompt

import "strings"

// Inject replaces every {key} placeholder whose key exists in the context
// map with its value, empty values included. Placeholders whose key is
// absent from the map are left untouched. No escaping or validation is
// performed on the values; callers own the safety of the downstream use.
func Inject(template string, context map[string]string) string {
	out := template
	for key, value := range context {
		out = strings.ReplaceAll(out, "{"+key+"}", value)
	}
	return out
}
