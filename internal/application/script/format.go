package script

import "strings"

// FormatList renders identifiers as {a,b,c}.
func FormatList(items []string) string {
	return "{" + strings.Join(items, ",") + "}"
}
