package domain

import "strings"

// NormalizeMessageText lower-cases and collapses whitespace runs. It is the
// canonical form inbound commands are matched against.
func NormalizeMessageText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
