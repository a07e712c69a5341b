package spec

import "strings"

var rep = strings.NewReplacer(
	`.`, `\.`,
	`*`, `\*`,
	`+`, `\+`,
	`?`, `\?`,
	`|`, `\|`,
	`(`, `\(`,
	`)`, `\)`,
	`[`, `\[`,
	`\`, `\\`,
)

// EscapePattern escapes the special characters.
// For example, EscapePattern(`+`) returns `\+`.
func EscapePattern(s string) string {
	return rep.Replace(s)
}

// IsNonTerminalText reports whether a symbol token denotes a
// non-terminal in the grammar notation. Any other token is a terminal.
func IsNonTerminalText(text string) bool {
	return len(text) == 1 && text[0] >= 'A' && text[0] <= 'Z'
}
