package localefile

import "strings"

// pathEscaper turns a literal key into an sjson path that addresses exactly
// that top-level key.
var pathEscaper = strings.NewReplacer(
	`\`, `\\`,
	`.`, `\.`,
	`*`, `\*`,
	`?`, `\?`,
	`|`, `\|`,
	`#`, `\#`,
	`@`, `\@`,
	`!`, `\!`,
	`:`, `\:`,
)

func escapePath(key string) string {
	return pathEscaper.Replace(key)
}
