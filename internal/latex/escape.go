// Package latex provides escaping and display formatting helpers for text
// that is embedded into LaTeX template sources.
package latex

import "strings"

// textEscaper backslash-prefixes every LaTeX special character. Built once;
// strings.Replacer applies all rules in a single left-to-right pass.
var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`#`, `\#`,
	`^`, `\^`,
	`_`, `\_`,
	`~`, `\~`,
	`%`, `\%`,
)

var urlEscaper = strings.NewReplacer(
	`%`, `\%`,
	`#`, `\#`,
)

// EscapeText escapes the characters \ { } $ & # ^ _ ~ % for safe embedding in
// LaTeX body text. It is a single pass and is NOT idempotent: the backslashes
// it inserts are themselves escaped by a second call. Callers must escape each
// field exactly once.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// EscapeURL escapes only % and #. URLs land inside \href-style arguments
// where the remaining special characters are taken literally.
func EscapeURL(s string) string {
	return urlEscaper.Replace(s)
}
