package cleanup

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var boundsRules = Rules{
	NewRule("bounds-lead", `^[\s\-_,.;:/\\|*]+`, ""),
	NewRule("bounds-trail", `[\s\-_,.;:/\\|*]+$`, ""),
	NewRule("bounds-paren", `^\(([^()]*)\)$`, "${1}"),
	NewRule("bounds-bracket", `^\[([^\[\]]*)\]$`, "${1}"),
	NewRule("bounds-empty", `\(\s*\)|\[\s*\]`, "").Repeating(),
}

var labelRules = Rules{
	NewRule("label-empty", `\(\s*\)|\[\s*\]`, "").Repeating(),
	NewRule("label-paren-open", `\s*\(\s*`, " ("),
	NewRule("label-paren-close", `\s*\)`, ")"),
	NewRule("label-paren-after", `\)(\w)`, ") ${1}"),
	NewRule("label-spaces", `\s+`, " "),
	NewRule("label-dangling-lead", `^[\s\-_,.;:/\\|*&@]+`, ""),
	NewRule("label-dangling-trail", `[\s\-_,.;:/\\|*&@]+$`, ""),
}

// CleanBounds removes stray punctuation around a label and unwraps a label
// that is entirely enclosed in parentheses or brackets.
var CleanBounds Transformer = UntilStable(boundsRules)

// CleanLabel is the final pass: NFC normalization, bracket and whitespace
// tidying, dangling separators trimmed and the first letter upper-cased.
var CleanLabel Transformer = TransformFunc(cleanLabel)

func cleanLabel(s string) string {
	s = norm.NFC.String(s)
	s = labelRules.Transform(s)
	return capitalizeFirst(strings.TrimSpace(s))
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// UntilStable re-applies t until its output stops changing, at most
// len(input)+1 times.
func UntilStable(t Transformer) TransformFunc {
	return func(s string) string {
		for passes := len(s) + 1; passes > 0; passes-- {
			next := t.Transform(s)
			if next == s {
				break
			}
			s = next
		}
		return s
	}
}
