package cleanup

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var letterRun = regexp.MustCompile(`\p{L}+`)

// UpperCaseWords title-cases every word written entirely in lower or upper
// case, leaving mixed-case words alone. Words in exceptions are always
// rendered fully upper-case, whatever their input casing.
func UpperCaseWords(exceptions ...string) Transformer {
	upper := cases.Upper(language.English)
	keep := make(map[string]struct{}, len(exceptions))
	for _, w := range exceptions {
		keep[upper.String(w)] = struct{}{}
	}
	return TransformFunc(func(s string) string {
		// casers are stateful; never share one between calls
		up := cases.Upper(language.English)
		low := cases.Lower(language.English)
		title := cases.Title(language.English)
		return letterRun.ReplaceAllStringFunc(s, func(w string) string {
			u := up.String(w)
			if _, ok := keep[u]; ok {
				return u
			}
			if w == u || w == low.String(w) {
				return title.String(w)
			}
			return w
		})
	})
}
