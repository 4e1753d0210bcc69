package cleanup

import (
	"fmt"
	"regexp"
	"strings"
)

// Transformer is implemented by every cleanup step
type Transformer interface {
	Transform(s string) string
}

// TransformFunc adapts a plain function to a Transformer
type TransformFunc func(string) string

// Transform calls f(s)
func (f TransformFunc) Transform(s string) string { return f(s) }

// Rule is one pattern -> replacement rewrite.
// Replacement may reference capture groups with $n or ${n}.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
	// Repeat re-applies the rule until the text stops changing. Bounded-word
	// patterns consume their delimiters, so adjacent matches need another pass.
	Repeat bool
}

// NewRule compiles pattern; an invalid literal panics at init.
func NewRule(name, pattern, replacement string) Rule {
	return Rule{Name: name, Pattern: regexp.MustCompile(pattern), Replacement: replacement}
}

// Repeating returns a copy of r with Repeat set
func (r Rule) Repeating() Rule {
	r.Repeat = true
	return r
}

// Transform applies the rule to s
func (r Rule) Transform(s string) string {
	if !r.Repeat {
		return r.Pattern.ReplaceAllString(s, r.Replacement)
	}
	// cap passes so a rule whose replacement re-creates its trigger still stops
	for passes := len(s) + 1; passes > 0; passes-- {
		next := r.Pattern.ReplaceAllString(s, r.Replacement)
		if next == s {
			break
		}
		s = next
	}
	return s
}

func (r Rule) String() string {
	return fmt.Sprintf("%s: %s -> %q", r.Name, r.Pattern, r.Replacement)
}

// Rules is an ordered rule table
type Rules []Rule

// Transform applies every rule in order
func (rs Rules) Transform(s string) string {
	for _, r := range rs {
		s = r.Transform(s)
	}
	return s
}

// Pipeline is an ordered list of cleanup steps
type Pipeline []Transformer

// Transform feeds s through every step in order
func (p Pipeline) Transform(s string) string {
	for _, t := range p {
		s = t.Transform(s)
	}
	return s
}

// WordRule builds a bounded-word rule: any of words, case-insensitive and
// delimited by non-word characters or the string edges, is replaced by
// replacement. The surrounding delimiters (groups 2 and 4) are kept.
func WordRule(name, replacement string, words ...string) Rule {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	pattern := fmt.Sprintf(`(?i)((^|\W)(%s)(\W|$))`, strings.Join(quoted, "|"))
	return NewRule(name, pattern, "${2}"+replacement+"${4}").Repeating()
}

// CleanWords replaces each of words with replacement (pass "" to remove them)
func CleanWords(replacement string, words ...string) Rule {
	return WordRule("words:"+strings.Join(words, ","), replacement, words...)
}
