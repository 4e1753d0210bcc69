package cleanup

import (
	"strings"
	"testing"
)

func TestRule_Transform(t *testing.T) {
	r := NewRule("dash", `-+`, "-")
	if got := r.Transform("a---b--c"); got != "a-b-c" {
		t.Errorf("expected a-b-c, got %s", got)
	}
}

func TestRule_RepeatCoversAdjacentMatches(t *testing.T) {
	once := NewRule("express-once", `(?i)((^|\W)(express)(\W|$))`, "${2}${4}")
	repeated := once.Repeating()

	input := "Express Express Airport"
	if got := once.Transform(input); !strings.Contains(got, "Express") {
		t.Fatalf("single pass should miss the adjacent word, got %q", got)
	}
	got := repeated.Transform(input)
	if strings.Contains(got, "Express") {
		t.Errorf("expected every Express removed, got %q", got)
	}
	if strings.TrimSpace(got) != "Airport" {
		t.Errorf("expected Airport, got %q", got)
	}
}

func TestRule_RepeatTerminatesOnSelfFeedingRule(t *testing.T) {
	// replacement re-creates the trigger; the pass cap must still stop it
	r := NewRule("grow", `a`, "aa").Repeating()
	got := r.Transform("a")
	if len(got) == 0 {
		t.Fatal("expected non-empty output")
	}
}

func TestRules_AppliedInOrder(t *testing.T) {
	rs := Rules{
		NewRule("first", `cat`, "dog"),
		NewRule("second", `dog`, "bird"),
	}
	if got := rs.Transform("cat"); got != "bird" {
		t.Errorf("expected bird, got %s", got)
	}

	reversed := Rules{rs[1], rs[0]}
	if got := reversed.Transform("cat"); got != "dog" {
		t.Errorf("expected dog, got %s", got)
	}
}

func TestPipeline_MixesRulesAndFuncs(t *testing.T) {
	p := Pipeline{
		NewRule("x", `x`, "y"),
		TransformFunc(strings.ToUpper),
	}
	if got := p.Transform("xox"); got != "YOY" {
		t.Errorf("expected YOY, got %s", got)
	}
}

func TestWordRule_QuotesWordsAndKeepsDelimiters(t *testing.T) {
	r := WordRule("dot", "dot", "a.b")
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"literal dot", "(a.b)", "(dot)"},
		{"dot is not a wildcard", "axb", "axb"},
		{"start of text", "a.b end", "dot end"},
		{"end of text", "x a.b", "x dot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Transform(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestRule_String(t *testing.T) {
	s := NewRule("name", `a`, "b").String()
	if !strings.HasPrefix(s, "name: ") {
		t.Errorf("unexpected rule description %q", s)
	}
}

func TestSharedRules_ReachFixpoint(t *testing.T) {
	samples := []string{
		"Main St and 1st Ave at Trl",
		"first and second and third",
		"St St St",
		"Trl Trl Trl",
		"at at at",
		"A/B/C",
		"Mall via A via B to C via D",
		"#007 05 0",
		"",
	}
	steps := map[string]Transformer{
		"CleanAnd":           CleanAnd,
		"CleanAt":            CleanAt,
		"KeepToAndRemoveVia": KeepToAndRemoveVia,
		"KeepTrail":          KeepTrail,
		"CleanSlashes":       CleanSlashes,
		"StreetTypes":        StreetTypes,
		"CleanNumbers":       CleanNumbers,
		"CleanBounds":        CleanBounds,
		"CleanLabel":         CleanLabel,
	}
	for name, step := range steps {
		t.Run(name, func(t *testing.T) {
			for _, s := range samples {
				once := step.Transform(s)
				if twice := step.Transform(once); twice != once {
					t.Errorf("%q: %q then %q", s, once, twice)
				}
			}
		})
	}
}
