package cowichan

import (
	"slices"

	"github.com/theoremus-urban-solutions/cowichan-gtfs-cleaner/cleanup"
)

// Leading markers may sit behind stray bounds punctuation ("- (-DCOM-) ...",
// "[(-IMPL-) ...]"); the punctuation is kept for CleanBounds.
var (
	startsWithDCOM = cleanup.NewRule("starts-with-dcom", `(?i)^([\s\-_,.;:/\\|*\[(]*)\(-DCOM-\)`, "${1}").Repeating()
	startsWithIMPL = cleanup.NewRule("starts-with-impl", `(?i)^([\s\-_,.;:/\\|*\[(]*)\(-IMPL-\)`, "${1}").Repeating()
)

// IgnoredUpperCaseWords returns the default words kept fully upper-case in stop names
func IgnoredUpperCaseWords() []string { return []string{"BC"} }

// StopNameNormalizer cleans stop names with a fixed upper-case allow-list
type StopNameNormalizer struct {
	pipeline  cleanup.Pipeline
	normalize cleanup.Transformer
}

// NewStopNameNormalizer builds a normalizer; upperCaseWords always render
// fully upper-case.
func NewStopNameNormalizer(upperCaseWords []string) *StopNameNormalizer {
	p := cleanup.Pipeline{
		cleanup.UpperCaseWords(upperCaseWords...),
		startsWithDCOM,
		startsWithIMPL,
		cleanup.CleanBounds,
		cleanup.CleanAt,
		cleanup.StreetTypes, // 1st
		cleanup.KeepTrail,   // 2nd
		cleanup.CleanNumbers,
		cleanup.CleanLabel,
	}
	return &StopNameNormalizer{pipeline: p, normalize: cleanup.UntilStable(p)}
}

// Normalize cleans a raw stop name for display
func (n *StopNameNormalizer) Normalize(raw string) string {
	return n.normalize.Transform(raw)
}

// Rules returns a copy of the ordered stop name cleanup steps
func (n *StopNameNormalizer) Rules() cleanup.Pipeline { return slices.Clone(n.pipeline) }

var defaultStopNames = NewStopNameNormalizer(IgnoredUpperCaseWords())

// NormalizeStopName cleans a raw stop name using the default upper-case words
func NormalizeStopName(raw string) string {
	return defaultStopNames.Normalize(raw)
}
