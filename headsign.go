package cowichan

import (
	"slices"

	"github.com/theoremus-urban-solutions/cowichan-gtfs-cleaner/cleanup"
)

var (
	dashTo  = cleanup.NewRule("dash-to", `(?i)\s*-\s*to(\s+|$)`, " to ")
	dashVia = cleanup.NewRule("dash-via", `(?i)\s*-\s*via(\s+|$)`, " via ")
	express = cleanup.CleanWords("", "express")
)

// headsignPipeline order matters: StreetTypes must run before KeepTrail.
var headsignPipeline = cleanup.Pipeline{
	dashTo,
	dashVia,
	cleanup.KeepToAndRemoveVia,
	express,
	cleanup.CleanAnd,
	cleanup.StreetTypes,
	cleanup.KeepTrail,
	cleanup.CleanSlashes,
	cleanup.CleanNumbers,
	cleanup.CleanLabel,
}

// HeadsignRules returns a copy of the ordered headsign cleanup steps
func HeadsignRules() cleanup.Pipeline { return slices.Clone(headsignPipeline) }

// normalizeHeadsign re-runs the pipeline until the label settles, so cleaned
// headsigns pass through unchanged.
var normalizeHeadsign = cleanup.UntilStable(headsignPipeline)

// NormalizeHeadsign cleans a raw trip headsign for display
func NormalizeHeadsign(raw string) string {
	return normalizeHeadsign.Transform(raw)
}
