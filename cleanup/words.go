package cleanup

// Trail is the display form of the "Trl" abbreviation
const Trail = "Trail"

var (
	// CleanAnd turns the word "and" into "&" and spaces every "&" evenly
	CleanAnd = Rules{
		WordRule("and-word", "&", "and"),
		NewRule("and-spacing", `\s*&\s*`, " & "),
	}

	// CleanAt turns the word "at" into "@" and spaces every "@" evenly
	CleanAt = Rules{
		WordRule("at-word", "@", "at"),
		NewRule("at-spacing", `\s*@\s*`, " @ "),
	}

	// KeepToAndRemoveVia drops waypoint ("via Y") clauses when the text also
	// names a destination ("to X"). A via clause runs up to the next "to" or the
	// end of the text. Text with no "to" clause is left alone.
	KeepToAndRemoveVia = Rules{
		NewRule("via-before-to", `(?i)(^|\s+)via\s+.+?\s+(to\s+)`, "${1}${2}").Repeating(),
		NewRule("via-after-to", `(?i)((?:^|\s)to\s+.+?)\s+via\s+.+$`, "${1}"),
	}

	// KeepTrail expands the standalone word "trl" to "Trail". It must run after
	// StreetTypes, which does not know about trails.
	KeepTrail = NewRule("keep-trail", `(?i)((^|\W)(trl)(\W|$))`, "${2}"+Trail+"${4}").Repeating()

	// CleanSlashes spaces slash-separated alternatives as "X / Y"
	CleanSlashes = NewRule("slashes", `\s*/\s*`, " / ")
)
