package cleanup

// streetTypes maps abbreviations to display forms.
// "Trl" is handled by KeepTrail.
var streetTypes = []struct{ abbr, full string }{
	{"Ave", "Avenue"},
	{"Blvd", "Boulevard"},
	{"Cir", "Circle"},
	{"Cres", "Crescent"},
	{"Ct", "Court"},
	{"Dr", "Drive"},
	{"Hwy", "Highway"},
	{"Ln", "Lane"},
	{"Pkwy", "Parkway"},
	{"Pl", "Place"},
	{"Rd", "Road"},
	{"Sq", "Square"},
	{"St", "Street"},
	{"Terr", "Terrace"},
}

// StreetTypes expands street-type abbreviations ("St" -> "Street")
var StreetTypes = buildStreetTypes()

func buildStreetTypes() Rules {
	rules := make(Rules, 0, len(streetTypes))
	for _, st := range streetTypes {
		rules = append(rules, WordRule("street:"+st.abbr, st.full, st.abbr))
	}
	return rules
}

// CleanStreetTypes applies StreetTypes to s
func CleanStreetTypes(s string) string { return StreetTypes.Transform(s) }
