package cowichan

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"strings"
)

// ErrUnclassifiedRoute is returned for a route short name with no fallback color.
// It means a new route was never classified and processing must stop.
var ErrUnclassifiedRoute = errors.New("unclassified route color")

// black is what the feed uses when no color is set
const black = "000000"

var hexColor = regexp.MustCompile(`^[0-9A-F]{6}$`)

// fallbackColors maps route short name -> color for routes the feed leaves uncolored.
// The set is closed: there is no default entry.
var fallbackColors = map[string]string{
	"2":  "17468B",
	"3":  "80CC28",
	"4":  "F68712",
	"5":  "C06EBE",
	"6":  "ED0790",
	"7":  "49690F",
	"7x": "ACA86E",
	"8":  "49176D",
	"9":  "B2BB1E",
	"20": "0073AD",
	"21": "A54499",
	"31": "FBBD09",
	"34": "0B6FAE",
	"36": "8A0C34",
	"44": "00AA4F",
	"66": "8CC63F",
	"99": "114D8A",
}

// FallbackColors returns a copy of the fallback color table
func FallbackColors() map[string]string { return maps.Clone(fallbackColors) }

// ResolveFallbackColor returns the curated color for a route short name.
// Matching is exact and case-sensitive; a miss wraps ErrUnclassifiedRoute.
func ResolveFallbackColor(routeShortName string) (string, error) {
	if c, ok := fallbackColors[routeShortName]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: no color for route short name %q", ErrUnclassifiedRoute, routeShortName)
}

// FixColor sanitizes a feed color to 6 upper-case hex digits.
// Black, blank and malformed values all mean "no color" and yield "".
func FixColor(color string) string {
	c := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(color), "#"))
	if c == black || !hexColor.MatchString(c) {
		return ""
	}
	return c
}

// RouteColor returns the feed color when it is usable, the fallback color otherwise
func RouteColor(routeShortName, feedColor string) (string, error) {
	if c := FixColor(feedColor); c != "" {
		return c, nil
	}
	return ResolveFallbackColor(routeShortName)
}
