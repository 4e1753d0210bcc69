/*
Package cowichan cleans Cowichan Valley Regional Transit System GTFS labels
for display.

It exposes three pure operations over tables built once at init:

	headsign := cowichan.NormalizeHeadsign("Mall via Downtown-to Airport")  // "Mall to Airport"
	stop := cowichan.NormalizeStopName("(-DCOM-) Main St")                  // "Main Street"
	color, err := cowichan.RouteColor("2", "000000")                        // "17468B", nil

Every operation is safe for concurrent use.

# Route colors

The fallback color table is closed. A route short name missing from it is an
unclassified route: RouteColor and ResolveFallbackColor return an error
wrapping ErrUnclassifiedRoute and callers are expected to halt. Black
("000000") is the feed's unset sentinel and always takes the fallback path.

# Agency tools

Tools bundles the normalizers with the agency configuration loaded by the
config package (stop-name upper-case words, routes allowed non-descriptive
headsigns, agency identity):

	tools, err := cowichan.Setup() // reads config.yml
	if err != nil {
	    log.Fatal(err)
	}
	name := tools.CleanStopName(raw)
*/
package cowichan
