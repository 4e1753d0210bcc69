package cowichan

import (
	"log"
	"regexp"

	"github.com/theoremus-urban-solutions/cowichan-gtfs-cleaner/config"
	"github.com/theoremus-urban-solutions/cowichan-gtfs-cleaner/internal"
)

// routeIDSuffix matches the agency suffix on GTFS route ids (e.g. "2-CVR")
var routeIDSuffix = regexp.MustCompile(`-[A-Z]+$`)

// Agency describes the agency the labels belong to
type Agency struct {
	Name      string
	Color     string
	RouteType int
}

// Tools bundles the label cleaners with the agency configuration.
// A Tools value is read-only after New and safe for concurrent use.
type Tools struct {
	agency         Agency
	stopNames      *StopNameNormalizer
	nonDescriptive map[int64]struct{}
}

// New builds agency tools from configuration
func New(cfg config.AppConfig) *Tools {
	nd := make(map[int64]struct{}, len(cfg.Headsigns.NonDescriptiveRouteIDs))
	for _, id := range cfg.Headsigns.NonDescriptiveRouteIDs {
		nd[id] = struct{}{}
	}
	t := &Tools{
		agency: Agency{
			Name:      cfg.Agency.Name,
			Color:     cfg.Agency.Color,
			RouteType: cfg.Agency.RouteType,
		},
		stopNames:      NewStopNameNormalizer(cfg.StopNames.UpperCaseWords),
		nonDescriptive: nd,
	}
	log.Printf("agency tools ready: %s (upper-case words %v)", t.agency.Name, cfg.StopNames.UpperCaseWords)
	return t
}

// Setup initializes logging, loads config.yml and builds the agency tools
func Setup() (*Tools, error) {
	internal.InitLogging("cowichan")
	if err := config.LoadAppConfig(); err != nil {
		return nil, err
	}
	return New(config.Config), nil
}

// Agency returns the agency identity
func (t *Tools) Agency() Agency { return t.agency }

// CleanTripHeadsign cleans a trip headsign
func (t *Tools) CleanTripHeadsign(headsign string) string { return NormalizeHeadsign(headsign) }

// CleanStopName cleans a stop name with the configured upper-case words
func (t *Tools) CleanStopName(name string) string { return t.stopNames.Normalize(name) }

// RouteColor resolves the display color of a route; see RouteColor
func (t *Tools) RouteColor(routeShortName, feedColor string) (string, error) {
	return RouteColor(routeShortName, feedColor)
}

// CleanRouteID strips the agency suffix from a GTFS route id
func (t *Tools) CleanRouteID(routeID string) string {
	return routeIDSuffix.ReplaceAllString(routeID, "")
}

// AllowNonDescriptiveHeadsigns reports whether a route's trips may keep
// headsigns that do not describe a destination.
func (t *Tools) AllowNonDescriptiveHeadsigns(routeID int64) bool {
	_, ok := t.nonDescriptive[routeID]
	return ok
}

// StopCode returns the feed stop code, or the stop id when the code is empty.
// Riders see the stop id on the agency website in that case.
func (t *Tools) StopCode(stopCode, stopID string) string {
	if stopCode == "" {
		return stopID
	}
	return stopCode
}
