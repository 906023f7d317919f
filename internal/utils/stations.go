package utils

import (
	"context"
	"strings"

	"github.com/X1ag/BahnBestpreis/internal/domain"
)

// StationOption is a pre-resolved provider station.
type StationOption struct {
	Query       string
	Code        string
	DisplayName string
}

// PopularStations maps the city names the frontend offers to bahn.de location ids.
var PopularStations = []StationOption{
	{Query: "Berlin", Code: "A=1@O=Berlin Hbf@X=13369549@Y=52525589@U=80@L=8011160@", DisplayName: "Berlin Hbf"},
	{Query: "Hamburg", Code: "A=1@O=Hamburg Hbf@X=10006909@Y=53552733@U=80@L=8002549@", DisplayName: "Hamburg Hbf"},
	{Query: "München", Code: "A=1@O=München Hbf@X=11558339@Y=48140229@U=80@L=8000261@", DisplayName: "München Hbf"},
	{Query: "Köln", Code: "A=1@O=Köln Hbf@X=6958730@Y=50943029@U=80@L=8000207@", DisplayName: "Köln Hbf"},
	{Query: "Frankfurt", Code: "A=1@O=Frankfurt(Main)Hbf@X=8663785@Y=50107145@U=80@L=8000105@", DisplayName: "Frankfurt(Main)Hbf"},
	{Query: "Stuttgart", Code: "A=1@O=Stuttgart Hbf@X=9181636@Y=48784081@U=80@L=8000096@", DisplayName: "Stuttgart Hbf"},
	{Query: "Düsseldorf", Code: "A=1@O=Düsseldorf Hbf@X=6794317@Y=51219960@U=80@L=8000085@", DisplayName: "Düsseldorf Hbf"},
	{Query: "Leipzig", Code: "A=1@O=Leipzig Hbf@X=12383333@Y=51346546@U=80@L=8010205@", DisplayName: "Leipzig Hbf"},
	{Query: "Dresden", Code: "A=1@O=Dresden Hbf@X=13732039@Y=51040562@U=80@L=8010085@", DisplayName: "Dresden Hbf"},
	{Query: "Hannover", Code: "A=1@O=Hannover Hbf@X=9741017@Y=52376764@U=80@L=8000152@", DisplayName: "Hannover Hbf"},
	{Query: "Nürnberg", Code: "A=1@O=Nürnberg Hbf@X=11082989@Y=49445615@U=80@L=8000284@", DisplayName: "Nürnberg Hbf"},
	{Query: "Bremen", Code: "A=1@O=Bremen Hbf@X=8813833@Y=53083477@U=80@L=8000050@", DisplayName: "Bremen Hbf"},
}

var (
	stationCodes = map[string]string{}
	displayNames = map[string]string{}
)

func init() {
	for _, s := range PopularStations {
		stationCodes[s.Query] = s.Code
		displayNames[s.Query] = s.DisplayName
	}
}

// StationCode returns the provider id for a known city, or the query itself.
func StationCode(query string) string {
	if code, ok := stationCodes[query]; ok {
		return code
	}
	return query
}

// StationDisplayName returns the display name for a known city, or the query itself.
func StationDisplayName(query string) string {
	if name, ok := displayNames[query]; ok {
		return name
	}
	return query
}

// SuggestStations ranks table entries against query, ignoring case. Cities
// whose name starts with query come first, then entries whose display name
// contains it, each group in table order. At most limit entries are returned.
func SuggestStations(query string, limit int) []StationOption {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}

	var prefix, partial []StationOption
	for _, s := range PopularStations {
		switch {
		case strings.HasPrefix(strings.ToLower(s.Query), q):
			prefix = append(prefix, s)
		case strings.Contains(strings.ToLower(s.DisplayName), q):
			partial = append(partial, s)
		}
	}

	ranked := append(prefix, partial...)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// StaticResolver resolves stations from PopularStations without network access.
// Unknown names fall through unchanged as both id and display name.
type StaticResolver struct{}

func NewStaticResolver() *StaticResolver {
	return &StaticResolver{}
}

func (StaticResolver) Resolve(_ context.Context, query string) (*domain.StationRef, error) {
	if query == "" {
		return nil, domain.ErrStationNotFound
	}
	return &domain.StationRef{
		ID:   StationCode(query),
		Name: StationDisplayName(query),
	}, nil
}
