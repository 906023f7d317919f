package domain

import (
	"context"
	"time"
)

// SearchConfig is the input of a single best-price request for one day.
type SearchConfig struct {
	DepartureStationID string
	ArrivalStationID   string
	RequestTime        time.Time
	TravelClass        string
	// MaxTransfers is nil when the caller sent something that does not parse
	// as an integer. It is forwarded as null, not rejected.
	MaxTransfers        *int
	FastConnectionsOnly bool
	GermanyTicketOnly   bool
}

type FareInterval struct {
	Price             float64 `json:"preis"`
	DepartureTime     string  `json:"abfahrtsZeitpunkt"`
	ArrivalTime       string  `json:"ankunftsZeitpunkt"`
	DepartureLocation string  `json:"abfahrtsOrt"`
	ArrivalLocation   string  `json:"ankunftsOrt"`
	Info              string  `json:"info"`
}

// DailyResult is the outcome for one travel date. A Price of 0 means no
// usable offer; Info then carries the reason.
type DailyResult struct {
	Price         float64        `json:"preis"`
	Info          string         `json:"info"`
	DepartureTime string         `json:"abfahrtsZeitpunkt"`
	ArrivalTime   string         `json:"ankunftsZeitpunkt"`
	Intervals     []FareInterval `json:"allIntervals"`
}

// Unavailable builds the sentinel result used for every per-date failure.
func Unavailable(info string) *DailyResult {
	return &DailyResult{
		Info:      info,
		Intervals: []FareInterval{},
	}
}

// Available reports whether the result carries a real offer.
func (d *DailyResult) Available() bool {
	return d.Price > 0 && len(d.Intervals) > 0
}

// FareProvider fetches the best price of a single day. Implementations never
// return errors; upstream faults are folded into an Unavailable result.
type FareProvider interface {
	BestPrice(ctx context.Context, cfg SearchConfig) *DailyResult
}
