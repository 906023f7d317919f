package domain

import (
	"bytes"
	"encoding/json"
	"errors"
)

// MetaKey is the reserved aggregate entry. It can never collide with a YYYY-MM-DD key.
const MetaKey = "_meta"

var (
	ErrMissingFields = errors.New("Missing required fields: start, ziel, abfahrtab")
	ErrInvalidDate   = errors.New("invalid start date")
	ErrDayLimit      = errors.New("dayLimit exceeds the allowed maximum")
)

type SearchRequest struct {
	Start             string
	Destination       string
	StartDate         string
	TravelClass       string
	FastOnly          bool
	GermanyTicketOnly bool
	MaxTransfers      *int
	DayLimit          int
}

type SearchParams struct {
	TravelClass       string `json:"klasse,omitempty"`
	MaxTransfers      *int   `json:"maximaleUmstiege"`
	FastOnly          bool   `json:"schnelleVerbindungen"`
	GermanyTicketOnly bool   `json:"nurDeutschlandTicketVerbindungen"`
}

type SearchMeta struct {
	StartStation       StationRef   `json:"startStation"`
	DestinationStation StationRef   `json:"zielStation"`
	Params             SearchParams `json:"searchParams"`
}

type DailyEntry struct {
	Date   string
	Result *DailyResult
}

// AggregateResult holds one DailyResult per date in insertion order plus the
// search metadata. It encodes as a single JSON object keyed by date.
type AggregateResult struct {
	Days []DailyEntry
	Meta SearchMeta
}

func (a *AggregateResult) Add(date string, result *DailyResult) {
	for i := range a.Days {
		if a.Days[i].Date == date {
			a.Days[i].Result = result
			return
		}
	}
	a.Days = append(a.Days, DailyEntry{Date: date, Result: result})
}

func (a *AggregateResult) Dates() []string {
	dates := make([]string, 0, len(a.Days))
	for _, d := range a.Days {
		dates = append(dates, d.Date)
	}
	return dates
}

func (a AggregateResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for _, d := range a.Days {
		if err := writeMember(&buf, d.Date, d.Result); err != nil {
			return nil, err
		}
		buf.WriteByte(',')
	}
	if err := writeMember(&buf, MetaKey, a.Meta); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeMember writes "key":value without HTML escaping, so summaries keep their "->".
func writeMember(buf *bytes.Buffer, key string, value any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(key); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	buf.WriteByte(':')
	if err := enc.Encode(value); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}
