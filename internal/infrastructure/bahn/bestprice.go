package bahn

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/X1ag/BahnBestpreis/internal/domain"
	"github.com/X1ag/BahnBestpreis/internal/logging"
	"github.com/X1ag/BahnBestpreis/internal/utils"
)

const (
	// unavailableMarker is what the upstream answers with when it has no fare for the day.
	unavailableMarker = "Preisauskunft nicht möglich"

	InfoNoBestPrice    = "Kein Bestpreis verfügbar!"
	InfoParseError     = "JSON Parse Error"
	InfoNoIntervals    = "Keine Intervalle gefunden!"
	InfoNoValidPrices  = "Keine gültigen Preise gefunden!"
	errorBodyPreviewLn = 100

	summaryTimeLayout = "02.01.2006, 15:04:05"
)

var productCategories = []string{
	"ICE", "EC_IC", "IR", "REGIONAL", "SBAHN", "BUS", "SCHIFF", "UBAHN", "TRAM", "ANRUFPFLICHTIG",
}

type discount struct {
	Kind  string `json:"art"`
	Class string `json:"klasse"`
}

type traveler struct {
	Type      string     `json:"typ"`
	Discounts []discount `json:"ermaessigungen"`
	Ages      []int      `json:"alter"`
	Count     int        `json:"anzahl"`
}

type bestPriceRequest struct {
	DepartureStop         string     `json:"abfahrtsHalt"`
	RequestTime           string     `json:"anfrageZeitpunkt"`
	ArrivalStop           string     `json:"ankunftsHalt"`
	SearchMode            string     `json:"ankunftSuche"`
	Class                 string     `json:"klasse,omitempty"`
	MaxTransfers          *int       `json:"maxUmstiege"`
	Products              []string   `json:"produktgattungen"`
	Travelers             []traveler `json:"reisende"`
	FastConnections       bool       `json:"schnelleVerbindungen"`
	SeatOnly              bool       `json:"sitzplatzOnly"`
	BikeCarriage          bool       `json:"bikeCarriage"`
	ReservationContingent bool       `json:"reservierungsKontingenteVorhanden"`
	GermanyTicketOnly     bool       `json:"nurDeutschlandTicketVerbindungen"`
	GermanyTicketOwned    bool       `json:"deutschlandTicketVorhanden"`
}

type bestPriceResponse struct {
	Intervals *[]json.RawMessage `json:"intervalle"`
}

func newBestPriceRequest(cfg domain.SearchConfig) bestPriceRequest {
	day := cfg.RequestTime.Format(utils.DateLayout)
	return bestPriceRequest{
		DepartureStop: cfg.DepartureStationID,
		RequestTime:   fmt.Sprintf("%sT%02d:00:00", day, utils.RequestHour),
		ArrivalStop:   cfg.ArrivalStationID,
		SearchMode:    "ABFAHRT",
		Class:         cfg.TravelClass,
		MaxTransfers:  cfg.MaxTransfers,
		Products:      productCategories,
		Travelers: []traveler{{
			Type:      "ERWACHSENER",
			Discounts: []discount{{Kind: "KEINE_ERMAESSIGUNG", Class: "KLASSENLOS"}},
			Ages:      []int{},
			Count:     1,
		}},
		FastConnections:   cfg.FastConnectionsOnly,
		GermanyTicketOnly: cfg.GermanyTicketOnly,
	}
}

// BestPrice queries the best price of the day for cfg. It never fails:
// every upstream problem is reported through an Unavailable result.
func (c *Client) BestPrice(ctx context.Context, cfg domain.SearchConfig) *domain.DailyResult {
	logger := logging.FromContext(ctx, c.logger).With("date", cfg.RequestTime.Format(utils.DateLayout))
	logger.Info("getting best price")

	status, body, err := c.postBestPrice(ctx, newBestPriceRequest(cfg))
	if err != nil {
		logger.Error("best price request failed", "error", err)
		return domain.Unavailable(fetchErrorInfo(err))
	}
	if status < 200 || status > 299 {
		logger.Error("best price request rejected", "status", status, "body", string(body))
	}
	result := ParseBestPrice(status, body)
	logger.Info("best price result", "price", result.Price, "intervals", len(result.Intervals), "info", result.Info)
	return result
}

func (c *Client) postBestPrice(ctx context.Context, payload bestPriceRequest) (int, []byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.siteURL(bestPricePath), bytes.NewReader(data))
	if err != nil {
		return 0, nil, err
	}
	setBrowserHeaders(req, c.siteURL("/buchung/fahrplan/suche"))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Origin", c.baseURL)
	req.Close = true

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

// ParseBestPrice turns an upstream status and body into a DailyResult. It is
// a pure function of its inputs.
func ParseBestPrice(status int, body []byte) *domain.DailyResult {
	if status < 200 || status > 299 {
		return domain.Unavailable(fmt.Sprintf("API Error %d: %s", status, truncate(string(body), errorBodyPreviewLn)))
	}
	if bytes.Contains(body, []byte(unavailableMarker)) {
		return domain.Unavailable(InfoNoBestPrice)
	}
	if !json.Valid(body) {
		return domain.Unavailable(InfoParseError)
	}

	var data bestPriceResponse
	if err := json.Unmarshal(body, &data); err != nil || data.Intervals == nil {
		return domain.Unavailable(InfoNoIntervals)
	}

	intervals := make([]domain.FareInterval, 0, len(*data.Intervals))
	for _, raw := range *data.Intervals {
		if iv, ok := parseInterval(raw); ok {
			intervals = append(intervals, iv)
		}
	}
	if len(intervals) == 0 {
		return domain.Unavailable(InfoNoValidPrices)
	}

	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].Price < intervals[j].Price
	})
	best := intervals[0]
	return &domain.DailyResult{
		Price:         best.Price,
		Info:          best.Info,
		DepartureTime: best.DepartureTime,
		ArrivalTime:   best.ArrivalTime,
		Intervals:     intervals,
	}
}

// parseInterval reads one upstream interval. Only an interval without a first
// connection section is dropped; every other field is read leniently.
func parseInterval(raw json.RawMessage) (domain.FareInterval, bool) {
	s, ok := firstSection(raw)
	if !ok {
		return domain.FareInterval{}, false
	}

	var price float64
	if err := json.Unmarshal(member(member(raw, "preis"), "betrag"), &price); err != nil {
		price = 0
	}

	depTime, arrTime := text(s["abfahrtsZeitpunkt"]), text(s["ankunftsZeitpunkt"])
	depPlace, arrPlace := text(s["abfahrtsOrt"]), text(s["ankunftsOrt"])
	return domain.FareInterval{
		Price:             price,
		DepartureTime:     depTime,
		ArrivalTime:       arrTime,
		DepartureLocation: depPlace,
		ArrivalLocation:   arrPlace,
		Info: fmt.Sprintf("%s %s -> %s %s",
			formatTimestamp(depTime), depPlace,
			formatTimestamp(arrTime), arrPlace),
	}, true
}

// firstSection follows verbindungen[0].verbindung.verbindungsAbschnitte[0].
func firstSection(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	conn, ok := first(member(raw, "verbindungen"))
	if !ok {
		return nil, false
	}
	section, ok := first(member(member(conn, "verbindung"), "verbindungsAbschnitte"))
	if !ok {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(section, &fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}

// member returns obj[key] when raw is a JSON object, nil otherwise.
func member(raw json.RawMessage, key string) json.RawMessage {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}
	return obj[key]
}

// first returns the first element of a non-empty JSON array.
func first(raw json.RawMessage) (json.RawMessage, bool) {
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil || len(arr) == 0 {
		return nil, false
	}
	return arr[0], true
}

// text renders a section field for display. Strings are taken as is, null
// and absent values are empty, anything else keeps its compact JSON form.
func text(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

// formatTimestamp renders an upstream timestamp the way de-DE shows date and
// time. Zoneless values are taken as wall-clock time.
func formatTimestamp(ts string) string {
	if t, err := time.Parse(utils.DateTimeLayout, ts); err == nil {
		return t.Format(summaryTimeLayout)
	}
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t.In(time.Local).Format(summaryTimeLayout)
	}
	return ts
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func fetchErrorInfo(err error) string {
	msg := "Unknown"
	if err != nil && strings.TrimSpace(err.Error()) != "" {
		msg = err.Error()
	}
	return "Fetch Error: " + msg
}
