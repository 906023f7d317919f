package telegram

import (
	"errors"
	"testing"

	"github.com/X1ag/BahnBestpreis/internal/domain"
)

func TestParsePricesCommand(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *domain.SearchRequest
		err  bool
	}{
		{
			name: "three arguments",
			text: "/preise Berlin Hbf | München Hbf | 2025-05-01",
			want: &domain.SearchRequest{Start: "Berlin Hbf", Destination: "München Hbf", StartDate: "2025-05-01"},
		},
		{
			name: "with day limit",
			text: "  /preise Köln|Hamburg|2025-05-01| 5 ",
			want: &domain.SearchRequest{Start: "Köln", Destination: "Hamburg", StartDate: "2025-05-01", DayLimit: 5},
		},
		{name: "too few", text: "/preise Berlin | München", err: true},
		{name: "empty part", text: "/preise Berlin | | 2025-05-01", err: true},
		{name: "bad day limit", text: "/preise Berlin | München | 2025-05-01 | viele", err: true},
		{name: "zero day limit", text: "/preise Berlin | München | 2025-05-01 | 0", err: true},
		{name: "too many", text: "/preise a | b | c | 1 | 2", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePricesCommand(tt.text)
			if tt.err {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != *tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestFormatResult(t *testing.T) {
	result := &domain.AggregateResult{
		Meta: domain.SearchMeta{
			StartStation:       domain.StationRef{Name: "Berlin Hbf"},
			DestinationStation: domain.StationRef{Name: "München Hbf"},
		},
	}
	result.Add("2025-05-01", &domain.DailyResult{Price: 17.9, Info: "01.05.2025, 06:29:00 Berlin Hbf -> 01.05.2025, 10:31:00 München Hbf"})
	result.Add("2025-05-02", domain.Unavailable("Kein Bestpreis verfügbar!"))

	want := "Berlin Hbf -> München Hbf\n" +
		"2025-05-01: 17.90 € (01.05.2025, 06:29:00 Berlin Hbf -> 01.05.2025, 10:31:00 München Hbf)\n" +
		"2025-05-02: Kein Bestpreis verfügbar!"
	if got := FormatResult(result); got != want {
		t.Errorf("unexpected output\n got: %q\nwant: %q", got, want)
	}
}

func TestFormatStation(t *testing.T) {
	berlin := domain.StationRef{ID: "A=1@O=Berlin Hbf@L=8011160@", Name: "Berlin Hbf"}
	bremen := domain.StationRef{ID: "A=1@O=Bremen Hbf@L=8000050@", Name: "Bremen Hbf"}

	tests := []struct {
		name        string
		station     *domain.StationRef
		err         error
		suggestions []domain.StationRef
		want        string
	}{
		{
			name:    "resolved without suggestions",
			station: &berlin,
			want:    "Berlin Hbf\nA=1@O=Berlin Hbf@L=8011160@",
		},
		{
			name:        "resolved station is not suggested again",
			station:     &berlin,
			suggestions: []domain.StationRef{berlin, bremen},
			want:        "Berlin Hbf\nA=1@O=Berlin Hbf@L=8011160@\n\nMeintest du:\n- Bremen Hbf",
		},
		{
			name:        "not found with suggestions",
			err:         &domain.StationNotFoundError{Side: domain.SideStart, Query: "Ber"},
			suggestions: []domain.StationRef{berlin},
			want:        "Fehler: Start station \"Ber\" not found\n\nMeintest du:\n- Berlin Hbf",
		},
		{
			name: "not found",
			err:  domain.ErrStationNotFound,
			want: "Fehler: Station not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatStation(tt.station, tt.err, tt.suggestions); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
