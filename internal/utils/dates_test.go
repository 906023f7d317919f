package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/X1ag/BahnBestpreis/internal/domain"
)

func TestGenerateDates(t *testing.T) {
	tests := []struct {
		name  string
		start string
		count int
		want  []string
	}{
		{
			name:  "leap year rollover",
			start: "2024-02-28",
			count: 3,
			want:  []string{"2024-02-28T08:00:00", "2024-02-29T08:00:00", "2024-03-01T08:00:00"},
		},
		{
			name:  "non leap year",
			start: "2023-02-28",
			count: 2,
			want:  []string{"2023-02-28T08:00:00", "2023-03-01T08:00:00"},
		},
		{
			name:  "year rollover",
			start: "2024-12-31",
			count: 2,
			want:  []string{"2024-12-31T08:00:00", "2025-01-01T08:00:00"},
		},
		{
			name:  "single day",
			start: "2025-06-15",
			count: 1,
			want:  []string{"2025-06-15T08:00:00"},
		},
		{
			name:  "zero count",
			start: "2025-06-15",
			count: 0,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates, err := GenerateDates(tt.start, tt.count, time.UTC)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(dates) != len(tt.want) {
				t.Fatalf("expected %d dates, got %d", len(tt.want), len(dates))
			}
			for i, d := range dates {
				if got := d.Format(DateTimeLayout); got != tt.want[i] {
					t.Errorf("date %d: expected %s, got %s", i, tt.want[i], got)
				}
			}
		})
	}
}

func TestGenerateDates_KeepsWallClockAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}

	dates, err := GenerateDates("2024-03-30", 3, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, d := range dates {
		if d.Hour() != RequestHour || d.Minute() != 0 {
			t.Errorf("expected 08:00 wall clock, got %s", d)
		}
	}
	if got := dates[2].Format(DateLayout); got != "2024-04-01" {
		t.Errorf("expected 2024-04-01, got %s", got)
	}
}

func TestGenerateDates_InvalidStart(t *testing.T) {
	for _, in := range []string{"", "2024-02-30", "28.02.2024", "2024-02-28T10:00:00"} {
		if _, err := GenerateDates(in, 3, time.UTC); !errors.Is(err, domain.ErrInvalidDate) {
			t.Errorf("GenerateDates(%q): expected ErrInvalidDate, got %v", in, err)
		}
	}
}
