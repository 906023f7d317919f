package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/X1ag/BahnBestpreis/internal/domain"
)

func TestStationUsecase_Search(t *testing.T) {
	resolver, _ := newFakes()
	uc := NewStationUsecase(resolver)

	station, err := uc.Search(context.Background(), "Berlin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if station.Name != "Berlin Hbf" {
		t.Errorf("unexpected station %+v", station)
	}

	if _, err := uc.Search(context.Background(), "Atlantis"); !errors.Is(err, domain.ErrStationNotFound) {
		t.Errorf("expected ErrStationNotFound, got %v", err)
	}

	if _, err := uc.Search(context.Background(), ""); !errors.Is(err, domain.ErrEmptyQuery) {
		t.Errorf("expected ErrEmptyQuery, got %v", err)
	}
	if len(resolver.calls) != 2 {
		t.Errorf("empty query must not reach the resolver, calls: %v", resolver.calls)
	}
}

func TestStationUsecase_Suggest(t *testing.T) {
	resolver, _ := newFakes()
	uc := NewStationUsecase(resolver)

	got := uc.Suggest("han")
	if len(got) != 1 || got[0].Name != "Hannover Hbf" || got[0].ID != "A=1@O=Hannover Hbf@X=9741017@Y=52376764@U=80@L=8000152@" {
		t.Errorf("unexpected suggestions %+v", got)
	}
	if got := uc.Suggest("hbf"); len(got) != suggestionLimit {
		t.Errorf("expected %d suggestions, got %d", suggestionLimit, len(got))
	}
	if got := uc.Suggest("Atlantis"); len(got) != 0 {
		t.Errorf("expected no suggestions, got %+v", got)
	}
	if len(resolver.calls) != 0 {
		t.Errorf("suggestions must not hit the resolver, calls: %v", resolver.calls)
	}
}
