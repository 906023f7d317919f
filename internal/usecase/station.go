package usecase

import (
	"context"

	"github.com/X1ag/BahnBestpreis/internal/domain"
	"github.com/X1ag/BahnBestpreis/internal/utils"
)

const suggestionLimit = 5

type StationUsecase struct {
	resolver domain.StationResolver
}

func NewStationUsecase(resolver domain.StationResolver) *StationUsecase {
	return &StationUsecase{
		resolver: resolver,
	}
}

func (s *StationUsecase) Search(ctx context.Context, query string) (*domain.StationRef, error) {
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}
	return s.resolver.Resolve(ctx, query)
}

// Suggest lists well-known stations resembling query, best matches first.
func (s *StationUsecase) Suggest(query string) []domain.StationRef {
	options := utils.SuggestStations(query, suggestionLimit)
	refs := make([]domain.StationRef, 0, len(options))
	for _, o := range options {
		refs = append(refs, domain.StationRef{ID: o.Code, Name: o.DisplayName})
	}
	return refs
}
