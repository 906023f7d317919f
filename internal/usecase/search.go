package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/X1ag/BahnBestpreis/internal/domain"
	"github.com/X1ag/BahnBestpreis/internal/logging"
	"github.com/X1ag/BahnBestpreis/internal/utils"
)

const (
	DefaultDayLimit = 3
	MaxDayLimit     = 31
)

type SearchUsecase struct {
	resolver    domain.StationResolver
	fares       domain.FareProvider
	defaultDays int
	maxDays     int
	loc         *time.Location
	logger      *slog.Logger
}

func NewSearchUsecase(resolver domain.StationResolver, fares domain.FareProvider, defaultDays int, logger *slog.Logger) *SearchUsecase {
	if defaultDays <= 0 {
		defaultDays = DefaultDayLimit
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchUsecase{
		resolver:    resolver,
		fares:       fares,
		defaultDays: defaultDays,
		maxDays:     MaxDayLimit,
		loc:         time.Local,
		logger:      logger,
	}
}

// WithLocation sets the zone the 08:00 request time is interpreted in.
func (s *SearchUsecase) WithLocation(loc *time.Location) *SearchUsecase {
	if loc != nil {
		s.loc = loc
	}
	return s
}

// WithMaxDayLimit caps the number of days a single search may ask for.
func (s *SearchUsecase) WithMaxDayLimit(n int) *SearchUsecase {
	if n > 0 {
		s.maxDays = n
	}
	return s
}

// SearchPrices resolves both stations and collects the best price for each
// requested day, one upstream call at a time in date order. A station that
// cannot be resolved fails the whole search; per-day problems are carried
// inside the DailyResult.
func (s *SearchUsecase) SearchPrices(ctx context.Context, req *domain.SearchRequest) (*domain.AggregateResult, error) {
	logger := logging.FromContext(ctx, s.logger)
	if req.Start == "" || req.Destination == "" || req.StartDate == "" {
		return nil, domain.ErrMissingFields
	}
	days := req.DayLimit
	if days == 0 {
		days = s.defaultDays
	}
	if days > s.maxDays {
		return nil, fmt.Errorf("%w: %d > %d", domain.ErrDayLimit, days, s.maxDays)
	}

	logger.Info("searching for start station", "query", req.Start)
	start, err := s.resolver.Resolve(ctx, req.Start)
	if err != nil {
		return nil, &domain.StationNotFoundError{Side: domain.SideStart, Query: req.Start}
	}

	logger.Info("searching for destination station", "query", req.Destination)
	dest, err := s.resolver.Resolve(ctx, req.Destination)
	if err != nil {
		return nil, &domain.StationNotFoundError{Side: domain.SideDestination, Query: req.Destination}
	}

	dates, err := utils.GenerateDates(req.StartDate, days, s.loc)
	if err != nil {
		return nil, err
	}

	result := &domain.AggregateResult{Days: make([]domain.DailyEntry, 0, len(dates))}
	available := 0
	for _, date := range dates {
		daily := s.fares.BestPrice(ctx, domain.SearchConfig{
			DepartureStationID:  start.ID,
			ArrivalStationID:    dest.ID,
			RequestTime:         date,
			TravelClass:         req.TravelClass,
			MaxTransfers:        req.MaxTransfers,
			FastConnectionsOnly: req.FastOnly,
			GermanyTicketOnly:   req.GermanyTicketOnly,
		})
		if daily == nil {
			daily = domain.Unavailable("Fetch Error: Unknown")
		}
		if daily.Available() {
			available++
		}
		result.Add(date.Format(utils.DateLayout), daily)
	}

	result.Meta = domain.SearchMeta{
		StartStation:       *start,
		DestinationStation: *dest,
		Params: domain.SearchParams{
			TravelClass:       req.TravelClass,
			MaxTransfers:      req.MaxTransfers,
			FastOnly:          req.FastOnly,
			GermanyTicketOnly: req.GermanyTicketOnly,
		},
	}

	logger.Info("search finished", "dates", result.Dates(), "available", available)
	return result, nil
}
