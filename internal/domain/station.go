package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrStationNotFound = errors.New("Station not found")
	ErrEmptyQuery      = errors.New("Missing query parameter")
)

const (
	SideStart       = "Start"
	SideDestination = "Destination"
)

// StationRef is a provider station as returned by a resolver. The ID is
// opaque and must reach the fare endpoint exactly as the provider sent it.
type StationRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StationResolver maps a free-text station name to a provider station.
// Every failure is reported as ErrStationNotFound.
type StationResolver interface {
	Resolve(ctx context.Context, query string) (*StationRef, error)
}

// StationNotFoundError names the side of a search whose station could not be resolved.
type StationNotFoundError struct {
	Side  string
	Query string
}

func (e *StationNotFoundError) Error() string {
	return fmt.Sprintf("%s station %q not found", e.Side, e.Query)
}

func (e *StationNotFoundError) Unwrap() error {
	return ErrStationNotFound
}
