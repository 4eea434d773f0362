package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/flight-lookup/flight-lookup-service/internal/domain"
	"github.com/flight-lookup/flight-lookup-service/internal/infrastructure/logger"
	"github.com/flight-lookup/flight-lookup-service/internal/infrastructure/metrics"
)

// FlightLookupUseCase defines the flight lookup operations.
type FlightLookupUseCase interface {
	// Lookup resolves criteria according to its Mode.
	Lookup(ctx context.Context, criteria domain.LookupCriteria) (*domain.LookupResult, error)

	// Search returns every flight matching at least one of departure, arrival, date or flight number.
	Search(ctx context.Context, criteria domain.LookupCriteria) (*domain.LookupResult, error)

	// Track resolves an exact flight number to at most one flight.
	// An empty flight number yields an empty result without contacting the upstream API.
	Track(ctx context.Context, flightNumber string) (*domain.LookupResult, error)
}

// Config contains configuration options for the use case.
type Config struct {
	Logger  *logger.Logger
	Metrics *metrics.Metrics
}

type flightLookupUseCase struct {
	source  domain.FlightSource
	log     *logger.Logger
	metrics *metrics.Metrics
}

// Ensure flightLookupUseCase implements FlightLookupUseCase at compile time.
var _ FlightLookupUseCase = (*flightLookupUseCase)(nil)

// NewFlightLookupUseCase creates a FlightLookupUseCase backed by source.
// A nil config disables logging and metrics.
func NewFlightLookupUseCase(source domain.FlightSource, config *Config) FlightLookupUseCase {
	uc := &flightLookupUseCase{
		source: source,
		log:    logger.Nop(),
	}
	if config != nil {
		if config.Logger != nil {
			uc.log = config.Logger
		}
		uc.metrics = config.Metrics
	}
	return uc
}

// Lookup implements FlightLookupUseCase.Lookup.
func (uc *flightLookupUseCase) Lookup(ctx context.Context, criteria domain.LookupCriteria) (*domain.LookupResult, error) {
	switch criteria.Mode {
	case domain.ModeSearch:
		return uc.Search(ctx, criteria)
	case domain.ModeTrack:
		return uc.Track(ctx, criteria.FlightNumber)
	default:
		return nil, fmt.Errorf("%w: unknown lookup mode %q", domain.ErrInvalidRequest, criteria.Mode)
	}
}

// Search implements FlightLookupUseCase.Search.
func (uc *flightLookupUseCase) Search(ctx context.Context, criteria domain.LookupCriteria) (*domain.LookupResult, error) {
	criteria.Mode = domain.ModeSearch
	criteria.Limit = domain.DefaultSearchLimit
	criteria.Normalize()

	if err := criteria.Validate(); err != nil {
		uc.observe(domain.ModeSearch, err)
		return nil, err
	}

	start := time.Now()
	raw, err := uc.source.Search(ctx, criteria)
	if err != nil {
		uc.observe(domain.ModeSearch, err)
		return nil, fmt.Errorf("search flights via %s: %w", uc.source.Name(), err)
	}

	result := domain.NewLookupResult(domain.ModeSearch, domain.NormalizeFlights(raw))
	uc.observe(domain.ModeSearch, nil)

	uc.log.Debug().
		Str("departure", criteria.Departure).
		Str("arrival", criteria.Arrival).
		Str("date", criteria.Date).
		Str("flight_number", criteria.FlightNumber).
		Int("count", result.Count).
		Dur("latency", time.Since(start)).
		Msg("Flight search completed")

	return result, nil
}

// Track implements FlightLookupUseCase.Track.
func (uc *flightLookupUseCase) Track(ctx context.Context, flightNumber string) (*domain.LookupResult, error) {
	criteria := domain.NewTrackCriteria(flightNumber)
	criteria.Normalize()

	if criteria.FlightNumber == "" {
		uc.observe(domain.ModeTrack, nil)
		return domain.NewLookupResult(domain.ModeTrack, nil), nil
	}

	if err := criteria.Validate(); err != nil {
		uc.observe(domain.ModeTrack, err)
		return nil, err
	}

	raw, err := uc.source.GetByFlightNumber(ctx, criteria.FlightNumber)
	if err != nil {
		uc.observe(domain.ModeTrack, err)
		return nil, fmt.Errorf("track flight via %s: %w", uc.source.Name(), err)
	}
	if raw == nil {
		uc.observe(domain.ModeTrack, domain.ErrFlightNotFound)
		return nil, fmt.Errorf("%w: %s", domain.ErrFlightNotFound, criteria.FlightNumber)
	}

	flight := domain.NormalizeFlight(*raw)
	uc.observe(domain.ModeTrack, nil)

	uc.log.Debug().
		Str("flight_number", criteria.FlightNumber).
		Str("status", flight.Status).
		Msg("Flight tracked")

	return domain.NewLookupResult(domain.ModeTrack, []domain.DisplayFlight{flight}), nil
}

func (uc *flightLookupUseCase) observe(mode domain.LookupMode, err error) {
	outcome := metrics.OutcomeSuccess
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrInvalidRequest):
		outcome = metrics.OutcomeInvalid
	case errors.Is(err, domain.ErrFlightNotFound):
		outcome = metrics.OutcomeNotFound
	default:
		outcome = metrics.OutcomeError
		uc.log.Warn().Err(err).Str("mode", string(mode)).Msg("Flight lookup failed")
	}
	uc.metrics.ObserveLookup(string(mode), outcome)
}
