package search

import (
    "context"
    "errors"
    "fmt"
)

// MessageNoTrains is the envelope message when neither list has entries.
const MessageNoTrains = "No trains available for selected route"

// Service composes the override registry, the two finders and the ranker
// into one request cycle. It holds no per-request state; every call is a
// pure function of the store contents and its inputs.
type Service struct {
    store      ScheduleStore
    overrides  *OverrideRegistry
    direct     *DirectFinder
    connecting *ConnectingFinder
}

// NewService wires a search service over the given store. A nil overrides
// registry means no route is special-cased.
func NewService(store ScheduleStore, overrides *OverrideRegistry) *Service {
    if overrides == nil {
        overrides = NewOverrideRegistry()
    }
    return &Service{
        store:      store,
        overrides:  overrides,
        direct:     NewDirectFinder(store),
        connecting: NewConnectingFinder(store),
    }
}

// Search runs one itinerary lookup. Overrides win outright; otherwise
// direct trains are found first and connections are only computed when no
// direct train exists. The non-empty list is ranked by sortBy, defaulting
// to price.
func (s *Service) Search(ctx context.Context, source, destination, sortBy string) (*Result, error) {
    if source == "" || destination == "" {
        return nil, &ValidationError{Reason: "Source and destination stations are required"}
    }
    if source == destination {
        return nil, &ValidationError{Reason: "Source and destination cannot be the same"}
    }
    sortBy = NormalizeSortBy(sortBy)

    result, matched, err := s.overrides.Resolve(ctx, s.store, source, destination)
    if matched {
        if err != nil {
            var inconsistency *DataInconsistencyError
            if errors.As(err, &inconsistency) {
                // Seeding problem, not a user error: degrade to an empty
                // answer instead of failing the request.
                return emptyResult(inconsistency.Message), nil
            }
            return nil, err
        }
        return result, nil
    }

    result = emptyResult("")

    result.DirectTrains, err = s.direct.Find(ctx, source, destination)
    if err != nil {
        return nil, err
    }
    if result.DirectTrains == nil {
        result.DirectTrains = []Itinerary{}
    }

    if len(result.DirectTrains) == 0 {
        result.ConnectingRoutes, err = s.connecting.Find(ctx, source, destination)
        if err != nil {
            return nil, err
        }
        if result.ConnectingRoutes == nil {
            result.ConnectingRoutes = []ConnectingItinerary{}
        }
    }

    switch {
    case len(result.DirectTrains) == 0 && len(result.ConnectingRoutes) == 0:
        result.Message = MessageNoTrains
    case len(result.DirectTrains) > 0:
        result.Message = fmt.Sprintf("Found %d direct train(s)", len(result.DirectTrains))
    default:
        result.Message = fmt.Sprintf("Found %d connecting route(s)", len(result.ConnectingRoutes))
    }

    RankDirect(result.DirectTrains, sortBy)
    RankConnecting(result.ConnectingRoutes, sortBy)

    return result, nil
}

// ListStations returns the sorted distinct station names served by active
// trains.
func (s *Service) ListStations(ctx context.Context) ([]string, error) {
    return s.store.AllStationNames(ctx)
}
