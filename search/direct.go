package search

import (
    "context"
)

// DirectFinder locates same-train itineraries between two stations.
type DirectFinder struct {
    store ScheduleStore
}

func NewDirectFinder(store ScheduleStore) *DirectFinder {
    return &DirectFinder{store: store}
}

// Find returns every active train serving both stations with the source
// stop strictly before the destination stop. Reverse-direction matches are
// excluded. The list is unsorted; ranking happens separately.
func (f *DirectFinder) Find(ctx context.Context, source, destination string) ([]Itinerary, error) {
    trains, err := f.store.TrainsServing(ctx, source)
    if err != nil {
        return nil, err
    }

    var itineraries []Itinerary
    for _, train := range trains {
        sourceStop := train.FindStop(source)
        destStop := train.FindStop(destination)
        if sourceStop == nil || destStop == nil {
            continue
        }
        if sourceStop.StopNumber >= destStop.StopNumber {
            continue
        }

        distance := destStop.CumulativeDistance - sourceStop.CumulativeDistance
        itineraries = append(itineraries, Itinerary{
            TrainName:          train.Name,
            TrainNumber:        train.Number,
            TrainType:          train.Type,
            SourceStation:      source,
            DestinationStation: destination,
            DepartureTime:      sourceStop.DepartureTime,
            ArrivalTime:        destStop.ArrivalTime,
            Distance:           distance,
            Price:              distance * PricePerKM,
            RouteType:          "direct",
            Stops:              train.Schedule[sourceStop.StopNumber-1 : destStop.StopNumber],
        })
    }

    return itineraries, nil
}
