package search

import (
    "context"
)

// MinConnectionMinutes is the smallest acceptable gap between arriving at a
// connection station and the onward departure.
const MinConnectionMinutes = 30

// ConnectingFinder assembles two-train itineraries through one intermediate
// station. It only runs when no direct train exists.
type ConnectingFinder struct {
    store ScheduleStore
}

func NewConnectingFinder(store ScheduleStore) *ConnectingFinder {
    return &ConnectingFinder{store: store}
}

// Find pairs every train leaving the source with every train that
// originates at one of its later stops and reaches the destination. The
// onward train must begin its route at the connection station, and the gap
// there must be at least MinConnectionMinutes, rolling the departure
// forward one day when it falls numerically before the arrival. Every
// valid (source train, connection station, onward train) triple is
// reported; duplicates through the same station are not collapsed.
func (f *ConnectingFinder) Find(ctx context.Context, source, destination string) ([]ConnectingItinerary, error) {
    fromSource, err := f.store.TrainsServing(ctx, source)
    if err != nil {
        return nil, err
    }
    toDestination, err := f.store.TrainsServing(ctx, destination)
    if err != nil {
        return nil, err
    }

    var routes []ConnectingItinerary
    for _, sourceTrain := range fromSource {
        sourceStop := sourceTrain.FindStop(source)
        if sourceStop == nil {
            continue
        }

        for _, intermediate := range sourceTrain.Schedule {
            if intermediate.StopNumber <= sourceStop.StopNumber {
                continue
            }

            for _, destTrain := range toDestination {
                if destTrain.Number == sourceTrain.Number {
                    continue
                }

                connectingStop := destTrain.FindStop(intermediate.StationName)
                if connectingStop == nil || connectingStop.StopNumber != 1 {
                    continue
                }
                finalStop := destTrain.FindStop(destination)
                if finalStop == nil || finalStop.StopNumber <= connectingStop.StopNumber {
                    continue
                }

                gap := connectionMinutes(intermediate.ArrivalTime, connectingStop.DepartureTime)
                if gap < MinConnectionMinutes {
                    continue
                }

                firstLegDistance := intermediate.CumulativeDistance - sourceStop.CumulativeDistance
                secondLegDistance := finalStop.CumulativeDistance - connectingStop.CumulativeDistance
                totalDistance := firstLegDistance + secondLegDistance

                routes = append(routes, ConnectingItinerary{
                    RouteType:         "connecting",
                    TotalDistance:     totalDistance,
                    TotalPrice:        totalDistance * PricePerKM,
                    ConnectionStation: intermediate.StationName,
                    ConnectionTime:    gap,
                    Trains: []Leg{
                        {
                            TrainName:          sourceTrain.Name,
                            TrainNumber:        sourceTrain.Number,
                            TrainType:          sourceTrain.Type,
                            SourceStation:      source,
                            DestinationStation: intermediate.StationName,
                            DepartureTime:      sourceStop.DepartureTime,
                            ArrivalTime:        intermediate.ArrivalTime,
                            Distance:           firstLegDistance,
                            Price:              firstLegDistance * PricePerKM,
                        },
                        {
                            TrainName:          destTrain.Name,
                            TrainNumber:        destTrain.Number,
                            TrainType:          destTrain.Type,
                            SourceStation:      intermediate.StationName,
                            DestinationStation: destination,
                            DepartureTime:      connectingStop.DepartureTime,
                            ArrivalTime:        finalStop.ArrivalTime,
                            Distance:           secondLegDistance,
                            Price:              secondLegDistance * PricePerKM,
                        },
                    },
                })
            }
        }
    }

    return routes, nil
}
