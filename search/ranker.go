package search

import (
    "sort"
)

const (
    SortByPrice = "price"
    SortByTime  = "time"
)

// NormalizeSortBy coerces unknown sort keys to the price default.
func NormalizeSortBy(sortBy string) string {
    if sortBy == SortByTime {
        return SortByTime
    }
    return SortByPrice
}

// RankDirect sorts direct itineraries ascending by the requested key. The
// sort is stable: ties keep discovery order.
func RankDirect(itineraries []Itinerary, sortBy string) {
    switch NormalizeSortBy(sortBy) {
    case SortByTime:
        sort.SliceStable(itineraries, func(i, j int) bool {
            return minutesOfDay(itineraries[i].DepartureTime) < minutesOfDay(itineraries[j].DepartureTime)
        })
    default:
        sort.SliceStable(itineraries, func(i, j int) bool {
            return itineraries[i].Price < itineraries[j].Price
        })
    }
}

// RankConnecting sorts connecting itineraries ascending by total price or
// by the first leg's departure time.
func RankConnecting(routes []ConnectingItinerary, sortBy string) {
    switch NormalizeSortBy(sortBy) {
    case SortByTime:
        sort.SliceStable(routes, func(i, j int) bool {
            return minutesOfDay(routes[i].Trains[0].DepartureTime) < minutesOfDay(routes[j].Trains[0].DepartureTime)
        })
    default:
        sort.SliceStable(routes, func(i, j int) bool {
            return routes[i].TotalPrice < routes[j].TotalPrice
        })
    }
}
