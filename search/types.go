package search

import (
    "train_site/models"
)

// PricePerKM is the flat fare rate applied to every leg.
const PricePerKM = 1.25

// Itinerary is a single train covering source and destination forward
// along its route.
type Itinerary struct {
    TrainName          string        `json:"trainName"`
    TrainNumber        string        `json:"trainNumber"`
    TrainType          string        `json:"trainType"`
    SourceStation      string        `json:"sourceStation"`
    DestinationStation string        `json:"destinationStation"`
    DepartureTime      string        `json:"departureTime"`
    ArrivalTime        string        `json:"arrivalTime"`
    Distance           float64       `json:"distance"`
    Price              float64       `json:"price"`
    RouteType          string        `json:"routeType"`
    Stops              []models.Stop `json:"stops,omitempty"`
}

// Leg is one train segment of a connecting itinerary.
type Leg struct {
    TrainName          string  `json:"trainName"`
    TrainNumber        string  `json:"trainNumber"`
    TrainType          string  `json:"trainType"`
    SourceStation      string  `json:"sourceStation"`
    DestinationStation string  `json:"destinationStation"`
    DepartureTime      string  `json:"departureTime"`
    ArrivalTime        string  `json:"arrivalTime"`
    Distance           float64 `json:"distance"`
    Price              float64 `json:"price"`
}

// ConnectingItinerary joins exactly two trains at one intermediate station.
// ConnectionTime is the gap at that station in minutes.
type ConnectingItinerary struct {
    RouteType         string  `json:"routeType"`
    TotalDistance     float64 `json:"totalDistance"`
    TotalPrice        float64 `json:"totalPrice"`
    ConnectionStation string  `json:"connectionStation"`
    ConnectionTime    int     `json:"connectionTime"`
    Trains            []Leg   `json:"trains"`
}

// Result is the response envelope for one search. At most one of the two
// lists is non-empty: connections are never computed when a direct train
// exists.
type Result struct {
    DirectTrains     []Itinerary           `json:"directTrains"`
    ConnectingRoutes []ConnectingItinerary `json:"connectingRoutes"`
    Message          string                `json:"message"`
}

func emptyResult(message string) *Result {
    return &Result{
        DirectTrains:     []Itinerary{},
        ConnectingRoutes: []ConnectingItinerary{},
        Message:          message,
    }
}
