package models

import (
    "go.mongodb.org/mongo-driver/bson/primitive"
)

// Train types recognized by the timetable. Anything else is rejected at load time.
const (
    TypeExpress   = "Express"
    TypeSuperfast = "Superfast"
    TypePassenger = "Passenger"
    TypeRajdhani  = "Rajdhani"
    TypeShatabdi  = "Shatabdi"
)

type Train struct {
    ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
    Name     string             `bson:"name" json:"name" validate:"required"`
    Number   string             `bson:"number" json:"number" validate:"required"`
    Type     string             `bson:"type" json:"type" validate:"required,oneof=Express Superfast Passenger Rajdhani Shatabdi"`
    Schedule []Stop             `bson:"schedule" json:"schedule" validate:"required,min=2,dive"`
    IsActive bool               `bson:"is_active" json:"is_active"`
}

// Stop is one scheduled station visit on a train's route. StationName is a
// denormalized copy of the Station record's name and must always match it.
type Stop struct {
    StationName          string  `bson:"station_name" json:"station_name" validate:"required"`
    ArrivalTime          string  `bson:"arrival_time" json:"arrival_time" validate:"required,len=5"`
    DepartureTime        string  `bson:"departure_time" json:"departure_time" validate:"required,len=5"`
    DistanceFromPrevious float64 `bson:"distance_from_previous" json:"distance_from_previous" validate:"min=0"`
    CumulativeDistance   float64 `bson:"cumulative_distance" json:"cumulative_distance" validate:"min=0"`
    StopNumber           int     `bson:"stop_number" json:"stop_number" validate:"min=1"`
}

// FindStop returns the first stop in the schedule serving the given station,
// or nil. Station names appear at most once per schedule.
func (t *Train) FindStop(stationName string) *Stop {
    for i := range t.Schedule {
        if t.Schedule[i].StationName == stationName {
            return &t.Schedule[i]
        }
    }
    return nil
}
