package models

import (
    "strings"
    "testing"
)

func validTrain() Train {
    return Train{
        Name:   "Bangalore Mangalore Express",
        Number: "EXAM002",
        Type:   TypeExpress,
        Schedule: []Stop{
            {StationName: "Bangalore City", ArrivalTime: "09:00", DepartureTime: "09:00", DistanceFromPrevious: 0, CumulativeDistance: 0, StopNumber: 1},
            {StationName: "Shimoga Town", ArrivalTime: "12:00", DepartureTime: "12:05", DistanceFromPrevious: 180, CumulativeDistance: 180, StopNumber: 2},
            {StationName: "Mangalore Central", ArrivalTime: "17:30", DepartureTime: "17:30", DistanceFromPrevious: 250, CumulativeDistance: 430, StopNumber: 3},
        },
        IsActive: true,
    }
}

func TestValidateTrainAcceptsValidSchedule(t *testing.T) {
    train := validTrain()
    if err := ValidateTrain(&train); err != nil {
        t.Fatalf("valid train rejected: %v", err)
    }
}

func TestValidateTrainRejections(t *testing.T) {
    cases := []struct {
        name    string
        mutate  func(*Train)
        wantSub string
    }{
        {
            "unknown type",
            func(tr *Train) { tr.Type = "Bullet" },
            "Type",
        },
        {
            "missing number",
            func(tr *Train) { tr.Number = "" },
            "Number",
        },
        {
            "single stop schedule",
            func(tr *Train) { tr.Schedule = tr.Schedule[:1] },
            "Schedule",
        },
        {
            "stop number gap",
            func(tr *Train) { tr.Schedule[2].StopNumber = 4 },
            "stop_number",
        },
        {
            "cumulative distance mismatch",
            func(tr *Train) { tr.Schedule[2].CumulativeDistance = 500 },
            "cumulative_distance",
        },
        {
            "first stop nonzero distance",
            func(tr *Train) {
                tr.Schedule[0].DistanceFromPrevious = 10
            },
            "distance_from_previous",
        },
        {
            "first stop arrival differs from departure",
            func(tr *Train) { tr.Schedule[0].DepartureTime = "09:15" },
            "differs from departure",
        },
        {
            "repeated station",
            func(tr *Train) { tr.Schedule[2].StationName = "Bangalore City" },
            "appears twice",
        },
        {
            "unparseable time",
            func(tr *Train) { tr.Schedule[1].ArrivalTime = "25:99" },
            "bad arrival time",
        },
    }

    for _, c := range cases {
        t.Run(c.name, func(t *testing.T) {
            train := validTrain()
            c.mutate(&train)
            err := ValidateTrain(&train)
            if err == nil {
                t.Fatal("expected validation error")
            }
            if !strings.Contains(err.Error(), c.wantSub) {
                t.Errorf("error %q does not mention %q", err.Error(), c.wantSub)
            }
        })
    }
}

func TestValidateStation(t *testing.T) {
    station := Station{Name: "Bangalore City", Code: "SBC", City: "Bangalore", State: "Karnataka"}
    if err := ValidateStation(&station); err != nil {
        t.Fatalf("valid station rejected: %v", err)
    }

    station.Name = ""
    if err := ValidateStation(&station); err == nil {
        t.Fatal("expected error for missing name")
    }
}
