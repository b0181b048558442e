package search

import (
    "train_site/models"
)

// Fixture trains mirroring the seeded demonstration timetable.

func chennaiMangaloreExpress() models.Train {
    return models.Train{
        Name:   "Chennai Mangalore Express",
        Number: "EXAM001",
        Type:   models.TypeExpress,
        Schedule: []models.Stop{
            {StationName: "Chennai Central", ArrivalTime: "09:00", DepartureTime: "09:00", DistanceFromPrevious: 0, CumulativeDistance: 0, StopNumber: 1},
            {StationName: "Vellore Cantonment", ArrivalTime: "11:00", DepartureTime: "11:00", DistanceFromPrevious: 170, CumulativeDistance: 170, StopNumber: 2},
            {StationName: "Bangalore City", ArrivalTime: "15:30", DepartureTime: "15:30", DistanceFromPrevious: 200, CumulativeDistance: 370, StopNumber: 3},
            {StationName: "Mysuru Junction", ArrivalTime: "17:30", DepartureTime: "17:30", DistanceFromPrevious: 120, CumulativeDistance: 490, StopNumber: 4},
            {StationName: "Mangalore Central", ArrivalTime: "21:45", DepartureTime: "21:45", DistanceFromPrevious: 300, CumulativeDistance: 790, StopNumber: 5},
        },
        IsActive: true,
    }
}

func bangaloreMangaloreExpress() models.Train {
    return models.Train{
        Name:   "Bangalore Mangalore Express",
        Number: "EXAM002",
        Type:   models.TypeExpress,
        Schedule: []models.Stop{
            {StationName: "Bangalore City", ArrivalTime: "09:00", DepartureTime: "09:00", DistanceFromPrevious: 0, CumulativeDistance: 0, StopNumber: 1},
            {StationName: "Shimoga Town", ArrivalTime: "12:00", DepartureTime: "12:00", DistanceFromPrevious: 180, CumulativeDistance: 180, StopNumber: 2},
            {StationName: "Mangalore Central", ArrivalTime: "17:30", DepartureTime: "17:30", DistanceFromPrevious: 250, CumulativeDistance: 430, StopNumber: 3},
        },
        IsActive: true,
    }
}

func bangaloreEveningExpress() models.Train {
    return models.Train{
        Name:   "Bangalore Evening Express",
        Number: "EXAM003",
        Type:   models.TypeExpress,
        Schedule: []models.Stop{
            {StationName: "Bangalore City", ArrivalTime: "16:00", DepartureTime: "16:00", DistanceFromPrevious: 0, CumulativeDistance: 0, StopNumber: 1},
            {StationName: "Shimoga Town", ArrivalTime: "19:00", DepartureTime: "19:00", DistanceFromPrevious: 180, CumulativeDistance: 180, StopNumber: 2},
            {StationName: "Mangalore Central", ArrivalTime: "23:45", DepartureTime: "23:45", DistanceFromPrevious: 250, CumulativeDistance: 430, StopNumber: 3},
        },
        IsActive: true,
    }
}

func fixtureStore() *MemoryStore {
    return NewMemoryStore(
        chennaiMangaloreExpress(),
        bangaloreMangaloreExpress(),
        bangaloreEveningExpress(),
    )
}
