package search

import (
    "context"
    "testing"

    "train_site/models"
)

func TestDirectFinderFindsForwardTrains(t *testing.T) {
    finder := NewDirectFinder(fixtureStore())

    itineraries, err := finder.Find(context.Background(), "Bangalore City", "Mangalore Central")
    if err != nil {
        t.Fatalf("direct find: %v", err)
    }
    if len(itineraries) != 3 {
        t.Fatalf("expected 3 direct trains, got %d", len(itineraries))
    }

    for _, it := range itineraries {
        if it.RouteType != "direct" {
            t.Errorf("train %s: route type %q, want direct", it.TrainNumber, it.RouteType)
        }
        wantPrice := it.Distance * PricePerKM
        if it.Price != wantPrice {
            t.Errorf("train %s: price %.2f, want %.2f", it.TrainNumber, it.Price, wantPrice)
        }
    }
}

func TestDirectFinderPricing(t *testing.T) {
    finder := NewDirectFinder(NewMemoryStore(bangaloreMangaloreExpress()))

    itineraries, err := finder.Find(context.Background(), "Bangalore City", "Mangalore Central")
    if err != nil {
        t.Fatalf("direct find: %v", err)
    }
    if len(itineraries) != 1 {
        t.Fatalf("expected 1 itinerary, got %d", len(itineraries))
    }

    it := itineraries[0]
    if it.Distance != 430 {
        t.Errorf("distance = %.1f, want 430", it.Distance)
    }
    if it.Price != 537.5 {
        t.Errorf("price = %.2f, want 537.50", it.Price)
    }
    if it.DepartureTime != "09:00" || it.ArrivalTime != "17:30" {
        t.Errorf("times = %s/%s, want 09:00/17:30", it.DepartureTime, it.ArrivalTime)
    }
    if len(it.Stops) != 3 {
        t.Errorf("stop slice has %d stops, want 3", len(it.Stops))
    }
    if it.Stops[0].StationName != "Bangalore City" || it.Stops[2].StationName != "Mangalore Central" {
        t.Errorf("stop slice endpoints %s..%s", it.Stops[0].StationName, it.Stops[2].StationName)
    }
}

func TestDirectFinderMidRouteSegment(t *testing.T) {
    finder := NewDirectFinder(NewMemoryStore(chennaiMangaloreExpress()))

    itineraries, err := finder.Find(context.Background(), "Vellore Cantonment", "Mysuru Junction")
    if err != nil {
        t.Fatalf("direct find: %v", err)
    }
    if len(itineraries) != 1 {
        t.Fatalf("expected 1 itinerary, got %d", len(itineraries))
    }

    it := itineraries[0]
    if it.Distance != 320 { // 490 - 170
        t.Errorf("distance = %.1f, want 320", it.Distance)
    }
    if len(it.Stops) != 3 {
        t.Errorf("stop slice has %d stops, want 3", len(it.Stops))
    }
}

func TestDirectFinderExcludesReverseDirection(t *testing.T) {
    finder := NewDirectFinder(fixtureStore())

    itineraries, err := finder.Find(context.Background(), "Mangalore Central", "Bangalore City")
    if err != nil {
        t.Fatalf("direct find: %v", err)
    }
    if len(itineraries) != 0 {
        t.Fatalf("reverse direction returned %d itineraries, want 0", len(itineraries))
    }
}

func TestDirectFinderIgnoresInactiveTrains(t *testing.T) {
    inactive := bangaloreMangaloreExpress()
    inactive.IsActive = false
    finder := NewDirectFinder(NewMemoryStore(inactive, bangaloreEveningExpress()))

    itineraries, err := finder.Find(context.Background(), "Bangalore City", "Mangalore Central")
    if err != nil {
        t.Fatalf("direct find: %v", err)
    }
    if len(itineraries) != 1 {
        t.Fatalf("expected only the active train, got %d itineraries", len(itineraries))
    }
    if itineraries[0].TrainNumber != "EXAM003" {
        t.Errorf("got train %s, want EXAM003", itineraries[0].TrainNumber)
    }
}

func TestDirectFinderStopNumberOrdering(t *testing.T) {
    // Forward check must use stop numbers, not schedule position of the
    // queried names.
    train := models.Train{
        Name:   "Loop Passenger",
        Number: "77001",
        Type:   models.TypePassenger,
        Schedule: []models.Stop{
            {StationName: "Salem Junction", ArrivalTime: "06:00", DepartureTime: "06:00", DistanceFromPrevious: 0, CumulativeDistance: 0, StopNumber: 1},
            {StationName: "Erode Junction", ArrivalTime: "07:10", DepartureTime: "07:15", DistanceFromPrevious: 60, CumulativeDistance: 60, StopNumber: 2},
            {StationName: "Karur Junction", ArrivalTime: "08:30", DepartureTime: "08:35", DistanceFromPrevious: 70, CumulativeDistance: 130, StopNumber: 3},
        },
        IsActive: true,
    }
    finder := NewDirectFinder(NewMemoryStore(train))

    forward, err := finder.Find(context.Background(), "Erode Junction", "Karur Junction")
    if err != nil {
        t.Fatalf("direct find: %v", err)
    }
    if len(forward) != 1 {
        t.Fatalf("forward segment: got %d itineraries, want 1", len(forward))
    }
    if forward[0].Distance != 70 {
        t.Errorf("forward distance = %.1f, want 70", forward[0].Distance)
    }

    backward, err := finder.Find(context.Background(), "Karur Junction", "Erode Junction")
    if err != nil {
        t.Fatalf("direct find: %v", err)
    }
    if len(backward) != 0 {
        t.Fatalf("backward segment: got %d itineraries, want 0", len(backward))
    }
}
