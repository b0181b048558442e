package models

import (
    "fmt"
    "time"

    "github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateTrain checks a train record before it is written to the database.
// The search engine assumes these invariants hold and never re-checks them.
func ValidateTrain(t *Train) error {
    if err := validate.Struct(t); err != nil {
        return fmt.Errorf("train %s: %w", t.Number, err)
    }
    return validateSchedule(t)
}

// ValidateStation checks a station record before insert.
func ValidateStation(s *Station) error {
    return validate.Struct(s)
}

func validateSchedule(t *Train) error {
    seen := make(map[string]bool, len(t.Schedule))

    for i, stop := range t.Schedule {
        if stop.StopNumber != i+1 {
            return fmt.Errorf("train %s: stop %d has stop_number %d, want %d", t.Number, i, stop.StopNumber, i+1)
        }
        if seen[stop.StationName] {
            return fmt.Errorf("train %s: station %q appears twice in schedule", t.Number, stop.StationName)
        }
        seen[stop.StationName] = true

        if _, err := time.Parse("15:04", stop.ArrivalTime); err != nil {
            return fmt.Errorf("train %s: stop %d: bad arrival time %q", t.Number, i+1, stop.ArrivalTime)
        }
        if _, err := time.Parse("15:04", stop.DepartureTime); err != nil {
            return fmt.Errorf("train %s: stop %d: bad departure time %q", t.Number, i+1, stop.DepartureTime)
        }

        if i == 0 {
            if stop.DistanceFromPrevious != 0 {
                return fmt.Errorf("train %s: first stop has distance_from_previous %.1f, want 0", t.Number, stop.DistanceFromPrevious)
            }
            if stop.CumulativeDistance != 0 {
                return fmt.Errorf("train %s: first stop has cumulative_distance %.1f, want 0", t.Number, stop.CumulativeDistance)
            }
            if stop.ArrivalTime != stop.DepartureTime {
                return fmt.Errorf("train %s: first stop arrival %s differs from departure %s", t.Number, stop.ArrivalTime, stop.DepartureTime)
            }
            continue
        }

        prev := t.Schedule[i-1]
        if stop.CumulativeDistance != prev.CumulativeDistance+stop.DistanceFromPrevious {
            return fmt.Errorf("train %s: stop %d: cumulative_distance %.1f != %.1f + %.1f",
                t.Number, i+1, stop.CumulativeDistance, prev.CumulativeDistance, stop.DistanceFromPrevious)
        }
    }

    return nil
}
