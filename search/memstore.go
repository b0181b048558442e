package search

import (
    "context"
    "sort"

    "train_site/models"
)

// MemoryStore is a ScheduleStore over a fixed slice of trains. It backs
// tests and dry-run seeding; the data is immutable after construction, so
// concurrent reads need no locking.
type MemoryStore struct {
    trains []models.Train
}

func NewMemoryStore(trains ...models.Train) *MemoryStore {
    return &MemoryStore{trains: trains}
}

func (s *MemoryStore) TrainsServing(_ context.Context, stationName string) ([]models.Train, error) {
    var out []models.Train
    for _, train := range s.trains {
        if !train.IsActive {
            continue
        }
        if train.FindStop(stationName) != nil {
            out = append(out, train)
        }
    }
    return out, nil
}

func (s *MemoryStore) AllStationNames(_ context.Context) ([]string, error) {
    seen := make(map[string]bool)
    for _, train := range s.trains {
        if !train.IsActive {
            continue
        }
        for _, stop := range train.Schedule {
            seen[stop.StationName] = true
        }
    }

    names := make([]string, 0, len(seen))
    for name := range seen {
        names = append(names, name)
    }
    sort.Strings(names)
    return names, nil
}

func (s *MemoryStore) FindTrainByNumberAndStations(_ context.Context, number string, requiredStations []string) (*models.Train, error) {
    for i := range s.trains {
        train := &s.trains[i]
        if train.Number != number {
            continue
        }
        serves := true
        for _, name := range requiredStations {
            if train.FindStop(name) == nil {
                serves = false
                break
            }
        }
        if serves {
            return train, nil
        }
    }
    return nil, nil
}
