package search

import (
    "context"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"

    "train_site/models"
)

// ScheduleStore is read-only access to the timetable. Implementations must
// be safe for concurrent reads; the engine never mutates schedule data.
type ScheduleStore interface {
    // TrainsServing returns every active train whose schedule contains a
    // stop at the named station.
    TrainsServing(ctx context.Context, stationName string) ([]models.Train, error)

    // AllStationNames returns the sorted distinct station names appearing
    // in any active train's schedule.
    AllStationNames(ctx context.Context) ([]string, error)

    // FindTrainByNumberAndStations fetches a train by its unique number,
    // asserting its schedule serves every one of the required stations.
    // Returns (nil, nil) when no such train exists.
    FindTrainByNumberAndStations(ctx context.Context, number string, requiredStations []string) (*models.Train, error)
}

// MongoStore reads the timetable from the trains collection.
type MongoStore struct {
    trains *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
    return &MongoStore{trains: db.Collection("trains")}
}

func (s *MongoStore) TrainsServing(ctx context.Context, stationName string) ([]models.Train, error) {
    filter := bson.M{
        "is_active":             true,
        "schedule.station_name": stationName,
    }

    cursor, err := s.trains.Find(ctx, filter)
    if err != nil {
        return nil, &StorageError{Op: "trains serving " + stationName, Err: err}
    }
    defer cursor.Close(ctx)

    var trains []models.Train
    if err := cursor.All(ctx, &trains); err != nil {
        return nil, &StorageError{Op: "decode trains serving " + stationName, Err: err}
    }
    return trains, nil
}

func (s *MongoStore) AllStationNames(ctx context.Context) ([]string, error) {
    pipeline := mongo.Pipeline{
        {{Key: "$match", Value: bson.M{"is_active": true}}},
        {{Key: "$unwind", Value: "$schedule"}},
        {{Key: "$group", Value: bson.M{"_id": "$schedule.station_name"}}},
        {{Key: "$sort", Value: bson.M{"_id": 1}}},
    }

    cursor, err := s.trains.Aggregate(ctx, pipeline, options.Aggregate())
    if err != nil {
        return nil, &StorageError{Op: "aggregate station names", Err: err}
    }
    defer cursor.Close(ctx)

    var rows []struct {
        Name string `bson:"_id"`
    }
    if err := cursor.All(ctx, &rows); err != nil {
        return nil, &StorageError{Op: "decode station names", Err: err}
    }

    names := make([]string, len(rows))
    for i, row := range rows {
        names[i] = row.Name
    }
    return names, nil
}

func (s *MongoStore) FindTrainByNumberAndStations(ctx context.Context, number string, requiredStations []string) (*models.Train, error) {
    filter := bson.M{
        "number":                number,
        "schedule.station_name": bson.M{"$all": requiredStations},
    }

    var train models.Train
    err := s.trains.FindOne(ctx, filter).Decode(&train)
    if err == mongo.ErrNoDocuments {
        return nil, nil
    }
    if err != nil {
        return nil, &StorageError{Op: "find train " + number, Err: err}
    }
    return &train, nil
}
