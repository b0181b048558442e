package config

import (
    "context"
    "fmt"
    "log"
    "time"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"
    "go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
    MongoDB     *mongo.Database
    MongoClient *mongo.Client
)

// ConnectWithRetry attempts to connect to MongoDB with retries
func ConnectWithRetry(maxRetries int) error {
    var err error
    for i := 0; i < maxRetries; i++ {
        err = connectMongo(GetMongoURI())
        if err == nil {
            return nil
        }
        log.Printf("Failed to connect to MongoDB (attempt %d/%d): %v", i+1, maxRetries, err)
        time.Sleep(5 * time.Second)
    }
    return fmt.Errorf("failed to connect after %d attempts: %v", maxRetries, err)
}

// connectMongo initializes the MongoDB connection
func connectMongo(uri string) error {
    clientOptions := options.Client().ApplyURI(uri).
        SetMaxPoolSize(100).
        SetMinPoolSize(10).
        SetConnectTimeout(10 * time.Second).
        SetServerSelectionTimeout(10 * time.Second).
        SetRetryWrites(true).
        SetRetryReads(true).
        SetReadPreference(readpref.Primary())

    ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
    defer cancel()

    var err error
    MongoClient, err = mongo.Connect(ctx, clientOptions)
    if err != nil {
        return fmt.Errorf("error connecting to MongoDB: %v", err)
    }

    if err = MongoClient.Ping(ctx, nil); err != nil {
        return fmt.Errorf("error pinging MongoDB: %v", err)
    }

    MongoDB = MongoClient.Database(GetMongoDBName())
    log.Printf("Successfully connected to MongoDB database: %s", GetMongoDBName())

    if err := createIndexes(ctx); err != nil {
        return fmt.Errorf("error creating indexes: %v", err)
    }

    return nil
}

func createIndexes(ctx context.Context) error {
    trainCollection := MongoDB.Collection("trains")
    trainIndexes := []mongo.IndexModel{
        {
            Keys: bson.D{
                {Key: "number", Value: 1},
            },
            Options: options.Index().SetUnique(true).SetName("train_number_idx"),
        },
        {
            Keys: bson.D{
                {Key: "schedule.station_name", Value: 1},
            },
            Options: options.Index().SetName("station_schedule_idx"),
        },
        {
            Keys: bson.D{
                {Key: "is_active", Value: 1},
            },
            Options: options.Index().SetName("is_active_idx"),
        },
    }

    _, err := trainCollection.Indexes().CreateMany(ctx, trainIndexes)
    if err != nil {
        return fmt.Errorf("error creating train indexes: %v", err)
    }

    stationCollection := MongoDB.Collection("stations")
    stationIndexes := []mongo.IndexModel{
        {
            Keys: bson.D{
                {Key: "name", Value: 1},
            },
            Options: options.Index().SetUnique(true).SetName("station_name_idx"),
        },
        {
            Keys: bson.D{
                {Key: "code", Value: 1},
            },
            Options: options.Index().SetName("station_code_idx"),
        },
    }

    _, err = stationCollection.Indexes().CreateMany(ctx, stationIndexes)
    if err != nil {
        return fmt.Errorf("error creating station indexes: %v", err)
    }

    log.Printf("Successfully created train and station indexes")
    return nil
}

// CheckMongoHealth pings the database with a short deadline.
func CheckMongoHealth() error {
    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()

    if err := MongoClient.Ping(ctx, nil); err != nil {
        return fmt.Errorf("MongoDB health check failed: %v", err)
    }
    return nil
}

// CloseDB disconnects from MongoDB during shutdown.
func CloseDB() {
    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    if MongoClient != nil {
        if err := MongoClient.Disconnect(ctx); err != nil {
            log.Printf("Error closing MongoDB connection: %v", err)
        }
    }
}
