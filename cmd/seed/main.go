package main

import (
    "context"
    "flag"
    "fmt"
    "log"
    "math/rand"
    "time"

    "go.mongodb.org/mongo-driver/bson"

    "train_site/config"
    "train_site/models"
)

// Fixture trains behind the demonstration scenarios. EXAM001 carries the
// Chennai-Mangalore connection's first leg, EXAM003 its second; EXAM002 and
// EXAM003 are the two direct Bangalore-Mangalore trains.
var fixtureTrains = []models.Train{
    {
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
    },
    {
        Name:   "Bangalore Mangalore Express",
        Number: "EXAM002",
        Type:   models.TypeExpress,
        Schedule: []models.Stop{
            {StationName: "Bangalore City", ArrivalTime: "09:00", DepartureTime: "09:00", DistanceFromPrevious: 0, CumulativeDistance: 0, StopNumber: 1},
            {StationName: "Shimoga Town", ArrivalTime: "12:00", DepartureTime: "12:00", DistanceFromPrevious: 180, CumulativeDistance: 180, StopNumber: 2},
            {StationName: "Mangalore Central", ArrivalTime: "17:30", DepartureTime: "17:30", DistanceFromPrevious: 250, CumulativeDistance: 430, StopNumber: 3},
        },
        IsActive: true,
    },
    {
        Name:   "Bangalore Evening Express",
        Number: "EXAM003",
        Type:   models.TypeExpress,
        Schedule: []models.Stop{
            {StationName: "Bangalore City", ArrivalTime: "16:00", DepartureTime: "16:00", DistanceFromPrevious: 0, CumulativeDistance: 0, StopNumber: 1},
            {StationName: "Shimoga Town", ArrivalTime: "19:00", DepartureTime: "19:00", DistanceFromPrevious: 180, CumulativeDistance: 180, StopNumber: 2},
            {StationName: "Mangalore Central", ArrivalTime: "23:45", DepartureTime: "23:45", DistanceFromPrevious: 250, CumulativeDistance: 430, StopNumber: 3},
        },
        IsActive: true,
    },
}

var stationData = []models.Station{
    {Name: "Bangalore City", Code: "SBC", City: "Bangalore", State: "Karnataka"},
    {Name: "Chennai Central", Code: "MAS", City: "Chennai", State: "Tamil Nadu"},
    {Name: "Mangalore Central", Code: "MAJN", City: "Mangalore", State: "Karnataka"},
    {Name: "Mysuru Junction", Code: "MYS", City: "Mysuru", State: "Karnataka"},
    {Name: "Vellore Cantonment", Code: "VLR", City: "Vellore", State: "Tamil Nadu"},
    {Name: "Shimoga Town", Code: "SMET", City: "Shimoga", State: "Karnataka"},
    {Name: "Coimbatore Junction", Code: "CBE", City: "Coimbatore", State: "Tamil Nadu"},
    {Name: "Salem Junction", Code: "SA", City: "Salem", State: "Tamil Nadu"},
    {Name: "Madurai Junction", Code: "MDU", City: "Madurai", State: "Tamil Nadu"},
    {Name: "Trichy Junction", Code: "TPJ", City: "Trichy", State: "Tamil Nadu"},
    {Name: "Erode Junction", Code: "ED", City: "Erode", State: "Tamil Nadu"},
    {Name: "Tirunelveli Junction", Code: "TEN", City: "Tirunelveli", State: "Tamil Nadu"},
    {Name: "Hubli Junction", Code: "UBL", City: "Hubli", State: "Karnataka"},
    {Name: "Belgaum", Code: "BGM", City: "Belgaum", State: "Karnataka"},
    {Name: "Hassan Junction", Code: "HAS", City: "Hassan", State: "Karnataka"},
    {Name: "Tumkur", Code: "TK", City: "Tumkur", State: "Karnataka"},
    {Name: "Kolar Gold Fields", Code: "KGF", City: "Kolar", State: "Karnataka"},
    {Name: "Hosur", Code: "HSRA", City: "Hosur", State: "Tamil Nadu"},
    {Name: "Krishnagiri", Code: "KRP", City: "Krishnagiri", State: "Tamil Nadu"},
    {Name: "Tiruvannamalai", Code: "TNM", City: "Tiruvannamalai", State: "Tamil Nadu"},
    {Name: "Villupuram Junction", Code: "VM", City: "Villupuram", State: "Tamil Nadu"},
    {Name: "Cuddalore Port", Code: "CUPJ", City: "Cuddalore", State: "Tamil Nadu"},
    {Name: "Chidambaram", Code: "CDM", City: "Chidambaram", State: "Tamil Nadu"},
    {Name: "Mayiladuthurai Junction", Code: "MV", City: "Mayiladuthurai", State: "Tamil Nadu"},
    {Name: "Thanjavur Junction", Code: "TJ", City: "Thanjavur", State: "Tamil Nadu"},
    {Name: "Kumbakonam", Code: "KMU", City: "Kumbakonam", State: "Tamil Nadu"},
    {Name: "Nagapattinam Junction", Code: "NCJ", City: "Nagapattinam", State: "Tamil Nadu"},
    {Name: "Karur Junction", Code: "KRR", City: "Karur", State: "Tamil Nadu"},
    {Name: "Dindigul Junction", Code: "DG", City: "Dindigul", State: "Tamil Nadu"},
    {Name: "Dharwad", Code: "DWR", City: "Dharwad", State: "Karnataka"},
}

var trainTypes = []string{
    models.TypeExpress,
    models.TypeSuperfast,
    models.TypePassenger,
    models.TypeRajdhani,
    models.TypeShatabdi,
}

var trainBaseNames = []string{"Express", "Mail", "Passenger", "Superfast", "Special", "Intercity"}

func main() {
    count := flag.Int("count", 50, "number of random trains to generate on top of the fixtures")
    seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
    flag.Parse()

    if err := config.LoadEnv(); err != nil {
        log.Printf("Warning: Error loading .env file: %v", err)
    }
    if err := config.ConnectWithRetry(3); err != nil {
        log.Fatalf("Failed to connect to MongoDB: %v", err)
    }
    defer config.CloseDB()

    rng := rand.New(rand.NewSource(*seed))
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
    defer cancel()

    if err := run(ctx, rng, *count); err != nil {
        log.Fatalf("Seeding failed: %v", err)
    }
}

func run(ctx context.Context, rng *rand.Rand, extraCount int) error {
    trains := config.MongoDB.Collection("trains")
    stations := config.MongoDB.Collection("stations")

    if _, err := trains.DeleteMany(ctx, bson.M{}); err != nil {
        return fmt.Errorf("clearing trains: %w", err)
    }
    if _, err := stations.DeleteMany(ctx, bson.M{}); err != nil {
        return fmt.Errorf("clearing stations: %w", err)
    }
    log.Println("Cleared existing data")

    stationDocs := make([]interface{}, 0, len(stationData))
    for i := range stationData {
        if err := models.ValidateStation(&stationData[i]); err != nil {
            return fmt.Errorf("station %s: %w", stationData[i].Name, err)
        }
        stationDocs = append(stationDocs, stationData[i])
    }
    if _, err := stations.InsertMany(ctx, stationDocs); err != nil {
        return fmt.Errorf("inserting stations: %w", err)
    }
    log.Printf("Created %d stations", len(stationDocs))

    fixtureDocs := make([]interface{}, 0, len(fixtureTrains))
    for i := range fixtureTrains {
        if err := models.ValidateTrain(&fixtureTrains[i]); err != nil {
            return err
        }
        fixtureDocs = append(fixtureDocs, fixtureTrains[i])
    }
    if _, err := trains.InsertMany(ctx, fixtureDocs); err != nil {
        return fmt.Errorf("inserting fixture trains: %w", err)
    }
    log.Printf("Created %d fixture trains", len(fixtureDocs))

    randomTrains := generateRandomTrains(rng, extraCount)
    if len(randomTrains) > 0 {
        docs := make([]interface{}, len(randomTrains))
        for i, train := range randomTrains {
            docs[i] = train
        }
        if _, err := trains.InsertMany(ctx, docs); err != nil {
            return fmt.Errorf("inserting random trains: %w", err)
        }
    }
    log.Printf("Created %d additional trains", len(randomTrains))

    log.Println("Test scenarios:")
    log.Println("  - Bangalore City to Mangalore Central: direct trains EXAM002 and EXAM003")
    log.Println("  - Chennai Central to Mangalore Central: connecting route via Bangalore City")
    log.Println("  - Bangalore City to Chennai Central: no trains available")
    return nil
}

// generateRandomTrains builds trains with 2-8 random stops. Routes that
// would collide with the fixed scenarios (serving both Chennai and
// Mangalore, or both Bangalore and Chennai) are skipped rather than
// regenerated, the same way the original seeding behaved.
func generateRandomTrains(rng *rand.Rand, count int) []models.Train {
    var out []models.Train
    usedNumbers := map[string]bool{"EXAM001": true, "EXAM002": true, "EXAM003": true}

    for i := 0; i < count; i++ {
        number := fmt.Sprintf("%d", 10000+rng.Intn(90000))
        if usedNumbers[number] {
            continue
        }

        route := generateRandomRoute(rng)
        names := make(map[string]bool, len(route))
        for _, stop := range route {
            names[stop.StationName] = true
        }
        if names["Chennai Central"] && names["Mangalore Central"] {
            continue
        }
        if names["Bangalore City"] && names["Chennai Central"] {
            continue
        }

        city := stationData[rng.Intn(len(stationData))].City
        base := trainBaseNames[rng.Intn(len(trainBaseNames))]
        train := models.Train{
            Name:     fmt.Sprintf("%s %s %d", city, base, rng.Intn(1000)),
            Number:   number,
            Type:     trainTypes[rng.Intn(len(trainTypes))],
            Schedule: route,
            IsActive: true,
        }

        if err := models.ValidateTrain(&train); err != nil {
            log.Printf("Skipping generated train %s: %v", train.Number, err)
            continue
        }

        usedNumbers[number] = true
        out = append(out, train)
    }
    return out
}

func generateRandomRoute(rng *rand.Rand) []models.Stop {
    routeLength := rng.Intn(7) + 2 // 2-8 stations

    picked := rng.Perm(len(stationData))[:routeLength]
    cumulative := 0.0

    stops := make([]models.Stop, routeLength)
    for i, idx := range picked {
        distance := 0.0
        if i > 0 {
            distance = float64(rng.Intn(300) + 50) // 50-350 km
        }
        cumulative += distance

        departure := randomTime(rng)
        arrival := departure
        if i > 0 {
            arrival = randomTime(rng)
        }

        stops[i] = models.Stop{
            StationName:          stationData[idx].Name,
            ArrivalTime:          arrival,
            DepartureTime:        departure,
            DistanceFromPrevious: distance,
            CumulativeDistance:   cumulative,
            StopNumber:           i + 1,
        }
    }
    return stops
}

func randomTime(rng *rand.Rand) string {
    return fmt.Sprintf("%02d:%02d", rng.Intn(24), rng.Intn(60))
}
