package handlers

import (
    "context"
    "encoding/json"
    "net/http"
    "time"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/mongo/options"

    "train_site/config"
    "train_site/models"
)

// GetStationSuggestions handles station autocomplete requests backing the
// search page dropdowns.
func GetStationSuggestions(w http.ResponseWriter, r *http.Request) {
    query := r.URL.Query().Get("q")
    if query == "" {
        sendErrorResponse(w, "Query parameter 'q' is required", http.StatusBadRequest)
        return
    }

    ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
    defer cancel()

    filter := bson.M{
        "$or": []bson.M{
            {"code": bson.M{"$regex": query, "$options": "i"}},
            {"name": bson.M{"$regex": query, "$options": "i"}},
            {"city": bson.M{"$regex": query, "$options": "i"}},
        },
    }

    opts := options.Find().
        SetLimit(10).
        SetProjection(bson.M{
            "code":  1,
            "name":  1,
            "city":  1,
            "state": 1,
        })

    cursor, err := config.MongoDB.Collection("stations").Find(ctx, filter, opts)
    if err != nil {
        sendErrorResponse(w, "Database error", http.StatusInternalServerError)
        return
    }
    defer cursor.Close(ctx)

    var stations []models.Station
    if err := cursor.All(ctx, &stations); err != nil {
        sendErrorResponse(w, "Error processing results", http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]interface{}{
        "success":     true,
        "suggestions": stations,
        "count":       len(stations),
        "timestamp":   time.Now().Format(time.RFC3339),
    })
}
