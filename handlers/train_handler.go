package handlers

import (
    "context"
    "encoding/json"
    "log"
    "net/http"
    "time"

    "train_site/config"
    "train_site/search"
)

const searchTimeout = 5 * time.Second

var searchService *search.Service

// InitSearch installs the search service the handlers delegate to. Called
// once from main after the database connection is up; tests install a
// service over an in-memory store instead.
func InitSearch(service *search.Service) {
    searchService = service
}

// SearchTrains handles GET /api/trains/search?source=&destination=&sortBy=
func SearchTrains(w http.ResponseWriter, r *http.Request) {
    source := r.URL.Query().Get("source")
    destination := r.URL.Query().Get("destination")
    sortBy := search.NormalizeSortBy(r.URL.Query().Get("sortBy"))

    ctx, cancel := context.WithTimeout(r.Context(), searchTimeout)
    defer cancel()

    cacheKey := config.GetCacheKey("search", source, destination, sortBy)
    if config.SearchCache != nil {
        if cached, found := config.SearchCache.Get(cacheKey); found {
            writeSearchResponse(w, cached.(*search.Result), source, destination, sortBy)
            return
        }
    }

    result, err := searchService.Search(ctx, source, destination, sortBy)
    if err != nil {
        if search.IsValidation(err) {
            sendErrorResponse(w, err.Error(), http.StatusBadRequest)
            return
        }
        log.Printf("Search %s -> %s failed: %v", source, destination, err)
        sendErrorResponse(w, "Failed to search trains", http.StatusInternalServerError)
        return
    }

    if config.SearchCache != nil {
        config.SearchCache.SetDefault(cacheKey, result)
    }
    writeSearchResponse(w, result, source, destination, sortBy)
}

func writeSearchResponse(w http.ResponseWriter, result *search.Result, source, destination, sortBy string) {
    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]interface{}{
        "success": true,
        "data":    result,
        "query": map[string]string{
            "source":      source,
            "destination": destination,
            "sortBy":      sortBy,
        },
    })
}

// GetStations handles GET /api/trains/stations
func GetStations(w http.ResponseWriter, r *http.Request) {
    ctx, cancel := context.WithTimeout(r.Context(), searchTimeout)
    defer cancel()

    const cacheKey = "stations:all"
    if config.StationCache != nil {
        if cached, found := config.StationCache.Get(cacheKey); found {
            writeStationList(w, cached.([]string))
            return
        }
    }

    stations, err := searchService.ListStations(ctx)
    if err != nil {
        log.Printf("Listing stations failed: %v", err)
        sendErrorResponse(w, "Failed to fetch stations", http.StatusInternalServerError)
        return
    }

    if config.StationCache != nil {
        config.StationCache.SetDefault(cacheKey, stations)
    }
    writeStationList(w, stations)
}

func writeStationList(w http.ResponseWriter, stations []string) {
    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]interface{}{
        "success": true,
        "data":    stations,
        "count":   len(stations),
    })
}

// HealthCheck handles GET /api/trains/health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]interface{}{
        "success":   true,
        "message":   "Train search API is running",
        "timestamp": time.Now().Format(time.RFC3339),
    })
}

func sendErrorResponse(w http.ResponseWriter, message string, code int) {
    log.Printf("Error: %s (Code: %d)", message, code)

    response := map[string]interface{}{
        "success":   false,
        "message":   message,
        "code":      code,
        "status":    http.StatusText(code),
        "timestamp": time.Now().Format(time.RFC3339),
    }

    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(code)
    json.NewEncoder(w).Encode(response)
}
