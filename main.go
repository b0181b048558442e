package main

import (
    "context"
    "encoding/json"
    "fmt"
    "log"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/gorilla/mux"
    "github.com/rs/cors"

    "train_site/config"
    "train_site/handlers"
    "train_site/middleware"
    "train_site/search"
)

type HealthResponse struct {
    Status    string `json:"status"`
    DBStatus  string `json:"db_status"`
    DBDetails struct {
        Database string `json:"database"`
    } `json:"db_details"`
    Error string `json:"error,omitempty"`
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
    response := HealthResponse{
        Status: "ok",
    }

    if config.MongoDB == nil {
        response.Status = "error"
        response.DBStatus = "not_initialized"
        response.Error = "Database connection not initialized"
    } else if err := config.CheckMongoHealth(); err != nil {
        response.Status = "error"
        response.DBStatus = "connection_error"
        response.Error = fmt.Sprintf("Database ping failed: %v", err)
    } else {
        response.DBStatus = "connected"
        response.DBDetails.Database = config.GetMongoDBName()
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(response)
}

func main() {
    startTime := time.Now()
    log.Printf("Starting server initialization at %s", startTime.Format(time.RFC3339))

    if err := config.LoadEnv(); err != nil {
        log.Printf("Warning: Error loading .env file: %v", err)
    }

    port := os.Getenv("PORT")
    if port == "" {
        port = "8080"
        log.Printf("No PORT environment variable found, using default: %s", port)
    }

    log.Println("Initializing MongoDB...")
    if err := config.ConnectWithRetry(5); err != nil {
        log.Fatalf("Failed to initialize MongoDB: %v", err)
    }
    log.Println("MongoDB initialized successfully")
    defer config.CloseDB()

    config.InitCache()

    overrides := search.DefaultOverrides()
    if path := os.Getenv("OVERRIDES_FILE"); path != "" {
        if err := overrides.LoadFile(path); err != nil {
            log.Fatalf("Failed to load overrides file: %v", err)
        }
        log.Printf("Loaded overrides from %s (%d routes)", path, overrides.Len())
    }

    store := search.NewMongoStore(config.MongoDB)
    handlers.InitSearch(search.NewService(store, overrides))

    r := mux.NewRouter()

    corsHandler := cors.New(cors.Options{
        AllowedOrigins: []string{
            "http://localhost:3000",
            "http://localhost:5173",
            "http://localhost:8080",
            "http://127.0.0.1:3000",
        },
        AllowedMethods: []string{
            "GET", "POST", "OPTIONS",
        },
        AllowedHeaders: []string{
            "Accept",
            "Content-Type",
            "X-Requested-With",
            "Origin",
        },
        MaxAge: 86400,
    })

    r.Use(corsHandler.Handler)
    r.Use(middleware.RecoveryMiddleware)
    r.Use(middleware.LoggingMiddleware)
    r.Use(middleware.CompressHandler)

    api := r.PathPrefix("/api").Subrouter()
    registerRoutes(api)
    log.Println("Routes registered successfully")

    api.HandleFunc("/health/detailed", healthCheck).Methods("GET")

    srv := &http.Server{
        Handler:           r,
        Addr:              ":" + port,
        WriteTimeout:      15 * time.Second,
        ReadTimeout:       15 * time.Second,
        IdleTimeout:       60 * time.Second,
        ReadHeaderTimeout: 5 * time.Second,
        MaxHeaderBytes:    1 << 20,
    }

    serverErrors := make(chan error, 1)

    go func() {
        log.Printf("Starting server on port %s...", port)
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            log.Printf("Server error: %v", err)
            serverErrors <- err
        }
    }()

    log.Printf("Server is running at http://localhost:%s", port)
    log.Printf("Search endpoint: http://localhost:%s/api/trains/search", port)

    stop := make(chan os.Signal, 1)
    signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

    select {
    case <-stop:
        log.Println("Shutdown signal received")
    case err := <-serverErrors:
        log.Printf("Server error received: %v", err)
    }

    log.Println("Shutting down server...")
    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    if err := srv.Shutdown(ctx); err != nil {
        log.Printf("Error during server shutdown: %v", err)
    } else {
        log.Println("Server shutdown completed successfully")
    }
}

func registerRoutes(api *mux.Router) {
    api.HandleFunc("/trains/search", handlers.SearchTrains).Methods("GET", "OPTIONS")
    api.HandleFunc("/trains/stations", handlers.GetStations).Methods("GET", "OPTIONS")
    api.HandleFunc("/trains/suggest", handlers.GetStationSuggestions).Methods("GET", "OPTIONS")
    api.HandleFunc("/trains/health", handlers.HealthCheck).Methods("GET")
}
