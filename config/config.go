package config

import (
    "bufio"
    "fmt"
    "log"
    "os"
    "strconv"
    "strings"
)

// LoadEnv loads environment variables from a .env file when one exists.
func LoadEnv() error {
    possiblePaths := []string{
        ".env",
        "../.env",
        os.Getenv("TRAIN_ENV"),
    }

    var loadedFile string
    for _, path := range possiblePaths {
        if path == "" {
            continue
        }
        if _, err := os.Stat(path); err == nil {
            loadedFile = path
            break
        }
    }

    if loadedFile == "" {
        if uri := os.Getenv("MONGO_URI"); uri != "" {
            return nil // MONGO_URI already set, no need for .env
        }
        return fmt.Errorf("no .env file found and MONGO_URI not set in environment")
    }

    file, err := os.Open(loadedFile)
    if err != nil {
        return fmt.Errorf("error opening .env file: %v", err)
    }
    defer file.Close()

    log.Printf("Loading environment variables from %s", loadedFile)
    scanner := bufio.NewScanner(file)
    for scanner.Scan() {
        line := scanner.Text()
        if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
            continue
        }
        parts := strings.SplitN(line, "=", 2)
        if len(parts) != 2 {
            continue
        }
        key := strings.TrimSpace(parts[0])
        value := strings.TrimSpace(parts[1])
        value = strings.Trim(value, `"'`)
        os.Setenv(key, value)
        if !strings.Contains(strings.ToLower(key), "password") && !strings.Contains(strings.ToLower(key), "secret") {
            log.Printf("Set environment variable: %s", key)
        }
    }

    return scanner.Err()
}

func GetMongoURI() string {
    return getEnvWithDefault("MONGO_URI", "mongodb://localhost:27017")
}

func GetMongoDBName() string {
    return getEnvWithDefault("MONGO_DB_NAME", "train_database")
}

func getEnvWithDefault(key, defaultValue string) string {
    if value := os.Getenv(key); value != "" {
        return value
    }
    return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
    if value := os.Getenv(key); value != "" {
        if intValue, err := strconv.Atoi(value); err == nil {
            return intValue
        }
    }
    return defaultValue
}
