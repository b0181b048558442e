package config

import (
    "fmt"
    "time"

    "github.com/patrickmn/go-cache"
)

var (
    // StationCache holds the station name list; it only changes on reseeding.
    StationCache *cache.Cache
    // SearchCache holds recent search responses keyed by route and sort.
    SearchCache *cache.Cache
)

const (
    stationCacheDuration = 1 * time.Hour
    searchCacheDuration  = 5 * time.Minute

    stationCleanupInterval = 2 * time.Hour
    searchCleanupInterval  = 10 * time.Minute
)

func InitCache() {
    StationCache = cache.New(stationCacheDuration, stationCleanupInterval)
    SearchCache = cache.New(searchCacheDuration, searchCleanupInterval)
}

func ClearAllCaches() {
    StationCache.Flush()
    SearchCache.Flush()
}

func GetCacheKey(prefix string, params ...interface{}) string {
    key := prefix
    for _, param := range params {
        key += ":" + fmt.Sprintf("%v", param)
    }
    return key
}
