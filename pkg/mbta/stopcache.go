package mbta

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/travigo/stationboard/pkg/ctdf"
)

type StopLookup interface {
	LookupStop(ctx context.Context, route string, name string) ([]ctdf.Stop, error)
}

// StopCache keeps stop lookups in redis. Stop identifiers change rarely, unlike
// predictions which are never cached.
type StopCache struct {
	Lookup StopLookup
	Cache  *cache.Cache[string]
}

func NewStopCache(lookup StopLookup, client *redis.Client, expiration time.Duration) *StopCache {
	redisStore := redisstore.NewRedis(client, store.WithExpiration(expiration))

	return &StopCache{
		Lookup: lookup,
		Cache:  cache.New[string](redisStore),
	}
}

func (s *StopCache) LookupStop(ctx context.Context, route string, name string) ([]ctdf.Stop, error) {
	cacheKey := fmt.Sprintf("stationboard:stop:%s:%s", route, name)

	cacheValue, err := s.Cache.Get(ctx, cacheKey)
	if err == nil && cacheValue != "" {
		var stops []ctdf.Stop
		if err := json.Unmarshal([]byte(cacheValue), &stops); err == nil {
			return stops, nil
		}
	}

	stops, err := s.Lookup.LookupStop(ctx, route, name)
	if err != nil {
		return nil, err
	}

	stopsJSON, _ := json.Marshal(stops)
	if err := s.Cache.Set(ctx, cacheKey, string(stopsJSON)); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("Failed to cache stop lookup")
	}

	return stops, nil
}
