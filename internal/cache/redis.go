package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Domenick1991/flightroutes/config"
	"github.com/Domenick1991/flightroutes/internal/export"
	"github.com/redis/go-redis/v9"
)

// RedisCache keeps rendered itinerary payloads per dataset so repeated reads
// skip re-rendering. Datasets themselves are never persisted.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

func (c *RedisCache) GetItineraries(ctx context.Context, datasetID string) ([]export.ItineraryRecord, error) {
	data, err := c.client.Get(ctx, itinerariesKey(datasetID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var records []export.ItineraryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *RedisCache) SetItineraries(ctx context.Context, datasetID string, records []export.ItineraryRecord) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, itinerariesKey(datasetID), payload, c.ttl).Err()
}

func itinerariesKey(datasetID string) string {
	return "cache:itineraries:" + datasetID
}
