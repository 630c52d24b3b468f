package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cryptobuddy/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const redisKeyPrefix = "coin:"

var (
	newRedisClient = func(opts *redis.Options) *redis.Client {
		return redis.NewClient(opts)
	}
	pingRedis = func(ctx context.Context, client *redis.Client) error {
		return client.Ping(ctx).Err()
	}
	parseRedisURL = redis.ParseURL
)

// InitRedis connects to addr, which may be host:port or a redis:// URL.
func InitRedis(ctx context.Context, addr string) (*redis.Client, error) {
	if addr == "" {
		addr = "localhost:6379"
	}

	opts := &redis.Options{Addr: addr}
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		parsed, err := parseRedisURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		opts = parsed
	}

	client := newRedisClient(opts)
	if err := pingRedis(ctx, client); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return client, nil
}

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisStore keeps entries in Redis. Keys expire after the TTL on the server,
// but freshness is still judged from the stored fetch time so that both
// backends behave the same.
type RedisStore struct {
	client RedisClient
	ttl    time.Duration
	now    func() time.Time
	logger logrus.FieldLogger
}

func NewRedisStore(client RedisClient, ttl time.Duration, logger logrus.FieldLogger) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{
		client: client,
		ttl:    ttl,
		now:    time.Now,
		logger: logger.WithField("component", "redis-cache"),
	}
}

func (s *RedisStore) Lookup(ctx context.Context, key string) (Entry, bool) {
	data, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return Entry{}, false
	}
	if err != nil {
		s.logger.WithError(err).WithField("coin", key).Warn("redis cache read failed")
		return Entry{}, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		s.logger.WithError(err).WithField("coin", key).Warn("redis cache entry undecodable")
		return Entry{}, false
	}
	return entry, isFresh(entry.FetchedAt, s.now(), s.ttl)
}

func (s *RedisStore) Store(ctx context.Context, key string, value domain.CoinFact, fetchedAt time.Time) {
	data, err := json.Marshal(Entry{Key: key, Value: value, FetchedAt: fetchedAt})
	if err != nil {
		s.logger.WithError(err).WithField("coin", key).Warn("redis cache encode failed")
		return
	}
	if err := s.client.Set(ctx, redisKeyPrefix+key, data, s.ttl).Err(); err != nil {
		s.logger.WithError(err).WithField("coin", key).Warn("redis cache write failed")
	}
}
