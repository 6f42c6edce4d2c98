package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"cybertcm/internal/domain"
	"cybertcm/internal/repository"
)

const statsCacheKey = "admin:stats"

type redisGetSet interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// StatsService serves dashboard aggregates, cached in redis for a short
// window. A missing or failing cache degrades to direct queries.
type StatsService struct {
	results repository.ResultRepository
	cache   redisGetSet
	ttl     time.Duration
	logger  *zap.Logger
}

func NewStatsService(results repository.ResultRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) *StatsService {
	svc := &StatsService{
		results: results,
		ttl:     ttl,
		logger:  logger,
	}
	if client != nil {
		svc.cache = client
	}
	if svc.ttl <= 0 {
		svc.ttl = time.Minute
	}
	return svc
}

func (s *StatsService) Statistics(ctx context.Context) (domain.Statistics, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, statsCacheKey).Bytes()
		if err == nil {
			var cached domain.Statistics
			if json.Unmarshal(raw, &cached) == nil {
				return cached, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("stats cache read failed", zap.Error(err))
		}
	}

	stats, err := s.results.Stats(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, raw, s.ttl).Err(); err != nil {
				s.logger.Warn("stats cache write failed", zap.Error(err))
			}
		}
	}
	return stats, nil
}

// Invalidate drops the cached snapshot, called after catalog reloads so the
// next dashboard read is fresh.
func (s *StatsService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, statsCacheKey).Err(); err != nil {
		s.logger.Warn("stats cache invalidation failed", zap.Error(err))
	}
}
