package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/entity"
	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/repository"
	"github.com/redis/go-redis/v9"
)

const (
	linesCacheKey = "planning:lines"
	linesCacheTTL = 5 * time.Minute
)

// LineService serves the production-line option list. Lines are master data
// owned elsewhere and immutable for planning, so the list is cached in
// Redis with a short TTL. Redis being down only costs the cache.
type LineService struct {
	repo *repository.LineRepository
	rdb  *redis.Client
}

func NewLineService(repo *repository.LineRepository, rdb *redis.Client) *LineService {
	return &LineService{repo: repo, rdb: rdb}
}

func (s *LineService) List(ctx context.Context) ([]entity.ProductionLine, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, linesCacheKey).Result(); err == nil {
			var lines []entity.ProductionLine
			if err := json.Unmarshal([]byte(cached), &lines); err == nil {
				return lines, nil
			}
		}
	}

	lines, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(lines); err == nil {
			s.rdb.Set(ctx, linesCacheKey, payload, linesCacheTTL)
		}
	}
	return lines, nil
}
