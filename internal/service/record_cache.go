package service

import (
	"context"
	"encoding/json"
	"wikiquiz/internal/cache"
	"wikiquiz/internal/config"
	"wikiquiz/internal/domain"
	"wikiquiz/internal/dto"
	"wikiquiz/internal/logger"

	"go.uber.org/zap"
)

// RecordCacheService caches full quiz record responses by ID. Records are
// immutable once created, so cached entries can never go stale; the TTL
// only bounds cache growth.
type RecordCacheService interface {
	// Get returns the cached response, or nil on a miss.
	Get(ctx context.Context, recordID string) (*dto.QuizRecordResponse, error)
	Put(ctx context.Context, recordID string, record *dto.QuizRecordResponse) error
}

type recordCacheService struct {
	cache domain.Cache
	cfg   *config.Config
}

// NewRecordCacheService creates a new RecordCacheService backed by the given cache.
func NewRecordCacheService(c domain.Cache, cfg *config.Config) RecordCacheService {
	return &recordCacheService{cache: c, cfg: cfg}
}

func (s *recordCacheService) key(recordID string) string {
	return cache.GenerateCacheKey("quiz", "record", recordID)
}

func (s *recordCacheService) Get(ctx context.Context, recordID string) (*dto.QuizRecordResponse, error) {
	val, err := s.cache.Get(ctx, s.key(recordID))
	if err != nil {
		if err == domain.ErrCacheMiss {
			return nil, nil
		}
		return nil, err
	}

	var record dto.QuizRecordResponse
	if err := json.Unmarshal([]byte(val), &record); err != nil {
		// A corrupt entry is treated as a miss; the fresh value will
		// overwrite it on the next Put.
		logger.Get().Warn("Failed to decode cached quiz record, evicting",
			zap.String("record_id", recordID),
			zap.Error(err),
		)
		_ = s.cache.Delete(ctx, s.key(recordID))
		return nil, nil
	}
	return &record, nil
}

func (s *recordCacheService) Put(ctx context.Context, recordID string, record *dto.QuizRecordResponse) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, s.key(recordID), string(data), s.cfg.Cache.RecordTTL)
}
