package service

import (
	"context"
	"wikiquiz/internal/domain"
	"wikiquiz/internal/dto"
	"wikiquiz/internal/logger"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz generation and retrieval
type QuizService interface {
	// GenerateQuiz runs the fetch -> generate -> persist pipeline for a
	// single article URL. Any step's failure aborts the whole operation
	// and nothing is persisted.
	GenerateQuiz(ctx context.Context, inputURL string) (*dto.QuizRecordResponse, error)
	GetQuiz(ctx context.Context, id string) (*dto.QuizRecordResponse, error)
	GetHistory(ctx context.Context) ([]*dto.QuizHistoryItemResponse, error)
}

// quizService implements QuizService
type quizService struct {
	fetcher     domain.ArticleFetcher
	generator   domain.QuizGenerationService
	repo        domain.QuizRecordRepository
	recordCache RecordCacheService // nil when the cache is not configured
}

// NewQuizService creates a new instance of quizService
func NewQuizService(
	fetcher domain.ArticleFetcher,
	generator domain.QuizGenerationService,
	repo domain.QuizRecordRepository,
	recordCache RecordCacheService,
) QuizService {
	return &quizService{
		fetcher:     fetcher,
		generator:   generator,
		repo:        repo,
		recordCache: recordCache,
	}
}

// GenerateQuiz implements QuizService. Component failures propagate
// unchanged; translation to HTTP statuses happens only at the handler
// boundary.
func (s *quizService) GenerateQuiz(ctx context.Context, inputURL string) (*dto.QuizRecordResponse, error) {
	log := logger.Get()
	log.Info("Generating quiz", zap.String("input_url", inputURL))

	article, err := s.fetcher.Fetch(ctx, inputURL)
	if err != nil {
		return nil, err
	}

	quiz, err := s.generator.GenerateQuiz(ctx, article.Text, article.Title)
	if err != nil {
		return nil, err
	}

	record := domain.NewQuizRecord(article, quiz)
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	log.Info("Quiz record created",
		zap.String("record_id", record.ID),
		zap.String("title", record.Title),
		zap.Int("questions", len(record.Questions)),
	)

	response := dto.FromDomainQuizRecord(record)
	s.cacheRecord(ctx, response)
	return response, nil
}

// GetQuiz implements QuizService
func (s *quizService) GetQuiz(ctx context.Context, id string) (*dto.QuizRecordResponse, error) {
	log := logger.Get()

	if s.recordCache != nil {
		cached, err := s.recordCache.Get(ctx, id)
		if err != nil {
			// Cache trouble degrades to the database path.
			log.Warn("Record cache lookup failed", zap.String("record_id", id), zap.Error(err))
		} else if cached != nil {
			log.Debug("Record cache hit", zap.String("record_id", id))
			return cached, nil
		}
	}

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.NewQuizNotFoundError(id)
	}

	response := dto.FromDomainQuizRecord(record)
	s.cacheRecord(ctx, response)
	return response, nil
}

// GetHistory implements QuizService
func (s *quizService) GetHistory(ctx context.Context) ([]*dto.QuizHistoryItemResponse, error) {
	summaries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.QuizHistoryItemResponse, 0, len(summaries))
	for _, summary := range summaries {
		items = append(items, dto.FromDomainQuizRecordSummary(summary))
	}
	return items, nil
}

func (s *quizService) cacheRecord(ctx context.Context, record *dto.QuizRecordResponse) {
	if s.recordCache == nil {
		return
	}
	if err := s.recordCache.Put(ctx, record.ID, record); err != nil {
		logger.Get().Warn("Failed to cache quiz record",
			zap.String("record_id", record.ID),
			zap.Error(err),
		)
	}
}
