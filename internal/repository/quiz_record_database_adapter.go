package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"wikiquiz/internal/domain"
	"wikiquiz/internal/repository/models"
	"wikiquiz/internal/util"

	"github.com/jmoiron/sqlx"
)

// QuizRecordDatabaseAdapter implements domain.QuizRecordRepository using sqlx.DB
type QuizRecordDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizRecordDatabaseAdapter creates a new instance of QuizRecordDatabaseAdapter
func NewQuizRecordDatabaseAdapter(db *sqlx.DB) domain.QuizRecordRepository {
	return &QuizRecordDatabaseAdapter{db: db}
}

// Create implements domain.QuizRecordRepository. It assigns the ULID and
// creation timestamp, persists the record and fills both back into it.
func (a *QuizRecordDatabaseAdapter) Create(ctx context.Context, record *domain.QuizRecord) error {
	if record == nil {
		return domain.NewStorageError("cannot save nil quiz record", nil)
	}

	model, err := toModelQuizRecord(record)
	if err != nil {
		return domain.NewStorageError("failed to encode quiz record", err)
	}
	model.ID = util.NewULID()
	model.CreatedAt = time.Now().UTC()

	query := `INSERT INTO quiz_records (
		id, input_url, title, summary, sections,
		questions, related_topics, key_entities, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = a.db.ExecContext(ctx, query,
		model.ID,
		model.InputURL,
		model.Title,
		model.Summary,
		model.Sections,
		model.Questions,
		model.RelatedTopics,
		model.KeyEntities,
		model.CreatedAt,
	)
	if err != nil {
		return domain.NewStorageError("failed to save quiz record", err)
	}

	record.ID = model.ID
	record.CreatedAt = model.CreatedAt
	return nil
}

// GetByID implements domain.QuizRecordRepository. A missing ID yields
// (nil, nil); the service layer translates that into a not-found error.
func (a *QuizRecordDatabaseAdapter) GetByID(ctx context.Context, id string) (*domain.QuizRecord, error) {
	var model models.QuizRecord
	query := `SELECT
		id, input_url, title, summary, sections,
		questions, related_topics, key_entities, created_at
	FROM quiz_records
	WHERE id = ?`

	err := a.db.GetContext(ctx, &model, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStorageError(fmt.Sprintf("failed to get quiz record %s", id), err)
	}
	return toDomainQuizRecord(&model)
}

// List implements domain.QuizRecordRepository. Summaries come back newest
// first; the id tie-break keeps same-timestamp rows in creation order
// because ULIDs sort lexicographically by time.
func (a *QuizRecordDatabaseAdapter) List(ctx context.Context) ([]*domain.QuizRecordSummary, error) {
	var rows []models.QuizRecordSummary
	query := `SELECT id, input_url, title, created_at
	FROM quiz_records
	ORDER BY created_at DESC, id DESC`

	if err := a.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, domain.NewStorageError("failed to list quiz records", err)
	}

	summaries := make([]*domain.QuizRecordSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, &domain.QuizRecordSummary{
			ID:        row.ID,
			InputURL:  row.InputURL,
			Title:     row.Title,
			CreatedAt: row.CreatedAt,
		})
	}
	return summaries, nil
}

func toModelQuizRecord(record *domain.QuizRecord) (*models.QuizRecord, error) {
	questionsJSON, err := json.Marshal(record.Questions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal questions: %w", err)
	}
	return &models.QuizRecord{
		ID:            record.ID,
		InputURL:      record.InputURL,
		Title:         record.Title,
		Summary:       record.Summary,
		Sections:      models.StringSlice(record.Sections),
		Questions:     string(questionsJSON),
		RelatedTopics: models.StringSlice(record.RelatedTopics),
		KeyEntities:   models.StringSliceMap(record.KeyEntities),
		CreatedAt:     record.CreatedAt,
	}, nil
}

func toDomainQuizRecord(model *models.QuizRecord) (*domain.QuizRecord, error) {
	var questions []domain.QuizQuestion
	if model.Questions != "" {
		if err := json.Unmarshal([]byte(model.Questions), &questions); err != nil {
			return nil, domain.NewStorageError(
				fmt.Sprintf("corrupt questions payload for record %s", model.ID), err)
		}
	}
	return &domain.QuizRecord{
		ID:            model.ID,
		InputURL:      model.InputURL,
		Title:         model.Title,
		Summary:       model.Summary,
		Sections:      model.Sections,
		Questions:     questions,
		RelatedTopics: model.RelatedTopics,
		KeyEntities:   model.KeyEntities,
		CreatedAt:     model.CreatedAt,
	}, nil
}
