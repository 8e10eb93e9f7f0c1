package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"
	"wikiquiz/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (domain.QuizRecordRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewQuizRecordDatabaseAdapter(sqlx.NewDb(db, "sqlite3")), mock
}

func sampleRecord() *domain.QuizRecord {
	return &domain.QuizRecord{
		InputURL: "https://en.wikipedia.org/wiki/Alan_Turing",
		Title:    "Alan Turing",
		Summary:  "Alan Turing was an English mathematician.",
		Sections: []string{"Early life", "Career"},
		Questions: []domain.QuizQuestion{
			{
				Question:    "Where was Turing born?",
				Options:     []string{"London", "Manchester", "Cambridge", "Oxford"},
				Answer:      "London",
				Difficulty:  "easy",
				Explanation: "The article says he was born in Maida Vale, London.",
			},
		},
		RelatedTopics: []string{"Cryptography", "Enigma machine", "Computability theory"},
		KeyEntities:   map[string][]string{"people": {"Alan Turing"}},
	}
}

func TestQuizRecordCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO quiz_records").
		WithArgs(
			sqlmock.AnyArg(), // id
			"https://en.wikipedia.org/wiki/Alan_Turing",
			"Alan Turing",
			sqlmock.AnyArg(), // summary
			sqlmock.AnyArg(), // sections
			sqlmock.AnyArg(), // questions
			sqlmock.AnyArg(), // related_topics
			sqlmock.AnyArg(), // key_entities
			sqlmock.AnyArg(), // created_at
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	record := sampleRecord()
	err := repo.Create(context.Background(), record)
	require.NoError(t, err)

	// Create assigns ULID and creation timestamp back onto the record.
	assert.Len(t, record.ID, 26)
	assert.WithinDuration(t, time.Now().UTC(), record.CreatedAt, 5*time.Second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizRecordCreateStorageFailure(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO quiz_records").
		WillReturnError(sql.ErrConnDone)

	err := repo.Create(context.Background(), sampleRecord())
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeStorage, domainErr.Code)
}

func TestQuizRecordGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	source := sampleRecord()
	questionsJSON, err := json.Marshal(source.Questions)
	require.NoError(t, err)
	createdAt := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "input_url", "title", "summary", "sections",
		"questions", "related_topics", "key_entities", "created_at",
	}).AddRow(
		"01JA0000000000000000000000",
		source.InputURL,
		source.Title,
		source.Summary,
		`["Early life","Career"]`,
		string(questionsJSON),
		`["Cryptography","Enigma machine","Computability theory"]`,
		`{"people":["Alan Turing"]}`,
		createdAt,
	)
	mock.ExpectQuery("SELECT (.+) FROM quiz_records").
		WithArgs("01JA0000000000000000000000").
		WillReturnRows(rows)

	record, err := repo.GetByID(context.Background(), "01JA0000000000000000000000")
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, source.InputURL, record.InputURL)
	assert.Equal(t, source.Title, record.Title)
	assert.Equal(t, source.Sections, record.Sections)
	assert.Equal(t, source.Questions, record.Questions)
	assert.Equal(t, source.RelatedTopics, record.RelatedTopics)
	assert.Equal(t, source.KeyEntities, record.KeyEntities)
	assert.True(t, record.CreatedAt.Equal(createdAt))
}

func TestQuizRecordGetByIDAbsent(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM quiz_records").
		WithArgs("01JA0000000000000000000001").
		WillReturnError(sql.ErrNoRows)

	record, err := repo.GetByID(context.Background(), "01JA0000000000000000000001")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestQuizRecordList(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "input_url", "title", "created_at"}).
		AddRow("01JA0000000000000000000002", "https://en.wikipedia.org/wiki/B", "B", now).
		AddRow("01JA0000000000000000000001", "https://en.wikipedia.org/wiki/A", "A", now.Add(-time.Minute))

	// Newest-first ordering is delegated to the query itself.
	mock.ExpectQuery("ORDER BY created_at DESC, id DESC").
		WillReturnRows(rows)

	summaries, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "B", summaries[0].Title)
	assert.Equal(t, "A", summaries[1].Title)
	assert.True(t, summaries[0].CreatedAt.After(summaries[1].CreatedAt))
}

func TestQuizRecordListStorageFailure(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("ORDER BY created_at DESC, id DESC").
		WillReturnError(sql.ErrConnDone)

	_, err := repo.List(context.Background())
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeStorage, domainErr.Code)
}

func TestQuizRecordRoundTrip(t *testing.T) {
	// Model conversion round-trip: what goes into the row comes back out.
	source := sampleRecord()
	source.ID = "01JA0000000000000000000003"
	source.CreatedAt = time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	model, err := toModelQuizRecord(source)
	require.NoError(t, err)

	restored, err := toDomainQuizRecord(model)
	require.NoError(t, err)
	assert.Equal(t, source, restored)
}
