package domain

import "context"

// QuizRecordRepository is the persistence port for quiz records. The
// repository is the sole owner of persisted records; there is no update
// operation because records are immutable.
type QuizRecordRepository interface {
	// Create assigns an ID and creation timestamp, persists the record
	// and fills both back into the given record.
	Create(ctx context.Context, record *QuizRecord) error

	// GetByID returns the full record, or nil when the ID is absent.
	GetByID(ctx context.Context, id string) (*QuizRecord, error)

	// List returns record summaries ordered by creation time descending.
	List(ctx context.Context) ([]*QuizRecordSummary, error)
}
