package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice is a custom type for storing string arrays as JSON text columns
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// StringSliceMap stores a map of string slices (entity category -> names)
// as a JSON text column
type StringSliceMap map[string][]string

// Value implements the driver.Valuer interface
func (m StringSliceMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	jsonData, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (m *StringSliceMap) Scan(value interface{}) error {
	if value == nil {
		*m = StringSliceMap{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSliceMap Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*m = StringSliceMap{}
		return nil
	}
	return json.Unmarshal(bytesToParse, m)
}

// QuizRecord is the database model for a persisted quiz. The question list
// is stored as a JSON string column; conversion to the domain type happens
// in the repository adapter.
type QuizRecord struct {
	ID            string         `db:"id"`
	InputURL      string         `db:"input_url"`
	Title         string         `db:"title"`
	Summary       string         `db:"summary"`
	Sections      StringSlice    `db:"sections"`
	Questions     string         `db:"questions"`
	RelatedTopics StringSlice    `db:"related_topics"`
	KeyEntities   StringSliceMap `db:"key_entities"`
	CreatedAt     time.Time      `db:"created_at"`
}

func (QuizRecord) TableName() string {
	return "quiz_records"
}

// QuizRecordSummary is the listing projection used by history queries
type QuizRecordSummary struct {
	ID        string    `db:"id"`
	InputURL  string    `db:"input_url"`
	Title     string    `db:"title"`
	CreatedAt time.Time `db:"created_at"`
}
