package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	assert.Equal(t,
		"wikiquiz:quiz:record:01JA0000000000000000000000",
		GenerateCacheKey("quiz", "record", "01JA0000000000000000000000"),
	)

	assert.Equal(t,
		"wikiquiz:quiz:record:01JA0000000000000000000000:a_b",
		GenerateCacheKey("quiz", "record", "01JA0000000000000000000000", "a", "b"),
	)
}
