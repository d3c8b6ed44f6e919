package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReviewTimePrefersServerTimestamp(t *testing.T) {
	ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	review := Review{Timestamp: ts, CreatedAt: "2025-01-01T00:00:00Z"}

	assert.Equal(t, ts, review.ReviewTime())
}

func TestReviewTimeFallsBackToCreatedAt(t *testing.T) {
	review := Review{CreatedAt: "2025-01-02T15:04:05Z"}

	assert.Equal(t, time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC), review.ReviewTime())
}

func TestReviewTimeZeroWhenUnparsable(t *testing.T) {
	review := Review{CreatedAt: "bukan tanggal"}

	assert.True(t, review.ReviewTime().IsZero())
}

func TestSortNewestFirst(t *testing.T) {
	older := Review{ID: "a", Timestamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := Review{ID: "b", Timestamp: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)}
	pending := Review{ID: "c", CreatedAt: "2025-03-01T00:00:00Z"}

	reviews := []Review{older, pending, newer}
	SortNewestFirst(reviews)

	assert.Equal(t, "c", reviews[0].ID)
	assert.Equal(t, "b", reviews[1].ID)
	assert.Equal(t, "a", reviews[2].ID)
}

func TestSortNewestFirstStable(t *testing.T) {
	same := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	reviews := []Review{
		{ID: "first", Timestamp: same},
		{ID: "second", Timestamp: same},
	}
	SortNewestFirst(reviews)

	assert.Equal(t, "first", reviews[0].ID)
	assert.Equal(t, "second", reviews[1].ID)
}

func TestPrincipalIsZero(t *testing.T) {
	assert.True(t, Principal{}.IsZero())
	assert.True(t, Principal{UID: "u1", DisplayName: "Budi"}.IsZero())
	assert.False(t, Principal{Email: "budi@example.com"}.IsZero())
}
