package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func reviewsWithRatings(ratings ...int) []Review {
	reviews := make([]Review, 0, len(ratings))
	for _, rating := range ratings {
		reviews = append(reviews, Review{Rating: rating})
	}
	return reviews
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(reviewsWithRatings(5, 5, 3, 1))

	assert.Equal(t, 4, stats.TotalReviews)
	assert.Equal(t, 3.5, stats.AverageRating)
	assert.Equal(t, 2, stats.FiveStarCount)
	assert.Equal(t, [MaxRating]int{1, 0, 1, 0, 2}, stats.Histogram)
	assert.Equal(t, 25.0, stats.Percentages[0])
	assert.Equal(t, 50.0, stats.Percentages[4])
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)

	assert.Equal(t, 0, stats.TotalReviews)
	assert.Equal(t, 0.0, stats.AverageRating)
	assert.Equal(t, 0, stats.FiveStarCount)
	assert.Equal(t, [MaxRating]int{}, stats.Histogram)
	assert.Equal(t, [MaxRating]float64{}, stats.Percentages)
}

func TestComputeStatsRoundsAverageToOneDecimal(t *testing.T) {
	// 1+2+5 = 8 / 3 = 2.666... -> 2.7
	stats := ComputeStats(reviewsWithRatings(1, 2, 5))
	assert.Equal(t, 2.7, stats.AverageRating)

	// 1+1+2 = 4 / 3 = 1.333... -> 1.3
	stats = ComputeStats(reviewsWithRatings(1, 1, 2))
	assert.Equal(t, 1.3, stats.AverageRating)
}

func TestComputeStatsHistogramSumMatchesTotal(t *testing.T) {
	stats := ComputeStats(reviewsWithRatings(1, 2, 3, 4, 5, 5, 4, 3, 2, 1, 3))

	sum := 0
	for _, count := range stats.Histogram {
		sum += count
	}
	assert.Equal(t, stats.TotalReviews, sum)
}

func TestComputeStatsIsPure(t *testing.T) {
	reviews := reviewsWithRatings(4, 4, 2)

	first := ComputeStats(reviews)
	second := ComputeStats(reviews)
	assert.Equal(t, first, second)
}

func TestValidRating(t *testing.T) {
	assert.False(t, ValidRating(0))
	assert.True(t, ValidRating(1))
	assert.True(t, ValidRating(5))
	assert.False(t, ValidRating(6))
	assert.False(t, ValidRating(-1))
}
