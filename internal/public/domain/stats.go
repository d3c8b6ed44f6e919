package domain

import "math"

// Stats is the aggregate summary derived from the full review set. It is
// recomputed from scratch on every refresh, never maintained incrementally,
// so it always matches the store at the moment of the read.
type Stats struct {
	TotalReviews  int
	AverageRating float64
	FiveStarCount int
	Histogram     [MaxRating]int     // index 0 holds one-star counts
	Percentages   [MaxRating]float64 // each bucket's share of the total, 0..100
}

// ComputeStats derives rating statistics from the given review sequence.
// Pure function of its input: the same reviews always yield the same output.
func ComputeStats(reviews []Review) Stats {
	stats := Stats{TotalReviews: len(reviews)}
	if len(reviews) == 0 {
		return stats
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
		if ValidRating(review.Rating) {
			stats.Histogram[review.Rating-1]++
		}
	}

	total := float64(len(reviews))
	stats.AverageRating = math.Round(float64(sum)/total*10) / 10
	stats.FiveStarCount = stats.Histogram[MaxRating-1]
	for i, count := range stats.Histogram {
		stats.Percentages[i] = float64(count) / total * 100
	}
	return stats
}
