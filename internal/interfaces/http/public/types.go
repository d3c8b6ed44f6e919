package public

import (
	"time"

	publicdomain "github.com/rafly24/lapor-in-services/api/internal/public/domain"
)

type reviewResponse struct {
	ID        string     `json:"id"`
	UserName  string     `json:"userName"`
	UserPhoto string     `json:"userPhoto,omitempty"`
	Rating    int        `json:"rating"`
	Text      string     `json:"text"`
	CreatedAt string     `json:"createdAt"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type reviewListResponse struct {
	Items []reviewResponse `json:"items"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
	Total int              `json:"total"`
}

type ratingBucketResponse struct {
	Rating     int     `json:"rating"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type reviewStatsResponse struct {
	TotalReviews  int                    `json:"totalReviews"`
	AverageRating float64                `json:"averageRating"`
	FiveStarCount int                    `json:"fiveStarCount"`
	Breakdown     []ratingBucketResponse `json:"breakdown"`
}

type downloadCountResponse struct {
	Count int `json:"count"`
}

type authVerifyResponse struct {
	Status    string          `json:"status"`
	User      any             `json:"user"`
	HasReview bool            `json:"hasReview"`
	Review    *reviewResponse `json:"review,omitempty"`
}

// buildReviewResponse はドメイン Review を表示用 DTO に変換する。
// メールアドレスはレスポンスへ出さない。
func buildReviewResponse(review publicdomain.Review) reviewResponse {
	resp := reviewResponse{
		ID:        review.ID,
		UserName:  review.UserName,
		UserPhoto: review.UserPhoto,
		Rating:    review.Rating,
		Text:      review.Text,
		CreatedAt: review.CreatedAt,
	}
	if !review.Timestamp.IsZero() {
		t := review.Timestamp
		resp.Timestamp = &t
	}
	if !review.UpdatedAt.IsZero() {
		t := review.UpdatedAt
		resp.UpdatedAt = &t
	}
	return resp
}

// buildStatsResponse は集計結果を 1〜5 の星別内訳付き DTO に変換する。
func buildStatsResponse(stats publicdomain.Stats) reviewStatsResponse {
	breakdown := make([]ratingBucketResponse, 0, len(stats.Histogram))
	for i, count := range stats.Histogram {
		breakdown = append(breakdown, ratingBucketResponse{
			Rating:     i + 1,
			Count:      count,
			Percentage: stats.Percentages[i],
		})
	}
	return reviewStatsResponse{
		TotalReviews:  stats.TotalReviews,
		AverageRating: stats.AverageRating,
		FiveStarCount: stats.FiveStarCount,
		Breakdown:     breakdown,
	}
}
