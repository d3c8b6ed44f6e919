package admin

import (
	"time"

	publicdomain "github.com/rafly24/lapor-in-services/api/internal/public/domain"
)

// adminReviewResponse は管理画面向けにメールアドレスも含めて返す DTO。
type adminReviewResponse struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	UserName  string     `json:"userName"`
	UserEmail string     `json:"userEmail"`
	UserPhoto string     `json:"userPhoto,omitempty"`
	Rating    int        `json:"rating"`
	Text      string     `json:"text"`
	CreatedAt string     `json:"createdAt"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type adminReviewListResponse struct {
	Items []adminReviewResponse `json:"items"`
}

type adminStatsResponse struct {
	TotalReviews  int     `json:"totalReviews"`
	AverageRating float64 `json:"averageRating"`
	FiveStarCount int     `json:"fiveStarCount"`
	Downloads     int     `json:"downloads"`
}

func buildAdminReviewResponse(review publicdomain.Review) adminReviewResponse {
	resp := adminReviewResponse{
		ID:        review.ID,
		UserID:    review.UserID,
		UserName:  review.UserName,
		UserEmail: review.UserEmail,
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
