package common

const (
	// MaxReviewRequestBody limits JSON request bodies for review endpoints.
	MaxReviewRequestBody = 1 << 20
	// LatestReviewWindow is how many reviews the landing preview shows.
	LatestReviewWindow = 4
)
