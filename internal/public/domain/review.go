package domain

import (
	"sort"
	"time"
)

const (
	// MinRating is the lowest selectable star rating.
	MinRating = 1
	// MaxRating is the highest selectable star rating.
	MaxRating = 5
)

// Review represents a single user review of the Lapor.in application.
// Identity fields snapshot the authenticated principal at creation time and
// are not refreshed when the profile changes later.
type Review struct {
	ID        string
	UserID    string
	UserName  string
	UserPhoto string
	UserEmail string
	Rating    int
	Text      string
	CreatedAt string    // client-assigned ISO 8601 string, set once
	Timestamp time.Time // server-assigned; zero until the insert round-trip completes
	UpdatedAt time.Time // zero until the first update
}

// ReviewTime returns the server timestamp when present, falling back to the
// client creation string for documents whose insert has not round-tripped yet.
func (r Review) ReviewTime() time.Time {
	if !r.Timestamp.IsZero() {
		return r.Timestamp
	}
	if parsed, err := time.Parse(time.RFC3339, r.CreatedAt); err == nil {
		return parsed
	}
	return time.Time{}
}

// SortNewestFirst orders reviews by their effective creation time, newest
// first. The order is stable so equal timestamps keep their input order.
func SortNewestFirst(reviews []Review) {
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].ReviewTime().After(reviews[j].ReviewTime())
	})
}

// ValidRating reports whether the value is a selectable star rating.
func ValidRating(value int) bool {
	return value >= MinRating && value <= MaxRating
}

// Principal is the authenticated identity delivered by the login provider.
type Principal struct {
	UID         string
	DisplayName string
	PhotoURL    string
	Email       string
}

// IsZero reports whether no authenticated principal is present. The review
// invariant is keyed on email, so an empty email means no usable identity.
func (p Principal) IsZero() bool {
	return p.Email == ""
}
