package application

import (
	"context"

	"github.com/rafly24/lapor-in-services/api/internal/public/domain"
)

// ReviewRepository exposes moderation operations on reviews. The admin
// context reuses the public Review model; moderation needs no divergent shape.
type ReviewRepository interface {
	Find(ctx context.Context, filter ReviewFilter, paging Paging) ([]domain.Review, error)
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
}

// ReviewFilter expresses admin search criteria.
type ReviewFilter struct {
	Keyword string
	Rating  int
}

// Paging controls pagination.
type Paging struct {
	Page  int
	Limit int
}

// ReviewService describes admin moderation use-cases.
type ReviewService interface {
	List(ctx context.Context, filter ReviewFilter, paging Paging) ([]domain.Review, error)
	Detail(ctx context.Context, id string) (*domain.Review, error)
	Remove(ctx context.Context, id string) error
}

func NewReviewService(repo ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

type reviewService struct {
	repo ReviewRepository
}

func (s *reviewService) List(ctx context.Context, filter ReviewFilter, paging Paging) ([]domain.Review, error) {
	return s.repo.Find(ctx, filter, paging)
}

func (s *reviewService) Detail(ctx context.Context, id string) (*domain.Review, error) {
	return s.repo.FindByID(ctx, id)
}

// Remove deletes any review regardless of owner. Moderation bypasses the
// ownership gate that public deletes enforce.
func (s *reviewService) Remove(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
