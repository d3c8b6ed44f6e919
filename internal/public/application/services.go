package application

import (
	"context"
	"strings"
	"time"

	"github.com/rafly24/lapor-in-services/api/internal/public/domain"
)

// ReviewRepository handles review reads/writes.
// ReviewRepository はレビューコレクションへの読み書きを提供するポート。
type ReviewRepository interface {
	Find(ctx context.Context) ([]domain.Review, error)
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	// FindByEmail returns at most one review for the identity, or nil.
	FindByEmail(ctx context.Context, email string) (*domain.Review, error)
	Create(ctx context.Context, review *domain.Review) error
	Update(ctx context.Context, id string, rating int, text string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// DownloadRepository owns the singleton download counter document.
type DownloadRepository interface {
	// Increment atomically adds one and returns the committed count.
	Increment(ctx context.Context) (int, error)
	// Count returns the current count, zero when the document is absent.
	Count(ctx context.Context) (int, error)
}

// SubmitReviewCommand captures the user input shared by submit and update.
type SubmitReviewCommand struct {
	Rating int
	Text   string
}

func (cmd *SubmitReviewCommand) normalize() error {
	if cmd.Rating == 0 {
		return &ValidationError{Reason: "Silakan pilih rating"}
	}
	if !domain.ValidRating(cmd.Rating) {
		return &ValidationError{Reason: "Rating harus antara 1 dan 5"}
	}
	cmd.Text = strings.TrimSpace(cmd.Text)
	if cmd.Text == "" {
		return &ValidationError{Reason: "Silakan tulis ulasan Anda"}
	}
	return nil
}

// ReviewQueryService describes review read use-cases.
// ReviewQueryService はレビュー参照ユースケースを提供するリーダーモデル。
type ReviewQueryService interface {
	List(ctx context.Context) ([]domain.Review, error)
	Latest(ctx context.Context, limit int) ([]domain.Review, error)
	Detail(ctx context.Context, id string) (*domain.Review, error)
	FindByEmail(ctx context.Context, email string) (*domain.Review, error)
	Stats(ctx context.Context) (domain.Stats, error)
}

// ReviewCommandService handles the review lifecycle writes.
type ReviewCommandService interface {
	Submit(ctx context.Context, principal domain.Principal, cmd SubmitReviewCommand) (*domain.Review, error)
	Update(ctx context.Context, principal domain.Principal, id string, cmd SubmitReviewCommand) (*domain.Review, error)
	Delete(ctx context.Context, principal domain.Principal, id string) error
}

// DownloadService exposes the download counter use-cases.
type DownloadService interface {
	Increment(ctx context.Context) (int, error)
	Count(ctx context.Context) (int, error)
}

func NewReviewQueryService(repo ReviewRepository) ReviewQueryService {
	return &reviewQueryService{repo: repo}
}

type reviewQueryService struct {
	repo ReviewRepository
}

func (s *reviewQueryService) List(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.repo.Find(ctx)
	if err != nil {
		return nil, err
	}
	domain.SortNewestFirst(reviews)
	return reviews, nil
}

func (s *reviewQueryService) Latest(ctx context.Context, limit int) ([]domain.Review, error) {
	reviews, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(reviews) > limit {
		reviews = reviews[:limit]
	}
	return reviews, nil
}

func (s *reviewQueryService) Detail(ctx context.Context, id string) (*domain.Review, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *reviewQueryService) FindByEmail(ctx context.Context, email string) (*domain.Review, error) {
	return s.repo.FindByEmail(ctx, strings.TrimSpace(email))
}

// Stats reloads the full review set and recomputes the aggregates, so the
// numbers always reflect the store at the moment of the read.
func (s *reviewQueryService) Stats(ctx context.Context) (domain.Stats, error) {
	reviews, err := s.repo.Find(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.ComputeStats(reviews), nil
}

func NewReviewCommandService(repo ReviewRepository) ReviewCommandService {
	return &reviewCommandService{repo: repo}
}

type reviewCommandService struct {
	repo ReviewRepository
}

func (s *reviewCommandService) Submit(ctx context.Context, principal domain.Principal, cmd SubmitReviewCommand) (*domain.Review, error) {
	if principal.IsZero() {
		return nil, ErrNotAuthenticated
	}
	if err := cmd.normalize(); err != nil {
		return nil, err
	}

	// Pre-insert duplicate check. Two racing submissions can both pass it
	// before either write commits; the store carries no unique constraint.
	existing, err := s.repo.FindByEmail(ctx, principal.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateReview
	}

	review := &domain.Review{
		UserID:    principal.UID,
		UserName:  principal.DisplayName,
		UserPhoto: principal.PhotoURL,
		UserEmail: principal.Email,
		Rating:    cmd.Rating,
		Text:      cmd.Text,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	return review, s.repo.Create(ctx, review)
}

func (s *reviewCommandService) Update(ctx context.Context, principal domain.Principal, id string, cmd SubmitReviewCommand) (*domain.Review, error) {
	if principal.IsZero() {
		return nil, ErrNotAuthenticated
	}
	if err := cmd.normalize(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserEmail != principal.Email {
		return nil, ErrNotOwner
	}

	now := time.Now().UTC()
	if err := s.repo.Update(ctx, id, cmd.Rating, cmd.Text, now); err != nil {
		return nil, err
	}

	updated := *existing
	updated.Rating = cmd.Rating
	updated.Text = cmd.Text
	updated.UpdatedAt = now
	return &updated, nil
}

func (s *reviewCommandService) Delete(ctx context.Context, principal domain.Principal, id string) error {
	if principal.IsZero() {
		return ErrNotAuthenticated
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserEmail != principal.Email {
		return ErrNotOwner
	}

	return s.repo.Delete(ctx, id)
}

func NewDownloadService(repo DownloadRepository) DownloadService {
	return &downloadService{repo: repo}
}

type downloadService struct {
	repo DownloadRepository
}

func (s *downloadService) Increment(ctx context.Context) (int, error) {
	return s.repo.Increment(ctx)
}

func (s *downloadService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
