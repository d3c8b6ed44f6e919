package public

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	publicapp "github.com/rafly24/lapor-in-services/api/internal/public/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger         *log.Logger
	reviewQueries  publicapp.ReviewQueryService
	reviewCommands publicapp.ReviewCommandService
	downloads      publicapp.DownloadService
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger         *log.Logger
	ReviewQueries  publicapp.ReviewQueryService
	ReviewCommands publicapp.ReviewCommandService
	Downloads      publicapp.DownloadService
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:         cfg.Logger,
		reviewQueries:  cfg.ReviewQueries,
		reviewCommands: cfg.ReviewCommands,
		downloads:      cfg.Downloads,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Get("/reviews", h.reviewListHandler())
	r.Get("/reviews/latest", h.reviewLatestHandler())
	r.Get("/reviews/stats", h.reviewStatsHandler())
	r.Get("/reviews/{id}", h.reviewDetailHandler())
	r.Get("/downloads", h.downloadCountHandler())
	r.Post("/downloads", h.downloadIncrementHandler())
	r.With(authMiddleware).Post("/reviews", h.reviewCreateHandler())
	r.With(authMiddleware).Patch("/reviews/{id}", h.reviewUpdateHandler())
	r.With(authMiddleware).Delete("/reviews/{id}", h.reviewDeleteHandler())
	r.With(authMiddleware).Get("/auth/verify", h.authVerifyHandler())
}
