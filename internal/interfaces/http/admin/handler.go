package admin

import (
	"log"

	"github.com/go-chi/chi/v5"

	adminapp "github.com/rafly24/lapor-in-services/api/internal/admin/application"
	publicapp "github.com/rafly24/lapor-in-services/api/internal/public/application"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger        *log.Logger
	reviewService adminapp.ReviewService
	reviewQueries publicapp.ReviewQueryService
	downloads     publicapp.DownloadService
}

// Config provides dependencies for Handler.
type Config struct {
	Logger        *log.Logger
	ReviewService adminapp.ReviewService
	ReviewQueries publicapp.ReviewQueryService
	Downloads     publicapp.DownloadService
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:        cfg.Logger,
		reviewService: cfg.ReviewService,
		reviewQueries: cfg.ReviewQueries,
		downloads:     cfg.Downloads,
	}
}

// Register mounts admin routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/reviews", h.reviewListHandler())
	r.Get("/reviews/{id}", h.reviewDetailHandler())
	r.Delete("/reviews/{id}", h.reviewDeleteHandler())
	r.Get("/stats", h.statsHandler())
}
