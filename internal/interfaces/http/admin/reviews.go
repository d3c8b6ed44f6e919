package admin

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	adminapp "github.com/rafly24/lapor-in-services/api/internal/admin/application"
	"github.com/rafly24/lapor-in-services/api/internal/interfaces/http/common"
	publicapp "github.com/rafly24/lapor-in-services/api/internal/public/application"
)

func (h *Handler) reviewListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		keyword := strings.TrimSpace(query.Get("keyword"))
		rating, _ := common.ParsePositiveInt(query.Get("rating"), 0)
		limit, _ := common.ParsePositiveInt(query.Get("limit"), 0)
		page, _ := common.ParsePositiveInt(query.Get("page"), 1)

		filter := adminapp.ReviewFilter{Keyword: keyword, Rating: rating}
		paging := adminapp.Paging{Page: page, Limit: limit}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		reviews, err := h.reviewService.List(ctx, filter, paging)
		if err != nil {
			h.logger.Printf("admin review list fetch failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "Gagal memuat daftar ulasan"})
			return
		}

		items := make([]adminReviewResponse, 0, len(reviews))
		for _, review := range reviews {
			items = append(items, buildAdminReviewResponse(review))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, adminReviewListResponse{Items: items})
	}
}

func (h *Handler) reviewDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "ID ulasan tidak disertakan"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		review, err := h.reviewService.Detail(ctx, idParam)
		if err != nil {
			if errors.Is(err, publicapp.ErrNotFound) {
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "Ulasan tidak ditemukan"})
				return
			}
			h.logger.Printf("admin review detail fetch failed id=%s err=%v", idParam, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "Gagal memuat ulasan"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildAdminReviewResponse(*review))
	}
}

// reviewDeleteHandler はモデレーション削除。所有者に関係なく対象を取り除く。
func (h *Handler) reviewDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "ID ulasan tidak disertakan"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.reviewService.Remove(ctx, idParam); err != nil {
			if errors.Is(err, publicapp.ErrNotFound) {
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "Ulasan tidak ditemukan"})
				return
			}
			h.logger.Printf("admin review delete failed id=%s err=%v", idParam, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "Gagal menghapus ulasan"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

// statsHandler はレビュー集計とダウンロード数を一括で返す管理ダッシュボード用 API。
func (h *Handler) statsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		stats, err := h.reviewQueries.Stats(ctx)
		if err != nil {
			h.logger.Printf("admin stats fetch failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "Gagal memuat statistik"})
			return
		}

		downloads, err := h.downloads.Count(ctx)
		if err != nil {
			h.logger.Printf("admin download count fetch failed: %v", err)
			downloads = 0
		}

		common.WriteJSON(h.logger, w, http.StatusOK, adminStatsResponse{
			TotalReviews:  stats.TotalReviews,
			AverageRating: stats.AverageRating,
			FiveStarCount: stats.FiveStarCount,
			Downloads:     downloads,
		})
	}
}
