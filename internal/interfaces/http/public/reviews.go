package public

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rafly24/lapor-in-services/api/internal/interfaces/http/common"
	publicapp "github.com/rafly24/lapor-in-services/api/internal/public/application"
	publicdomain "github.com/rafly24/lapor-in-services/api/internal/public/domain"
)

// reviewListHandler はレビュー一覧 API。全件をローカルコピーとして取得し、
// キーワード・星数の絞り込みと並び替え、ページングをメモリ上で行う。
func (h *Handler) reviewListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		keyword := strings.TrimSpace(query.Get("search"))
		rating := 0
		if raw := strings.TrimSpace(query.Get("rating")); raw != "" && raw != "all" {
			parsed, ok := common.ParsePositiveInt(raw, 0)
			if !ok || !publicdomain.ValidRating(parsed) {
				common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "Filter rating tidak valid"})
				return
			}
			rating = parsed
		}
		order := strings.TrimSpace(query.Get("sort"))
		page, _ := common.ParsePositiveInt(query.Get("page"), 1)
		limit, _ := common.ParsePositiveInt(query.Get("limit"), 20)

		reviews, err := h.reviewQueries.List(ctx)
		if err != nil {
			// 読み取り失敗は空表示へフォールバックする。
			h.logger.Printf("review list fetch failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusOK, reviewListResponse{
				Items: []reviewResponse{}, Page: page, Limit: limit, Total: 0,
			})
			return
		}

		filtered := filterReviews(reviews, keyword, rating)
		sortReviews(filtered, order)
		total := len(filtered)

		items := make([]reviewResponse, 0, limit)
		for _, review := range pageSlice(filtered, page, limit) {
			items = append(items, buildReviewResponse(review))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, reviewListResponse{
			Items: items,
			Page:  page,
			Limit: limit,
			Total: total,
		})
	}
}

// reviewLatestHandler はランディングページ向けに最新レビューを上限4件まで返す。
func (h *Handler) reviewLatestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		reviews, err := h.reviewQueries.Latest(ctx, common.LatestReviewWindow)
		if err != nil {
			h.logger.Printf("最新レビューの取得に失敗: %v", err)
			common.WriteJSON(h.logger, w, http.StatusOK, []reviewResponse{})
			return
		}

		items := make([]reviewResponse, 0, len(reviews))
		for _, review := range reviews {
			items = append(items, buildReviewResponse(review))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, items)
	}
}

// reviewStatsHandler は全件から再計算した集計値を返す。
// 取得に失敗した場合はゼロ値の集計で応答し、表示をブロックしない。
func (h *Handler) reviewStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		stats, err := h.reviewQueries.Stats(ctx)
		if err != nil {
			h.logger.Printf("レビュー集計の取得に失敗: %v", err)
			stats = publicdomain.Stats{}
		}
		common.WriteJSON(h.logger, w, http.StatusOK, buildStatsResponse(stats))
	}
}

// reviewDetailHandler はレビューIDを指定して単一レビューを返す。
func (h *Handler) reviewDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "ID ulasan tidak disertakan"})
			return
		}

		review, err := h.reviewQueries.Detail(ctx, idParam)
		if err != nil {
			if errors.Is(err, publicapp.ErrNotFound) {
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "Ulasan tidak ditemukan"})
				return
			}
			h.logger.Printf("レビュー詳細の取得に失敗 id=%s err=%v", idParam, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "Gagal memuat ulasan. Silakan coba lagi."})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildReviewResponse(*review))
	}
}
