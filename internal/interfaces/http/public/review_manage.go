package public

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rafly24/lapor-in-services/api/internal/interfaces/http/common"
	publicapp "github.com/rafly24/lapor-in-services/api/internal/public/application"
)

// reviewUpdateHandler は本人のレビューの rating/text を差し替える。
// 所有者チェックはレジャー層で行い、ストア側のルールへは委ねない。
func (h *Handler) reviewUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "Silakan login terlebih dahulu"})
			return
		}

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "ID ulasan tidak disertakan"})
			return
		}

		defer r.Body.Close()

		var req submitReviewRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxReviewRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("Format permintaan tidak valid: %v", err),
			})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		cmd := publicapp.SubmitReviewCommand{Rating: req.Rating, Text: req.Text}
		review, err := h.reviewCommands.Update(ctx, principalFromUser(user), idParam, cmd)
		if err != nil {
			h.writeCommandError(w, err, "Gagal memperbarui ulasan. Silakan coba lagi.")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"status": "updated",
			"review": buildReviewResponse(*review),
		})
	}
}

// reviewDeleteHandler は本人のレビューを削除する。確認ダイアログは
// クライアント側の責務で、ここでは即時に削除する。
func (h *Handler) reviewDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "Silakan login terlebih dahulu"})
			return
		}

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "ID ulasan tidak disertakan"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.reviewCommands.Delete(ctx, principalFromUser(user), idParam); err != nil {
			h.writeCommandError(w, err, "Gagal menghapus ulasan. Silakan coba lagi.")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}
