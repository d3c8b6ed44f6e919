package public

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rafly24/lapor-in-services/api/internal/interfaces/http/common"
	publicapp "github.com/rafly24/lapor-in-services/api/internal/public/application"
)

type submitReviewRequest struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// reviewCreateHandler は認証済みユーザーのレビュー投稿を受け付ける。
// 同一アカウントの既存レビューがある場合は 409 を返し、更新へ誘導する。
func (h *Handler) reviewCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "Silakan login terlebih dahulu"})
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
		review, err := h.reviewCommands.Submit(ctx, principalFromUser(user), cmd)
		if err != nil {
			h.writeCommandError(w, err, "Gagal mengirim ulasan. Silakan coba lagi.")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, map[string]any{
			"status": "created",
			"review": buildReviewResponse(*review),
		})
	}
}

// writeCommandError はレジャー層のエラーを HTTP ステータスへ写す共通処理。
func (h *Handler) writeCommandError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case publicapp.IsValidation(err):
		common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, publicapp.ErrNotAuthenticated):
		common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "Silakan login terlebih dahulu"})
	case errors.Is(err, publicapp.ErrDuplicateReview):
		common.WriteJSON(h.logger, w, http.StatusConflict, map[string]string{"error": "Anda sudah memberikan ulasan. Gunakan Update untuk mengubahnya."})
	case errors.Is(err, publicapp.ErrNotFound):
		common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "Ulasan tidak ditemukan"})
	case errors.Is(err, publicapp.ErrNotOwner):
		common.WriteJSON(h.logger, w, http.StatusForbidden, map[string]string{"error": "Ulasan ini bukan milik akun Anda"})
	default:
		h.logger.Printf("review command failed: %v", err)
		common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": fallback})
	}
}
