package public

import (
	"context"
	"net/http"
	"time"

	"github.com/rafly24/lapor-in-services/api/internal/interfaces/http/common"
)

// downloadIncrementHandler はダウンロードボタン押下ごとにカウンタを 1 加算する。
// 加算後は新規読み出しで表示値を取り直すため、返す値は常にストアの確定値。
func (h *Handler) downloadIncrementHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if _, err := h.downloads.Increment(ctx); err != nil {
			h.logger.Printf("ダウンロード数の加算に失敗: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "Terjadi kesalahan. Silakan coba lagi."})
			return
		}

		count, err := h.downloads.Count(ctx)
		if err != nil {
			// 加算は成功している。読み直しの失敗は 0 表示へフォールバックする。
			h.logger.Printf("ダウンロード数の再読込に失敗: %v", err)
			count = 0
		}
		common.WriteJSON(h.logger, w, http.StatusOK, downloadCountResponse{Count: count})
	}
}

// downloadCountHandler は現在のダウンロード数を返す。失敗時はゼロ表示に退避する。
func (h *Handler) downloadCountHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		count, err := h.downloads.Count(ctx)
		if err != nil {
			h.logger.Printf("ダウンロード数の取得に失敗: %v", err)
			count = 0
		}
		common.WriteJSON(h.logger, w, http.StatusOK, downloadCountResponse{Count: count})
	}
}
