package public

import (
	"sort"
	"strings"

	"github.com/rafly24/lapor-in-services/api/internal/interfaces/http/common"
	publicdomain "github.com/rafly24/lapor-in-services/api/internal/public/domain"
)

// principalFromUser は認証済みユーザーをドメイン Principal へ写す。
func principalFromUser(user common.AuthenticatedUser) publicdomain.Principal {
	return publicdomain.Principal{
		UID:         user.ID,
		DisplayName: user.Name,
		PhotoURL:    user.Picture,
		Email:       user.Email,
	}
}

// filterReviews は取得済みの全件コピーに対して名前/本文の部分一致と星数の
// 完全一致で絞り込む。再クエリは行わない。
func filterReviews(reviews []publicdomain.Review, keyword string, rating int) []publicdomain.Review {
	keyword = strings.ToLower(strings.TrimSpace(keyword))

	filtered := make([]publicdomain.Review, 0, len(reviews))
	for _, review := range reviews {
		if keyword != "" &&
			!strings.Contains(strings.ToLower(review.UserName), keyword) &&
			!strings.Contains(strings.ToLower(review.Text), keyword) {
			continue
		}
		if rating != 0 && review.Rating != rating {
			continue
		}
		filtered = append(filtered, review)
	}
	return filtered
}

// sortReviews は newest/oldest/highest/lowest の並び替えを適用する。
// 未知の指定は newest として扱う。
func sortReviews(reviews []publicdomain.Review, order string) {
	switch order {
	case "oldest":
		sort.SliceStable(reviews, func(i, j int) bool {
			return reviews[i].ReviewTime().Before(reviews[j].ReviewTime())
		})
	case "highest":
		sort.SliceStable(reviews, func(i, j int) bool {
			return reviews[i].Rating > reviews[j].Rating
		})
	case "lowest":
		sort.SliceStable(reviews, func(i, j int) bool {
			return reviews[i].Rating < reviews[j].Rating
		})
	default:
		publicdomain.SortNewestFirst(reviews)
	}
}

// pageSlice は取得済み一覧に対するメモリ上のページングを行う。
func pageSlice(reviews []publicdomain.Review, page, limit int) []publicdomain.Review {
	total := len(reviews)
	start := (page - 1) * limit
	if start >= total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return reviews[start:end]
}
