package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rafly24/lapor-in-services/api/internal/public/domain"
)

// ReviewDocument は reviews コレクションのスキーマを Go 構造体として表現したもの。
// createdAt はクライアント採番の ISO 文字列、timestamp はサーバー採番の作成時刻。
type ReviewDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	UserID    string             `bson:"userId"`
	UserName  string             `bson:"userName"`
	UserPhoto string             `bson:"userPhoto,omitempty"`
	UserEmail string             `bson:"userEmail"`
	Rating    int                `bson:"rating"`
	Text      string             `bson:"text"`
	Timestamp time.Time          `bson:"timestamp"`
	CreatedAt string             `bson:"createdAt"`
	UpdatedAt *time.Time         `bson:"updatedAt,omitempty"`
}

// DownloadStatsDocument は stats コレクション内のダウンロード数シングルトン。
type DownloadStatsDocument struct {
	ID    string `bson:"_id"`
	Count int    `bson:"count"`
}

// DownloadStatsID is the fixed _id of the singleton counter document.
const DownloadStatsID = "downloads"

// mapReviewDocument は Mongo ドキュメントを公開ドメイン Review へ復元する。
func mapReviewDocument(doc ReviewDocument) domain.Review {
	review := domain.Review{
		ID:        doc.ID.Hex(),
		UserID:    doc.UserID,
		UserName:  doc.UserName,
		UserPhoto: doc.UserPhoto,
		UserEmail: doc.UserEmail,
		Rating:    doc.Rating,
		Text:      doc.Text,
		Timestamp: doc.Timestamp,
		CreatedAt: doc.CreatedAt,
	}
	if doc.UpdatedAt != nil {
		review.UpdatedAt = *doc.UpdatedAt
	}
	return review
}
