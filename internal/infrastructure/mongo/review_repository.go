package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rafly24/lapor-in-services/api/internal/public/application"
	"github.com/rafly24/lapor-in-services/api/internal/public/domain"
)

// ReviewRepository はアプリレビューを MongoDB で扱う実装リポジトリ。
type ReviewRepository struct {
	reviews *mongo.Collection
}

// NewReviewRepository はレビューコレクションを束縛したリポジトリを構築する。
func NewReviewRepository(db *mongo.Database, reviewCollection string) *ReviewRepository {
	return &ReviewRepository{reviews: db.Collection(reviewCollection)}
}

// Find は全レビューをサーバータイムスタンプ降順で取得する。
// 集計は常にこの全件読み込みから再計算するため、条件は付けない。
func (r *ReviewRepository) Find(ctx context.Context) ([]domain.Review, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "timestamp", Value: -1},
		{Key: "createdAt", Value: -1},
	})
	cursor, err := r.reviews.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := make([]domain.Review, 0)
	for cursor.Next(ctx) {
		var doc ReviewDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		reviews = append(reviews, mapReviewDocument(doc))
	}
	return reviews, cursor.Err()
}

// FindByID はレビュー ID を ObjectID 化して単一ドキュメントを取得する。
func (r *ReviewRepository) FindByID(ctx context.Context, id string) (*domain.Review, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, application.ErrNotFound
	}

	var doc ReviewDocument
	if err := r.reviews.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, application.ErrNotFound
		}
		return nil, err
	}
	review := mapReviewDocument(doc)
	return &review, nil
}

// FindByEmail はメールアドレス等値クエリで高々 1 件のレビューを返す。
// 一意性の不変条件が破れていた場合は最初の 1 件を採用する。
func (r *ReviewRepository) FindByEmail(ctx context.Context, email string) (*domain.Review, error) {
	var doc ReviewDocument
	err := r.reviews.FindOne(ctx, bson.M{"userEmail": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	review := mapReviewDocument(doc)
	return &review, nil
}

// Create はレビューを Mongo に追加し、採番した ID とサーバー時刻をドメインへ反映する。
func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	doc := ReviewDocument{
		ID:        primitive.NewObjectID(),
		UserID:    review.UserID,
		UserName:  review.UserName,
		UserPhoto: review.UserPhoto,
		UserEmail: review.UserEmail,
		Rating:    review.Rating,
		Text:      review.Text,
		Timestamp: time.Now().UTC(),
		CreatedAt: review.CreatedAt,
	}

	if _, err := r.reviews.InsertOne(ctx, doc); err != nil {
		return err
	}

	review.ID = doc.ID.Hex()
	review.Timestamp = doc.Timestamp
	return nil
}

// Update は rating/text の差し替えと updatedAt の記録のみを行う。
// createdAt とアイデンティティのスナップショットは作成時のまま変更しない。
func (r *ReviewRepository) Update(ctx context.Context, id string, rating int, text string, updatedAt time.Time) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return application.ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"rating":    rating,
		"text":      text,
		"updatedAt": updatedAt,
	}}
	result, err := r.reviews.UpdateByID(ctx, objectID, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return application.ErrNotFound
	}
	return nil
}

// Delete はレビューを物理削除する。
func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return application.ErrNotFound
	}

	result, err := r.reviews.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return application.ErrNotFound
	}
	return nil
}
