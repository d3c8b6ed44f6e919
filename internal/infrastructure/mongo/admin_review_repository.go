package mongo

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	adminapp "github.com/rafly24/lapor-in-services/api/internal/admin/application"
	publicapp "github.com/rafly24/lapor-in-services/api/internal/public/application"
	"github.com/rafly24/lapor-in-services/api/internal/public/domain"
)

// AdminReviewRepository は管理画面向けのレビュー検索・削除を MongoDB 経由で扱う。
type AdminReviewRepository struct {
	reviews *mongo.Collection
}

func NewAdminReviewRepository(db *mongo.Database, reviewCollection string) *AdminReviewRepository {
	return &AdminReviewRepository{reviews: db.Collection(reviewCollection)}
}

// Find はキーワード・評価の条件を Mongo クエリへ変換し、管理一覧を返す。
func (r *AdminReviewRepository) Find(ctx context.Context, filter adminapp.ReviewFilter, paging adminapp.Paging) ([]domain.Review, error) {
	mongoFilter := bson.M{}
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
		mongoFilter["$or"] = bson.A{
			bson.M{"userName": pattern},
			bson.M{"userEmail": pattern},
			bson.M{"text": pattern},
		}
	}
	if domain.ValidRating(filter.Rating) {
		mongoFilter["rating"] = filter.Rating
	}

	findOpts := options.Find().SetSort(bson.D{
		{Key: "timestamp", Value: -1},
		{Key: "createdAt", Value: -1},
	})
	if paging.Limit > 0 {
		findOpts.SetLimit(int64(paging.Limit))
		if paging.Page > 1 {
			findOpts.SetSkip(int64((paging.Page - 1) * paging.Limit))
		}
	}

	cursor, err := r.reviews.Find(ctx, mongoFilter, findOpts)
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

// FindByID は ID 指定で単一レビューを復元する。
func (r *AdminReviewRepository) FindByID(ctx context.Context, id string) (*domain.Review, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, publicapp.ErrNotFound
	}

	var doc ReviewDocument
	if err := r.reviews.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, publicapp.ErrNotFound
		}
		return nil, err
	}
	review := mapReviewDocument(doc)
	return &review, nil
}

// Delete はモデレーション削除。所有者チェックは行わない。
func (r *AdminReviewRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return publicapp.ErrNotFound
	}

	result, err := r.reviews.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return publicapp.ErrNotFound
	}
	return nil
}
