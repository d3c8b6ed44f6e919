package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DownloadRepository は stats コレクションのダウンロード数シングルトンを扱う。
type DownloadRepository struct {
	stats *mongo.Collection
}

func NewDownloadRepository(db *mongo.Database, statsCollection string) *DownloadRepository {
	return &DownloadRepository{stats: db.Collection(statsCollection)}
}

// Increment はカウンタを原子的に 1 加算し、コミット後の値を返す。
// $inc + upsert はサーバー側で直列化されるため、同時ダウンロードでも更新は失われない。
// ドキュメントが無い初回は count=1 で作成される。
func (r *DownloadRepository) Increment(ctx context.Context) (int, error) {
	filter := bson.M{"_id": DownloadStatsID}
	update := bson.M{"$inc": bson.M{"count": 1}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc DownloadStatsDocument
	if err := r.stats.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return 0, err
	}
	return doc.Count, nil
}

// Count は現在値を読み出す。ドキュメント未作成なら 0 を返す。
func (r *DownloadRepository) Count(ctx context.Context) (int, error) {
	var doc DownloadStatsDocument
	err := r.stats.FindOne(ctx, bson.M{"_id": DownloadStatsID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return doc.Count, nil
}
