package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seedOptions struct {
	reviewCount     int
	downloadCount   int
	dropCollections bool
	randomSeed      int64
}

type collections struct {
	reviews string
	stats   string
}

type reviewDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	UserID    string             `bson:"userId"`
	UserName  string             `bson:"userName"`
	UserPhoto string             `bson:"userPhoto,omitempty"`
	UserEmail string             `bson:"userEmail"`
	Rating    int                `bson:"rating"`
	Text      string             `bson:"text"`
	Timestamp time.Time          `bson:"timestamp"`
	CreatedAt string             `bson:"createdAt"`
}

var seedNames = []string{
	"Budi Santoso", "Siti Rahayu", "Agus Wijaya", "Dewi Lestari", "Rizky Pratama",
	"Putri Maharani", "Andi Saputra", "Fitri Handayani", "Hendra Gunawan", "Intan Permata",
}

var seedTexts = []string{
	"Aplikasinya sangat membantu untuk melaporkan masalah di lingkungan saya.",
	"Respon cepat dan tampilannya mudah dipahami. Mantap!",
	"Fitur lapornya bagus, tapi notifikasi kadang terlambat.",
	"Sangat berguna, laporan saya ditindaklanjuti dalam dua hari.",
	"Cukup baik, semoga terus dikembangkan.",
	"Akhirnya ada aplikasi untuk menyampaikan keluhan warga. Terima kasih!",
	"Proses pelaporan mudah, tinggal foto dan kirim.",
	"Masih ada bug kecil di halaman riwayat, tapi secara keseluruhan oke.",
}

func main() {
	opts := parseFlags()

	cfg := collections{
		reviews: envOrDefault("REVIEW_COLLECTION", "reviews"),
		stats:   envOrDefault("STATS_COLLECTION", "stats"),
	}

	mongoURI := envOrDefault("MONGO_URI", "mongodb://localhost:27017")
	dbName := envOrDefault("MONGO_DB", "lapor-in")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("MongoDB 接続に失敗しました: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	db := client.Database(dbName)

	if opts.dropCollections {
		if err := db.Collection(cfg.reviews).Drop(ctx); err != nil {
			log.Fatalf("コレクション削除に失敗しました: %v", err)
		}
		if err := db.Collection(cfg.stats).Drop(ctx); err != nil {
			log.Fatalf("コレクション削除に失敗しました: %v", err)
		}
		log.Printf("既存コレクションを削除しました")
	}

	rng := rand.New(rand.NewSource(opts.randomSeed))

	reviewDocs := generateReviews(rng, opts.reviewCount)
	if len(reviewDocs) > 0 {
		docs := make([]interface{}, 0, len(reviewDocs))
		for _, doc := range reviewDocs {
			docs = append(docs, doc)
		}
		if _, err := db.Collection(cfg.reviews).InsertMany(ctx, docs); err != nil {
			log.Fatalf("レビューデータの挿入に失敗しました: %v", err)
		}
	}

	if err := setDownloadCount(ctx, db.Collection(cfg.stats), opts.downloadCount); err != nil {
		log.Fatalf("ダウンロードカウンタの設定に失敗しました: %v", err)
	}

	log.Printf("Seed 完了: reviews=%d downloads=%d", len(reviewDocs), opts.downloadCount)
	log.Printf("Mongo: %s / %s", mongoURI, dbName)
}

func parseFlags() seedOptions {
	var opts seedOptions
	flag.IntVar(&opts.reviewCount, "reviews", 20, "生成するレビュー数")
	flag.IntVar(&opts.downloadCount, "downloads", 120, "ダウンロードカウンタの初期値")
	flag.BoolVar(&opts.dropCollections, "drop", true, "既存コレクションを削除してから投入する")
	defaultSeed := time.Now().UnixNano()
	flag.Int64Var(&opts.randomSeed, "seed", defaultSeed, "乱数シード（再現用）")
	flag.Parse()
	return opts
}

func generateReviews(rng *rand.Rand, count int) []reviewDocument {
	docs := make([]reviewDocument, 0, count)
	base := time.Now().UTC()
	for i := 0; i < count; i++ {
		name := seedNames[i%len(seedNames)]
		// 同一メールの重複を避けるため連番を付与する
		email := fmt.Sprintf("%s%d@example.com", emailLocalPart(name), i)
		created := base.Add(-time.Duration(rng.Intn(90*24)) * time.Hour)
		docs = append(docs, reviewDocument{
			ID:        primitive.NewObjectID(),
			UserID:    fmt.Sprintf("seed-user-%03d", i),
			UserName:  name,
			UserEmail: email,
			Rating:    1 + rng.Intn(5),
			Text:      seedTexts[rng.Intn(len(seedTexts))],
			Timestamp: created,
			CreatedAt: created.Format(time.RFC3339),
		})
	}
	return docs
}

func emailLocalPart(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", ".")
}

func setDownloadCount(ctx context.Context, collection *mongo.Collection, count int) error {
	_, err := collection.UpdateOne(ctx,
		bson.M{"_id": "downloads"},
		bson.M{"$set": bson.M{"count": count}},
		options.Update().SetUpsert(true),
	)
	return err
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
