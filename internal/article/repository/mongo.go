package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/jvdeveloper/blog-api/internal/article"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements a MongoDB-backed repository for articles.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	// index on date supports the date-descending listings
	idxModel := mongo.IndexModel{Keys: bson.D{{Key: "date", Value: -1}}}
	col.Indexes().CreateOne(context.Background(), idxModel)
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Create(ctx context.Context, a *article.Article) (*article.Article, error) {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	if a.Date.IsZero() {
		a.Date = time.Now().UTC()
	}
	if _, err := m.col.InsertOne(ctx, a); err != nil {
		return nil, fmt.Errorf("insert article: %w", err)
	}
	return a, nil
}

func (m *MongoRepo) List(ctx context.Context, limit int64) ([]*article.Article, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return m.find(ctx, bson.M{}, opts)
}

func (m *MongoRepo) GetByID(ctx context.Context, id string) (*article.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, article.ErrNotFound
	}
	var a article.Article
	if err := m.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, article.ErrNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}
	return &a, nil
}

func (m *MongoRepo) UpdateByID(ctx context.Context, id string, p article.Patch) (*article.Article, error) {
	set := bson.M{"title": p.Title, "content": p.Content}
	if p.Date != nil {
		set["date"] = *p.Date
	}
	if p.Image != "" {
		set["image"] = p.Image
	}
	return m.findOneAndSet(ctx, id, set)
}

func (m *MongoRepo) DeleteByID(ctx context.Context, id string) (*article.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, article.ErrNotFound
	}
	var a article.Article
	if err := m.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, article.ErrNotFound
		}
		return nil, fmt.Errorf("delete article: %w", err)
	}
	return &a, nil
}

func (m *MongoRepo) SetImage(ctx context.Context, id string, imageURL string) (*article.Article, error) {
	return m.findOneAndSet(ctx, id, bson.M{"image": imageURL})
}

func (m *MongoRepo) Search(ctx context.Context, term string) ([]*article.Article, error) {
	// literal substring match, case-insensitive
	re := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"title": re},
		bson.M{"content": re},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return m.find(ctx, filter, opts)
}

func (m *MongoRepo) findOneAndSet(ctx context.Context, id string, set bson.M) (*article.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, article.ErrNotFound
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var a article.Article
	if err := m.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, article.ErrNotFound
		}
		return nil, fmt.Errorf("update article: %w", err)
	}
	return &a, nil
}

func (m *MongoRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*article.Article, error) {
	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find articles: %w", err)
	}
	defer cur.Close(ctx)
	out := []*article.Article{}
	for cur.Next(ctx) {
		var a article.Article
		if err := cur.Decode(&a); err != nil {
			return nil, fmt.Errorf("decode article: %w", err)
		}
		out = append(out, &a)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return out, nil
}
