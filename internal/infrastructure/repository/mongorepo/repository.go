package mongorepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/janhq/chat-server/internal/domain/identifier"
	"github.com/janhq/chat-server/internal/domain/repository"
	"github.com/janhq/chat-server/internal/infrastructure/metrics"
	"github.com/janhq/chat-server/internal/infrastructure/observability"
)

// Document is a persisted shape that converts back to its domain entity.
type Document[E repository.Entity] interface {
	EtoD() E
}

// Repository implements repository.Repository[E] over one MongoDB collection,
// storing entities as documents of type D.
type Repository[E repository.Entity, D Document[E]] struct {
	collection *mongo.Collection
	keys       KeyPolicy
	toDocument func(E) D
}

// NewRepository binds a collection to an entity type.
func NewRepository[E repository.Entity, D Document[E]](collection *mongo.Collection, keys KeyPolicy, toDocument func(E) D) *Repository[E, D] {
	return &Repository[E, D]{
		collection: collection,
		keys:       keys,
		toDocument: toDocument,
	}
}

func (r *Repository[E, D]) Create(ctx context.Context, entity E) (created E, err error) {
	ctx, done := r.instrument(ctx, "insert")
	defer func() { done(err) }()

	if _, err = r.collection.InsertOne(ctx, r.toDocument(entity)); err != nil {
		var zero E
		return zero, storeError(ctx, r.collection.Name(), "insert", err)
	}
	return entity, nil
}

func (r *Repository[E, D]) Update(ctx context.Context, entity E) (err error) {
	ctx, done := r.instrument(ctx, "replace")
	defer func() { done(err) }()

	filter, ok := r.keys.Filter(entity.EntityID())
	if !ok {
		return repository.NewNotFoundError(ctx, entity.EntityID())
	}

	result, err := r.collection.ReplaceOne(ctx, filter, r.toDocument(entity))
	if err != nil {
		return storeError(ctx, r.collection.Name(), "replace", err)
	}
	if result.MatchedCount == 0 {
		return repository.NewNotFoundError(ctx, entity.EntityID())
	}
	return nil
}

func (r *Repository[E, D]) Delete(ctx context.Context, id identifier.ID) (err error) {
	ctx, done := r.instrument(ctx, "delete")
	defer func() { done(err) }()

	filter, ok := r.keys.Filter(id)
	if !ok {
		return repository.NewNotFoundError(ctx, id)
	}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return storeError(ctx, r.collection.Name(), "delete", err)
	}
	if result.DeletedCount == 0 {
		return repository.NewNotFoundError(ctx, id)
	}
	return nil
}

func (r *Repository[E, D]) Get(ctx context.Context, id identifier.ID) (E, bool, error) {
	filter, ok := r.keys.Filter(id)
	if !ok {
		var zero E
		return zero, false, nil
	}
	return r.FindOne(ctx, filter)
}

// listResult is the single document produced by the $facet stage in List.
type listResult[D any] struct {
	Items []D `bson:"items"`
	Total []struct {
		N int64 `bson:"n"`
	} `bson:"total"`
}

// List reads the page and the collection size in one aggregation so both
// come from the same snapshot.
func (r *Repository[E, D]) List(ctx context.Context, opts repository.ListOptions) (total int64, page []E, err error) {
	ctx, done := r.instrument(ctx, "list")
	defer func() { done(err) }()

	skip, limit := opts.Window()
	pipeline := mongo.Pipeline{
		{{Key: "$facet", Value: bson.D{
			{Key: "items", Value: bson.A{
				bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
				bson.D{{Key: "$skip", Value: skip}},
				bson.D{{Key: "$limit", Value: limit}},
			}},
			{Key: "total", Value: bson.A{
				bson.D{{Key: "$count", Value: "n"}},
			}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, nil, storeError(ctx, r.collection.Name(), "list", err)
	}

	var results []listResult[D]
	if err = cursor.All(ctx, &results); err != nil {
		return 0, nil, storeError(ctx, r.collection.Name(), "list", err)
	}

	page = []E{}
	if len(results) == 0 {
		return 0, page, nil
	}
	for _, doc := range results[0].Items {
		page = append(page, doc.EtoD())
	}
	if len(results[0].Total) > 0 {
		total = results[0].Total[0].N
	}
	return total, page, nil
}

// FindOne returns the first document matching filter in _id order.
func (r *Repository[E, D]) FindOne(ctx context.Context, filter bson.D) (found E, ok bool, err error) {
	ctx, done := r.instrument(ctx, "find_one")
	defer func() { done(err) }()

	var doc D
	err = r.collection.FindOne(ctx, filter, options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		var zero E
		return zero, false, nil
	}
	if err != nil {
		var zero E
		return zero, false, storeError(ctx, r.collection.Name(), "find_one", err)
	}
	return doc.EtoD(), true, nil
}

// Find returns every document matching filter.
func (r *Repository[E, D]) Find(ctx context.Context, filter bson.D, opts ...*options.FindOptions) (items []E, err error) {
	ctx, done := r.instrument(ctx, "find")
	defer func() { done(err) }()

	cursor, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, storeError(ctx, r.collection.Name(), "find", err)
	}

	var docs []D
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, storeError(ctx, r.collection.Name(), "find", err)
	}

	items = make([]E, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.EtoD())
	}
	return items, nil
}

func (r *Repository[E, D]) instrument(ctx context.Context, operation string) (context.Context, func(error)) {
	start := time.Now()
	collection := r.collection.Name()
	ctx, span := observability.StartDBSpan(ctx, collection, operation)

	return ctx, func(err error) {
		status := "ok"
		if err != nil {
			status = "error"
		}
		metrics.RecordDBQuery(collection, operation, status, time.Since(start).Seconds())
		observability.EndSpan(span, err)
	}
}
