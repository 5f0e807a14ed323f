package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/application/ports"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/domain"
)

const (
	memoriesCollection = "memories"

	timestampField = "timestamp"
	typeField      = "type"
	tagsField      = "tags"
)

// MemoryRepository implements the MemoryRepository port on Firestore
type MemoryRepository struct {
	client *firestore.Client
	logger *zap.Logger
}

// NewMemoryRepository creates a new MemoryRepository
func NewMemoryRepository(client *firestore.Client, logger *zap.Logger) ports.MemoryRepository {
	return &MemoryRepository{
		client: client,
		logger: logger,
	}
}

// Add inserts a memory with a Firestore-assigned document id and a server
// timestamp. Tags and metadata are stored non-nil so reads round-trip cleanly.
func (r *MemoryRepository) Add(ctx context.Context, memory domain.Memory) (domain.Memory, error) {
	if memory.Tags == nil {
		memory.Tags = []string{}
	}
	if memory.Metadata == nil {
		memory.Metadata = map[string]interface{}{}
	}
	memory.Timestamp = time.Now().UTC()

	ref, _, err := r.client.Collection(memoriesCollection).Add(ctx, memory)
	if err != nil {
		return domain.Memory{}, fmt.Errorf("failed to add memory: %w", err)
	}
	memory.ID = ref.ID

	r.logger.Debug("Memory stored",
		zap.String("id", memory.ID),
		zap.String("type", memory.Type),
	)
	return memory, nil
}

// Search finds memories matching the criteria, newest first.
func (r *MemoryRepository) Search(ctx context.Context, criteria ports.MemorySearchCriteria) ([]domain.Memory, error) {
	query := r.client.Collection(memoriesCollection).Query
	if criteria.Type != "" {
		query = query.Where(typeField, "==", criteria.Type)
	}
	if criteria.Tag != "" {
		query = query.Where(tagsField, "array-contains", criteria.Tag)
	}
	limit := criteria.Limit
	if limit <= 0 {
		limit = 10
	}
	query = query.OrderBy(timestampField, firestore.Desc).Limit(limit)

	return r.collect(ctx, query)
}

// Recent retrieves the most recently written memories, newest first.
func (r *MemoryRepository) Recent(ctx context.Context, limit int) ([]domain.Memory, error) {
	query := r.client.Collection(memoriesCollection).
		OrderBy(timestampField, firestore.Desc).
		Limit(limit)
	return r.collect(ctx, query)
}

// Count returns the total number of memories via a server-side aggregation.
func (r *MemoryRepository) Count(ctx context.Context) (int64, error) {
	return countDocuments(ctx, r.client.Collection(memoriesCollection).Query)
}

// Ping performs a limit-1 read against the collection.
func (r *MemoryRepository) Ping(ctx context.Context) error {
	iter := r.client.Collection(memoriesCollection).Limit(1).Documents(ctx)
	defer iter.Stop()

	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return fmt.Errorf("memories collection unreachable: %w", err)
	}
	return nil
}

func (r *MemoryRepository) collect(ctx context.Context, query firestore.Query) ([]domain.Memory, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	memories := []domain.Memory{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read memories: %w", err)
		}

		var memory domain.Memory
		if err := doc.DataTo(&memory); err != nil {
			r.logger.Warn("Skipping malformed memory document",
				zap.String("id", doc.Ref.ID),
				zap.Error(err),
			)
			continue
		}
		memory.ID = doc.Ref.ID
		memories = append(memories, memory)
	}
	return memories, nil
}

// countDocuments runs a COUNT aggregation over the query.
func countDocuments(ctx context.Context, query firestore.Query) (int64, error) {
	results, err := query.NewAggregationQuery().WithCount("count").Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("count aggregation failed: %w", err)
	}
	value, ok := results["count"].(*firestorepb.Value)
	if !ok {
		return 0, fmt.Errorf("count aggregation returned unexpected type %T", results["count"])
	}
	return value.GetIntegerValue(), nil
}
