package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/application/ports"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/domain"
)

const (
	propertiesCollection = "properties"

	cityField    = "city"
	zipCodeField = "zipCode"
)

// PropertyRepository implements the PropertyRepository port on Firestore
type PropertyRepository struct {
	client *firestore.Client
	logger *zap.Logger
}

// NewPropertyRepository creates a new PropertyRepository
func NewPropertyRepository(client *firestore.Client, logger *zap.Logger) ports.PropertyRepository {
	return &PropertyRepository{
		client: client,
		logger: logger,
	}
}

// Create stores the caller-supplied fields verbatim, adding server-assigned
// creation and update timestamps. The stored record comes back with its id.
func (r *PropertyRepository) Create(ctx context.Context, fields domain.Property) (domain.Property, error) {
	stored := domain.Property{}
	for k, v := range fields {
		stored[k] = v
	}
	now := time.Now().UTC()
	stored["timestamp"] = now
	stored["updatedAt"] = now

	ref, _, err := r.client.Collection(propertiesCollection).Add(ctx, map[string]interface{}(stored))
	if err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}
	stored["id"] = ref.ID

	r.logger.Debug("Property stored", zap.String("id", ref.ID))
	return stored, nil
}

// List retrieves properties matching the filter. City and zip code filters are
// plain equality constraints and may apply simultaneously.
func (r *PropertyRepository) List(ctx context.Context, filter ports.PropertyFilter) ([]domain.Property, error) {
	query := r.client.Collection(propertiesCollection).Query
	if filter.City != "" {
		query = query.Where(cityField, "==", filter.City)
	}
	if filter.ZipCode != "" {
		query = query.Where(zipCodeField, "==", filter.ZipCode)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query = query.Limit(limit)

	iter := query.Documents(ctx)
	defer iter.Stop()

	properties := []domain.Property{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read properties: %w", err)
		}

		property := domain.Property(doc.Data())
		property["id"] = doc.Ref.ID
		properties = append(properties, property)
	}
	return properties, nil
}

// Count returns the total number of properties via a server-side aggregation.
func (r *PropertyRepository) Count(ctx context.Context) (int64, error) {
	return countDocuments(ctx, r.client.Collection(propertiesCollection).Query)
}
