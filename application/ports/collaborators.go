package ports

import (
	"context"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/domain"
)

// MemorySearchCriteria narrows a memory search. Zero values mean "no filter";
// results are always ordered by descending timestamp.
type MemorySearchCriteria struct {
	Type  string
	Tag   string
	Limit int
}

// PropertyFilter narrows a property listing by equality on well-known fields.
type PropertyFilter struct {
	City    string
	ZipCode string
	Limit   int
}

// MemoryRepository defines the interface for the agent memory collection.
// This is a port in hexagonal architecture - handlers and services never see
// the Firestore implementation behind it.
type MemoryRepository interface {
	// Add inserts a memory and returns it with its assigned id.
	Add(ctx context.Context, memory domain.Memory) (domain.Memory, error)

	// Search finds memories matching the given criteria.
	Search(ctx context.Context, criteria MemorySearchCriteria) ([]domain.Memory, error)

	// Recent retrieves the most recently written memories, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Memory, error)

	// Count returns the total number of memories.
	Count(ctx context.Context) (int64, error)

	// Ping performs a trivial read to verify the collection is reachable.
	Ping(ctx context.Context) error
}

// PropertyRepository defines the interface for property listings.
type PropertyRepository interface {
	// Create stores the caller-supplied fields verbatim plus server timestamps
	// and returns the stored record with its assigned id.
	Create(ctx context.Context, fields domain.Property) (domain.Property, error)

	// List retrieves properties matching the filter.
	List(ctx context.Context, filter PropertyFilter) ([]domain.Property, error)

	// Count returns the total number of properties.
	Count(ctx context.Context) (int64, error)
}

// ObjectStore defines the interface for the content bucket.
type ObjectStore interface {
	// Save writes content under the given name and returns its locator.
	Save(ctx context.Context, name, content, contentType string, metadata map[string]string) (domain.StoredObject, error)

	// Exists reports whether an object with the given name is present.
	Exists(ctx context.Context, name string) (bool, error)

	// List returns up to limit objects from the bucket.
	List(ctx context.Context, limit int) ([]domain.StorageObject, error)

	// Ping verifies the bucket is reachable.
	Ping(ctx context.Context) error
}

// TextGenerator defines the interface for the generative model endpoint.
// Generation is synchronous and may take several seconds.
type TextGenerator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// SheetReader defines the interface for reading a rectangular cell range.
// Cells come back as strings, empty when the source cell is empty.
type SheetReader interface {
	ReadRange(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
}

// DriveLister defines the interface for listing Drive files.
type DriveLister interface {
	ListFiles(ctx context.Context, pageSize int64) ([]domain.DriveFile, error)
}
