package di

import (
	"context"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	"cloud.google.com/go/vertexai/genai"
	"go.uber.org/zap"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/application/ports"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/application/services"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/infrastructure/ai/vertex"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/infrastructure/config"
	googleapi "github.com/InfinityXOneSystems/Real-Estate-Intelligence/infrastructure/google"
	fsrepo "github.com/InfinityXOneSystems/Real-Estate-Intelligence/infrastructure/persistence/firestore"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/infrastructure/storage/gcs"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/interfaces/http/rest"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/interfaces/http/rest/handlers"
)

// clientOptions builds the shared client options. With no credentials file
// configured, Application Default Credentials apply.
func clientOptions(cfg *config.Config) []option.ClientOption {
	if cfg.CredentialsFile == "" {
		return nil
	}
	return []option.ClientOption{option.WithCredentialsFile(cfg.CredentialsFile)}
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideFirestoreClient creates the Firestore client
func ProvideFirestoreClient(ctx context.Context, cfg *config.Config) (*firestore.Client, error) {
	return firestore.NewClient(ctx, cfg.ProjectID, clientOptions(cfg)...)
}

// ProvideStorageClient creates the Cloud Storage client
func ProvideStorageClient(ctx context.Context, cfg *config.Config) (*storage.Client, error) {
	return storage.NewClient(ctx, clientOptions(cfg)...)
}

// ProvideGenAIClient creates the Vertex AI client
func ProvideGenAIClient(ctx context.Context, cfg *config.Config) (*genai.Client, error) {
	return genai.NewClient(ctx, cfg.ProjectID, cfg.Region, clientOptions(cfg)...)
}

// ProvideSheetsService creates the Sheets read client
func ProvideSheetsService(ctx context.Context, cfg *config.Config) (*sheets.Service, error) {
	opts := append(clientOptions(cfg), option.WithScopes(sheets.SpreadsheetsReadonlyScope))
	return sheets.NewService(ctx, opts...)
}

// ProvideDriveService creates the Drive read client
func ProvideDriveService(ctx context.Context, cfg *config.Config) (*drive.Service, error) {
	opts := append(clientOptions(cfg), option.WithScopes(drive.DriveReadonlyScope))
	return drive.NewService(ctx, opts...)
}

// ProvideMemoryRepository creates the memory repository
func ProvideMemoryRepository(client *firestore.Client, logger *zap.Logger) ports.MemoryRepository {
	return fsrepo.NewMemoryRepository(client, logger)
}

// ProvidePropertyRepository creates the property repository
func ProvidePropertyRepository(client *firestore.Client, logger *zap.Logger) ports.PropertyRepository {
	return fsrepo.NewPropertyRepository(client, logger)
}

// ProvideObjectStore creates the bucket-backed object store
func ProvideObjectStore(client *storage.Client, cfg *config.Config, logger *zap.Logger) ports.ObjectStore {
	return gcs.NewStore(client, cfg.StorageBucket, logger)
}

// ProvideTextGenerator creates the Gemini text generator
func ProvideTextGenerator(client *genai.Client) ports.TextGenerator {
	return vertex.NewGenerator(client)
}

// ProvideSheetReader creates the spreadsheet range reader
func ProvideSheetReader(service *sheets.Service) ports.SheetReader {
	return googleapi.NewSheetReader(service)
}

// ProvideDriveLister creates the drive file lister
func ProvideDriveLister(service *drive.Service) ports.DriveLister {
	return googleapi.NewDriveLister(service)
}

// ProvideAIService creates the retrieve-then-generate service
func ProvideAIService(memories ports.MemoryRepository, generator ports.TextGenerator, logger *zap.Logger) *services.AIService {
	return services.NewAIService(memories, generator, logger)
}

// ProvideOverviewService creates the overview service
func ProvideOverviewService(properties ports.PropertyRepository, memories ports.MemoryRepository, logger *zap.Logger) *services.OverviewService {
	return services.NewOverviewService(properties, memories, logger)
}

// ProvideSystemHandler creates the system handler
func ProvideSystemHandler(
	memories ports.MemoryRepository,
	objects ports.ObjectStore,
	overview *services.OverviewService,
	cfg *config.Config,
	logger *zap.Logger,
) *handlers.SystemHandler {
	return handlers.NewSystemHandler(memories, objects, overview, cfg.Environment, logger)
}

// ProvideAIHandler creates the AI handler
func ProvideAIHandler(ai *services.AIService, logger *zap.Logger) *handlers.AIHandler {
	return handlers.NewAIHandler(ai, logger)
}

// ProvideMemoryHandler creates the memory handler
func ProvideMemoryHandler(memories ports.MemoryRepository, logger *zap.Logger) *handlers.MemoryHandler {
	return handlers.NewMemoryHandler(memories, logger)
}

// ProvideStorageHandler creates the storage handler
func ProvideStorageHandler(objects ports.ObjectStore, logger *zap.Logger) *handlers.StorageHandler {
	return handlers.NewStorageHandler(objects, logger)
}

// ProvideSheetsHandler creates the sheets handler
func ProvideSheetsHandler(sheets ports.SheetReader, cfg *config.Config, logger *zap.Logger) *handlers.SheetsHandler {
	return handlers.NewSheetsHandler(sheets, cfg.SpreadsheetID, logger)
}

// ProvideDriveHandler creates the drive handler
func ProvideDriveHandler(drive ports.DriveLister, logger *zap.Logger) *handlers.DriveHandler {
	return handlers.NewDriveHandler(drive, logger)
}

// ProvidePropertyHandler creates the property handler
func ProvidePropertyHandler(properties ports.PropertyRepository, logger *zap.Logger) *handlers.PropertyHandler {
	return handlers.NewPropertyHandler(properties, logger)
}

// ProvideRouter creates the HTTP router
func ProvideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	system *handlers.SystemHandler,
	ai *handlers.AIHandler,
	memory *handlers.MemoryHandler,
	storage *handlers.StorageHandler,
	sheets *handlers.SheetsHandler,
	drive *handlers.DriveHandler,
	properties *handlers.PropertyHandler,
) *rest.Router {
	return rest.NewRouter(cfg, logger, system, ai, memory, storage, sheets, drive, properties)
}
