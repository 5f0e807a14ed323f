//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/infrastructure/config"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideFirestoreClient,
	ProvideStorageClient,
	ProvideGenAIClient,
	ProvideSheetsService,
	ProvideDriveService,
	ProvideMemoryRepository,
	ProvidePropertyRepository,
	ProvideObjectStore,
	ProvideTextGenerator,
	ProvideSheetReader,
	ProvideDriveLister,
	ProvideAIService,
	ProvideOverviewService,
	ProvideSystemHandler,
	ProvideAIHandler,
	ProvideMemoryHandler,
	ProvideStorageHandler,
	ProvideSheetsHandler,
	ProvideDriveHandler,
	ProvidePropertyHandler,
	ProvideRouter,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
