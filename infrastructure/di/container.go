package di

import (
	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	"cloud.google.com/go/vertexai/genai"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/application/ports"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/application/services"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/infrastructure/config"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/interfaces/http/rest"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	Firestore *firestore.Client
	Storage   *storage.Client
	GenAI     *genai.Client

	MemoryRepo   ports.MemoryRepository
	PropertyRepo ports.PropertyRepository
	Objects      ports.ObjectStore
	Generator    ports.TextGenerator
	Sheets       ports.SheetReader
	Drive        ports.DriveLister

	AIService       *services.AIService
	OverviewService *services.OverviewService

	Router *rest.Router
}

// Close releases the collaborator clients that hold connections.
func (c *Container) Close() error {
	return multierr.Combine(
		c.Firestore.Close(),
		c.Storage.Close(),
		c.GenAI.Close(),
	)
}
