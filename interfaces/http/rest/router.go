package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/infrastructure/config"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/interfaces/http/rest/handlers"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/interfaces/http/rest/middleware"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/pkg/common"
)

// allowedOrigins is the fixed CORS allow-list: the production domain, its www
// variant and local development hosts.
var allowedOrigins = []string{
	"https://infinityxos.com",
	"https://www.infinityxos.com",
	"http://localhost:3000",
	"http://localhost:5173",
}

// Router creates and configures the HTTP router
type Router struct {
	cfg    *config.Config
	logger *zap.Logger

	system     *handlers.SystemHandler
	ai         *handlers.AIHandler
	memory     *handlers.MemoryHandler
	storage    *handlers.StorageHandler
	sheets     *handlers.SheetsHandler
	drive      *handlers.DriveHandler
	properties *handlers.PropertyHandler
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	system *handlers.SystemHandler,
	ai *handlers.AIHandler,
	memory *handlers.MemoryHandler,
	storage *handlers.StorageHandler,
	sheets *handlers.SheetsHandler,
	drive *handlers.DriveHandler,
	properties *handlers.PropertyHandler,
) *Router {
	return &Router{
		cfg:        cfg,
		logger:     logger,
		system:     system,
		ai:         ai,
		memory:     memory,
		storage:    storage,
		sheets:     sheets,
		drive:      drive,
		properties: properties,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Recoverer(rt.logger, rt.cfg.IsProduction()))
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.BodyLimit)

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	router.Get("/health", rt.system.Health)

	// API routes
	router.Route("/api", func(r chi.Router) {
		r.Get("/status", rt.system.Status)

		r.Post("/ai/query", rt.ai.Query)

		r.Route("/memory", func(r chi.Router) {
			r.Post("/store", rt.memory.Store)
			r.Get("/search", rt.memory.Search)
		})

		r.Route("/storage", func(r chi.Router) {
			r.Post("/upload", rt.storage.Upload)
			r.Get("/files", rt.storage.ListFiles)
		})

		r.Get("/sheets/investor-data", rt.sheets.InvestorData)
		r.Get("/drive/files", rt.drive.ListFiles)

		r.Route("/firestore/properties", func(r chi.Router) {
			r.Get("/", rt.properties.List)
			r.Post("/", rt.properties.Create)
		})

		r.Get("/real-estate/overview", rt.system.Overview)
	})

	// Unmatched routes get the 404 envelope with the path that missed
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		common.RespondNotFound(w, r.URL.Path)
	})

	return router
}
