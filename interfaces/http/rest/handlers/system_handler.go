package handlers

import (
	"net/http"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/application/ports"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/application/services"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/pkg/common"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/pkg/utils"
)

// Collaborator probe states reported by /api/status.
const (
	componentActive   = "active"
	componentError    = "error"
	componentChecking = "checking"
)

// SystemHandler serves liveness, collaborator status and the dashboard
// overview.
type SystemHandler struct {
	memories    ports.MemoryRepository
	objects     ports.ObjectStore
	overview    *services.OverviewService
	environment string
	startedAt   time.Time
	logger      *zap.Logger
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(
	memories ports.MemoryRepository,
	objects ports.ObjectStore,
	overview *services.OverviewService,
	environment string,
	logger *zap.Logger,
) *SystemHandler {
	return &SystemHandler{
		memories:    memories,
		objects:     objects,
		overview:    overview,
		environment: environment,
		startedAt:   time.Now(),
		logger:      logger,
	}
}

// Health handles GET /health. Static liveness only; never touches a
// collaborator and never fails.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status":        "healthy",
		"timestamp":     utils.NowRFC3339(),
		"uptimeSeconds": int64(time.Since(h.startedAt).Seconds()),
		"memory": map[string]uint64{
			"allocBytes":      mem.Alloc,
			"totalAllocBytes": mem.TotalAlloc,
			"sysBytes":        mem.Sys,
			"numGC":           uint64(mem.NumGC),
		},
		"environment": h.environment,
	})
}

// Status handles GET /api/status. Probes Firestore and Storage with trivial
// calls; a failed probe marks that component as in error but the route itself
// still returns 200.
func (h *SystemHandler) Status(w http.ResponseWriter, r *http.Request) {
	components := map[string]string{
		"firestore": componentActive,
		"storage":   componentActive,
		"vertexAI":  componentChecking,
		"sheets":    componentChecking,
		"drive":     componentChecking,
	}

	if err := h.memories.Ping(r.Context()); err != nil {
		h.logger.Warn("Firestore probe failed", zap.Error(err))
		components["firestore"] = componentError
	}
	if err := h.objects.Ping(r.Context()); err != nil {
		h.logger.Warn("Storage probe failed", zap.Error(err))
		components["storage"] = componentError
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"operational": true,
		"components":  components,
	})
}

// Overview handles GET /api/real-estate/overview. All sub-calls are
// best-effort; the route always returns 200.
func (h *SystemHandler) Overview(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, h.overview.Overview(r.Context()))
}
