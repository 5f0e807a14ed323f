package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/application/ports"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/domain"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/pkg/common"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/pkg/utils"
)

const defaultSearchLimit = 10

// MemoryHandler handles memory store and search requests
type MemoryHandler struct {
	memories ports.MemoryRepository
	logger   *zap.Logger
}

// NewMemoryHandler creates a new memory handler
func NewMemoryHandler(memories ports.MemoryRepository, logger *zap.Logger) *MemoryHandler {
	return &MemoryHandler{memories: memories, logger: logger}
}

// StoreMemoryRequest represents the request body for storing a memory
type StoreMemoryRequest struct {
	Type     string                 `json:"type" validate:"required"`
	Content  string                 `json:"content" validate:"required"`
	Tags     []string               `json:"tags,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Store handles POST /api/memory/store
func (h *MemoryHandler) Store(w http.ResponseWriter, r *http.Request) {
	var req StoreMemoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	memory, err := h.memories.Add(r.Context(), domain.Memory{
		Type:           req.Type,
		Content:        req.Content,
		Tags:           req.Tags,
		Metadata:       req.Metadata,
		RelevanceScore: 1.0,
		AccessCount:    0,
	})
	if err != nil {
		h.logger.Error("Failed to store memory", zap.Error(err))
		common.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	common.RespondJSON(w, http.StatusOK, memory)
}

// Search handles GET /api/memory/search
func (h *MemoryHandler) Search(w http.ResponseWriter, r *http.Request) {
	criteria := ports.MemorySearchCriteria{
		Type:  r.URL.Query().Get("type"),
		Tag:   r.URL.Query().Get("tags"),
		Limit: defaultSearchLimit,
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			criteria.Limit = limit
		}
	}

	memories, err := h.memories.Search(r.Context(), criteria)
	if err != nil {
		h.logger.Error("Memory search failed", zap.Error(err))
		common.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"memories": memories,
		"count":    len(memories),
	})
}
