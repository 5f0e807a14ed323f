package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/application/ports"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/domain"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/pkg/common"
)

const defaultPropertyLimit = 50

// PropertyHandler handles property listing and creation requests
type PropertyHandler struct {
	properties ports.PropertyRepository
	logger     *zap.Logger
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(properties ports.PropertyRepository, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{properties: properties, logger: logger}
}

// List handles GET /api/firestore/properties
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := ports.PropertyFilter{
		City:    r.URL.Query().Get("city"),
		ZipCode: r.URL.Query().Get("zipCode"),
		Limit:   defaultPropertyLimit,
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	properties, err := h.properties.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list properties", zap.Error(err))
		common.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"properties": properties,
		"count":      len(properties),
	})
}

// Create handles POST /api/firestore/properties. The body is stored verbatim
// plus server-assigned timestamps.
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var fields domain.Property
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	property, err := h.properties.Create(r.Context(), fields)
	if err != nil {
		h.logger.Error("Failed to create property", zap.Error(err))
		common.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	common.RespondJSON(w, http.StatusOK, property)
}
