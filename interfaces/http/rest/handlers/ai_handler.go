package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/application/services"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/pkg/common"
	apperrors "github.com/InfinityXOneSystems/Real-Estate-Intelligence/pkg/errors"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/pkg/utils"
)

// AIHandler handles AI query requests
type AIHandler struct {
	ai     *services.AIService
	logger *zap.Logger
}

// NewAIHandler creates a new AI handler
func NewAIHandler(ai *services.AIService, logger *zap.Logger) *AIHandler {
	return &AIHandler{ai: ai, logger: logger}
}

// AIQueryRequest represents the request body for an AI query
type AIQueryRequest struct {
	Query     string `json:"query" validate:"required"`
	UseMemory *bool  `json:"useMemory,omitempty"`
	Model     string `json:"model,omitempty"`
}

// Query handles POST /api/ai/query
func (h *AIHandler) Query(w http.ResponseWriter, r *http.Request) {
	var req AIQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	useMemory := true
	if req.UseMemory != nil {
		useMemory = *req.UseMemory
	}

	result, err := h.ai.Query(r.Context(), services.QueryInput{
		Query:     req.Query,
		UseMemory: useMemory,
		Model:     req.Model,
	})
	if err != nil {
		h.logger.Error("AI query failed", zap.Error(err))
		common.RespondError(w, apperrors.HTTPStatus(err), apperrors.UserMessage(err))
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
