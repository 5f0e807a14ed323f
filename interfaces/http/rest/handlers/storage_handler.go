package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/application/ports"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/pkg/common"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/pkg/utils"
)

const (
	defaultContentType = "application/json"
	maxListedObjects   = 100
)

// StorageHandler handles object upload and listing requests
type StorageHandler struct {
	objects ports.ObjectStore
	logger  *zap.Logger
}

// NewStorageHandler creates a new storage handler
func NewStorageHandler(objects ports.ObjectStore, logger *zap.Logger) *StorageHandler {
	return &StorageHandler{objects: objects, logger: logger}
}

// UploadRequest represents the request body for an upload
type UploadRequest struct {
	FileName    string            `json:"fileName" validate:"required"`
	Content     string            `json:"content" validate:"required"`
	ContentType string            `json:"contentType,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Upload handles POST /api/storage/upload
func (h *StorageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	stored, err := h.objects.Save(r.Context(), req.FileName, req.Content, contentType, req.Metadata)
	if err != nil {
		h.logger.Error("Upload failed",
			zap.String("fileName", req.FileName),
			zap.Error(err),
		)
		common.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	common.RespondJSON(w, http.StatusOK, stored)
}

// ListFiles handles GET /api/storage/files
func (h *StorageHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	objects, err := h.objects.List(r.Context(), maxListedObjects)
	if err != nil {
		h.logger.Error("Failed to list storage objects", zap.Error(err))
		common.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"files": objects,
		"count": len(objects),
	})
}
