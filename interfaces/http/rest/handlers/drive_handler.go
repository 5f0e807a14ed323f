package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/application/ports"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/pkg/common"
)

const maxListedDriveFiles = 100

// DriveHandler handles Drive listing requests
type DriveHandler struct {
	drive  ports.DriveLister
	logger *zap.Logger
}

// NewDriveHandler creates a new drive handler
func NewDriveHandler(drive ports.DriveLister, logger *zap.Logger) *DriveHandler {
	return &DriveHandler{drive: drive, logger: logger}
}

// ListFiles handles GET /api/drive/files
func (h *DriveHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	files, err := h.drive.ListFiles(r.Context(), maxListedDriveFiles)
	if err != nil {
		h.logger.Error("Failed to list drive files", zap.Error(err))
		common.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"files": files,
		"count": len(files),
	})
}
