package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/application/ports"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/pkg/common"
)

// investorDataRange is the fixed range read for investor data.
const investorDataRange = "Sheet1!A1:Z1000"

// SheetsHandler handles spreadsheet read requests
type SheetsHandler struct {
	sheets        ports.SheetReader
	spreadsheetID string
	logger        *zap.Logger
}

// NewSheetsHandler creates a new sheets handler
func NewSheetsHandler(sheets ports.SheetReader, spreadsheetID string, logger *zap.Logger) *SheetsHandler {
	return &SheetsHandler{
		sheets:        sheets,
		spreadsheetID: spreadsheetID,
		logger:        logger,
	}
}

// InvestorData handles GET /api/sheets/investor-data. The first row is
// treated as headers, the rest as records; an empty sheet yields empty arrays.
func (h *SheetsHandler) InvestorData(w http.ResponseWriter, r *http.Request) {
	rows, err := h.sheets.ReadRange(r.Context(), h.spreadsheetID, investorDataRange)
	if err != nil {
		h.logger.Error("Failed to read investor sheet", zap.Error(err))
		common.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	headers := []string{}
	records := [][]string{}
	if len(rows) > 0 {
		headers = rows[0]
		records = rows[1:]
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"headers": headers,
		"records": records,
		"count":   len(records),
	})
}
