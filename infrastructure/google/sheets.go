// Package google adapts the Workspace read APIs (Sheets, Drive) to the
// application ports.
package google

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/application/ports"
)

// SheetReader implements the SheetReader port on the Sheets API
type SheetReader struct {
	service *sheets.Service
}

// NewSheetReader creates a new SheetReader
func NewSheetReader(service *sheets.Service) ports.SheetReader {
	return &SheetReader{service: service}
}

// ReadRange fetches a rectangular cell range and returns rows of strings.
// Non-string cells are rendered with their default formatting; absent cells
// come back as empty strings only up to each row's last populated column, as
// the API trims trailing blanks.
func (r *SheetReader) ReadRange(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	resp, err := r.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %q: %w", readRange, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			if cell == nil {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, fmt.Sprint(cell))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
