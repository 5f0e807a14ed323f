package google

import (
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/application/ports"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/domain"
)

// DriveLister implements the DriveLister port on the Drive API
type DriveLister struct {
	service *drive.Service
}

// NewDriveLister creates a new DriveLister
func NewDriveLister(service *drive.Service) ports.DriveLister {
	return &DriveLister{service: service}
}

// ListFiles returns up to pageSize files visible to the service account.
func (l *DriveLister) ListFiles(ctx context.Context, pageSize int64) ([]domain.DriveFile, error) {
	resp, err := l.service.Files.List().
		PageSize(pageSize).
		Fields("files(id, name, mimeType, createdTime, modifiedTime, size)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list drive files: %w", err)
	}

	files := make([]domain.DriveFile, 0, len(resp.Files))
	for _, f := range resp.Files {
		files = append(files, domain.DriveFile{
			ID:           f.Id,
			Name:         f.Name,
			MimeType:     f.MimeType,
			CreatedTime:  f.CreatedTime,
			ModifiedTime: f.ModifiedTime,
			Size:         f.Size,
		})
	}
	return files, nil
}
