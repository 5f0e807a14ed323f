package domain

import "time"

// StoredObject describes an object persisted to the bucket, including its
// gs:// locator.
type StoredObject struct {
	FileName    string    `json:"fileName"`
	URI         string    `json:"uri"`
	Size        int64     `json:"size"`
	ContentType string    `json:"contentType"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// StorageObject is a single entry in a bucket listing.
type StorageObject struct {
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	ContentType string    `json:"contentType"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
}

// DriveFile is a single entry in a Drive file listing.
type DriveFile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MimeType     string `json:"mimeType"`
	CreatedTime  string `json:"createdTime"`
	ModifiedTime string `json:"modifiedTime"`
	Size         int64  `json:"size"`
}
