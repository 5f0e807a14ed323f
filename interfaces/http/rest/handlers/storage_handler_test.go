package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/domain"
)

func TestUploadRequiresFileNameAndContent(t *testing.T) {
	handler := NewStorageHandler(&mockObjectStore{bucket: "test-bucket"}, zap.NewNop())

	for _, body := range []string{
		`{"content":"data"}`,
		`{"fileName":"report.json"}`,
	} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/storage/upload", strings.NewReader(body))
		handler.Upload(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		env := decodeEnvelope(t, rec)
		require.False(t, env.Success)
	}
}

func TestUploadReturnsLocator(t *testing.T) {
	store := &mockObjectStore{bucket: "test-bucket"}
	handler := NewStorageHandler(store, zap.NewNop())

	body := `{"fileName":"report.json","content":"{\"a\":1}","metadata":{"source":"test"}}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/storage/upload", strings.NewReader(body))
	handler.Upload(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	require.True(t, env.Success)

	var stored domain.StoredObject
	decodeData(t, env, &stored)
	require.Equal(t, "gs://test-bucket/report.json", stored.URI)
	require.Equal(t, "application/json", stored.ContentType)
	require.NotZero(t, stored.Size)
}

func TestListFiles(t *testing.T) {
	store := &mockObjectStore{
		bucket: "test-bucket",
		listResult: []domain.StorageObject{
			{Name: "a.json", Size: 10, ContentType: "application/json"},
			{Name: "b.csv", Size: 20, ContentType: "text/csv"},
		},
	}
	handler := NewStorageHandler(store, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/storage/files", nil)
	handler.ListFiles(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)

	var data struct {
		Files []domain.StorageObject `json:"files"`
		Count int                    `json:"count"`
	}
	decodeData(t, env, &data)
	require.Equal(t, 2, data.Count)
	require.Equal(t, "a.json", data.Files[0].Name)
}

func TestListFilesCollaboratorError(t *testing.T) {
	handler := NewStorageHandler(&mockObjectStore{listErr: errFailed}, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/storage/files", nil)
	handler.ListFiles(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
