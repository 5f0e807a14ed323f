package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/application/ports"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/domain"
)

var errFailed = errors.New("collaborator failed")

// envelope mirrors the wire shape of pkg/common.Envelope for decoding.
type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Error     string          `json:"error"`
	Path      string          `json:"path"`
	Timestamp string          `json:"timestamp"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotEmpty(t, env.Timestamp)
	return env
}

func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, v))
}

type mockMemoryRepo struct {
	stored       []domain.Memory
	addErr       error
	searchResult []domain.Memory
	searchErr    error
	lastCriteria ports.MemorySearchCriteria
	pingErr      error
}

func (m *mockMemoryRepo) Add(_ context.Context, memory domain.Memory) (domain.Memory, error) {
	if m.addErr != nil {
		return domain.Memory{}, m.addErr
	}
	memory.ID = uuid.NewString()
	memory.Timestamp = time.Now().UTC()
	m.stored = append(m.stored, memory)
	return memory, nil
}

func (m *mockMemoryRepo) Search(_ context.Context, criteria ports.MemorySearchCriteria) ([]domain.Memory, error) {
	m.lastCriteria = criteria
	return m.searchResult, m.searchErr
}

func (m *mockMemoryRepo) Recent(_ context.Context, limit int) ([]domain.Memory, error) {
	if len(m.searchResult) > limit {
		return m.searchResult[:limit], nil
	}
	return m.searchResult, nil
}

func (m *mockMemoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.stored)), nil
}

func (m *mockMemoryRepo) Ping(_ context.Context) error {
	return m.pingErr
}

type mockPropertyRepo struct {
	created    []domain.Property
	createErr  error
	listResult []domain.Property
	listErr    error
	lastFilter ports.PropertyFilter
}

func (m *mockPropertyRepo) Create(_ context.Context, fields domain.Property) (domain.Property, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	stored := domain.Property{}
	for k, v := range fields {
		stored[k] = v
	}
	now := time.Now().UTC()
	stored["id"] = uuid.NewString()
	stored["timestamp"] = now
	stored["updatedAt"] = now
	m.created = append(m.created, stored)
	return stored, nil
}

func (m *mockPropertyRepo) List(_ context.Context, filter ports.PropertyFilter) ([]domain.Property, error) {
	m.lastFilter = filter
	return m.listResult, m.listErr
}

func (m *mockPropertyRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.created)), nil
}

type mockObjectStore struct {
	bucket     string
	saved      map[string]string
	saveErr    error
	listResult []domain.StorageObject
	listErr    error
	pingErr    error
}

func (m *mockObjectStore) Save(_ context.Context, name, content, contentType string, _ map[string]string) (domain.StoredObject, error) {
	if m.saveErr != nil {
		return domain.StoredObject{}, m.saveErr
	}
	if m.saved == nil {
		m.saved = map[string]string{}
	}
	m.saved[name] = content
	return domain.StoredObject{
		FileName:    name,
		URI:         fmt.Sprintf("gs://%s/%s", m.bucket, name),
		Size:        int64(len(content)),
		ContentType: contentType,
		UploadedAt:  time.Now().UTC(),
	}, nil
}

func (m *mockObjectStore) Exists(_ context.Context, name string) (bool, error) {
	_, ok := m.saved[name]
	return ok, nil
}

func (m *mockObjectStore) List(_ context.Context, _ int) ([]domain.StorageObject, error) {
	return m.listResult, m.listErr
}

func (m *mockObjectStore) Ping(_ context.Context) error {
	return m.pingErr
}

type mockSheetReader struct {
	rows [][]string
	err  error
}

func (m *mockSheetReader) ReadRange(_ context.Context, _, _ string) ([][]string, error) {
	return m.rows, m.err
}

type mockDriveLister struct {
	files []domain.DriveFile
	err   error
}

func (m *mockDriveLister) ListFiles(_ context.Context, _ int64) ([]domain.DriveFile, error) {
	return m.files, m.err
}

type mockGenerator struct {
	response string
	err      error
}

func (m *mockGenerator) Generate(_ context.Context, _, _ string) (string, error) {
	return m.response, m.err
}
