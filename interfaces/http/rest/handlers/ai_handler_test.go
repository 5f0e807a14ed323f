package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/application/services"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/domain"
)

func newAIHandler(memories *mockMemoryRepo, generator *mockGenerator) *AIHandler {
	svc := services.NewAIService(memories, generator, zap.NewNop())
	return NewAIHandler(svc, zap.NewNop())
}

func TestAIQueryRequiresQuery(t *testing.T) {
	handler := newAIHandler(&mockMemoryRepo{}, &mockGenerator{response: "hi"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/query", strings.NewReader(`{}`))
	handler.Query(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.False(t, env.Success)
	require.Nil(t, env.Data)
}

func TestAIQueryDefaultsUseMemoryTrue(t *testing.T) {
	memories := &mockMemoryRepo{searchResult: []domain.Memory{{Content: "prior context"}}}
	handler := newAIHandler(memories, &mockGenerator{response: "generated"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/query", strings.NewReader(`{"query":"what changed?"}`))
	handler.Query(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)

	var result services.QueryResult
	decodeData(t, env, &result)
	require.True(t, result.ContextUsed)
	require.Equal(t, 1, result.MemoriesReferenced)
	require.Equal(t, "generated", result.Response)
	require.Equal(t, services.DefaultModel, result.Model)
}

func TestAIQueryUseMemoryFalse(t *testing.T) {
	memories := &mockMemoryRepo{searchResult: []domain.Memory{{Content: "prior context"}}}
	handler := newAIHandler(memories, &mockGenerator{response: "generated"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/query", strings.NewReader(`{"query":"q","useMemory":false}`))
	handler.Query(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)

	var result services.QueryResult
	decodeData(t, env, &result)
	require.False(t, result.ContextUsed)
	require.Zero(t, result.MemoriesReferenced)
}

func TestAIQueryModelFailure(t *testing.T) {
	handler := newAIHandler(&mockMemoryRepo{}, &mockGenerator{err: errFailed})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/query", strings.NewReader(`{"query":"q"}`))
	handler.Query(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	require.False(t, env.Success)
	require.Contains(t, env.Error, "collaborator failed")
}
