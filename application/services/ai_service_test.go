package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/application/ports"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/domain"
	apperrors "github.com/InfinityXOneSystems/Real-Estate-Intelligence/pkg/errors"
)

type mockMemories struct {
	recent      []domain.Memory
	recentErr   error
	recentCalls int

	added  []domain.Memory
	addErr error
}

func (m *mockMemories) Add(_ context.Context, memory domain.Memory) (domain.Memory, error) {
	if m.addErr != nil {
		return domain.Memory{}, m.addErr
	}
	memory.ID = "mem-1"
	m.added = append(m.added, memory)
	return memory, nil
}

func (m *mockMemories) Search(_ context.Context, _ ports.MemorySearchCriteria) ([]domain.Memory, error) {
	return nil, errors.New("not used")
}

func (m *mockMemories) Recent(_ context.Context, limit int) ([]domain.Memory, error) {
	m.recentCalls++
	if m.recentErr != nil {
		return nil, m.recentErr
	}
	if len(m.recent) > limit {
		return m.recent[:limit], nil
	}
	return m.recent, nil
}

func (m *mockMemories) Count(_ context.Context) (int64, error) {
	return int64(len(m.recent)), nil
}

func (m *mockMemories) Ping(_ context.Context) error {
	return nil
}

type capturingGenerator struct {
	response string
	err      error
	model    string
	prompt   string
}

func (g *capturingGenerator) Generate(_ context.Context, model, prompt string) (string, error) {
	g.model = model
	g.prompt = prompt
	return g.response, g.err
}

func TestQueryRequiresQuery(t *testing.T) {
	svc := NewAIService(&mockMemories{}, &capturingGenerator{}, zap.NewNop())

	_, err := svc.Query(context.Background(), QueryInput{Query: "   "})
	require.Error(t, err)
	require.Equal(t, http.StatusBadRequest, apperrors.HTTPStatus(err))
}

func TestQueryWithoutMemorySkipsFetch(t *testing.T) {
	memories := &mockMemories{recent: []domain.Memory{{Content: "prior"}}}
	generator := &capturingGenerator{response: "answer"}
	svc := NewAIService(memories, generator, zap.NewNop())

	result, err := svc.Query(context.Background(), QueryInput{Query: "what is the market doing?", UseMemory: false})
	require.NoError(t, err)

	require.Zero(t, memories.recentCalls)
	require.Equal(t, "what is the market doing?", generator.prompt)
	require.False(t, result.ContextUsed)
	require.Zero(t, result.MemoriesReferenced)
}

func TestQueryWithMemoryPrependsContext(t *testing.T) {
	memories := &mockMemories{recent: []domain.Memory{
		{Content: "first note"},
		{Content: "second note"},
	}}
	generator := &capturingGenerator{response: "answer"}
	svc := NewAIService(memories, generator, zap.NewNop())

	result, err := svc.Query(context.Background(), QueryInput{Query: "summarize", UseMemory: true})
	require.NoError(t, err)

	require.True(t, result.ContextUsed)
	require.Equal(t, 2, result.MemoriesReferenced)
	require.Contains(t, generator.prompt, "first note\n\nsecond note")
	require.True(t, strings.HasSuffix(generator.prompt, "Query: summarize"))
}

func TestQueryContextWindowIsFive(t *testing.T) {
	recent := make([]domain.Memory, 8)
	for i := range recent {
		recent[i] = domain.Memory{Content: "note"}
	}
	memories := &mockMemories{recent: recent}
	generator := &capturingGenerator{response: "answer"}
	svc := NewAIService(memories, generator, zap.NewNop())

	result, err := svc.Query(context.Background(), QueryInput{Query: "q", UseMemory: true})
	require.NoError(t, err)
	require.Equal(t, 5, result.MemoriesReferenced)
}

func TestQueryMemoryFetchFailureDegrades(t *testing.T) {
	memories := &mockMemories{recentErr: errors.New("firestore unavailable")}
	generator := &capturingGenerator{response: "answer"}
	svc := NewAIService(memories, generator, zap.NewNop())

	result, err := svc.Query(context.Background(), QueryInput{Query: "q", UseMemory: true})
	require.NoError(t, err)

	require.Equal(t, "q", generator.prompt)
	require.False(t, result.ContextUsed)
	require.Zero(t, result.MemoriesReferenced)
}

func TestQueryPersistsInteraction(t *testing.T) {
	memories := &mockMemories{}
	generator := &capturingGenerator{response: "the answer"}
	svc := NewAIService(memories, generator, zap.NewNop())

	_, err := svc.Query(context.Background(), QueryInput{Query: "q", UseMemory: true})
	require.NoError(t, err)

	require.Len(t, memories.added, 1)
	stored := memories.added[0]
	require.Equal(t, domain.MemoryTypeInteraction, stored.Type)
	require.Contains(t, stored.Content, "the answer")
	require.Equal(t, 1.0, stored.RelevanceScore)
	require.Equal(t, false, stored.Metadata["contextUsed"])
}

func TestQueryPersistFailureIsSwallowed(t *testing.T) {
	memories := &mockMemories{addErr: errors.New("write denied")}
	generator := &capturingGenerator{response: "answer"}
	svc := NewAIService(memories, generator, zap.NewNop())

	result, err := svc.Query(context.Background(), QueryInput{Query: "q", UseMemory: false})
	require.NoError(t, err)
	require.Equal(t, "answer", result.Response)
}

func TestQueryGenerateFailureSurfaces(t *testing.T) {
	generator := &capturingGenerator{err: errors.New("model overloaded")}
	svc := NewAIService(&mockMemories{}, generator, zap.NewNop())

	_, err := svc.Query(context.Background(), QueryInput{Query: "q", UseMemory: false})
	require.Error(t, err)
	require.Equal(t, http.StatusInternalServerError, apperrors.HTTPStatus(err))
	require.Contains(t, apperrors.UserMessage(err), "model overloaded")
}

func TestQueryDefaultsModel(t *testing.T) {
	generator := &capturingGenerator{response: "answer"}
	svc := NewAIService(&mockMemories{}, generator, zap.NewNop())

	result, err := svc.Query(context.Background(), QueryInput{Query: "q", UseMemory: false})
	require.NoError(t, err)
	require.Equal(t, DefaultModel, result.Model)
	require.Equal(t, DefaultModel, generator.model)
}
