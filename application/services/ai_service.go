package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/application/ports"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/domain"
	apperrors "github.com/InfinityXOneSystems/Real-Estate-Intelligence/pkg/errors"
)

const (
	// DefaultModel is invoked when the caller names no model.
	DefaultModel = "gemini-1.5-flash"

	// contextWindow is how many recent memories feed the prompt.
	contextWindow = 5
)

// QueryInput is a single retrieve-then-generate request.
type QueryInput struct {
	Query     string
	UseMemory bool
	Model     string
}

// QueryResult is the outcome of a retrieve-then-generate request.
type QueryResult struct {
	Query              string `json:"query"`
	Response           string `json:"response"`
	Model              string `json:"model"`
	ContextUsed        bool   `json:"contextUsed"`
	MemoriesReferenced int    `json:"memoriesReferenced"`
}

// AIService runs the retrieve-then-generate pipeline: fetch recent memories,
// prepend them as context, invoke the model, persist the interaction.
//
// Context retrieval and interaction persistence are best-effort: a failed
// fetch degrades to an empty context and a failed persist is logged and
// swallowed. Only a failed model invocation surfaces to the caller.
type AIService struct {
	memories  ports.MemoryRepository
	generator ports.TextGenerator
	logger    *zap.Logger
}

// NewAIService creates a new AIService
func NewAIService(memories ports.MemoryRepository, generator ports.TextGenerator, logger *zap.Logger) *AIService {
	return &AIService{
		memories:  memories,
		generator: generator,
		logger:    logger,
	}
}

// Query executes the pipeline sequentially: the memory fetch completes before
// the model call begins.
func (s *AIService) Query(ctx context.Context, in QueryInput) (QueryResult, error) {
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return QueryResult{}, apperrors.Validation("query is required")
	}
	model := in.Model
	if model == "" {
		model = DefaultModel
	}

	contextBlock := ""
	referenced := 0
	if in.UseMemory {
		contextBlock, referenced = s.fetchContext(ctx)
	}

	prompt := query
	if contextBlock != "" {
		prompt = fmt.Sprintf("Context from previous interactions:\n%s\n\nQuery: %s", contextBlock, query)
	}

	response, err := s.generator.Generate(ctx, model, prompt)
	if err != nil {
		return QueryResult{}, apperrors.Upstream("AI query failed", err)
	}

	s.persistInteraction(ctx, query, response, model, contextBlock != "")

	return QueryResult{
		Query:              query,
		Response:           response,
		Model:              model,
		ContextUsed:        contextBlock != "",
		MemoriesReferenced: referenced,
	}, nil
}

// fetchContext pulls the most recent memories and joins their content with
// blank lines. Degrades to an empty context on any failure.
func (s *AIService) fetchContext(ctx context.Context) (string, int) {
	memories, err := s.memories.Recent(ctx, contextWindow)
	if err != nil {
		s.logger.Warn("Memory fetch failed, continuing without context", zap.Error(err))
		return "", 0
	}

	contents := make([]string, 0, len(memories))
	for _, m := range memories {
		contents = append(contents, m.Content)
	}
	return strings.Join(contents, "\n\n"), len(memories)
}

// persistInteraction records the completed turn as an interaction memory.
// Failure is logged and swallowed; the response has already been produced.
func (s *AIService) persistInteraction(ctx context.Context, query, response, model string, contextUsed bool) {
	_, err := s.memories.Add(ctx, domain.Memory{
		Type:    domain.MemoryTypeInteraction,
		Content: fmt.Sprintf("Q: %s\nA: %s", query, response),
		Tags:    []string{"ai-query"},
		Metadata: map[string]interface{}{
			"query":       query,
			"model":       model,
			"contextUsed": contextUsed,
		},
		RelevanceScore: 1.0,
	})
	if err != nil {
		s.logger.Warn("Failed to persist interaction memory", zap.Error(err))
	}
}
