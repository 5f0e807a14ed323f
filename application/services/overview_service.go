package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/application/ports"
)

// CountResult is the outcome of a best-effort count: a failed count reports
// zero with Degraded set rather than failing the caller.
type CountResult struct {
	Count    int64 `json:"count"`
	Degraded bool  `json:"degraded,omitempty"`
}

// OverviewResult aggregates collection counts with static business metrics.
type OverviewResult struct {
	Properties CountResult `json:"properties"`
	Memories   CountResult `json:"memories"`

	ActiveLeads int     `json:"activeLeads"`
	HotDeals    int     `json:"hotDeals"`
	MarketScore float64 `json:"marketScore"`

	Services map[string]bool `json:"services"`
}

// Static placeholder metrics; no collaborator supplies these yet.
const (
	placeholderActiveLeads = 47
	placeholderHotDeals    = 12
	placeholderMarketScore = 8.7
)

// OverviewService produces the dashboard overview. Every sub-call is
// best-effort: the overview never fails as a whole.
type OverviewService struct {
	properties ports.PropertyRepository
	memories   ports.MemoryRepository
	logger     *zap.Logger
}

// NewOverviewService creates a new OverviewService
func NewOverviewService(properties ports.PropertyRepository, memories ports.MemoryRepository, logger *zap.Logger) *OverviewService {
	return &OverviewService{
		properties: properties,
		memories:   memories,
		logger:     logger,
	}
}

// Overview counts each collection independently. A count failure for either
// degrades that count to zero without failing the call.
func (s *OverviewService) Overview(ctx context.Context) OverviewResult {
	return OverviewResult{
		Properties: s.count(ctx, "properties", s.properties.Count),
		Memories:   s.count(ctx, "memories", s.memories.Count),

		ActiveLeads: placeholderActiveLeads,
		HotDeals:    placeholderHotDeals,
		MarketScore: placeholderMarketScore,

		Services: map[string]bool{
			"firestore": true,
			"storage":   true,
			"vertexAI":  true,
		},
	}
}

func (s *OverviewService) count(ctx context.Context, name string, fn func(context.Context) (int64, error)) CountResult {
	n, err := fn(ctx)
	if err != nil {
		s.logger.Warn("Overview count failed, defaulting to zero",
			zap.String("collection", name),
			zap.Error(err),
		)
		return CountResult{Count: 0, Degraded: true}
	}
	return CountResult{Count: n}
}
