package service

import (
	"context"
	"sort"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/repository"
)

type pipelineService struct {
	deals repository.DealRepo
}

func NewPipelineService(deals repository.DealRepo) PipelineService {
	return &pipelineService{deals: deals}
}

// Summary aggregates every deal into per-stage counts and totals, in
// canonical stage order. Stages with no deals still appear with zeroes so
// the dashboard always shows the full pipeline shape.
func (s *pipelineService) Summary(ctx context.Context) (*PipelineSummary, error) {
	deals, err := s.deals.List(ctx, repository.DealFilter{})
	if err != nil {
		return nil, err
	}

	byStage := make(map[domain.Stage]*StageSlice, len(domain.Stages))
	summary := &PipelineSummary{}
	for _, stage := range domain.Stages {
		slice := &StageSlice{Stage: stage}
		byStage[stage] = slice
	}

	for _, d := range deals {
		summary.TotalDeals++
		summary.TotalValue += d.Value
		if d.IsOpportunity() {
			summary.PendingOpportunities++
		}
		if slice, ok := byStage[d.Stage]; ok {
			slice.Count++
			slice.TotalValue += d.Value
		}
	}

	for _, stage := range domain.Stages {
		summary.Stages = append(summary.Stages, *byStage[stage])
	}
	return summary, nil
}

// RecentActivity merges the audit trails of all deals into one feed,
// newest first, capped at limit.
func (s *pipelineService) RecentActivity(ctx context.Context, limit int) ([]DealActivity, error) {
	deals, err := s.deals.List(ctx, repository.DealFilter{})
	if err != nil {
		return nil, err
	}

	var feed []DealActivity
	for _, d := range deals {
		for _, e := range d.AuditTrail {
			feed = append(feed, DealActivity{DealID: d.ID, DealName: d.Name, Entry: e})
		}
	}

	sort.Slice(feed, func(i, j int) bool {
		return feed[i].Entry.Timestamp.After(feed[j].Entry.Timestamp)
	})

	if limit > 0 && len(feed) > limit {
		feed = feed[:limit]
	}
	return feed, nil
}
