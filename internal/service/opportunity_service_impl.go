package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/dealdesk/internal/db"
	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/logging"
	"github.com/alexanderramin/dealdesk/internal/repository"
)

type opportunityService struct {
	deals repository.DealRepo
	uow   db.UnitOfWork
	log   logging.Logger
}

func NewOpportunityService(deals repository.DealRepo, uow db.UnitOfWork, log logging.Logger) OpportunityService {
	return &opportunityService{deals: deals, uow: uow, log: log}
}

func (s *opportunityService) ListPending(ctx context.Context) ([]*domain.Deal, error) {
	return s.deals.List(ctx, repository.DealFilter{DealType: domain.TypeOpportunity})
}

// Promote approves an opportunity into a division: Investment Banking
// rewrites the deal type to M&A, Asset Management keeps its own name. The
// deal goes active and the transition is recorded on the audit trail.
func (s *opportunityService) Promote(ctx context.Context, id string, division domain.Division, actor string) (*domain.Deal, error) {
	newType, err := domain.PromotedType(division)
	if err != nil {
		return nil, err
	}

	var updated *domain.Deal
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txDeals := repository.NewSQLiteDealRepo(tx)
		d, err := txDeals.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !d.IsOpportunity() {
			return fmt.Errorf("deal %s is not an opportunity (type %s)", d.DisplayID(), d.DealType)
		}

		d.DealType = newType
		d.Status = domain.DealActive
		d.UpdatedAt = time.Now().UTC()
		d.AuditTrail = domain.AppendAudit(d.AuditTrail, domain.NewAuditEntry(
			domain.ActionOpportunityPromoted, actor,
			fmt.Sprintf("Promoted to %s as %s", division, newType)))

		if err := txDeals.Update(ctx, d); err != nil {
			return err
		}
		updated = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "opportunity promoted", "deal", id, "division", division, "type", newType)
	return updated, nil
}

// Reject hard-deletes the opportunity. Irreversible.
func (s *opportunityService) Reject(ctx context.Context, id string) error {
	d, err := s.deals.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !d.IsOpportunity() {
		return fmt.Errorf("deal %s is not an opportunity (type %s)", d.DisplayID(), d.DealType)
	}
	if err := s.deals.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info(ctx, "opportunity rejected", "deal", id)
	return nil
}
