package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/dealdesk/internal/db"
	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/logging"
	"github.com/alexanderramin/dealdesk/internal/repository"
	"github.com/google/uuid"
)

type investorService struct {
	uow db.UnitOfWork
	log logging.Logger
}

func NewInvestorService(uow db.UnitOfWork, log logging.Logger) InvestorService {
	return &investorService{uow: uow, log: log}
}

func (s *investorService) Tag(ctx context.Context, dealID string, inv domain.TaggedInvestor, actor string) (*domain.Deal, error) {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	if inv.Status == "" {
		inv.Status = domain.InvestorContacted
	}
	if !domain.ValidInvestorStatuses[inv.Status] {
		return nil, fmt.Errorf("unknown investor status %q", inv.Status)
	}

	var updated *domain.Deal
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txDeals := repository.NewSQLiteDealRepo(tx)
		d, err := txDeals.GetByID(ctx, dealID)
		if err != nil {
			return err
		}

		roster, err := domain.TagInvestor(d.TaggedInvestors, inv)
		if err != nil {
			return err
		}

		d.TaggedInvestors = roster
		d.UpdatedAt = time.Now().UTC()
		d.AuditTrail = domain.AppendAudit(d.AuditTrail, domain.NewAuditEntry(
			domain.ActionInvestorTagged, actor,
			fmt.Sprintf("Tagged %s (%s) as %s", inv.Name, inv.Firm, inv.Status)))

		if err := txDeals.Update(ctx, d); err != nil {
			return err
		}
		updated = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "investor tagged", "deal", dealID, "investor", inv.Name)
	return updated, nil
}

func (s *investorService) UpdateStatus(ctx context.Context, dealID, investorID string, status domain.InvestorStatus, actor string) (*domain.Deal, error) {
	var updated *domain.Deal
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txDeals := repository.NewSQLiteDealRepo(tx)
		d, err := txDeals.GetByID(ctx, dealID)
		if err != nil {
			return err
		}

		roster, inv, err := domain.SetInvestorStatus(d.TaggedInvestors, investorID, status)
		if err != nil {
			return err
		}

		d.TaggedInvestors = roster
		d.UpdatedAt = time.Now().UTC()
		d.AuditTrail = domain.AppendAudit(d.AuditTrail, domain.NewAuditEntry(
			domain.ActionInvestorStatusUpdated, actor,
			fmt.Sprintf("%s (%s) moved to %s", inv.Name, inv.Firm, status)))

		if err := txDeals.Update(ctx, d); err != nil {
			return err
		}
		updated = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "investor status updated", "deal", dealID, "investor", investorID, "status", status)
	return updated, nil
}

func (s *investorService) Remove(ctx context.Context, dealID, investorID string, actor string) (*domain.Deal, error) {
	var updated *domain.Deal
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txDeals := repository.NewSQLiteDealRepo(tx)
		d, err := txDeals.GetByID(ctx, dealID)
		if err != nil {
			return err
		}

		roster, removed, err := domain.RemoveInvestor(d.TaggedInvestors, investorID)
		if err != nil {
			return err
		}

		d.TaggedInvestors = roster
		d.UpdatedAt = time.Now().UTC()
		d.AuditTrail = domain.AppendAudit(d.AuditTrail, domain.NewAuditEntry(
			domain.ActionInvestorRemoved, actor,
			fmt.Sprintf("Removed %s (%s)", removed.Name, removed.Firm)))

		if err := txDeals.Update(ctx, d); err != nil {
			return err
		}
		updated = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "investor removed", "deal", dealID, "investor", investorID)
	return updated, nil
}
