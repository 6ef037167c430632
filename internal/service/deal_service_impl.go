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

type dealService struct {
	deals repository.DealRepo
	uow   db.UnitOfWork
	log   logging.Logger
}

func NewDealService(deals repository.DealRepo, uow db.UnitOfWork, log logging.Logger) DealService {
	return &dealService{deals: deals, uow: uow, log: log}
}

func (s *dealService) Create(ctx context.Context, d *domain.Deal, actor string) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if d.Stage == "" {
		d.Stage = domain.StageOrigination
	}
	progress, err := domain.StageProgress(d.Stage)
	if err != nil {
		return err
	}
	d.Progress = progress

	if d.DealType == "" {
		d.DealType = domain.TypeOpportunity
	}
	if d.Status == "" {
		if d.IsOpportunity() {
			d.Status = domain.DealPending
		} else {
			d.Status = domain.DealActive
		}
	}

	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	d.AuditTrail = domain.AppendAudit(nil, domain.NewAuditEntry(
		domain.ActionDealCreated, actor,
		fmt.Sprintf("Deal %q created for %s at stage %s", d.Name, d.Client, d.Stage)))

	if err := s.deals.Create(ctx, d); err != nil {
		return err
	}
	s.log.Info(ctx, "deal created", "deal", d.ID, "name", d.Name, "type", d.DealType)
	return nil
}

func (s *dealService) GetByID(ctx context.Context, id string) (*domain.Deal, error) {
	return s.deals.GetByID(ctx, id)
}

func (s *dealService) List(ctx context.Context, filter repository.DealFilter) ([]*domain.Deal, error) {
	return s.deals.List(ctx, filter)
}

// UpdateDetails persists the descriptive fields of d. The row is re-read
// inside the transaction so stage, collections and audit trail are never
// overwritten from a stale copy.
func (s *dealService) UpdateDetails(ctx context.Context, d *domain.Deal) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txDeals := repository.NewSQLiteDealRepo(tx)
		current, err := txDeals.GetByID(ctx, d.ID)
		if err != nil {
			return err
		}
		current.Name = d.Name
		current.Client = d.Client
		current.Sector = d.Sector
		current.Value = d.Value
		current.Lead = d.Lead
		current.UpdatedAt = time.Now().UTC()
		return txDeals.Update(ctx, current)
	})
}

func (s *dealService) ChangeStage(ctx context.Context, id string, stage domain.Stage, actor string) (*domain.Deal, error) {
	progress, err := domain.StageProgress(stage)
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

		from := d.Stage
		d.Stage = stage
		d.Progress = progress
		if stage == domain.StageClosed {
			d.Status = domain.DealClosed
		}
		d.UpdatedAt = time.Now().UTC()
		d.AuditTrail = domain.AppendAudit(d.AuditTrail, domain.NewAuditEntry(
			domain.ActionStageChanged, actor,
			fmt.Sprintf("Stage changed from %s to %s", from, stage)))

		if err := txDeals.Update(ctx, d); err != nil {
			return err
		}
		updated = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "stage changed", "deal", id, "stage", stage, "progress", progress)
	return updated, nil
}

func (s *dealService) UpdateNotes(ctx context.Context, id, notes, actor string) (*domain.Deal, error) {
	var updated *domain.Deal
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txDeals := repository.NewSQLiteDealRepo(tx)
		d, err := txDeals.GetByID(ctx, id)
		if err != nil {
			return err
		}
		d.Notes = notes
		d.UpdatedAt = time.Now().UTC()
		d.AuditTrail = domain.AppendAudit(d.AuditTrail, domain.NewAuditEntry(
			domain.ActionNotesUpdated, actor, "Deal notes updated"))
		if err := txDeals.Update(ctx, d); err != nil {
			return err
		}
		updated = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *dealService) Delete(ctx context.Context, id string) error {
	if err := s.deals.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info(ctx, "deal deleted", "deal", id)
	return nil
}
