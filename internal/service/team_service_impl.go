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

type teamService struct {
	uow db.UnitOfWork
	log logging.Logger
}

func NewTeamService(uow db.UnitOfWork, log logging.Logger) TeamService {
	return &teamService{uow: uow, log: log}
}

// AddMember resolves the member against the user directory (email first,
// then name, case-insensitive) and appends them to the pod team. A member
// with no directory match gets a fresh ID and is kept as an external
// contact.
func (s *teamService) AddMember(ctx context.Context, dealID string, m domain.PodTeamMember, actor string) (*domain.Deal, error) {
	var updated *domain.Deal
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txDeals := repository.NewSQLiteDealRepo(tx)
		txUsers := repository.NewSQLiteUserRepo(tx)

		d, err := txDeals.GetByID(ctx, dealID)
		if err != nil {
			return err
		}

		directory, err := txUsers.List(ctx)
		if err != nil {
			return err
		}
		if u := domain.ResolveMember(directory, m.Email, m.Name); u != nil {
			m.UserID = u.ID
			if m.Email == "" {
				m.Email = u.Email
			}
		} else {
			m.UserID = uuid.New().String()
		}

		roster, err := domain.AddTeamMember(d.PodTeam, m)
		if err != nil {
			return err
		}

		d.PodTeam = roster
		d.UpdatedAt = time.Now().UTC()
		d.AuditTrail = domain.AppendAudit(d.AuditTrail, domain.NewAuditEntry(
			domain.ActionTeamMemberAdded, actor,
			fmt.Sprintf("Added %s (%s) to pod team", m.Name, m.Role)))

		if err := txDeals.Update(ctx, d); err != nil {
			return err
		}
		updated = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "team member added", "deal", dealID, "member", m.Name)
	return updated, nil
}

// RemoveMember removes the pod team member at the given index. A miss is
// an error and writes nothing, audit trail included.
func (s *teamService) RemoveMember(ctx context.Context, dealID string, index int, actor string) (*domain.Deal, error) {
	var updated *domain.Deal
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txDeals := repository.NewSQLiteDealRepo(tx)
		d, err := txDeals.GetByID(ctx, dealID)
		if err != nil {
			return err
		}

		roster, removed, err := domain.RemoveTeamMember(d.PodTeam, index)
		if err != nil {
			return err
		}

		d.PodTeam = roster
		d.UpdatedAt = time.Now().UTC()
		d.AuditTrail = domain.AppendAudit(d.AuditTrail, domain.NewAuditEntry(
			domain.ActionTeamMemberRemoved, actor,
			fmt.Sprintf("Removed %s (%s) from pod team", removed.Name, removed.Role)))

		if err := txDeals.Update(ctx, d); err != nil {
			return err
		}
		updated = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "team member removed", "deal", dealID, "index", index)
	return updated, nil
}
