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

type attachmentService struct {
	uow   db.UnitOfWork
	files FileStore
	log   logging.Logger
}

func NewAttachmentService(uow db.UnitOfWork, files FileStore, log logging.Logger) AttachmentService {
	return &attachmentService{uow: uow, files: files, log: log}
}

// Attach copies the file into the store first, then records the descriptor
// and its audit entry in one write. If the record fails the stored copy is
// cleaned up so the store never holds orphaned payloads.
func (s *attachmentService) Attach(ctx context.Context, dealID, path, actor string) (*domain.Deal, error) {
	att, err := s.files.Save(path)
	if err != nil {
		return nil, err
	}

	var updated *domain.Deal
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txDeals := repository.NewSQLiteDealRepo(tx)
		d, err := txDeals.GetByID(ctx, dealID)
		if err != nil {
			return err
		}

		attachments := make([]domain.Attachment, 0, len(d.Attachments)+1)
		attachments = append(attachments, d.Attachments...)
		attachments = append(attachments, att)

		d.Attachments = attachments
		d.UpdatedAt = time.Now().UTC()
		d.AuditTrail = domain.AppendAudit(d.AuditTrail, domain.NewAuditEntry(
			domain.ActionAttachmentAdded, actor,
			fmt.Sprintf("Attached %s (%d bytes)", att.Filename, att.Size)))

		if err := txDeals.Update(ctx, d); err != nil {
			return err
		}
		updated = d
		return nil
	})
	if err != nil {
		_ = s.files.Remove(att)
		return nil, err
	}
	s.log.Info(ctx, "attachment added", "deal", dealID, "file", att.Filename)
	return updated, nil
}

// Remove drops the descriptor from the deal; the stored payload is kept
// since the audit trail still references the upload.
func (s *attachmentService) Remove(ctx context.Context, dealID, attachmentID, actor string) (*domain.Deal, error) {
	var updated *domain.Deal
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txDeals := repository.NewSQLiteDealRepo(tx)
		d, err := txDeals.GetByID(ctx, dealID)
		if err != nil {
			return err
		}

		idx := -1
		for i, a := range d.Attachments {
			if a.ID == attachmentID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("attachment %q not found on this deal", attachmentID)
		}
		removed := d.Attachments[idx]

		attachments := make([]domain.Attachment, 0, len(d.Attachments)-1)
		attachments = append(attachments, d.Attachments[:idx]...)
		attachments = append(attachments, d.Attachments[idx+1:]...)

		d.Attachments = attachments
		d.UpdatedAt = time.Now().UTC()
		d.AuditTrail = domain.AppendAudit(d.AuditTrail, domain.NewAuditEntry(
			domain.ActionAttachmentRemoved, actor,
			fmt.Sprintf("Removed attachment %s", removed.Filename)))

		if err := txDeals.Update(ctx, d); err != nil {
			return err
		}
		updated = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "attachment removed", "deal", dealID, "attachment", attachmentID)
	return updated, nil
}
