package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/dealdesk/internal/db"
	"github.com/alexanderramin/dealdesk/internal/importer"
	"github.com/alexanderramin/dealdesk/internal/logging"
	"github.com/alexanderramin/dealdesk/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
	log logging.Logger
}

func NewImportService(uow db.UnitOfWork, log logging.Logger) ImportService {
	return &importService{uow: uow, log: log}
}

// ImportFile loads, validates and persists a pipeline snapshot. The whole
// file lands in one transaction: a bad row aborts the entire import.
func (s *importService) ImportFile(ctx context.Context, path, actor string) (*ImportSummary, error) {
	schema, err := importer.LoadImportSchema(path)
	if err != nil {
		return nil, err
	}

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("import file has %d problem(s):\n%s",
			len(errs), importer.FormatErrors(errs))
	}

	result, err := importer.Convert(schema, actor)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txUsers := repository.NewSQLiteUserRepo(tx)
		txDeals := repository.NewSQLiteDealRepo(tx)

		for _, u := range result.Users {
			if err := txUsers.Create(ctx, u); err != nil {
				return err
			}
		}
		for _, d := range result.Deals {
			if err := txDeals.Create(ctx, d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "pipeline imported", "file", path,
		"users", len(result.Users), "deals", len(result.Deals))
	return &ImportSummary{Users: len(result.Users), Deals: len(result.Deals)}, nil
}
