package service_test

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/dealdesk/internal/db"
	"github.com/alexanderramin/dealdesk/internal/logging"
	"github.com/alexanderramin/dealdesk/internal/repository"
	"github.com/alexanderramin/dealdesk/internal/service"
	"github.com/alexanderramin/dealdesk/internal/testutil"
)

// testEnv bundles one in-memory database with every service wired the way
// main does it.
type testEnv struct {
	DB    *sql.DB
	Deals *repository.SQLiteDealRepo
	Users *repository.SQLiteUserRepo
	Tasks *repository.SQLiteTaskRepo
	UoW   db.UnitOfWork

	DealSvc        service.DealService
	TeamSvc        service.TeamService
	InvestorSvc    service.InvestorService
	OpportunitySvc service.OpportunityService
	DirectorySvc   service.DirectoryService
	AssignmentSvc  service.AssignmentService
	PipelineSvc    service.PipelineService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	deals := repository.NewSQLiteDealRepo(database)
	users := repository.NewSQLiteUserRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	uow := testutil.NewTestUoW(database)
	log := logging.Nop{}

	return &testEnv{
		DB:    database,
		Deals: deals,
		Users: users,
		Tasks: tasks,
		UoW:   uow,

		DealSvc:        service.NewDealService(deals, uow, log),
		TeamSvc:        service.NewTeamService(uow, log),
		InvestorSvc:    service.NewInvestorService(uow, log),
		OpportunitySvc: service.NewOpportunityService(deals, uow, log),
		DirectorySvc:   service.NewDirectoryService(users),
		AssignmentSvc:  service.NewAssignmentService(tasks, users),
		PipelineSvc:    service.NewPipelineService(deals),
	}
}
