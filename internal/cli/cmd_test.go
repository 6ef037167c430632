package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/dealdesk/internal/logging"
	"github.com/alexanderramin/dealdesk/internal/notify"
	"github.com/alexanderramin/dealdesk/internal/repository"
	"github.com/alexanderramin/dealdesk/internal/service"
	"github.com/alexanderramin/dealdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, *notify.Capture) {
	t.Helper()
	database := testutil.NewTestDB(t)
	deals := repository.NewSQLiteDealRepo(database)
	users := repository.NewSQLiteUserRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	uow := testutil.NewTestUoW(database)
	log := logging.Nop{}

	capture := &notify.Capture{}
	app := &App{
		Deals:         service.NewDealService(deals, uow, log),
		Team:          service.NewTeamService(uow, log),
		Investors:     service.NewInvestorService(uow, log),
		Opportunities: service.NewOpportunityService(deals, uow, log),
		Directory:     service.NewDirectoryService(users),
		Assignments:   service.NewAssignmentService(tasks, users),
		Pipeline:      service.NewPipelineService(deals),
		Import:        service.NewImportService(uow, log),

		Notify:        capture,
		IsInteractive: func() bool { return false },
	}
	return app, capture
}

func execute(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true
	return root.Execute()
}

func TestDealAddCommand(t *testing.T) {
	app, capture := newTestApp(t)

	err := execute(t, app, "deal", "add",
		"--name", "Project Atlas", "--client", "Atlas Corp",
		"--value", "250", "--type", "M&A", "--as", "Ada")
	require.NoError(t, err)

	require.Len(t, capture.Successes, 1)
	assert.Contains(t, capture.Successes[0], "Project Atlas")
}

func TestDealAddCommand_RequiredFlags(t *testing.T) {
	app, _ := newTestApp(t)

	err := execute(t, app, "deal", "add", "--name", "No Client")
	require.Error(t, err)
}

func TestDealStageCommand_ResolvesByName(t *testing.T) {
	app, capture := newTestApp(t)

	require.NoError(t, execute(t, app, "deal", "add",
		"--name", "Project Atlas", "--client", "Atlas Corp"))

	err := execute(t, app, "deal", "stage", "project atlas", "Negotiation")
	require.NoError(t, err)

	require.Len(t, capture.Successes, 2)
	assert.Contains(t, capture.Successes[1], "Negotiation")
	assert.Contains(t, capture.Successes[1], "50%")
}

func TestDealStageCommand_UnknownStage(t *testing.T) {
	app, _ := newTestApp(t)

	require.NoError(t, execute(t, app, "deal", "add",
		"--name", "Project Atlas", "--client", "Atlas Corp"))

	err := execute(t, app, "deal", "stage", "Project Atlas", "Ideation")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown stage")
}

func TestDealStageCommand_UnknownDeal(t *testing.T) {
	app, _ := newTestApp(t)

	err := execute(t, app, "deal", "stage", "Ghost", "Signing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestTeamAddAndRemoveCommands(t *testing.T) {
	app, capture := newTestApp(t)

	require.NoError(t, execute(t, app, "deal", "add",
		"--name", "Project Atlas", "--client", "Atlas Corp"))

	err := execute(t, app, "team", "add", "Project Atlas",
		"--name", "Grace Hopper", "--role", "Analyst", "--as", "Ada")
	require.NoError(t, err)

	err = execute(t, app, "team", "remove", "Project Atlas", "0", "--as", "Ada")
	require.NoError(t, err)

	require.Len(t, capture.Successes, 3)
	assert.Contains(t, capture.Successes[1], "Grace Hopper")
}

func TestTeamRemoveCommand_BadIndex(t *testing.T) {
	app, _ := newTestApp(t)

	require.NoError(t, execute(t, app, "deal", "add",
		"--name", "Project Atlas", "--client", "Atlas Corp"))

	err := execute(t, app, "team", "remove", "Project Atlas", "4")
	require.Error(t, err)
}

func TestOpportunityPromoteCommand(t *testing.T) {
	app, capture := newTestApp(t)

	require.NoError(t, execute(t, app, "deal", "add",
		"--name", "Prospect", "--client", "Prospect Client"))

	err := execute(t, app, "opp", "promote", "Prospect",
		"--division", "Investment Banking", "--as", "Grace")
	require.NoError(t, err)

	require.Len(t, capture.Successes, 2)
	assert.Contains(t, capture.Successes[1], "M&A")
}

func TestOpportunityRejectCommand(t *testing.T) {
	app, _ := newTestApp(t)

	require.NoError(t, execute(t, app, "deal", "add",
		"--name", "Prospect", "--client", "Prospect Client"))
	require.NoError(t, execute(t, app, "opp", "reject", "Prospect"))

	err := execute(t, app, "deal", "stage", "Prospect", "Signing")
	require.Error(t, err, "rejected opportunity is gone")
}

func TestInvestorTagCommand(t *testing.T) {
	app, capture := newTestApp(t)

	require.NoError(t, execute(t, app, "deal", "add",
		"--name", "Project Atlas", "--client", "Atlas Corp"))

	err := execute(t, app, "investor", "tag", "Project Atlas",
		"--name", "KKR", "--firm", "KKR & Co", "--type", "PE")
	require.NoError(t, err)

	require.Len(t, capture.Successes, 2)
	assert.Contains(t, capture.Successes[1], "KKR")
}

func TestUserAddAndTaskCommands(t *testing.T) {
	app, capture := newTestApp(t)

	err := execute(t, app, "user", "add",
		"--name", "Ada Lovelace", "--email", "ada@firm.com", "--role", "VP")
	require.NoError(t, err)

	err = execute(t, app, "task", "add", "--user", "Ada Lovelace", "--title", "Draft teaser")
	require.NoError(t, err)

	require.Len(t, capture.Successes, 2)
	assert.Contains(t, capture.Successes[1], "Draft teaser")
}

func TestTaskAddCommand_UnknownUser(t *testing.T) {
	app, _ := newTestApp(t)

	err := execute(t, app, "task", "add", "--user", "Nobody", "--title", "Orphan")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestResolveDealID_NotFound(t *testing.T) {
	app, _ := newTestApp(t)

	require.NoError(t, execute(t, app, "deal", "add", "--name", "A", "--client", "CA"))

	_, err := resolveDealID(context.Background(), app, "zzz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
