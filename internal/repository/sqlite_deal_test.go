package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/repository"
	"github.com/alexanderramin/dealdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteDealRepo(database)
	ctx := context.Background()

	deal := testutil.NewTestDeal("Project Atlas", testutil.WithValue(250))
	deal.PodTeam = []domain.PodTeamMember{{UserID: "u1", Name: "Ada", Role: "VP", Email: "ada@firm.com"}}
	deal.TaggedInvestors = []domain.TaggedInvestor{{ID: "i1", Name: "KKR", Firm: "KKR & Co", Status: domain.InvestorContacted}}
	deal.Attachments = []domain.Attachment{{ID: "a1", Filename: "teaser.pdf", URL: "/files/a1_teaser.pdf", Size: 1024, UploadedAt: time.Now().UTC()}}
	deal.AuditTrail = []domain.AuditEntry{domain.NewAuditEntry(domain.ActionDealCreated, "Ada", "created")}

	require.NoError(t, repo.Create(ctx, deal))

	got, err := repo.GetByID(ctx, deal.ID)
	require.NoError(t, err)

	assert.Equal(t, deal.Name, got.Name)
	assert.Equal(t, deal.Client, got.Client)
	assert.Equal(t, 250.0, got.Value)
	assert.Equal(t, domain.TypeMergersAcq, got.DealType)
	assert.Equal(t, domain.StageOrigination, got.Stage)
	assert.Equal(t, 17, got.Progress)

	require.Len(t, got.PodTeam, 1)
	assert.Equal(t, "Ada", got.PodTeam[0].Name)
	require.Len(t, got.TaggedInvestors, 1)
	assert.Equal(t, domain.InvestorContacted, got.TaggedInvestors[0].Status)
	require.Len(t, got.Attachments, 1)
	assert.Equal(t, int64(1024), got.Attachments[0].Size)
	require.Len(t, got.AuditTrail, 1)
	assert.Equal(t, domain.ActionDealCreated, got.AuditTrail[0].Action)
}

func TestDealRepo_GetByID_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteDealRepo(database)

	_, err := repo.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDealRepo_EmptyCollectionsRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteDealRepo(database)
	ctx := context.Background()

	deal := testutil.NewTestDeal("Project Bare")
	require.NoError(t, repo.Create(ctx, deal))

	got, err := repo.GetByID(ctx, deal.ID)
	require.NoError(t, err)
	assert.Empty(t, got.PodTeam)
	assert.Empty(t, got.TaggedInvestors)
	assert.Empty(t, got.Attachments)
	assert.Empty(t, got.AuditTrail)
}

func TestDealRepo_ListFilters(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteDealRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestDeal("Alpha",
		testutil.WithDealType(domain.TypeOpportunity))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestDeal("Beta",
		testutil.WithDealType(domain.TypeMergersAcq), testutil.WithStage(domain.StageSigning))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestDeal("Gamma",
		testutil.WithDealType(domain.TypeMergersAcq))))

	all, err := repo.List(ctx, repository.DealFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	ma, err := repo.List(ctx, repository.DealFilter{DealType: domain.TypeMergersAcq})
	require.NoError(t, err)
	assert.Len(t, ma, 2)

	signing, err := repo.List(ctx, repository.DealFilter{
		DealType: domain.TypeMergersAcq,
		Stage:    domain.StageSigning,
	})
	require.NoError(t, err)
	require.Len(t, signing, 1)
	assert.Equal(t, "Beta", signing[0].Name)
}

func TestDealRepo_Update(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteDealRepo(database)
	ctx := context.Background()

	deal := testutil.NewTestDeal("Project Atlas")
	require.NoError(t, repo.Create(ctx, deal))

	deal.Stage = domain.StageClosed
	deal.Progress = 100
	deal.Status = domain.DealClosed
	deal.AuditTrail = domain.AppendAudit(deal.AuditTrail,
		domain.NewAuditEntry(domain.ActionStageChanged, "Ada", "Stage changed from Origination to Closed"))
	deal.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, deal))

	got, err := repo.GetByID(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageClosed, got.Stage)
	assert.Equal(t, 100, got.Progress)
	assert.Equal(t, domain.DealClosed, got.Status)
	require.Len(t, got.AuditTrail, 1)
}

func TestDealRepo_Update_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteDealRepo(database)

	deal := testutil.NewTestDeal("Ghost")
	err := repo.Update(context.Background(), deal)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDealRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteDealRepo(database)
	ctx := context.Background()

	deal := testutil.NewTestDeal("Project Atlas")
	require.NoError(t, repo.Create(ctx, deal))
	require.NoError(t, repo.Delete(ctx, deal.ID))

	_, err := repo.GetByID(ctx, deal.ID)
	require.Error(t, err)
}
