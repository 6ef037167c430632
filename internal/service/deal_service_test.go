package service_test

import (
	"context"
	"testing"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/repository"
	"github.com/alexanderramin/dealdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealService_Create_Defaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	d := &domain.Deal{Name: "Project Atlas", Client: "Atlas Corp", Value: 250}
	require.NoError(t, env.DealSvc.Create(ctx, d, "Ada"))

	got, err := env.DealSvc.GetByID(ctx, d.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.StageOrigination, got.Stage)
	assert.Equal(t, 17, got.Progress)
	assert.Equal(t, domain.TypeOpportunity, got.DealType, "untyped deals enter as opportunities")
	assert.Equal(t, domain.DealPending, got.Status, "opportunities start pending triage")

	require.Len(t, got.AuditTrail, 1)
	assert.Equal(t, domain.ActionDealCreated, got.AuditTrail[0].Action)
	assert.Equal(t, "Ada", got.AuditTrail[0].User)
}

func TestDealService_Create_TypedDealStartsActive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	d := &domain.Deal{Name: "Project Atlas", Client: "Atlas Corp", DealType: domain.TypeMergersAcq}
	require.NoError(t, env.DealSvc.Create(ctx, d, ""))

	got, err := env.DealSvc.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DealActive, got.Status)
	assert.Equal(t, "System", got.AuditTrail[0].User, "no actor falls back to System")
}

func TestDealService_Create_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.DealSvc.Create(ctx, &domain.Deal{Client: "Atlas Corp"}, "Ada")
	require.Error(t, err)

	err = env.DealSvc.Create(ctx, &domain.Deal{Name: "Project Atlas"}, "Ada")
	require.Error(t, err)
}

func TestDealService_Create_UnknownStage(t *testing.T) {
	env := newTestEnv(t)

	d := &domain.Deal{Name: "Project Atlas", Client: "Atlas Corp", Stage: "Ideation"}
	err := env.DealSvc.Create(context.Background(), d, "Ada")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown stage")
}

func TestDealService_ChangeStage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	d := &domain.Deal{Name: "Project Atlas", Client: "Atlas Corp", DealType: domain.TypeMergersAcq}
	require.NoError(t, env.DealSvc.Create(ctx, d, "Ada"))

	updated, err := env.DealSvc.ChangeStage(ctx, d.ID, domain.StageNegotiation, "Grace")
	require.NoError(t, err)
	assert.Equal(t, domain.StageNegotiation, updated.Stage)
	assert.Equal(t, 50, updated.Progress)
	assert.Equal(t, domain.DealActive, updated.Status)

	require.Len(t, updated.AuditTrail, 2)
	last := updated.AuditTrail[1]
	assert.Equal(t, domain.ActionStageChanged, last.Action)
	assert.Equal(t, "Grace", last.User)
	assert.Equal(t, "Stage changed from Origination to Negotiation", last.Details)
}

func TestDealService_ChangeStage_ClosedMarksDealClosed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	d := &domain.Deal{Name: "Project Atlas", Client: "Atlas Corp", DealType: domain.TypeMergersAcq}
	require.NoError(t, env.DealSvc.Create(ctx, d, "Ada"))

	updated, err := env.DealSvc.ChangeStage(ctx, d.ID, domain.StageClosed, "Ada")
	require.NoError(t, err)
	assert.Equal(t, 100, updated.Progress)
	assert.Equal(t, domain.DealClosed, updated.Status)
}

func TestDealService_ChangeStage_UnknownStage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	d := &domain.Deal{Name: "Project Atlas", Client: "Atlas Corp"}
	require.NoError(t, env.DealSvc.Create(ctx, d, "Ada"))

	_, err := env.DealSvc.ChangeStage(ctx, d.ID, "Ideation", "Ada")
	require.Error(t, err)

	got, err := env.DealSvc.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageOrigination, got.Stage, "rejected stage writes nothing")
	assert.Len(t, got.AuditTrail, 1)
}

func TestDealService_ChangeStage_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.DealSvc.ChangeStage(context.Background(), "missing", domain.StageClosed, "Ada")
	require.Error(t, err)
}

func TestDealService_UpdateNotes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	d := &domain.Deal{Name: "Project Atlas", Client: "Atlas Corp"}
	require.NoError(t, env.DealSvc.Create(ctx, d, "Ada"))

	updated, err := env.DealSvc.UpdateNotes(ctx, d.ID, "Client wants Q4 close", "Ada")
	require.NoError(t, err)
	assert.Equal(t, "Client wants Q4 close", updated.Notes)

	require.Len(t, updated.AuditTrail, 2)
	assert.Equal(t, domain.ActionNotesUpdated, updated.AuditTrail[1].Action)
}

func TestDealService_UpdateDetails_PreservesCollections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	d := &domain.Deal{Name: "Project Atlas", Client: "Atlas Corp"}
	require.NoError(t, env.DealSvc.Create(ctx, d, "Ada"))
	_, err := env.TeamSvc.AddMember(ctx, d.ID, domain.PodTeamMember{Name: "Grace", Role: "Analyst"}, "Ada")
	require.NoError(t, err)

	// Update from a deliberately stale copy that carries no collections.
	stale := &domain.Deal{ID: d.ID, Name: "Project Titan", Client: "Atlas Corp", Value: 400}
	require.NoError(t, env.DealSvc.UpdateDetails(ctx, stale))

	got, err := env.DealSvc.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Project Titan", got.Name)
	assert.Equal(t, 400.0, got.Value)
	assert.Len(t, got.PodTeam, 1, "stale copy must not clobber the roster")
	assert.Len(t, got.AuditTrail, 2)
}

func TestDealService_List(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.Deals.Create(ctx, testutil.NewTestDeal("Alpha")))
	require.NoError(t, env.Deals.Create(ctx, testutil.NewTestDeal("Beta",
		testutil.WithDealType(domain.TypeOpportunity))))

	all, err := env.DealSvc.List(ctx, repository.DealFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	opps, err := env.DealSvc.List(ctx, repository.DealFilter{DealType: domain.TypeOpportunity})
	require.NoError(t, err)
	assert.Len(t, opps, 1)
}

func TestDealService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	d := &domain.Deal{Name: "Project Atlas", Client: "Atlas Corp"}
	require.NoError(t, env.DealSvc.Create(ctx, d, "Ada"))
	require.NoError(t, env.DealSvc.Delete(ctx, d.ID))

	_, err := env.DealSvc.GetByID(ctx, d.ID)
	require.Error(t, err)
}
