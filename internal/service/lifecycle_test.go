package service_test

import (
	"context"
	"testing"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full lifecycle of one deal through create, stage change, and a team
// roster round-trip, checking the audit trail tells the whole story in
// order.
func TestDealLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	d := &domain.Deal{
		Name:     "Project Atlas",
		Client:   "Atlas Corp",
		DealType: domain.TypeMergersAcq,
		Value:    500,
	}
	require.NoError(t, env.DealSvc.Create(ctx, d, "Ada"))

	created, err := env.DealSvc.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageOrigination, created.Stage)
	assert.Equal(t, 17, created.Progress)

	closed, err := env.DealSvc.ChangeStage(ctx, d.ID, domain.StageClosed, "Ada")
	require.NoError(t, err)
	assert.Equal(t, 100, closed.Progress)
	assert.Equal(t, domain.DealClosed, closed.Status)

	withMember, err := env.TeamSvc.AddMember(ctx, d.ID,
		domain.PodTeamMember{Name: "A", Role: "Analyst"}, "Ada")
	require.NoError(t, err)
	require.Len(t, withMember.PodTeam, 1)

	final, err := env.TeamSvc.RemoveMember(ctx, d.ID, 0, "Ada")
	require.NoError(t, err)
	assert.Empty(t, final.PodTeam)

	require.Len(t, final.AuditTrail, 4)
	actions := []domain.AuditAction{
		final.AuditTrail[0].Action,
		final.AuditTrail[1].Action,
		final.AuditTrail[2].Action,
		final.AuditTrail[3].Action,
	}
	assert.Equal(t, []domain.AuditAction{
		domain.ActionDealCreated,
		domain.ActionStageChanged,
		domain.ActionTeamMemberAdded,
		domain.ActionTeamMemberRemoved,
	}, actions)
}

// An opportunity's full triage path: arrive pending, promote into a
// division, and verify it leaves the triage queue as a typed deal.
func TestOpportunityTriageLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	d := &domain.Deal{Name: "Prospect Helios", Client: "Helios Energy", Value: 120}
	require.NoError(t, env.DealSvc.Create(ctx, d, "Ada"))

	pending, err := env.OpportunitySvc.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, domain.DealPending, pending[0].Status)

	promoted, err := env.OpportunitySvc.Promote(ctx, d.ID, domain.DivisionInvestmentBanking, "Grace")
	require.NoError(t, err)
	assert.Equal(t, domain.TypeMergersAcq, promoted.DealType)
	assert.Equal(t, domain.DealActive, promoted.Status)

	pending, err = env.OpportunitySvc.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending, "promoted deals leave the triage queue")

	// A second promotion must fail: the deal is no longer an opportunity.
	_, err = env.OpportunitySvc.Promote(ctx, d.ID, domain.DivisionAssetManagement, "Grace")
	require.Error(t, err)
}
