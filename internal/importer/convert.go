package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/google/uuid"
)

// ImportResult holds the converted domain objects ready for persistence.
type ImportResult struct {
	Users []*domain.User
	Deals []*domain.Deal
}

// Convert transforms a validated ImportSchema into domain objects. Call
// ValidateImportSchema first; Convert assumes the schema is valid. Pod team
// members are resolved against the users in the same file (email first,
// then name), matching what the team service does against the directory.
// Each deal gets a "Deal Created" audit entry attributed to actor.
func Convert(schema *ImportSchema, actor string) (*ImportResult, error) {
	now := time.Now().UTC()

	users := make([]*domain.User, 0, len(schema.Users))
	for _, u := range schema.Users {
		users = append(users, &domain.User{
			ID:        uuid.New().String(),
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: now,
		})
	}

	deals := make([]*domain.Deal, 0, len(schema.Deals))
	for _, in := range schema.Deals {
		d, err := convertDeal(&in, users, actor, now)
		if err != nil {
			return nil, err
		}
		deals = append(deals, d)
	}

	return &ImportResult{Users: users, Deals: deals}, nil
}

func convertDeal(in *DealImport, directory []*domain.User, actor string, now time.Time) (*domain.Deal, error) {
	stage := domain.StageOrigination
	if in.Stage != "" {
		stage = domain.Stage(in.Stage)
	}
	progress, err := domain.StageProgress(stage)
	if err != nil {
		return nil, fmt.Errorf("deal %q: %w", in.Name, err)
	}

	dealType := domain.TypeOpportunity
	if in.Type != "" {
		dealType = domain.DealType(in.Type)
	}

	status := domain.DealActive
	switch {
	case dealType == domain.TypeOpportunity:
		status = domain.DealPending
	case stage == domain.StageClosed:
		status = domain.DealClosed
	}

	d := &domain.Deal{
		ID:       uuid.New().String(),
		Name:     in.Name,
		Client:   in.Client,
		Sector:   in.Sector,
		Value:    in.ValueMM,
		Lead:     in.Lead,
		DealType: dealType,
		Stage:    stage,
		Status:   status,
		Progress: progress,
		Notes:    in.Notes,

		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, m := range in.PodTeam {
		member := domain.PodTeamMember{
			Name:  m.Name,
			Role:  m.Role,
			Email: m.Email,
			Phone: m.Phone,
		}
		if u := domain.ResolveMember(directory, m.Email, m.Name); u != nil {
			member.UserID = u.ID
			if member.Email == "" {
				member.Email = u.Email
			}
		} else {
			member.UserID = uuid.New().String()
		}
		d.PodTeam = append(d.PodTeam, member)
	}

	for _, inv := range in.Investors {
		status := domain.InvestorContacted
		if inv.Status != "" {
			status = domain.InvestorStatus(inv.Status)
		}
		d.TaggedInvestors = append(d.TaggedInvestors, domain.TaggedInvestor{
			ID:     uuid.New().String(),
			Name:   inv.Name,
			Firm:   inv.Firm,
			Type:   domain.InvestorType(inv.Type),
			Status: status,
			Notes:  inv.Notes,
		})
	}

	d.AuditTrail = domain.AppendAudit(nil, domain.NewAuditEntry(
		domain.ActionDealCreated, actor,
		fmt.Sprintf("Deal %q imported for %s at stage %s", d.Name, d.Client, d.Stage)))

	return d, nil
}

// FormatErrors joins validation errors into one printable message.
func FormatErrors(errs []error) string {
	lines := make([]string, 0, len(errs))
	for _, err := range errs {
		lines = append(lines, "  - "+err.Error())
	}
	return strings.Join(lines, "\n")
}
