package domain

import (
	"fmt"
	"time"
)

// Deal is the aggregate for one advisory engagement or prospect. Its
// collections are insertion-ordered and always persisted whole, together
// with the scalar fields, in a single write.
type Deal struct {
	ID       string
	Name     string
	Client   string
	Sector   string
	Value    float64 // USD millions
	Lead     string
	DealType DealType
	Stage    Stage
	Status   DealStatus
	Progress int // derived from Stage, 0-100
	Notes    string

	PodTeam         []PodTeamMember
	TaggedInvestors []TaggedInvestor
	Attachments     []Attachment
	AuditTrail      []AuditEntry

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the fields required before a deal can be created.
func (d *Deal) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("deal name is required")
	}
	if d.Client == "" {
		return fmt.Errorf("client is required")
	}
	return nil
}

// DisplayID returns a short identifier for display, truncating the
// UUID to 8 characters.
func (d *Deal) DisplayID() string {
	if len(d.ID) >= 8 {
		return d.ID[:8]
	}
	return d.ID
}

// IsOpportunity reports whether the deal is still untriaged.
func (d *Deal) IsOpportunity() bool {
	return d.DealType == TypeOpportunity
}

// PromotedType maps a division choice to the deal type an opportunity
// takes on approval.
func PromotedType(div Division) (DealType, error) {
	switch div {
	case DivisionInvestmentBanking:
		return TypeMergersAcq, nil
	case DivisionAssetManagement:
		return TypeAssetManagement, nil
	default:
		return "", fmt.Errorf("unknown division %q (expected %q or %q)",
			div, DivisionInvestmentBanking, DivisionAssetManagement)
	}
}
