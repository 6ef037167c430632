package domain

// Stage is one step of the fixed deal lifecycle.
type Stage string

const (
	StageOrigination  Stage = "Origination"
	StageExecution    Stage = "Execution"
	StageNegotiation  Stage = "Negotiation"
	StageDueDiligence Stage = "Due Diligence"
	StageSigning      Stage = "Signing"
	StageClosed       Stage = "Closed"
)

// Stages is the canonical ordered lifecycle. Progress is derived from the
// position of a deal's stage in this list.
var Stages = []Stage{
	StageOrigination,
	StageExecution,
	StageNegotiation,
	StageDueDiligence,
	StageSigning,
	StageClosed,
}

type DealType string

const (
	TypeOpportunity     DealType = "Opportunity"
	TypeMergersAcq      DealType = "M&A"
	TypeAssetManagement DealType = "Asset Management"
)

// Division is the business line an opportunity is promoted into.
type Division string

const (
	DivisionInvestmentBanking Division = "Investment Banking"
	DivisionAssetManagement   Division = "Asset Management"
)

type DealStatus string

const (
	DealActive  DealStatus = "active"
	DealPending DealStatus = "pending"
	DealOnHold  DealStatus = "on_hold"
	DealClosed  DealStatus = "closed"
)

type InvestorType string

const (
	InvestorPE              InvestorType = "PE"
	InvestorVC              InvestorType = "VC"
	InvestorStrategic       InvestorType = "Strategic"
	InvestorFamilyOffice    InvestorType = "Family Office"
	InvestorHedgeFund       InvestorType = "Hedge Fund"
	InvestorSovereignWealth InvestorType = "Sovereign Wealth"
)

type InvestorStatus string

const (
	InvestorContacted  InvestorStatus = "Contacted"
	InvestorInterested InvestorStatus = "Interested"
	InvestorInDD       InvestorStatus = "In DD"
	InvestorTermSheet  InvestorStatus = "Term Sheet"
	InvestorPassed     InvestorStatus = "Passed"
	InvestorClosedOut  InvestorStatus = "Closed"
)

// ValidInvestorStatuses is the canonical set of accepted investor status strings.
var ValidInvestorStatuses = map[InvestorStatus]bool{
	InvestorContacted:  true,
	InvestorInterested: true,
	InvestorInDD:       true,
	InvestorTermSheet:  true,
	InvestorPassed:     true,
	InvestorClosedOut:  true,
}

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

// Availability classifies how loaded a team member currently is.
type Availability string

const (
	Available Availability = "Available"
	Light     Availability = "Light"
	Busy      Availability = "Busy"
)

// AuditAction is the fixed vocabulary of audit trail action labels.
type AuditAction string

const (
	ActionDealCreated           AuditAction = "Deal Created"
	ActionStageChanged          AuditAction = "Stage Changed"
	ActionTeamMemberAdded       AuditAction = "Team Member Added"
	ActionTeamMemberRemoved     AuditAction = "Team Member Removed"
	ActionInvestorTagged        AuditAction = "Investor Tagged"
	ActionInvestorStatusUpdated AuditAction = "Investor Status Updated"
	ActionInvestorRemoved       AuditAction = "Investor Removed"
	ActionAttachmentAdded       AuditAction = "Attachment Added"
	ActionAttachmentRemoved     AuditAction = "Attachment Removed"
	ActionOpportunityPromoted   AuditAction = "Opportunity Promoted"
	ActionNotesUpdated          AuditAction = "Notes Updated"
)
