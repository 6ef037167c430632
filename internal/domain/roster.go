package domain

import "fmt"

// PodTeamMember is one entry of a deal's working team. UserID links to the
// user directory when the member was resolved at add-time; members without
// a directory match carry a freshly generated ID and are treated as
// external contacts.
type PodTeamMember struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Chat   string `json:"chat,omitempty"`
}

// TaggedInvestor is one investor tracked against a deal.
type TaggedInvestor struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Firm   string         `json:"firm"`
	Type   InvestorType   `json:"type"`
	Status InvestorStatus `json:"status"`
	Notes  string         `json:"notes,omitempty"`
}

// Roster mutators return a new slice and leave the input untouched, the
// same replace-on-write discipline as the audit trail: the caller persists
// the full resulting collection together with its audit entry.

// AddTeamMember validates and appends a member.
func AddTeamMember(roster []PodTeamMember, m PodTeamMember) ([]PodTeamMember, error) {
	if m.Name == "" || m.Role == "" {
		return nil, fmt.Errorf("team member requires a name and a role")
	}
	out := make([]PodTeamMember, 0, len(roster)+1)
	out = append(out, roster...)
	out = append(out, m)
	return out, nil
}

// RemoveTeamMember removes the member at the given index. A miss is an
// error; nothing is written and no audit entry should be produced for it.
func RemoveTeamMember(roster []PodTeamMember, index int) ([]PodTeamMember, PodTeamMember, error) {
	if index < 0 || index >= len(roster) {
		return nil, PodTeamMember{}, fmt.Errorf("no team member at index %d (roster has %d)", index, len(roster))
	}
	removed := roster[index]
	out := make([]PodTeamMember, 0, len(roster)-1)
	out = append(out, roster[:index]...)
	out = append(out, roster[index+1:]...)
	return out, removed, nil
}

// TagInvestor validates and appends an investor.
func TagInvestor(roster []TaggedInvestor, inv TaggedInvestor) ([]TaggedInvestor, error) {
	if inv.Name == "" || inv.Firm == "" {
		return nil, fmt.Errorf("investor requires a name and a firm")
	}
	out := make([]TaggedInvestor, 0, len(roster)+1)
	out = append(out, roster...)
	out = append(out, inv)
	return out, nil
}

// RemoveInvestor filters out the investor with the given ID.
func RemoveInvestor(roster []TaggedInvestor, id string) ([]TaggedInvestor, TaggedInvestor, error) {
	idx := -1
	for i, inv := range roster {
		if inv.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, TaggedInvestor{}, fmt.Errorf("investor %q not tagged on this deal", id)
	}
	removed := roster[idx]
	out := make([]TaggedInvestor, 0, len(roster)-1)
	out = append(out, roster[:idx]...)
	out = append(out, roster[idx+1:]...)
	return out, removed, nil
}

// SetInvestorStatus map-replaces the status of the investor with the given
// ID. The status must be a member of the fixed vocabulary.
func SetInvestorStatus(roster []TaggedInvestor, id string, status InvestorStatus) ([]TaggedInvestor, TaggedInvestor, error) {
	if !ValidInvestorStatuses[status] {
		return nil, TaggedInvestor{}, fmt.Errorf("unknown investor status %q", status)
	}
	out := make([]TaggedInvestor, len(roster))
	var updated *TaggedInvestor
	for i, inv := range roster {
		if inv.ID == id {
			inv.Status = status
			updated = &inv
		}
		out[i] = inv
	}
	if updated == nil {
		return nil, TaggedInvestor{}, fmt.Errorf("investor %q not tagged on this deal", id)
	}
	return out, *updated, nil
}
