// Package importer loads a pipeline snapshot from a JSON file: directory
// users plus deals with their pod teams and tagged investors. Files are
// validated as a whole before anything is converted or written.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for a pipeline import.
type ImportSchema struct {
	Users []UserImport `json:"users,omitempty"`
	Deals []DealImport `json:"deals"`
}

// UserImport defines one directory user in the import file.
type UserImport struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// DealImport defines one deal in the import file.
type DealImport struct {
	Name      string           `json:"name"`
	Client    string           `json:"client"`
	Sector    string           `json:"sector,omitempty"`
	ValueMM   float64          `json:"value_mm,omitempty"`
	Lead      string           `json:"lead,omitempty"`
	Type      string           `json:"type,omitempty"`
	Stage     string           `json:"stage,omitempty"`
	Notes     string           `json:"notes,omitempty"`
	PodTeam   []MemberImport   `json:"pod_team,omitempty"`
	Investors []InvestorImport `json:"investors,omitempty"`
}

// MemberImport defines one pod team member on an imported deal.
type MemberImport struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// InvestorImport defines one tagged investor on an imported deal.
type InvestorImport struct {
	Name   string `json:"name"`
	Firm   string `json:"firm"`
	Type   string `json:"type,omitempty"`
	Status string `json:"status,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// LoadImportSchema reads and parses a pipeline import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
