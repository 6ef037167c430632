package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dealdesk/internal/domain"
)

var validDealTypes = map[string]bool{
	string(domain.TypeOpportunity):     true,
	string(domain.TypeMergersAcq):      true,
	string(domain.TypeAssetManagement): true,
}

var validInvestorTypes = map[string]bool{
	string(domain.InvestorPE):              true,
	string(domain.InvestorVC):              true,
	string(domain.InvestorStrategic):       true,
	string(domain.InvestorFamilyOffice):    true,
	string(domain.InvestorHedgeFund):       true,
	string(domain.InvestorSovereignWealth): true,
}

// ValidateImportSchema checks the import schema before conversion. Returns
// every validation error found so the user can fix the file in one pass.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateUsers(schema.Users)...)

	if len(schema.Deals) == 0 {
		errs = append(errs, fmt.Errorf("deals: at least one deal is required"))
	}
	for i, d := range schema.Deals {
		errs = append(errs, validateDeal(i, &d)...)
	}

	return errs
}

func validateUsers(users []UserImport) []error {
	var errs []error
	seen := make(map[string]bool)

	for i, u := range users {
		if u.Name == "" {
			errs = append(errs, fmt.Errorf("users[%d].name is required", i))
		}
		if u.Email != "" {
			key := strings.ToLower(u.Email)
			if seen[key] {
				errs = append(errs, fmt.Errorf("users[%d].email %q appears more than once", i, u.Email))
			}
			seen[key] = true
		}
	}
	return errs
}

func validateDeal(i int, d *DealImport) []error {
	var errs []error

	if d.Name == "" {
		errs = append(errs, fmt.Errorf("deals[%d].name is required", i))
	}
	if d.Client == "" {
		errs = append(errs, fmt.Errorf("deals[%d].client is required", i))
	}
	if d.ValueMM < 0 {
		errs = append(errs, fmt.Errorf("deals[%d].value_mm must not be negative", i))
	}
	if d.Type != "" && !validDealTypes[d.Type] {
		errs = append(errs, fmt.Errorf("deals[%d].type: invalid value %q", i, d.Type))
	}
	if d.Stage != "" && domain.StageIndex(domain.Stage(d.Stage)) < 0 {
		errs = append(errs, fmt.Errorf("deals[%d].stage: invalid value %q", i, d.Stage))
	}

	for j, m := range d.PodTeam {
		if m.Name == "" {
			errs = append(errs, fmt.Errorf("deals[%d].pod_team[%d].name is required", i, j))
		}
		if m.Role == "" {
			errs = append(errs, fmt.Errorf("deals[%d].pod_team[%d].role is required", i, j))
		}
	}

	for j, inv := range d.Investors {
		if inv.Name == "" {
			errs = append(errs, fmt.Errorf("deals[%d].investors[%d].name is required", i, j))
		}
		if inv.Firm == "" {
			errs = append(errs, fmt.Errorf("deals[%d].investors[%d].firm is required", i, j))
		}
		if inv.Type != "" && !validInvestorTypes[inv.Type] {
			errs = append(errs, fmt.Errorf("deals[%d].investors[%d].type: invalid value %q", i, j, inv.Type))
		}
		if inv.Status != "" && !domain.ValidInvestorStatuses[domain.InvestorStatus(inv.Status)] {
			errs = append(errs, fmt.Errorf("deals[%d].investors[%d].status: invalid value %q", i, j, inv.Status))
		}
	}

	return errs
}
