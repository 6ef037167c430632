package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSchema() *ImportSchema {
	return &ImportSchema{
		Users: []UserImport{
			{Name: "Ada Lovelace", Email: "ada@firm.com", Role: "VP"},
		},
		Deals: []DealImport{
			{
				Name:    "Project Atlas",
				Client:  "Atlas Corp",
				ValueMM: 250,
				Type:    "M&A",
				Stage:   "Negotiation",
				PodTeam: []MemberImport{
					{Name: "Ada Lovelace", Role: "VP", Email: "ada@firm.com"},
				},
				Investors: []InvestorImport{
					{Name: "KKR", Firm: "KKR & Co", Type: "PE", Status: "Interested"},
				},
			},
		},
	}
}

func TestValidateImportSchema_Valid(t *testing.T) {
	assert.Empty(t, ValidateImportSchema(validSchema()))
}

func TestValidateImportSchema_NoDeals(t *testing.T) {
	errs := ValidateImportSchema(&ImportSchema{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "at least one deal")
}

func TestValidateImportSchema_MissingDealFields(t *testing.T) {
	schema := &ImportSchema{Deals: []DealImport{{}}}
	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "deals[0].name")
	assert.Contains(t, errs[1].Error(), "deals[0].client")
}

func TestValidateImportSchema_BadEnums(t *testing.T) {
	schema := validSchema()
	schema.Deals[0].Type = "Retail"
	schema.Deals[0].Stage = "Ideation"
	schema.Deals[0].Investors[0].Status = "Ghosted"

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 3)
}

func TestValidateImportSchema_NegativeValue(t *testing.T) {
	schema := validSchema()
	schema.Deals[0].ValueMM = -1

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "value_mm")
}

func TestValidateImportSchema_IncompleteRosters(t *testing.T) {
	schema := validSchema()
	schema.Deals[0].PodTeam = append(schema.Deals[0].PodTeam, MemberImport{Name: "No Role"})
	schema.Deals[0].Investors = append(schema.Deals[0].Investors, InvestorImport{Firm: "No Name Capital"})

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 2)
}

func TestValidateImportSchema_DuplicateUserEmail(t *testing.T) {
	schema := validSchema()
	schema.Users = append(schema.Users, UserImport{Name: "Ada Clone", Email: "ADA@firm.com"})

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "more than once")
}

func TestValidateImportSchema_CollectsAllErrors(t *testing.T) {
	schema := &ImportSchema{
		Users: []UserImport{{}},
		Deals: []DealImport{{Stage: "Ideation"}},
	}
	errs := ValidateImportSchema(schema)
	assert.Len(t, errs, 4, "user name, deal name, deal client, deal stage")
}
