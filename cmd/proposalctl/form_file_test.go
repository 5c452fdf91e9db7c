package main

import (
	"os"
	"path/filepath"
	"testing"

	"proposal_relay/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFormYAML = `
customer:
  first_name: Jane
  last_name: Doe
  company: Acme
  email: jane@acme.test
service_details:
  service_type: HVAC Repair
  requested_date: "2024-01-15"
zone: Zone 3
notes: Back door access
line_items:
  - description: AC Repair
    quantity: 2
  - description: Filter Replacement
    unit_cost: "45.5"
  - description: Custom work
    quantity: "3"
`

func TestParseFormFile(t *testing.T) {
	form, err := parseFormFile([]byte(sampleFormYAML))
	require.NoError(t, err)

	assert.Equal(t, "Jane", form.Customer.FirstName)
	assert.Equal(t, "jane@acme.test", form.Customer.Email)
	assert.Equal(t, entities.ServiceTypeHVACRepair, form.ServiceDetails.ServiceType)
	assert.Equal(t, "2024-01-15", form.ServiceDetails.RequestedDate)
	assert.Equal(t, entities.TravelZone3, form.TravelFee.Zone)
	assert.Equal(t, "Back door access", form.Notes)
	assert.Empty(t, form.ProposalID)

	require.Len(t, form.LineItems, 3)
	assert.Equal(t, entities.LineItem{Item: 1, Description: "AC Repair", Quantity: 2, UnitCost: 200}, form.LineItems[0])
	assert.Equal(t, entities.LineItem{Item: 2, Description: "Filter Replacement", Quantity: 1, UnitCost: 45.5}, form.LineItems[1])
	assert.Equal(t, entities.LineItem{Item: 3, Description: "Custom work", Quantity: 3, UnitCost: 0}, form.LineItems[2])
}

func TestParseFormFile_Defaults(t *testing.T) {
	form, err := parseFormFile([]byte("customer:\n  first_name: Jo\n"))
	require.NoError(t, err)

	assert.Equal(t, entities.DefaultTravelZone, form.TravelFee.Zone)
	assert.NotNil(t, form.LineItems)
	assert.Empty(t, form.LineItems)
}

func TestParseFormFile_NonNumericQuantityIsKept(t *testing.T) {
	form, err := parseFormFile([]byte("line_items:\n  - description: AC Repair\n    quantity: lots\n"))
	require.NoError(t, err)

	require.Len(t, form.LineItems, 1)
	assert.True(t, form.LineItems[0].Quantity.IsNaN())
}

func TestParseFormFile_ProposalID(t *testing.T) {
	form, err := parseFormFile([]byte("proposal_id: PROP-20240101-123\n"))
	require.NoError(t, err)
	assert.Equal(t, "PROP-20240101-123", form.ProposalID)

	for _, bad := range []string{"PROP-2024-1", "prop-20240101-123", "PROP-20240101-1234"} {
		_, err := parseFormFile([]byte("proposal_id: " + bad + "\n"))
		assert.ErrorIs(t, err, errInvalidFormProposalID, bad)
	}
}

func TestParseFormFile_UnknownField(t *testing.T) {
	_, err := parseFormFile([]byte("customer:\n  nickname: J\n"))
	assert.Error(t, err)
}

func TestLoadFormFile_Missing(t *testing.T) {
	_, err := loadFormFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
