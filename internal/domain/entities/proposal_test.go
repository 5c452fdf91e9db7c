package entities

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestFormatProposalID(t *testing.T) {
	at := time.Date(2024, 1, 1, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600))
	got := FormatProposalID(at, 123)
	// 23:30 at UTC-5 is already the 2nd in UTC.
	if got != "PROP-20240102-123" {
		t.Fatalf("unexpected id %q", got)
	}
	if !IsProposalID(got) {
		t.Fatalf("expected %q to match the id pattern", got)
	}
	if IsProposalID("PROP-2024-1") || IsProposalID("") {
		t.Fatalf("expected malformed ids to be rejected")
	}
}

func TestProposal_PrettyJSONRoundTrip(t *testing.T) {
	p := Proposal{
		ProposalID: "PROP-20240101-123",
		Customer:   Customer{FirstName: "Jane", LastName: "Doe", Company: "Acme", Email: "jane@acme.test"},
		ServiceDetails: ServiceDetails{
			ServiceType:   ServiceTypeHVACRepair,
			RequestedDate: "2024-01-15",
		},
		TravelFee: TravelFee{Zone: TravelZone2},
		Notes:     "call first",
		LineItems: []LineItem{{Item: 1, Description: "AC Repair", Quantity: 2, UnitCost: 200}},
	}

	out, err := json.MarshalIndent(p, "", "    ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var back Proposal
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(p, back) {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", p, back)
	}
}

func TestProposal_EmptyLineItemsEncodeAsArray(t *testing.T) {
	out, err := json.Marshal(NewProposalForm().Build())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"proposal_id":"","customer":{"first_name":"","last_name":"","company":"","email":""},` +
		`"service_details":{"service_type":"","requested_date":""},"travel_fee":{"zone":"Zone 1"},` +
		`"notes":"","line_items":[]}`
	if string(out) != want {
		t.Fatalf("unexpected json:\n%s\nwant\n%s", out, want)
	}
}
