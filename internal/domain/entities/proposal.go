package entities

import (
	"fmt"
	"regexp"
	"time"
)

// Proposal is the document forwarded to the automation webhook.
//
// Field order here is the wire order of the pretty-printed document shown to
// the user, so keep it stable.
type Proposal struct {
	ProposalID     string         `json:"proposal_id"`
	Customer       Customer       `json:"customer"`
	ServiceDetails ServiceDetails `json:"service_details"`
	TravelFee      TravelFee      `json:"travel_fee"`
	Notes          string         `json:"notes"`
	LineItems      []LineItem     `json:"line_items"`
}

type Customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Email     string `json:"email"`
}

type ServiceDetails struct {
	ServiceType   ServiceType `json:"service_type"`
	RequestedDate string      `json:"requested_date"`
}

type TravelFee struct {
	Zone TravelZone `json:"zone"`
}

// LineItem is one priced row. Item is the 1-based position in the list.
type LineItem struct {
	Item        int    `json:"item"`
	Description string `json:"description"`
	Quantity    Number `json:"quantity"`
	UnitCost    Number `json:"unit_cost"`
}

var proposalIDPattern = regexp.MustCompile(`^PROP-\d{8}-\d{3}$`)

// FormatProposalID renders PROP-YYYYMMDD-NNN using the UTC date of at.
func FormatProposalID(at time.Time, suffix int) string {
	return fmt.Sprintf("PROP-%s-%03d", at.UTC().Format("20060102"), suffix)
}

func IsProposalID(s string) bool {
	return proposalIDPattern.MatchString(s)
}
