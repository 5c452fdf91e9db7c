package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"proposal_relay/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

// formFile is the YAML shape accepted by `proposalctl submit`. Numbers are
// read as text so they go through the same coercion as typed form input.
type formFile struct {
	ProposalID     string                 `yaml:"proposal_id"`
	Customer       formFileCustomer       `yaml:"customer"`
	ServiceDetails formFileServiceDetails `yaml:"service_details"`
	Zone           string                 `yaml:"zone"`
	Notes          string                 `yaml:"notes"`
	LineItems      []formFileLineItem     `yaml:"line_items"`
}

var errInvalidFormProposalID = errors.New("proposal_id must look like PROP-YYYYMMDD-NNN")

type formFileCustomer struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Company   string `yaml:"company"`
	Email     string `yaml:"email"`
}

type formFileServiceDetails struct {
	ServiceType   string `yaml:"service_type"`
	RequestedDate string `yaml:"requested_date"`
}

type formFileLineItem struct {
	Description string  `yaml:"description"`
	Quantity    *string `yaml:"quantity"`
	UnitCost    *string `yaml:"unit_cost"`
}

func loadFormFile(path string) (*entities.ProposalForm, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read form file: %w", err)
	}
	return parseFormFile(raw)
}

func parseFormFile(raw []byte) (*entities.ProposalForm, error) {
	var ff formFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&ff); err != nil {
		return nil, fmt.Errorf("parse form file: %w", err)
	}
	return ff.toForm()
}

// toForm replays the file through the form operations, so catalog pricing
// applies first and an explicit unit_cost overrides it.
func (ff formFile) toForm() (*entities.ProposalForm, error) {
	if ff.ProposalID != "" && !entities.IsProposalID(ff.ProposalID) {
		return nil, fmt.Errorf("%w: %q", errInvalidFormProposalID, ff.ProposalID)
	}

	form := entities.NewProposalForm()
	form.ProposalID = ff.ProposalID
	form.SetCustomer(entities.Customer{
		FirstName: ff.Customer.FirstName,
		LastName:  ff.Customer.LastName,
		Company:   ff.Customer.Company,
		Email:     ff.Customer.Email,
	})
	form.SetServiceDetails(entities.ServiceDetails{
		ServiceType:   entities.ServiceType(ff.ServiceDetails.ServiceType),
		RequestedDate: ff.ServiceDetails.RequestedDate,
	})
	if ff.Zone != "" {
		form.SetTravelZone(entities.TravelZone(ff.Zone))
	}
	form.SetNotes(ff.Notes)

	for i, li := range ff.LineItems {
		form.AddLineItem()
		if err := form.UpdateLineItem(i, entities.LineItemFieldDescription, li.Description); err != nil {
			return nil, fmt.Errorf("line item %d: %w", i+1, err)
		}
		if li.Quantity != nil {
			if err := form.UpdateLineItem(i, entities.LineItemFieldQuantity, *li.Quantity); err != nil {
				return nil, fmt.Errorf("line item %d: %w", i+1, err)
			}
		}
		if li.UnitCost != nil {
			if err := form.UpdateLineItem(i, entities.LineItemFieldUnitCost, *li.UnitCost); err != nil {
				return nil, fmt.Errorf("line item %d: %w", i+1, err)
			}
		}
	}
	return form, nil
}
