package entities

import "errors"

var (
	ErrLineItemIndexOutOfRange = errors.New("line item index out of range")
	ErrUnknownLineItemField    = errors.New("unknown line item field")
)

// LineItemField names an editable column of a line item.
type LineItemField string

const (
	LineItemFieldDescription LineItemField = "description"
	LineItemFieldQuantity    LineItemField = "quantity"
	LineItemFieldUnitCost    LineItemField = "unit_cost"
)

// ProposalForm is the editable state behind a proposal before submission.
//
// Invariants:
//   - LineItems[i].Item == i+1 after every add/remove.
//   - Choosing a description prices the row from the catalog (0 when unknown);
//     a later manual unit_cost edit is kept as-is.
//
// A ProposalForm belongs to a single caller and is not safe for concurrent use.
type ProposalForm struct {
	ProposalID     string
	Customer       Customer
	ServiceDetails ServiceDetails
	TravelFee      TravelFee
	Notes          string
	LineItems      []LineItem
}

func NewProposalForm() *ProposalForm {
	return &ProposalForm{
		TravelFee: TravelFee{Zone: DefaultTravelZone},
		LineItems: []LineItem{},
	}
}

// AddLineItem appends a blank row and returns it.
func (f *ProposalForm) AddLineItem() LineItem {
	li := LineItem{
		Item:        len(f.LineItems) + 1,
		Description: "",
		Quantity:    1,
		UnitCost:    0,
	}
	f.LineItems = append(f.LineItems, li)
	return li
}

// RemoveLineItem drops the row at index and renumbers the rest. An index out
// of range leaves the form untouched and reports false.
func (f *ProposalForm) RemoveLineItem(index int) bool {
	if index < 0 || index >= len(f.LineItems) {
		return false
	}
	updated := make([]LineItem, 0, len(f.LineItems)-1)
	updated = append(updated, f.LineItems[:index]...)
	updated = append(updated, f.LineItems[index+1:]...)
	for i := range updated {
		updated[i].Item = i + 1
	}
	f.LineItems = updated
	return true
}

// UpdateLineItem sets one field of the row at index from raw form input.
// Numeric fields are coerced, never rejected.
func (f *ProposalForm) UpdateLineItem(index int, field LineItemField, value string) error {
	if index < 0 || index >= len(f.LineItems) {
		return ErrLineItemIndexOutOfRange
	}
	li := &f.LineItems[index]

	switch field {
	case LineItemFieldQuantity:
		li.Quantity = CoerceNumber(value)
	case LineItemFieldUnitCost:
		li.UnitCost = CoerceNumber(value)
	case LineItemFieldDescription:
		li.Description = value
		price, _ := CatalogPrice(value)
		li.UnitCost = Number(price)
	default:
		return ErrUnknownLineItemField
	}
	return nil
}

func (f *ProposalForm) SetCustomer(c Customer) {
	f.Customer = c
}

func (f *ProposalForm) SetServiceDetails(d ServiceDetails) {
	f.ServiceDetails = d
}

func (f *ProposalForm) SetTravelZone(zone TravelZone) {
	f.TravelFee = TravelFee{Zone: zone}
}

func (f *ProposalForm) SetNotes(notes string) {
	f.Notes = notes
}

// Build snapshots the current state into a Proposal. Later edits to the form
// do not leak into the returned value.
func (f *ProposalForm) Build() Proposal {
	items := make([]LineItem, len(f.LineItems))
	copy(items, f.LineItems)
	return Proposal{
		ProposalID:     f.ProposalID,
		Customer:       f.Customer,
		ServiceDetails: f.ServiceDetails,
		TravelFee:      f.TravelFee,
		Notes:          f.Notes,
		LineItems:      items,
	}
}
