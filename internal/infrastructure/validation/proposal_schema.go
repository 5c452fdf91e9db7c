package validation

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// proposalSchema describes the intended shape of a relayed proposal. It is
// advisory: the relay forwards whatever it receives, so quantity and
// unit_cost also accept null (how NaN serializes).
const proposalSchema = `{
  "type": "object",
  "required": ["proposal_id", "customer", "service_details", "travel_fee", "notes", "line_items"],
  "properties": {
    "proposal_id": {"type": "string", "pattern": "^PROP-[0-9]{8}-[0-9]{3}$"},
    "customer": {
      "type": "object",
      "required": ["first_name", "last_name", "company", "email"],
      "properties": {
        "first_name": {"type": "string"},
        "last_name": {"type": "string"},
        "company": {"type": "string"},
        "email": {"type": "string"}
      }
    },
    "service_details": {
      "type": "object",
      "required": ["service_type", "requested_date"],
      "properties": {
        "service_type": {"type": "string"},
        "requested_date": {"type": "string"}
      }
    },
    "travel_fee": {
      "type": "object",
      "required": ["zone"],
      "properties": {
        "zone": {"enum": ["Zone 1", "Zone 2", "Zone 3", "Zone 4"]}
      }
    },
    "notes": {"type": "string"},
    "line_items": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["item", "description", "quantity", "unit_cost"],
        "properties": {
          "item": {"type": "integer", "minimum": 1},
          "description": {"type": "string"},
          "quantity": {"type": ["number", "null"]},
          "unit_cost": {"type": ["number", "null"]}
        }
      }
    }
  }
}`

var compiledProposalSchema = func() *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(proposalSchema))
	if err != nil {
		panic(fmt.Sprintf("proposal schema does not compile: %v", err))
	}
	return s
}()

// CheckProposalShape reports how payload deviates from the proposal schema.
// An empty result means the payload looks like a proposal.
func CheckProposalShape(payload json.RawMessage) ([]string, error) {
	result, err := compiledProposalSchema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return nil, fmt.Errorf("validate proposal shape: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return problems, nil
}
