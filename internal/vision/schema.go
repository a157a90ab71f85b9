package vision

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/kelechimadu/invoice-tally/constants"
)

// BuildReplyJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the reply shape we ask the model for. It is used
// locally to spot drift from the prompt contract before normalization.
func BuildReplyJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"parts": map[string]any{"type": "number", "minimum": 0.0},
			"labor": map[string]any{"type": "number", "minimum": 0.0},
			"tax": map[string]any{
				"oneOf": []map[string]any{
					{"type": "number"},
					{"type": "string"},
				},
			},
			"flagged": map[string]any{"type": "boolean"},
			"confidence": map[string]any{
				"type": "string",
				"enum": constants.ConfidenceLevels,
			},
		},
		"required": []string{"parts"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
