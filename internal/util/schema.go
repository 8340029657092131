package util

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidateArguments checks a raw JSON argument payload against a JSON-schema
// map. The returned error names every offending field, not just the first,
// so the model (or user) gets a complete remediation list in one pass.
func ValidateArguments(schema map[string]any, payload []byte) error {
	if len(payload) == 0 {
		payload = []byte("{}")
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewBytesLoader(payload),
	)
	if err != nil {
		return fmt.Errorf("arguments are not valid JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "(root)" {
			problems = append(problems, desc.Description())
			continue
		}
		problems = append(problems, fmt.Sprintf("%s: %s", field, desc.Description()))
	}
	return fmt.Errorf("%s", strings.Join(problems, "; "))
}
