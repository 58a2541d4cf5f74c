// Package profile provides JSON persistence for candidate profiles: schema
// validation on load, wholesale serialization on save.
package profile

import (
	_ "embed"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed profile_schema.json
var profileSchemaJSON string

// ValidateSchema checks raw profile JSON against the embedded schema before
// it is unmarshaled. Returns a SchemaValidationError listing every violation.
func ValidateSchema(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(profileSchemaJSON)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return &SchemaValidationError{Problems: []string{err.Error()}}
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, resultErr := range result.Errors() {
		problems = append(problems, resultErr.String())
	}
	return &SchemaValidationError{Problems: problems}
}

// SchemaValidationError reports profile JSON that does not match the schema
type SchemaValidationError struct {
	Problems []string
}

func (e *SchemaValidationError) Error() string {
	return "profile JSON failed schema validation: " + strings.Join(e.Problems, "; ")
}
