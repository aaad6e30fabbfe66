package render

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/resume.schema.json
var resumeSchemaJSON string

var resumeSchema = gojsonschema.NewStringLoader(resumeSchemaJSON)

// ValidateRequestBody checks a decoded-but-unvalidated request body against
// the resume JSON schema. Field validation is a thin pass-through to the
// schema library; violations map to ErrInvalidInput.
func ValidateRequestBody(body []byte) error {
	result, err := gojsonschema.Validate(resumeSchema, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}
