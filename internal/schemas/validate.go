// Package schemas provides JSON Schema validation for structured service
// output. Schemas ship inside the binary.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed fit_analysis.json
var fitAnalysisSchema string

// ShapeError reports which fields of a candidate document failed validation
type ShapeError struct {
	Failures []string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("schema validation failed: %s", strings.Join(e.Failures, "; "))
}

// ValidateFitAnalysis checks a candidate JSON document against the
// fit-analysis shape. The caller treats any error as a degraded parse, not
// as a hard failure.
func ValidateFitAnalysis(jsonText string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(fitAnalysisSchema),
		gojsonschema.NewStringLoader(jsonText),
	)
	if err != nil {
		return fmt.Errorf("schema validation could not run: %w", err)
	}

	if !result.Valid() {
		var failures []string
		for _, desc := range result.Errors() {
			failures = append(failures, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return &ShapeError{Failures: failures}
	}

	return nil
}
