package api

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const analyzeSchemaURL = "schema://analyze_request.json"

//go:embed schema/analyze_request.json
var analyzeSchemaJSON []byte

var (
	analyzeSchemaOnce sync.Once
	analyzeSchema     *jsonschema.Schema
	analyzeSchemaErr  error
)

// compiledAnalyzeSchema compiles the embedded request schema once.
func compiledAnalyzeSchema() (*jsonschema.Schema, error) {
	analyzeSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(analyzeSchemaJSON, &def); err != nil {
			analyzeSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(analyzeSchemaURL, def); err != nil {
			analyzeSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		analyzeSchema, analyzeSchemaErr = c.Compile(analyzeSchemaURL)
	})
	return analyzeSchema, analyzeSchemaErr
}

// validateAnalyzeRequest checks raw against the request schema.
func validateAnalyzeRequest(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := compiledAnalyzeSchema()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
