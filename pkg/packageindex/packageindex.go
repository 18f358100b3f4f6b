package packageindex

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// Status classifies a package_index.json validation outcome.
type Status string

const (
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped" // file absent, which is normal
	StatusInvalid Status = "invalid"
)

// Report is the outcome of validating one index file.
type Report struct {
	Status Status
	Path   string
	Issues []string
}

// indexSchema covers the parts of package_index.json the tool scan
// relies on: package names, and name+version on every tool.
var indexSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"packages": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name": map[string]any{"type": "string"},
					"platforms": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"name":    map[string]any{"type": "string"},
								"version": map[string]any{"type": "string"},
							},
							"required": []string{"version"},
						},
					},
					"tools": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"name":    map[string]any{"type": "string"},
								"version": map[string]any{"type": "string"},
							},
							"required": []string{"name", "version"},
						},
					},
				},
				"required": []string{"name"},
			},
		},
	},
	"required": []string{"packages"},
}

// Validate checks the index file at path against the schema. A missing
// file is Skipped, not an error; malformed content is Invalid with the
// problems listed.
func Validate(path string) (Report, error) {
	report := Report{Path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		report.Status = StatusSkipped
		return report, nil
	}
	if err != nil {
		return report, err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		report.Status = StatusInvalid
		report.Issues = append(report.Issues, fmt.Sprintf("not valid JSON: %v", err))
		return report, nil
	}

	schemaLoader := gojsonschema.NewGoLoader(indexSchema)
	documentLoader := gojsonschema.NewGoLoader(doc)
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return report, fmt.Errorf("failed to validate %s: %w", path, err)
	}

	if !result.Valid() {
		report.Status = StatusInvalid
		for _, desc := range result.Errors() {
			report.Issues = append(report.Issues, desc.String())
		}
		return report, nil
	}

	report.Status = StatusOK
	return report, nil
}
