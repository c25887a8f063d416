package exposureprobe

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"
)

const schemaDraft = "http://json-schema.org/draft-07/schema#"

// Envelope is the documented shape of a successful exposure response.
type Envelope struct {
	Analysis []AnalysisRow `json:"analysis,omitempty" jsonschema:"description=Exposure metrics per endpoint and path"`
}

// AnalysisRow documents the fields an AnalysisItem may carry.
type AnalysisRow struct {
	Endpoint             string `json:"endpoint,omitempty"              jsonschema:"description=API endpoint the responses came from"`
	Path                 string `json:"path,omitempty"                  jsonschema:"description=Screen path within the endpoint"`
	TotalResponses       int    `json:"total_responses,omitempty"       jsonschema:"minimum=0"`
	UniqueUsers          int    `json:"unique_users,omitempty"          jsonschema:"minimum=0"`
	IsStep4Submit        string `json:"is_step_4_submit,omitempty"      jsonschema:"description=Whether the path is the step 4 submit"`
	ContainsSearchResult int    `json:"contains_searchresult,omitempty" jsonschema:"minimum=0"`
	ContainsJob          int    `json:"contains_job,omitempty"          jsonschema:"minimum=0"`
	ResponseSample       string `json:"response_sample,omitempty"`
}

// ResponseSchema returns the JSON schema of Envelope.
func ResponseSchema() (string, error) {
	r := &jsonschema.Reflector{
		Anonymous:                  true,
		DoNotReference:             true,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
	}

	s := r.Reflect(&Envelope{})
	s.Version = schemaDraft

	data, err := json.MarshalIndent(s, "", indent)
	if err != nil {
		return "", fmt.Errorf("marshal response schema: %w", err)
	}

	return string(data), nil
}

func validateResponseSchema(schema string, body []byte) error {
	if strings.TrimSpace(schema) == "" {
		return ErrResponseSchemaEmpty
	}

	schemaLoader := gojsonschema.NewStringLoader(schema)
	docLoader := gojsonschema.NewBytesLoader(body)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("validate response schema: %w", err)
	}

	if result.Valid() {
		return nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, err := range result.Errors() {
		errs = append(errs, err.String())
	}

	return fmt.Errorf("%w: %s", ErrResponseSchemaInvalid, strings.Join(errs, "; "))
}
