package exposureprobe

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const (
	fieldEndpoint       = "endpoint"
	fieldPath           = "path"
	fieldTotalResponses = "total_responses"
	fieldUniqueUsers    = "unique_users"
	fieldStep4Submit    = "is_step_4_submit"
	fieldSearchResult   = "contains_searchresult"
	fieldJob            = "contains_job"
	fieldSample         = "response_sample"

	notAvailable = "N/A"
)

// AnalysisItem is one row of the exposure analysis. Every field is optional.
type AnalysisItem map[string]any

// Field returns the printable value of key, or fallback when it is absent or null.
func (it AnalysisItem) Field(key, fallback string) string {
	v, ok := it[key]
	if !ok || v == nil {
		return fallback
	}

	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}

		return string(data)
	}
}

// Endpoint returns the endpoint, N/A when missing.
func (it AnalysisItem) Endpoint() string { return it.Field(fieldEndpoint, notAvailable) }

// Path returns the screen path, N/A when missing.
func (it AnalysisItem) Path() string { return it.Field(fieldPath, notAvailable) }

// TotalResponses returns the response count, 0 when missing.
func (it AnalysisItem) TotalResponses() string { return it.Field(fieldTotalResponses, "0") }

// UniqueUsers returns the distinct user count, 0 when missing.
func (it AnalysisItem) UniqueUsers() string { return it.Field(fieldUniqueUsers, "0") }

// Step4Submit returns the step 4 submit flag, No when missing.
func (it AnalysisItem) Step4Submit() string { return it.Field(fieldStep4Submit, "No") }

// ContainsSearchResult returns how many responses mention "searchresult", 0 when missing.
func (it AnalysisItem) ContainsSearchResult() string { return it.Field(fieldSearchResult, "0") }

// ContainsJob returns how many responses mention "job", 0 when missing.
func (it AnalysisItem) ContainsJob() string { return it.Field(fieldJob, "0") }

// ResponseSample returns a sample response body, N/A when missing.
func (it AnalysisItem) ResponseSample() string { return it.Field(fieldSample, notAvailable) }

// decodeDocument parses a response body keeping numbers as written.
func decodeDocument(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}

	return doc, nil
}

// analysisItems extracts the analysis rows of a decoded response. A missing,
// empty or non-array analysis yields no rows; entries that are not objects
// become empty rows and print with defaults.
func analysisItems(doc any) []AnalysisItem {
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil
	}

	rows, ok := obj["analysis"].([]any)
	if !ok || len(rows) == 0 {
		return nil
	}

	items := make([]AnalysisItem, 0, len(rows))
	for _, row := range rows {
		m, _ := row.(map[string]any)
		items = append(items, AnalysisItem(m))
	}

	return items
}
