package exposureprobe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const banner = "Testing Job Search Exposure API..."

type reporter struct {
	w io.Writer
	p palette
}

func newReporter(w io.Writer, mode ColorMode) *reporter {
	return &reporter{w: w, p: newPalette(w, mode)}
}

func (r *reporter) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.w, format, a...)
}

func (r *reporter) request(url string, req ExposureRequest) error {
	payload, err := req.Indented()
	if err != nil {
		return err
	}

	r.printf("%s\n", r.p.heading(banner))
	r.printf("URL: %s\n", url)
	r.printf("Payload: %s\n", payload)

	return nil
}

func (r *reporter) status(code int) {
	value := fmt.Sprint(code)
	if code == http.StatusOK {
		value = r.p.good(value)
	} else {
		value = r.p.bad(value)
	}

	r.printf("\nStatus Code: %s\n", value)
}

// document prints the response body indented, keeping the key order of the
// original document.
func (r *reporter) document(body []byte) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(body), "", indent); err != nil {
		buf.Reset()
		buf.Write(body)
	}

	r.printf("\n%s\n", r.p.heading("API Response:"))
	r.printf("%s\n", buf.String())
}

func (r *reporter) summary(items []AnalysisItem) {
	if len(items) == 0 {
		return
	}

	divider := strings.Repeat("-", dividerWidth)

	r.printf("\n%s\n", r.p.heading("=== ANALYSIS SUMMARY ==="))

	for _, it := range items {
		r.printf("\nEndpoint/Path: %s / %s\n", it.Endpoint(), it.Path())
		r.printf("Total Responses: %s\n", it.TotalResponses())
		r.printf("Unique Users: %s\n", it.UniqueUsers())
		r.printf("Is Step 4 Submit: %s\n", it.Step4Submit())
		r.printf("Contains 'searchresult': %s\n", it.ContainsSearchResult())
		r.printf("Contains 'job': %s\n", it.ContainsJob())
		r.printf("Response Sample: %s\n", it.ResponseSample())
		r.printf("%s\n", divider)
	}
}

func (r *reporter) errorResponse(body []byte) {
	r.printf("\n%s\n", r.p.bad("Error Response:"))
	r.printf("%s\n", body)
}

func (r *reporter) failure(err error) {
	r.printf("\n%s %v\n", r.p.bad("Error occurred:"), err)
}

// PrintFailure renders err the way a failed probe run reports it.
func PrintFailure(w io.Writer, mode ColorMode, err error) {
	newReporter(w, mode).failure(err)
}
