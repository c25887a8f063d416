package exposureprobe

const (
	// DefaultURL is the job-search exposure endpoint of a locally running API.
	DefaultURL = "http://localhost:9000/api/engagement/job-search-exposure"
	// DefaultStartDate is the first day of the probed date range.
	DefaultStartDate = "2025-08-20"
	// DefaultEndDate is the last day of the probed date range.
	DefaultEndDate = "2025-08-25"
	// DateLayout is the calendar date format used in request payloads.
	DateLayout = "2006-01-02"
)

const (
	contentTypeJSON = "application/json"
	requestIDHeader = "X-Request-ID"
	indent          = "  "
	dividerWidth    = 50
)

// Version is reported in the User-Agent header.
var Version = "dev"

func userAgent() string {
	return "exposureprobe/" + Version
}
