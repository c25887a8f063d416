package exposureprobe

import (
	"encoding/json"
	"fmt"
	"time"
)

// ExposureRequest is the body of a job-search exposure request.
type ExposureRequest struct {
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate"   validate:"required,datetime=2006-01-02"`
}

// Validate checks both dates and their order.
func (r ExposureRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return fmt.Errorf("%w: start date: %v", ErrInvalidConfig, err)
	}

	end, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return fmt.Errorf("%w: end date: %v", ErrInvalidConfig, err)
	}

	if end.Before(start) {
		return fmt.Errorf("%w: %s < %s", ErrInvalidDateRange, r.EndDate, r.StartDate)
	}

	return nil
}

// Indented renders the payload the way it is shown to the operator.
func (r ExposureRequest) Indented() (string, error) {
	data, err := json.MarshalIndent(r, "", indent)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	return string(data), nil
}
