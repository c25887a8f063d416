// Package exposureprobe sends a job-search exposure request to the engagement
// analytics API and prints a readable report of the answer.
package exposureprobe

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// SchemaMode controls how a successful response is checked against the response schema.
type SchemaMode string

const (
	// SchemaOff skips schema checking.
	SchemaOff SchemaMode = "off"
	// SchemaWarn logs schema violations and carries on.
	SchemaWarn SchemaMode = "warn"
	// SchemaStrict treats schema violations as a probe failure.
	SchemaStrict SchemaMode = "strict"
)

// Config describes the request a probe sends and how it treats the answer.
type Config struct {
	URL                string        `json:"url"                       mapstructure:"url"                  validate:"required,url"`
	StartDate          string        `json:"start_date"                mapstructure:"start_date"           validate:"required,datetime=2006-01-02"`
	EndDate            string        `json:"end_date"                  mapstructure:"end_date"             validate:"required,datetime=2006-01-02"`
	InsecureSkipVerify bool          `json:"insecure_skip_verify"      mapstructure:"insecure_skip_verify"`
	Timeout            time.Duration `json:"timeout,omitempty"         mapstructure:"timeout"              validate:"gte=0"`
	SchemaMode         SchemaMode    `json:"schema_mode,omitempty"     mapstructure:"schema_mode"          validate:"omitempty,oneof=off warn strict"`
	ResponseSchema     string        `json:"response_schema,omitempty" mapstructure:"response_schema"`
}

// DefaultConfig returns the configuration of a plain local smoke test.
func DefaultConfig() Config {
	return Config{
		URL:                DefaultURL,
		StartDate:          DefaultStartDate,
		EndDate:            DefaultEndDate,
		InsecureSkipVerify: true,
		SchemaMode:         SchemaOff,
	}
}

// Validate reports whether the configuration can be used to build a probe.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return c.Request().Validate()
}

// Request returns the payload described by the configuration.
func (c Config) Request() ExposureRequest {
	return ExposureRequest{StartDate: c.StartDate, EndDate: c.EndDate}
}

func (c Config) schemaMode() SchemaMode {
	if c.SchemaMode == "" {
		return SchemaOff
	}

	return c.SchemaMode
}
