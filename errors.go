package exposureprobe

import "errors"

var (
	// ErrInvalidConfig indicates the probe configuration failed validation.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInvalidDateRange indicates the end date precedes the start date.
	ErrInvalidDateRange = errors.New("end date before start date")
	// ErrRequestFailed indicates the request could not be sent or got no answer.
	ErrRequestFailed = errors.New("request failed")
	// ErrReadBody indicates the response body could not be read.
	ErrReadBody = errors.New("read response body")
	// ErrUnexpectedStatus indicates the API answered with a status other than 200.
	ErrUnexpectedStatus = errors.New("unexpected status code")
	// ErrDecodeResponse indicates a 200 response did not carry valid JSON.
	ErrDecodeResponse = errors.New("decode response")
	// ErrResponseSchemaEmpty indicates schema checking is on but no schema is available.
	ErrResponseSchemaEmpty = errors.New("response schema is empty")
	// ErrResponseSchemaInvalid indicates the response does not satisfy the schema.
	ErrResponseSchemaInvalid = errors.New("response does not match schema")
)
