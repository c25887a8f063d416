package exposureprobe

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Prober sends one exposure request and reports the answer.
type Prober interface {
	Run(ctx context.Context, opts ...RunOption) (Outcome, error)
}

// Outcome summarizes a finished run.
type Outcome struct {
	RequestID  string
	StatusCode int
	Items      int
	Duration   time.Duration
	Success    bool
}

// NewProbe constructs a probe for the given config.
func NewProbe(cfg Config) (*HTTPProbe, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	schema := cfg.ResponseSchema
	if cfg.schemaMode() != SchemaOff && schema == "" {
		generated, err := ResponseSchema()
		if err != nil {
			return nil, err
		}

		schema = generated
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec // local endpoints use self-signed certificates
	}

	return &HTTPProbe{
		cfg:    cfg,
		schema: schema,
		client: &http.Client{Transport: transport, Timeout: cfg.Timeout},
	}, nil
}

// HTTPProbe sends the exposure request over HTTP.
type HTTPProbe struct {
	cfg    Config
	schema string
	client *http.Client
}

// Run sends the request and renders the report to the configured stdout.
// Failures are rendered as part of the report and returned as well, so the
// caller decides whether they affect the exit status.
func (p *HTTPProbe) Run(ctx context.Context, opts ...RunOption) (Outcome, error) {
	runOpts, err := resolveRunOptions(opts)
	if err != nil {
		return Outcome{}, fmt.Errorf("resolve options: %w", err)
	}

	rep := newReporter(runOpts.stdout, runOpts.color)

	out, err := p.run(ctx, rep, runOpts.logger)
	if err != nil {
		if !errors.Is(err, ErrUnexpectedStatus) {
			rep.failure(err)
		}

		runOpts.logger.Debug().Err(err).Str("request_id", out.RequestID).Msg("probe failed")

		return out, err
	}

	out.Success = true

	return out, nil
}

func (p *HTTPProbe) run(ctx context.Context, rep *reporter, logger zerolog.Logger) (Outcome, error) {
	out := Outcome{RequestID: uuid.NewString()}
	payload := p.cfg.Request()

	if err := rep.request(p.cfg.URL, payload); err != nil {
		return out, err
	}

	started := time.Now()
	status, body, err := p.send(ctx, out.RequestID, payload, logger)
	out.Duration = time.Since(started)
	out.StatusCode = status

	if err != nil {
		return out, err
	}

	rep.status(status)

	if status != http.StatusOK {
		rep.errorResponse(body)

		return out, fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
	}

	doc, err := decodeDocument(body)
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	rep.document(body)

	if err := p.checkSchema(body, logger); err != nil {
		return out, err
	}

	items := analysisItems(doc)
	out.Items = len(items)
	rep.summary(items)

	return out, nil
}

func (p *HTTPProbe) send(
	ctx context.Context,
	requestID string,
	payload ExposureRequest,
	logger zerolog.Logger,
) (int, []byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.URL, bytes.NewReader(data))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: build request: %w", ErrRequestFailed, err)
	}

	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("User-Agent", userAgent())
	req.Header.Set(requestIDHeader, requestID)

	logger.Debug().
		Str("url", p.cfg.URL).
		Str("request_id", requestID).
		Bool("insecure_skip_verify", p.cfg.InsecureSkipVerify).
		Msg("sending exposure request")

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%w: %w", ErrReadBody, err)
	}

	logger.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("received exposure response")

	return resp.StatusCode, body, nil
}

func (p *HTTPProbe) checkSchema(body []byte, logger zerolog.Logger) error {
	mode := p.cfg.schemaMode()
	if mode == SchemaOff {
		return nil
	}

	err := validateResponseSchema(p.schema, body)
	if err == nil {
		return nil
	}

	if mode == SchemaStrict {
		return fmt.Errorf("validate response: %w", err)
	}

	logger.Warn().Err(err).Msg("response does not match schema")

	return nil
}
