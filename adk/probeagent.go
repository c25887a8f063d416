// Package adk exposes the exposure probe as a Google ADK agent.
package adk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	"github.com/metalagman/exposureprobe"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

// ProbeAgent runs the exposure probe and replies with the rendered report.
type ProbeAgent struct {
	agent.Agent
	opts ProbeAgentOptions
}

// dateRange is the optional user input of a ProbeAgent.
type dateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// NewProbeAgent creates a new ProbeAgent instance using functional options.
func NewProbeAgent(name, description string, setters ...OptProbeAgentOptionsSetter) (*ProbeAgent, error) {
	opts := NewProbeAgentOptions(name, description, setters...)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	if err := opts.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid probe config: %w", err)
	}

	a := &ProbeAgent{opts: opts}

	ag, err := agent.New(agent.Config{
		Name:        a.opts.name,
		Description: a.opts.description,
		Run:         a.Run,
	})
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}

	a.Agent = ag

	return a, nil
}

// Run implements the agent.Agent interface.
func (a *ProbeAgent) Run(ctx agent.InvocationContext) iter.Seq2[*session.Event, error] {
	return func(yield func(*session.Event, error) bool) {
		report, err := a.report(ctx, getUserInput(ctx))
		if err != nil {
			yield(nil, err)

			return
		}

		event := session.NewEvent(ctx.InvocationID())
		event.LLMResponse.Content = genai.NewContentFromText(report, genai.RoleModel)
		event.Author = a.opts.name

		if !yield(event, nil) {
			return
		}
	}
}

func getUserInput(ctx agent.InvocationContext) string {
	userContent := ctx.UserContent()
	if userContent != nil && len(userContent.Parts) > 0 {
		return userContent.Parts[0].Text
	}

	return ""
}

// report runs the probe for the date range in userInput. Probe failures are
// part of the report; only unusable input is returned as an error.
func (a *ProbeAgent) report(ctx context.Context, userInput string) (string, error) {
	cfg, err := a.configFor(userInput)
	if err != nil {
		return "", err
	}

	probe, err := exposureprobe.NewProbe(cfg)
	if err != nil {
		return "", fmt.Errorf("create probe: %w", err)
	}

	if a.opts.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, a.opts.timeout)
		defer cancel()
	}

	var b bytes.Buffer

	_, _ = probe.Run(
		ctx,
		exposureprobe.WithStdout(&b),
		exposureprobe.WithLogger(a.opts.logger),
		exposureprobe.WithColor(exposureprobe.ColorNever),
	)

	return b.String(), nil
}

func (a *ProbeAgent) configFor(userInput string) (exposureprobe.Config, error) {
	cfg := a.opts.config

	trimmed := strings.TrimSpace(userInput)
	if trimmed == "" {
		return cfg, nil
	}

	var in dateRange
	if err := json.Unmarshal([]byte(trimmed), &in); err != nil {
		return exposureprobe.Config{}, fmt.Errorf("parse input JSON: %w", err)
	}

	if in.StartDate != "" {
		cfg.StartDate = in.StartDate
	}

	if in.EndDate != "" {
		cfg.EndDate = in.EndDate
	}

	return cfg, nil
}
