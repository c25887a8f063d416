package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/metalagman/exposureprobe"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var exitFn = os.Exit

func runProbe(cmd *cobra.Command, opts *probeOptions) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	fallback, _ := newLogger(stderr, defaultLogLevel)

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return reportFailure(stdout, fallback, exposureprobe.ColorAuto, earlyFailurePolicy(cmd), err)
	}

	policy := cfg.failurePolicy()

	colorMode, err := exposureprobe.ParseColorMode(cfg.Color)
	if err != nil {
		return reportFailure(stdout, fallback, exposureprobe.ColorAuto, policy, err)
	}

	logger, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		return reportFailure(stdout, fallback, colorMode, policy, err)
	}

	probe, err := exposureprobe.NewProbe(cfg.Probe)
	if err != nil {
		return reportFailure(stdout, logger, colorMode, policy, err)
	}

	out, runErr := probe.Run(
		cmd.Context(),
		exposureprobe.WithStdout(stdout),
		exposureprobe.WithLogger(logger),
		exposureprobe.WithColor(colorMode),
	)

	writeMetrics(policy.metricsFile, out, logger)

	logger.Info().
		Str("request_id", out.RequestID).
		Int("status", out.StatusCode).
		Int("items", out.Items).
		Dur("duration", out.Duration).
		Bool("success", out.Success).
		Msg("probe finished")

	if runErr != nil && policy.failOnError {
		exitFn(1)
	}

	return nil
}

// reportFailure prints err as a probe failure and records a failed run in the
// metrics file. The process only exits non-zero when failOnError is set.
func reportFailure(
	w io.Writer,
	logger zerolog.Logger,
	mode exposureprobe.ColorMode,
	policy failurePolicy,
	err error,
) error {
	exposureprobe.PrintFailure(w, mode, err)
	writeMetrics(policy.metricsFile, exposureprobe.Outcome{}, logger)

	if policy.failOnError {
		exitFn(1)
	}

	return nil
}

func writeMetrics(path string, out exposureprobe.Outcome, logger zerolog.Logger) {
	if path == "" {
		return
	}

	if err := exposureprobe.WriteMetrics(path, out); err != nil {
		logger.Error().Err(err).Msg("write metrics")
	}
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
	}

	if lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}
