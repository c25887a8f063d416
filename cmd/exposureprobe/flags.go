package main

import (
	"github.com/metalagman/exposureprobe"
	"github.com/spf13/cobra"
)

const (
	keyURL                = "url"
	keyStartDate          = "start_date"
	keyEndDate            = "end_date"
	keyInsecureSkipVerify = "insecure_skip_verify"
	keyTimeout            = "timeout"
	keySchemaMode         = "schema_mode"
	keyResponseSchema     = "response_schema"
	keyResponseSchemaFile = "response_schema_file"
	keyLogLevel           = "log_level"
	keyColor              = "color"
	keyFailOnError        = "fail_on_error"
	keyMetricsFile        = "metrics_file"

	defaultLogLevel = "warn"
	defaultEnvFile  = ".env"
)

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"url":                  keyURL,
	"start-date":           keyStartDate,
	"end-date":             keyEndDate,
	"insecure":             keyInsecureSkipVerify,
	"timeout":              keyTimeout,
	"schema-mode":          keySchemaMode,
	"response-schema-file": keyResponseSchemaFile,
	"log-level":            keyLogLevel,
	"color":                keyColor,
	"fail-on-error":        keyFailOnError,
	"metrics-file":         keyMetricsFile,
}

type probeOptions struct {
	configFile string
	envFile    string
}

func addProbeFlags(cmd *cobra.Command, opts *probeOptions) {
	defaults := exposureprobe.DefaultConfig()
	f := cmd.Flags()

	f.StringVar(&opts.configFile, "config", "", "path to a YAML config file (default ./exposureprobe.yaml when present)")
	f.StringVar(&opts.envFile, "env-file", defaultEnvFile, "dotenv file loaded before reading the environment")

	f.String("url", defaults.URL, "exposure endpoint URL")
	f.String("start-date", defaults.StartDate, "first day of the range (YYYY-MM-DD)")
	f.String("end-date", defaults.EndDate, "last day of the range (YYYY-MM-DD)")
	f.Bool("insecure", defaults.InsecureSkipVerify, "skip TLS certificate verification")
	f.Duration("timeout", defaults.Timeout, "request timeout, 0 waits indefinitely")
	f.String("schema-mode", string(defaults.SchemaMode), "response schema check: off, warn or strict")
	f.String("response-schema-file", "", "JSON schema file used instead of the built-in response schema")
	f.String("log-level", defaultLogLevel, "diagnostic log level written to stderr")
	f.String("color", string(exposureprobe.ColorAuto), "colour report labels: auto, always or never")
	f.Bool("fail-on-error", false, "exit with status 1 when the probe fails")
	f.String("metrics-file", "", "write the run outcome as a node_exporter textfile")
}
