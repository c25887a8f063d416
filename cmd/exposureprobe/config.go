package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/metalagman/exposureprobe"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "EXPOSUREPROBE"
	configName = "exposureprobe"
)

// cliConfig is the probe configuration plus the settings only the CLI uses.
type cliConfig struct {
	Probe              exposureprobe.Config `mapstructure:",squash"`
	ResponseSchemaFile string               `mapstructure:"response_schema_file"`
	LogLevel           string               `mapstructure:"log_level"`
	Color              string               `mapstructure:"color"`
	FailOnError        bool                 `mapstructure:"fail_on_error"`
	MetricsFile        string               `mapstructure:"metrics_file"`
}

// loadConfig layers defaults, the config file, EXPOSUREPROBE_* environment
// variables and explicitly set flags, in increasing priority.
func loadConfig(cmd *cobra.Command, opts *probeOptions) (cliConfig, error) {
	if err := loadEnvFile(opts.envFile); err != nil {
		return cliConfig{}, err
	}

	v := viper.New()
	setDefaults(v)

	if opts.configFile != "" {
		v.SetConfigFile(opts.configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cliConfig{}, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return cliConfig{}, fmt.Errorf("bind flag %q: %w", name, err)
		}
	}

	var cfg cliConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cliConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.ResponseSchemaFile != "" {
		data, err := os.ReadFile(cfg.ResponseSchemaFile)
		if err != nil {
			return cliConfig{}, fmt.Errorf("read response schema file: %w", err)
		}

		cfg.Probe.ResponseSchema = string(data)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := exposureprobe.DefaultConfig()

	v.SetDefault(keyURL, defaults.URL)
	v.SetDefault(keyStartDate, defaults.StartDate)
	v.SetDefault(keyEndDate, defaults.EndDate)
	v.SetDefault(keyInsecureSkipVerify, defaults.InsecureSkipVerify)
	v.SetDefault(keyTimeout, defaults.Timeout)
	v.SetDefault(keySchemaMode, string(defaults.SchemaMode))
	v.SetDefault(keyResponseSchema, "")
	v.SetDefault(keyResponseSchemaFile, "")
	v.SetDefault(keyLogLevel, defaultLogLevel)
	v.SetDefault(keyColor, string(exposureprobe.ColorAuto))
	v.SetDefault(keyFailOnError, false)
	v.SetDefault(keyMetricsFile, "")
}

// loadEnvFile exports the variables of a dotenv file; a missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("load env file %s: %w", path, err)
	}

	return nil
}

// failurePolicy is what a run needs to report a failure.
type failurePolicy struct {
	failOnError bool
	metricsFile string
}

func (c cliConfig) failurePolicy() failurePolicy {
	return failurePolicy{failOnError: c.FailOnError, metricsFile: c.MetricsFile}
}

// earlyFailurePolicy reads the failure settings from flags and the environment
// when the full configuration could not be loaded.
func earlyFailurePolicy(cmd *cobra.Command) failurePolicy {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	_ = v.BindPFlag(keyFailOnError, cmd.Flags().Lookup("fail-on-error"))
	_ = v.BindPFlag(keyMetricsFile, cmd.Flags().Lookup("metrics-file"))

	return failurePolicy{
		failOnError: v.GetBool(keyFailOnError),
		metricsFile: v.GetString(keyMetricsFile),
	}
}
