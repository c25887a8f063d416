package exposureprobe

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

//go:generate go tool options-gen -from-struct=RunOptions -out-filename=options_generated.go -defaults-from=func=defaultRunOptions

// RunOptions defines how a probe run reports its result.
type RunOptions struct {
	stdout io.Writer `validate:"required"`
	logger zerolog.Logger
	color  ColorMode `validate:"required,oneof=auto always never"`
}

// RunOption configures a single probe run.
type RunOption = OptRunOptionsSetter

func resolveRunOptions(opts []RunOption) (RunOptions, error) {
	out := NewRunOptions(opts...)
	if err := out.Validate(); err != nil {
		return RunOptions{}, err
	}

	return out, nil
}

func defaultRunOptions() RunOptions {
	return RunOptions{
		stdout: os.Stdout,
		logger: zerolog.Nop(),
		color:  ColorAuto,
	}
}
