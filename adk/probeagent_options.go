package adk

import (
	"time"

	"github.com/metalagman/exposureprobe"
	"github.com/rs/zerolog"
)

//go:generate go tool options-gen -from-struct=ProbeAgentOptions -out-filename=probeagent_options_generated.go -out-prefix=ProbeAgent -defaults-from=func
type ProbeAgentOptions struct {
	name        string `option:"mandatory" validate:"required"`
	description string `option:"mandatory" validate:"required"`
	config      exposureprobe.Config
	timeout     time.Duration `validate:"gte=0"`
	logger      zerolog.Logger
}

func getDefaultProbeAgentOptions() ProbeAgentOptions {
	return ProbeAgentOptions{
		config: exposureprobe.DefaultConfig(),
		logger: zerolog.Nop(),
	}
}
