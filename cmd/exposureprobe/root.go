package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	opts := &probeOptions{}
	root := &cobra.Command{
		Use:           "exposureprobe",
		Short:         "Send a job-search exposure request and print the analysis",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProbe(cmd, opts)
		},
	}

	addProbeFlags(root, opts)

	root.AddCommand(newSchemaCmd())
	root.AddCommand(newQuickstartCmd())

	return root
}
