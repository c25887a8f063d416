package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newQuickstartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quickstart",
		Short: "Show examples and usage instructions",
		Run: func(cmd *cobra.Command, _ []string) {
			printQuickstart(cmd.OutOrStdout())
		},
	}
}

func printQuickstart(w io.Writer) {
	_, _ = fmt.Fprintln(w, `Quickstart Guide for exposureprobe

1. Local smoke test
   Probe http://localhost:9000 with the built-in date range.

   exposureprobe

2. Custom range and endpoint
   Any flag can also come from exposureprobe.yaml or EXPOSUREPROBE_* variables.

   exposureprobe \
     --url="https://staging.example.com/api/engagement/job-search-exposure" \
     --start-date=2025-09-01 \
     --end-date=2025-09-07 \
     --insecure=false \
     --timeout=30s

3. CI gate
   Fail the step on any error and check the answer against the response schema.

   exposureprobe --fail-on-error --schema-mode=strict

4. Monitoring
   Leave a textfile for the node_exporter textfile collector.

   exposureprobe --metrics-file=/var/lib/node_exporter/exposureprobe.prom

5. Response schema
   Print the JSON schema used by --schema-mode.

   exposureprobe schema`)
}
