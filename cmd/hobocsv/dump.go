package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hobolog/hobo-go/pkg/hobo"
)

var dumpFormat string

var dumpCmd = &cobra.Command{
	Use:   "dump [file|directory]",
	Short: "Print the decoded samples of an export",
	Long: `Print every decoded sample of a logger CSV export.

Samples are output as JSON Lines by default (one JSON object per line),
which makes it easy to process with tools like jq.

Examples:
  # Dump a specific export
  hobocsv dump upper_cave.csv

  # Dump the newest export in a directory
  hobocsv dump ~/hobo-exports

  # Human-readable output, timestamps shown in Pacific time
  hobocsv dump upper_cave.csv --format pretty --timezone GMT-08:00

  # Pipe to jq
  hobocsv dump upper_cave.csv | jq '.temperature'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", "jsonl",
		"Output format: jsonl, pretty")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	if !ValidFormats[dumpFormat] {
		return fmt.Errorf("unknown format: %s", dumpFormat)
	}

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	path, err := resolveExportPath(arg)
	if err != nil {
		return err
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	r, err := hobo.Open(path, opts...)
	if err != nil {
		return err
	}
	defer r.Close()

	// Print until the sequence is exhausted or an error surfaces; on error
	// the session is closed and no further rows are printed.
	for s, err := range r.Samples() {
		if err != nil {
			return err
		}
		if err := OutputSample(dumpFormat, *s, os.Stdout); err != nil {
			return err
		}
	}
	return nil
}
