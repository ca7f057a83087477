package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hobolog/hobo-go/pkg/hobo"
	"github.com/hobolog/hobo-go/pkg/hobo/labels"
)

var infoCmd = &cobra.Command{
	Use:   "info [file|directory]",
	Short: "Print export metadata and resolved columns",
	Long: `Print the preamble metadata (title, serial number, timezone) and the
resolved column indices of a logger CSV export without decoding its rows.

Examples:
  hobocsv info upper_cave.csv
  hobocsv info ~/hobo-exports`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
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

	out := cmd.OutOrStdout()
	meta := r.Metadata()
	fmt.Fprintf(out, "File:          %s\n", r.Path())
	fmt.Fprintf(out, "Title:         %s\n", meta.Title)
	if meta.SerialNumber != "" {
		fmt.Fprintf(out, "Serial number: %s\n", meta.SerialNumber)
	}
	if meta.Timezone != nil {
		fmt.Fprintf(out, "Timezone:      %s\n", meta.Timezone)
	}

	cols := r.Columns()
	fmt.Fprintf(out, "Columns:       timestamp=%d temperature=%d", cols.Timestamp, cols.Temperature)
	if cols.Resolved(labels.RoleHumidity) {
		fmt.Fprintf(out, " humidity=%d", cols.Humidity)
	}
	if cols.Resolved(labels.RoleBattery) {
		fmt.Fprintf(out, " battery=%d", cols.Battery)
	}
	fmt.Fprintln(out)
	return nil
}
