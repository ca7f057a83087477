// Command hobocsv reads environmental data-logger CSV exports and prints
// the decoded samples.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// persistent flags
	timezoneText string
	lenient      bool
	rulesFile    string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "hobocsv",
	Short: "Read environmental data-logger CSV exports",
	Long: `hobocsv reads CSV exports produced by environmental data-logger
software (temperature / relative-humidity / battery time series) and
prints typed samples.

Commands accept either an export file or a directory, in which case the
most recently modified *.csv in it is used. The directory may also come
from the HOBOCSV_EXPORTDIR environment variable.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&timezoneText, "timezone", "z", "",
		`convert timestamps to this fixed offset (e.g. "GMT-08:00")`)
	rootCmd.PersistentFlags().BoolVar(&lenient, "lenient", false,
		"tolerate malformed CSV quoting in data rows")
	rootCmd.PersistentFlags().StringVar(&rulesFile, "rules", "",
		"YAML column-label rules file replacing the built-in rules")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
