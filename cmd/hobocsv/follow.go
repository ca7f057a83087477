package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hobolog/hobo-go/pkg/hobo"
)

var (
	followFormat string
	followPoll   bool
)

var followCmd = &cobra.Command{
	Use:   "follow [file|directory]",
	Short: "Follow a live export and print samples as they are written",
	Long: `Follow a logger export that is still being appended to, printing each
decoded sample as the logger software writes it. Stop with Ctrl-C.

Examples:
  # Follow a specific export
  hobocsv follow live.csv

  # Follow the newest export in a directory, human-readable output
  hobocsv follow ~/hobo-exports --format pretty

  # Poll instead of using filesystem notifications (network mounts)
  hobocsv follow live.csv --poll`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFollow,
}

func init() {
	followCmd.Flags().StringVarP(&followFormat, "format", "f", "jsonl",
		"Output format: jsonl, pretty")
	followCmd.Flags().BoolVar(&followPoll, "poll", false,
		"Poll the filesystem instead of using change notifications")
	rootCmd.AddCommand(followCmd)
}

func runFollow(cmd *cobra.Command, args []string) error {
	if !ValidFormats[followFormat] {
		return fmt.Errorf("unknown format: %s", followFormat)
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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
	if followPoll {
		opts = append(opts, hobo.WithPolling(true))
	}

	follower, err := hobo.NewFollower(path, opts...)
	if err != nil {
		return err
	}
	defer follower.Close()

	samples, errs, err := follower.Follow(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case s, ok := <-samples:
			if !ok {
				return nil
			}
			if err := OutputSample(followFormat, s, os.Stdout); err != nil {
				return err
			}
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		case <-ctx.Done():
			return nil
		}
	}
}
