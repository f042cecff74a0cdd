package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHumanizeCmd(a *app) *cobra.Command {
	var now string

	cmd := &cobra.Command{
		Use:   "humanize <unix-seconds>",
		Short: "Describe how long ago a timestamp was",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			past, err := parseUnix(args[0])
			if err != nil {
				return err
			}

			current := a.now()
			if now != "" {
				if current, err = parseUnix(now); err != nil {
					return err
				}
			}

			cfg, err := a.config()
			if err != nil {
				return err
			}

			desc := cfg.BuildHumanizer().Describe(a.inZone(past), a.inZone(current))
			a.logger.Debug().
				Str("bucket", desc.Bucket.String()).
				Int64("elapsed", desc.Elapsed).
				Msg("humanized")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), desc.Text)
			return err
		},
	}

	cmd.Flags().StringVar(&now, "now", "", "reference time as unix seconds (default current time)")
	return cmd
}
