package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

const defaultFormatPattern = "yyyy-MM-dd HH:mm:ss K"

func newFormatCmd(a *app) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "format [unix-seconds]",
		Short: "Render a timestamp with a format pattern",
		Long: `Render a timestamp, or the current time, with a format pattern.

Tokens: yyyy yy y, MMMM MMM MM M, dddd ddd dd d, HH H, hh h, mm m, ss s,
fff ff f, TT T, tt t and K. A backslash makes the next character literal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at := a.now()
			if len(args) == 1 {
				parsed, err := parseUnix(args[0])
				if err != nil {
					return err
				}
				at = parsed
			}

			cfg, err := a.config()
			if err != nil {
				return err
			}
			formatter := cfg.BuildFormatter()

			var out string
			if a.utc() {
				out = formatter.FormatUTC(at, pattern)
			} else {
				out = formatter.Format(at, pattern)
			}

			a.logger.Debug().Str("pattern", pattern).Str("locale", cfg.Locale).Msg("formatted")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", defaultFormatPattern, "format pattern")
	return cmd
}

func parseUnix(value string) (time.Time, error) {
	seconds, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid unix timestamp %q", value)
	}
	return time.Unix(seconds, 0), nil
}
