package main

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	elapsed "github.com/goliatone/go-elapsed"
)

// app carries the state shared by every subcommand once flags are parsed.
type app struct {
	v       *viper.Viper
	logger  zerolog.Logger
	logFile *lumberjack.Logger
	now     func() time.Time
}

func newApp() *app {
	v := viper.New()
	v.SetEnvPrefix("ELAPSED")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &app{
		v:      v,
		logger: zerolog.Nop(),
		now:    time.Now,
	}
}

func (a *app) close() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

// config builds the library configuration from flags and environment.
func (a *app) config(opts ...elapsed.Option) (*elapsed.Config, error) {
	base := []elapsed.Option{
		elapsed.WithLocale(a.v.GetString("locale")),
		elapsed.WithLogger(a.logger),
		elapsed.WithDebug(a.v.GetBool("debug")),
		elapsed.WithClock(a.now),
	}
	if path := a.v.GetString("tables"); path != "" {
		base = append(base, elapsed.WithTablesFile(path))
	}
	return elapsed.NewConfig(append(base, opts...)...)
}

func (a *app) utc() bool {
	return a.v.GetBool("utc")
}

// inZone converts t to UTC when --utc is set.
func (a *app) inZone(t time.Time) time.Time {
	if a.utc() {
		return t.UTC()
	}
	return t
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "elapsed",
		Short: "Format timestamps and describe how long ago they happened",
		Long: `elapsed renders timestamps with .NET style patterns (yyyy, MMMM, h, TT, K...)
and turns unix timestamps into phrases such as "a few minutes ago".

Every persistent flag can also be set from the environment with the
ELAPSED_ prefix, for example ELAPSED_LOCALE=es or ELAPSED_LOG_FILE=elapsed.log.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, logFile, err := newLogger(cmd.ErrOrStderr(), a.v.GetBool("debug"), a.v.GetString("log-file"))
			if err != nil {
				return err
			}
			a.logger = logger
			a.logFile = logFile
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("locale", "", "locale for month and weekday names (for example es, fr-CA)")
	flags.String("tables", "", "JSON or YAML file with month and weekday names")
	flags.Bool("debug", false, "enable debug logging")
	flags.String("log-file", "", "also write JSON logs to this file, rotated")
	flags.Bool("utc", false, "use UTC instead of the local time zone")

	for _, name := range []string{"locale", "tables", "debug", "log-file", "utc"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	cmd.AddCommand(newFormatCmd(a))
	cmd.AddCommand(newHumanizeCmd(a))
	cmd.AddCommand(newRenderCmd(a))

	return cmd
}
