package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	elapsed "github.com/goliatone/go-elapsed"
)

type renderOptions struct {
	out      string
	watch    bool
	interval time.Duration
	now      string
}

func newRenderCmd(a *app) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <file.html>",
		Short: "Rewrite the elapsed markers of an HTML page",
		Long: `Rewrite every element with the elapsedJS class whose data-elapseJS attribute
holds a unix timestamp. The page is written to stdout unless --out is set.

With --watch the page is rewritten to --out every interval until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, a, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "keep rewriting the output every interval")
	cmd.Flags().DurationVar(&opts.interval, "interval", elapsed.DefaultInterval, "refresh interval in watch mode")
	cmd.Flags().StringVar(&opts.now, "now", "", "reference time as unix seconds (default current time)")
	return cmd
}

func runRender(cmd *cobra.Command, a *app, path string, opts renderOptions) error {
	if opts.watch && opts.out == "" {
		return errors.New("--watch requires --out")
	}

	src, err := os.Open(path)
	if err != nil {
		return err
	}
	doc, err := elapsed.ParseHTML(src)
	src.Close()
	if err != nil {
		return err
	}

	clock := func() time.Time { return a.inZone(a.now()) }
	if opts.now != "" {
		fixed, err := parseUnix(opts.now)
		if err != nil {
			return err
		}
		clock = func() time.Time { return a.inZone(fixed) }
	}

	cfg, err := a.config(elapsed.WithInterval(opts.interval), elapsed.WithClock(clock))
	if err != nil {
		return err
	}

	write := func() error {
		var buf bytes.Buffer
		if err := doc.Render(&buf); err != nil {
			return err
		}
		if opts.out == "" {
			_, err := cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}
		return writeFileAtomic(opts.out, buf.Bytes())
	}

	if !opts.watch {
		refresher, err := cfg.BuildRefresher(doc)
		if err != nil {
			return err
		}
		updated, err := refresher.Scan()
		if err != nil {
			return err
		}
		a.logger.Debug().Int("updated", updated).Str("file", path).Msg("rendered")
		return write()
	}

	refresher, err := cfg.BuildRefresher(doc, elapsed.WithRefresherAfterScan(func(updated int) {
		if err := write(); err != nil {
			a.logger.Error().Err(err).Str("out", opts.out).Msg("write failed")
			return
		}
		a.logger.Debug().Int("updated", updated).Str("out", opts.out).Msg("rendered")
	}))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.logger.Info().Str("out", opts.out).Dur("interval", cfg.Interval).Msg("watching")
	if err := refresher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// writeFileAtomic replaces path so readers never observe a partial page.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
