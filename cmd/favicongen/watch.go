package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"favicongen/internal/ui"
	"favicongen/internal/watcher"
)

func newWatchCmd(stdout io.Writer, o *options) *cobra.Command {
	debounce := watcher.DefaultDebounce

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the favicons whenever the logo changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			con := ui.New(stdout, o.noColor)
			r, err := o.resolve()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watch(ctx, r, debounce, con)
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", debounce, "quiet period before regenerating")
	return cmd
}

func watch(ctx context.Context, r run, debounce time.Duration, con *ui.Console) error {
	generate(r, con)

	w, err := watcher.NewWatcher(r.opts.LogoPath, debounce, func() {
		con.Header("Logo changed")
		generate(r, con)
	}, con)
	if err != nil {
		return err
	}
	defer w.Stop()

	con.Info("Watching " + r.opts.LogoPath + " (Ctrl+C to stop)")
	return w.Run(ctx)
}
