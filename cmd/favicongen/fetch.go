package main

import (
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"favicongen/internal/config"
	"favicongen/internal/downloader"
	"favicongen/internal/ui"
)

func newFetchCmd(stdout io.Writer, o *options) *cobra.Command {
	url := config.LogoURL

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the logo into the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			con := ui.New(stdout, o.noColor)
			r, err := o.resolve()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return downloader.DownloadLogo(ctx, nil, url, r.opts.LogoPath, con)
		},
	}
	cmd.Flags().StringVar(&url, "url", url, "where to download the logo from")
	return cmd
}
