package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"favicongen/internal/config"
	"favicongen/internal/favicon"
	"favicongen/internal/ui"
)

// flags shared by the root and watch commands
type options struct {
	root       string
	logo       string
	out        string
	configFile string
	filter     string
	noColor    bool
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	o := &options{}

	rootCmd := &cobra.Command{
		Use:   "favicongen",
		Short: "Generate favicons and site.webmanifest from logo.png",
		Long: `Resizes <root>/logo.png into the standard favicon set
(16, 32, 180, 192 and 512 px PNGs plus favicon.ico) and writes
site.webmanifest, all into <root>/public/.`,
		Example: `
  favicongen
  favicongen --root ./site --filter catmullrom
  favicongen watch`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			con := ui.New(stdout, o.noColor)
			r, err := o.resolve()
			if err != nil {
				return err
			}
			generate(r, con)
			return nil
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stdout)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&o.root, "root", "", "project root (default is the current directory)")
	flags.StringVar(&o.logo, "logo", "", "source image, relative to the project root (default \"logo.png\")")
	flags.StringVar(&o.out, "out", "", "output directory, relative to the project root (default \"public\")")
	flags.StringVar(&o.configFile, "config", "", "YAML file with logo, output_dir, filter and manifest overrides")
	flags.StringVar(&o.filter, "filter", "", "resampling filter: lanczos or catmullrom (default \"lanczos\")")
	flags.BoolVar(&o.noColor, "no-color", false, "disable color output")

	rootCmd.AddCommand(newWatchCmd(stdout, o))
	rootCmd.AddCommand(newFetchCmd(stdout, o))
	return rootCmd
}

// run is a fully resolved generation request.
type run struct {
	root string
	opts favicon.Options
}

func (o *options) resolve() (run, error) {
	root := o.root
	if root == "" {
		wd, err := config.GetProjectRoot()
		if err != nil {
			return run{}, errors.Wrap(err, "finding project root")
		}
		root = wd
	}

	cfg := config.Default()
	if o.configFile != "" {
		loaded, err := config.Load(o.configFile)
		if err != nil {
			return run{}, err
		}
		cfg = loaded
	}

	if o.logo != "" {
		cfg.Logo = o.logo
	}
	if o.out != "" {
		cfg.OutputDir = o.out
	}
	if o.filter != "" {
		cfg.Filter = o.filter
	}
	if err := cfg.Validate(); err != nil {
		return run{}, errors.Wrap(err, "invalid options")
	}

	return run{
		root: root,
		opts: favicon.Options{
			LogoPath: cfg.LogoPath(root),
			OutDir:   cfg.OutputPath(root),
			Sizes:    favicon.DefaultSizes(),
			Filter:   cfg.Filter,
			Manifest: favicon.ManifestOptions{
				Name:            cfg.Manifest.Name,
				ShortName:       cfg.Manifest.ShortName,
				ThemeColor:      cfg.Manifest.ThemeColor,
				BackgroundColor: cfg.Manifest.BackgroundColor,
				Display:         cfg.Manifest.Display,
			},
		},
	}, nil
}
