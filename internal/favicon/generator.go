package favicon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"favicongen/internal/config"
	"favicongen/internal/ui"
)

// Options configures a generation run. Zero fields fall back to the
// defaults of the standard project layout.
type Options struct {
	LogoPath string
	OutDir   string
	Sizes    []SizeSpec
	Filter   string
	Manifest ManifestOptions
}

// DefaultOptions returns the options for a project rooted at root.
func DefaultOptions(root string) Options {
	cfg := config.Default()
	return Options{
		LogoPath: config.GetLogoPath(root),
		OutDir:   config.GetPublicDir(root),
		Sizes:    DefaultSizes(),
		Filter:   cfg.Filter,
		Manifest: ManifestOptions{
			Name:            cfg.Manifest.Name,
			ShortName:       cfg.Manifest.ShortName,
			ThemeColor:      cfg.Manifest.ThemeColor,
			BackgroundColor: cfg.Manifest.BackgroundColor,
			Display:         cfg.Manifest.Display,
		},
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions(".")
	if o.LogoPath == "" {
		o.LogoPath = def.LogoPath
	}
	if o.OutDir == "" {
		o.OutDir = def.OutDir
	}
	if len(o.Sizes) == 0 {
		o.Sizes = def.Sizes
	}
	if o.Filter == "" {
		o.Filter = def.Filter
	}
	if o.Manifest == (ManifestOptions{}) {
		o.Manifest = def.Manifest
	}
	return o
}

// Generate writes every PNG size, favicon.ico and site.webmanifest into
// opts.OutDir. It returns ErrSourceNotFound (wrapped) when the logo is
// missing and a *GenerationError for anything that fails afterwards.
func Generate(opts Options, con *ui.Console) error {
	opts = opts.withDefaults()

	if _, err := os.Stat(opts.LogoPath); err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(ErrSourceNotFound, opts.LogoPath)
		}
		return fail(StepPrepare, errors.Wrap(err, "checking logo"))
	}

	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return fail(StepPrepare, errors.Wrap(err, "creating output directory"))
	}

	con.Println("Generating favicons...")

	logo, err := loadImage(opts.LogoPath)
	if err != nil {
		return fail(StepDecode, err)
	}

	if b := logo.Bounds(); b.Dx() != b.Dy() {
		con.Warning(fmt.Sprintf("Logo is %dx%d, icons will be stretched to a square", b.Dx(), b.Dy()))
	}

	for _, item := range opts.Sizes {
		favicon, err := Resize(logo, item.Size, opts.Filter)
		if err != nil {
			return fail(StepResize, errors.Wrapf(err, "resizing %s", item.Name))
		}

		n, err := writePNG(filepath.Join(opts.OutDir, item.Name), favicon)
		if err != nil {
			return fail(StepWrite, err)
		}
		reportWritten(con, item.Name, n)
	}

	favicon32, err := Resize(logo, IcoSize, opts.Filter)
	if err != nil {
		return fail(StepResize, errors.Wrapf(err, "resizing %s", config.IcoFile))
	}
	n, err := writeICO(filepath.Join(opts.OutDir, config.IcoFile), favicon32)
	if err != nil {
		return fail(StepWrite, err)
	}
	reportWritten(con, config.IcoFile, n)

	manifest := BuildManifest(opts.Manifest, opts.Sizes)
	n, err = WriteManifest(filepath.Join(opts.OutDir, config.ManifestFile), manifest)
	if err != nil {
		return fail(StepManifest, err)
	}
	reportWritten(con, config.ManifestFile, n)

	con.Println()
	con.Success("All favicons generated successfully!")
	con.Info(fmt.Sprintf("Files are in the %s/ directory", filepath.Base(opts.OutDir)))
	return nil
}

// reportWritten prints "Generated <name>" followed by the size in
// parentheses. Scripts match on the "Generated <name>" prefix, keep it stable.
func reportWritten(con *ui.Console, name string, size int64) {
	con.Printf("Generated %s (%s)\n", name, humanize.Bytes(uint64(size)))
}
