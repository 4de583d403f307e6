package config

import (
	"os"
	"regexp"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Resampling filters understood by the generator.
const (
	FilterLanczos    = "lanczos"
	FilterCatmullRom = "catmullrom"
)

var (
	hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

	displayModes = map[string]bool{
		"fullscreen": true,
		"standalone": true,
		"minimal-ui": true,
		"browser":    true,
	}
)

// Config represents the optional favicon.yaml overrides
type Config struct {
	Logo      string         `yaml:"logo"`
	OutputDir string         `yaml:"output_dir"`
	Filter    string         `yaml:"filter"`
	Manifest  ManifestConfig `yaml:"manifest"`
}

type ManifestConfig struct {
	Name            string `yaml:"name"`
	ShortName       string `yaml:"short_name"`
	ThemeColor      string `yaml:"theme_color"`
	BackgroundColor string `yaml:"background_color"`
	Display         string `yaml:"display"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logo:      LogoFile,
		OutputDir: PublicDir,
		Filter:    FilterLanczos,
		Manifest: ManifestConfig{
			Name:            "Invent Alliance Limited",
			ShortName:       "Invent Alliance",
			ThemeColor:      "#0f172a",
			BackgroundColor: "#0f172a",
			Display:         "standalone",
		},
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// Validate checks the fields the generator cannot work without
func (c *Config) Validate() error {
	if c.Logo == "" {
		return errors.New("logo is required")
	}
	if c.OutputDir == "" {
		return errors.New("output_dir is required")
	}
	switch c.Filter {
	case FilterLanczos, FilterCatmullRom:
	default:
		return errors.Errorf("unknown filter %q (want %s or %s)", c.Filter, FilterLanczos, FilterCatmullRom)
	}
	if c.Manifest.Name == "" {
		return errors.New("manifest.name is required")
	}
	if !hexColor.MatchString(c.Manifest.ThemeColor) {
		return errors.Errorf("manifest.theme_color %q is not a hex color", c.Manifest.ThemeColor)
	}
	if !hexColor.MatchString(c.Manifest.BackgroundColor) {
		return errors.Errorf("manifest.background_color %q is not a hex color", c.Manifest.BackgroundColor)
	}
	if !displayModes[c.Manifest.Display] {
		return errors.Errorf("manifest.display %q is not a valid display mode", c.Manifest.Display)
	}
	return nil
}

// LogoPath returns the logo location anchored at root.
func (c *Config) LogoPath(root string) string {
	return resolve(root, c.Logo)
}

// OutputPath returns the output directory anchored at root.
func (c *Config) OutputPath(root string) string {
	return resolve(root, c.OutputDir)
}
