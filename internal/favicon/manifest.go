package favicon

import (
	"encoding/json"
	"fmt"
	"io"
)

// WebManifest is the site.webmanifest document browsers read to discover
// the app icons and theme colours.
type WebManifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Icons           []ManifestIcon `json:"icons"`
	ThemeColor      string         `json:"theme_color"`
	BackgroundColor string         `json:"background_color"`
	Display         string         `json:"display"`
}

type ManifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

// ManifestOptions holds the literal metadata copied into the manifest.
type ManifestOptions struct {
	Name            string
	ShortName       string
	ThemeColor      string
	BackgroundColor string
	Display         string
}

// BuildManifest lists every size flagged for the manifest, in order.
func BuildManifest(opts ManifestOptions, sizes []SizeSpec) WebManifest {
	manifest := WebManifest{
		Name:            opts.Name,
		ShortName:       opts.ShortName,
		Icons:           []ManifestIcon{},
		ThemeColor:      opts.ThemeColor,
		BackgroundColor: opts.BackgroundColor,
		Display:         opts.Display,
	}

	for _, s := range sizes {
		if !s.Manifest {
			continue
		}
		manifest.Icons = append(manifest.Icons, ManifestIcon{
			Src:   "/" + s.Name,
			Sizes: fmt.Sprintf("%dx%d", s.Size, s.Size),
			Type:  "image/png",
		})
	}
	return manifest
}

// WriteManifest serializes manifest as indented JSON.
func WriteManifest(path string, manifest WebManifest) (int64, error) {
	return writeFile(path, func(w io.Writer) error {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(manifest)
	})
}
