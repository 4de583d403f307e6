package main

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"

	"favicongen/internal/config"
	"favicongen/internal/favicon"
	"favicongen/internal/ui"
)

// generate runs one generation and reports the outcome on con. Neither a
// missing logo nor a failed run is a process error.
func generate(r run, con *ui.Console) {
	err := favicon.Generate(r.opts, con)
	switch {
	case err == nil:
	case errors.Is(err, favicon.ErrSourceNotFound):
		logo := r.opts.LogoPath
		if rel, relErr := filepath.Rel(r.root, logo); relErr == nil {
			logo = rel
		}
		con.Println("Logo file not found!")
		con.Println("Please download the logo from:")
		con.Println(config.LogoURL)
		con.Printf("And save it as %q in the project root.\n", filepath.ToSlash(logo))
		con.Println("Or run: favicongen fetch")
	default:
		con.Error(fmt.Sprintf("Error generating favicons: %v", err))
		con.Println()
		con.Println("Make sure the image dependencies are installed: go mod download")
	}
}
