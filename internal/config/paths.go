package config

import (
	"os"
	"path/filepath"
)

const (
	LogoFile     = "logo.png"
	PublicDir    = "public"
	IcoFile      = "favicon.ico"
	ManifestFile = "site.webmanifest"

	// Where the source logo can be fetched when it is missing locally.
	LogoURL = "https://www.inventallianceco.com/wp-content/uploads/2018/01/invent_mainx1.png"
)

// Project Structure:
// Root/
//  ├── logo.png (source image)
//  └── public/ (generated icons, favicon.ico, site.webmanifest)

// GetProjectRoot returns the directory favicongen treats as the project root
// when none is given explicitly.
func GetProjectRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Abs(wd)
}

func GetLogoPath(root string) string {
	return filepath.Join(root, LogoFile)
}

func GetPublicDir(root string) string {
	return filepath.Join(root, PublicDir)
}

// resolve anchors p under root unless it is already absolute.
func resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}
