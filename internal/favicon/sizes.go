package favicon

// SizeSpec is one square PNG variant written to the output directory.
type SizeSpec struct {
	Name string
	Size int
	// Listed in site.webmanifest.
	Manifest bool
}

// IcoSize is the edge length of the single image stored in favicon.ico.
const IcoSize = 32

// DefaultSizes returns the fixed favicon set in output order.
func DefaultSizes() []SizeSpec {
	return []SizeSpec{
		{Name: "favicon-16x16.png", Size: 16},
		{Name: "favicon-32x32.png", Size: 32},
		{Name: "apple-touch-icon.png", Size: 180},
		{Name: "android-chrome-192x192.png", Size: 192, Manifest: true},
		{Name: "android-chrome-512x512.png", Size: 512, Manifest: true},
	}
}
