package favicon

import "github.com/pkg/errors"

// ErrSourceNotFound is returned before any output is written when the logo
// does not exist.
var ErrSourceNotFound = errors.New("source image not found")

// Steps reported by GenerationError.
const (
	StepPrepare  = "prepare"
	StepDecode   = "decode"
	StepResize   = "resize"
	StepWrite    = "write"
	StepManifest = "manifest"
)

// GenerationError wraps any failure after the source check passed. Files
// written before the failure are left in place.
type GenerationError struct {
	Step string
	Err  error
}

func (e *GenerationError) Error() string {
	return e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func fail(step string, err error) error {
	return &GenerationError{Step: step, Err: err}
}
