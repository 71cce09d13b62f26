//go:build !windows

package window

// ForegroundTitle is unavailable outside Windows; callers fall back to the
// toolkit's own focus query.
func ForegroundTitle() (string, error) { return "", ErrUnsupported }
