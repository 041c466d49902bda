package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// maxSize bounds output dimensions. Anything larger is almost certainly a typo
// and would make some backends allocate gigabytes.
const maxSize = 16384

// ValidateSize checks that an output size is a usable square pixel dimension.
func ValidateSize(size int) error {
	if size <= 0 {
		return New(ErrCodeInvalidInput, "size must be positive, got %d", size)
	}
	if size > maxSize {
		return New(ErrCodeInvalidInput, "size %d exceeds maximum of %d", size, maxSize)
	}
	return nil
}

// ValidateDestination checks that a destination is a relative PNG path that
// stays inside the output root.
func ValidateDestination(dest string) error {
	if dest == "" {
		return New(ErrCodeInvalidPath, "destination cannot be empty")
	}

	for _, r := range dest {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "destination contains invalid control characters")
		}
	}

	if filepath.IsAbs(dest) {
		return New(ErrCodeInvalidPath, "destination must be relative: %s", dest)
	}

	clean := filepath.ToSlash(filepath.Clean(dest))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return New(ErrCodeInvalidPath, "destination escapes output directory: %s", dest)
	}

	if !strings.EqualFold(filepath.Ext(dest), ".png") {
		return New(ErrCodeInvalidPath, "destination must have a .png extension: %s", dest)
	}

	return nil
}
