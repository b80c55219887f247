// Package output writes rendered documents to disk.
package output

import (
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/matzehuels/nfogen/pkg/errors"
)

// Extension is the suffix given to rendered documents.
const Extension = ".txt"

// DefaultPath derives the output path from a template path by swapping the
// extension: release.yaml becomes release.txt in the same directory.
func DefaultPath(templatePath string) string {
	ext := filepath.Ext(templatePath)
	return strings.TrimSuffix(templatePath, ext) + Extension
}

// Write writes text to path atomically: the content lands in a temporary
// file first and is renamed into place, so a crash mid-write never leaves a
// truncated document behind.
func Write(path, text string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New(errors.ErrCodeInvalidPath, "output path cannot be empty")
	}
	if err := atomic.WriteFile(path, strings.NewReader(text)); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
