// Package checksum computes content digests for artifact cache validation.
// Digests are used for integrity comparison only, never for security
// authentication.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/webfraggle/mbdflasher/pkg/errors"
)

// FileSHA256 returns the lowercase hex SHA-256 digest of the file at path.
func FileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "open %s for checksum", path)
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Wrapf(err, "hashing %s", path)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Normalize canonicalizes a hex digest for comparison.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Matches reports whether the file at path has the expected digest.
func Matches(path, expected string) (bool, error) {
	got, err := FileSHA256(path)
	if err != nil {
		return false, err
	}
	return got == Normalize(expected), nil
}
