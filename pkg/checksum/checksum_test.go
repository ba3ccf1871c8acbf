package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "firmware.bin")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSHA256(t *testing.T) {
	path := writeTestFile(t, "firmware image bytes")

	sum := sha256.Sum256([]byte("firmware image bytes"))
	expected := hex.EncodeToString(sum[:])

	got, err := FileSHA256(path)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestFileSHA256MissingFile(t *testing.T) {
	_, err := FileSHA256(filepath.Join(t.TempDir(), "does-not-exist.bin"))
	assert.Error(t, err)
}

func TestMatches(t *testing.T) {
	path := writeTestFile(t, "abc")

	sum := sha256.Sum256([]byte("abc"))
	digest := hex.EncodeToString(sum[:])

	tests := []struct {
		name     string
		expected string
		want     bool
	}{
		{name: "exact match", expected: digest, want: true},
		{name: "uppercase match", expected: strings.ToUpper(digest), want: true},
		{name: "whitespace tolerated", expected: " " + digest + "\n", want: true},
		{name: "mismatch", expected: strings.Repeat("0", 64), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := Matches(path, tt.expected)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}
