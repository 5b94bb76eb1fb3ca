package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fnav/internal/app/errors"
)

func Test_Canonical(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	expected, err := filepath.EvalSymlinks(filepath.Join(dir, "sub"))
	require.NoError(t, err)

	got, err := Canonical(filepath.Join(dir, "sub", "..", "sub", "."))
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func Test_Canonical_Missing(t *testing.T) {
	_, err := Canonical(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, errors.ErrPathResolution)
}

func Test_Parent(t *testing.T) {
	root := string(filepath.Separator)

	parent, ok := Parent(filepath.Join(root, "a", "b"))
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(root, "a"), parent)

	_, ok = Parent(root)
	assert.False(t, ok)
}

func Test_BaseName(t *testing.T) {
	assert.Equal(t, "b", BaseName(filepath.Join("a", "b")))
	assert.Equal(t, "caf\u00e9", BaseName("cafe\u0301"))
}
