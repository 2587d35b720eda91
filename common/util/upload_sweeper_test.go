package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string, modTime time.Time) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	require.NoError(t, os.Chtimes(path, modTime, modTime))
}

func TestUploadSweeper_Sweep(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	oldUpload := filepath.Join(dir, UploadName("logo.png"))
	freshUpload := filepath.Join(dir, UploadName("sig.png"))
	oldCertificate := filepath.Join(dir, "CERT-0A1B2C3D.pdf")
	oldForeign := filepath.Join(dir, "readme.txt")

	touch(t, oldUpload, now.Add(-48*time.Hour))
	touch(t, freshUpload, now.Add(-time.Minute))
	touch(t, oldCertificate, now.Add(-48*time.Hour))
	touch(t, oldForeign, now.Add(-48*time.Hour))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "0123456789abcdef0123456789abcdef_dir"), 0755))

	sweeper, err := NewUploadSweeper(dir, 24*time.Hour, "@every 1h")
	require.NoError(t, err)
	sweeper.now = func() time.Time { return now }

	removed, err := sweeper.Sweep()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	assert.NoFileExists(t, oldUpload)
	assert.FileExists(t, freshUpload)
	assert.FileExists(t, oldCertificate, "generated certificates are kept")
	assert.FileExists(t, oldForeign)
}

func TestUploadSweeper_MissingDirectory(t *testing.T) {
	sweeper, err := NewUploadSweeper(filepath.Join(t.TempDir(), "absent"), time.Hour, "@every 1h")
	require.NoError(t, err)

	removed, err := sweeper.Sweep()
	assert.NoError(t, err)
	assert.Zero(t, removed)
}

func TestNewUploadSweeper_Invalid(t *testing.T) {
	_, err := NewUploadSweeper(t.TempDir(), 0, "@every 1h")
	assert.Error(t, err)

	_, err = NewUploadSweeper(t.TempDir(), time.Hour, "not a schedule")
	assert.Error(t, err)
}
