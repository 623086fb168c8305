package record_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/ripple/internal/adapters/fs"
	"go.trai.ch/ripple/internal/adapters/record"
	"go.trai.ch/ripple/internal/core/domain"
)

func writeRecord(t *testing.T, root, content string) {
	t.Helper()
	dir := filepath.Join(root, domain.RippleDirName)
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, domain.RecordFileName),
		[]byte(content),
		domain.FilePerm,
	))
}

func TestLoader_Load(t *testing.T) {
	root := t.TempDir()
	writeRecord(t, root, `
build_time: 2026-08-01T12:00:00Z
inputs:
  a.src:
    status: up-to-date
    mtime: 2026-08-01T11:00:00Z
  b.src:
    status: needs-cascading-build
    mtime: 2026-08-01T11:30:00Z
`)

	srcPath := filepath.Join(root, "a.src")
	require.NoError(t, os.WriteFile(srcPath, []byte("let x = 1"), domain.FilePerm))

	loader := record.NewLoader(fs.NewFileSystem())
	rec, err := loader.Load(root, []domain.Input{domain.NewInput(srcPath)})
	require.NoError(t, err)

	require.Equal(t, time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC), rec.BuildTime)

	info, ok := rec.InputInfos[domain.InternPath("a.src")]
	require.True(t, ok)
	require.Equal(t, domain.StatusUpToDate, info.Status)

	info, ok = rec.InputInfos[domain.InternPath("b.src")]
	require.True(t, ok)
	require.Equal(t, domain.StatusNeedsCascadingBuild, info.Status)

	// Current mtime captured for the input that exists on disk.
	_, ok = rec.InputModTimes[domain.NewInput(srcPath)]
	require.True(t, ok)
}

func TestLoader_Load_MissingRecord(t *testing.T) {
	loader := record.NewLoader(fs.NewFileSystem())
	_, err := loader.Load(t.TempDir(), nil)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrRecordReadFailed)
}

func TestLoader_Load_MalformedYAML(t *testing.T) {
	root := t.TempDir()
	writeRecord(t, root, "build_time: [not a time")

	loader := record.NewLoader(fs.NewFileSystem())
	_, err := loader.Load(root, nil)
	require.Error(t, err)
}

func TestLoader_Load_MissingBuildTime(t *testing.T) {
	root := t.TempDir()
	writeRecord(t, root, "inputs: {}")

	loader := record.NewLoader(fs.NewFileSystem())
	_, err := loader.Load(root, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrRecordMissingBuildTime)
}

func TestLoader_Load_UnknownStatus(t *testing.T) {
	root := t.TempDir()
	writeRecord(t, root, `
build_time: 2026-08-01T12:00:00Z
inputs:
  a.src:
    status: half-built
`)

	loader := record.NewLoader(fs.NewFileSystem())
	_, err := loader.Load(root, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrRecordUnknownStatus)
}

func TestLoader_Load_MissingInputMtimeStaysAbsent(t *testing.T) {
	root := t.TempDir()
	writeRecord(t, root, "build_time: 2026-08-01T12:00:00Z")

	missing := domain.NewInput(filepath.Join(root, "gone.src"))
	loader := record.NewLoader(fs.NewFileSystem())
	rec, err := loader.Load(root, []domain.Input{missing})
	require.NoError(t, err)

	_, ok := rec.InputModTimes[missing]
	require.False(t, ok)
}
