package scan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func baseNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names
}

func TestNoImagesIsError(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "sub", "report.pdf"))

	_, _, err := FindImageFiles(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoImages)
}

func TestDICOMTakesPriorityOverRaster(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.dcm"))
	touch(t, filepath.Join(dir, "b.jpg"))
	touch(t, filepath.Join(dir, "c.png"))
	touch(t, filepath.Join(dir, "nested", "d.dcm"))

	files, format, err := FindImageFiles(dir)
	require.NoError(t, err)

	assert.Equal(t, FormatDICOM, format)
	assert.ElementsMatch(t, []string{"a.dcm", "d.dcm"}, baseNames(files))
}

func TestRasterFallbackListsJPEGBeforePNG(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "z.png"))
	touch(t, filepath.Join(dir, "a.jpg"))
	touch(t, filepath.Join(dir, "sub", "m.jpeg"))
	touch(t, filepath.Join(dir, "sub", "n.png"))

	files, format, err := FindImageFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 4)

	assert.Equal(t, FormatRaster, format)

	// All JPEG matches precede all PNG matches.
	lastJPEG := -1
	firstPNG := len(files)
	for i, f := range files {
		switch strings.ToLower(filepath.Ext(f)) {
		case ".jpg", ".jpeg":
			lastJPEG = i
		case ".png":
			if i < firstPNG {
				firstPNG = i
			}
		}
	}
	assert.Less(t, lastJPEG, firstPNG)
}

func TestExtensionMatchIsCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "scan.DCM"))

	files, format, err := FindImageFiles(dir)
	require.NoError(t, err)

	assert.Equal(t, FormatDICOM, format)
	assert.Equal(t, []string{"scan.DCM"}, baseNames(files))
}

func TestMissingDirectoryIsError(t *testing.T) {
	_, _, err := FindImageFiles(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "DICOM", FormatDICOM.String())
	assert.Equal(t, "JPG or PNG", FormatRaster.String())
}
