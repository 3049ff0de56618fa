// Package scan enumerates the image files to label. DICOM files take
// priority: JPEG and PNG files are only considered when the directory tree
// contains no DICOM files at all, and the two format families are never mixed
// in one session.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ErrNoImages signals that the input directory contains no labelable files.
// The caller treats this as a fatal precondition.
var ErrNoImages = errors.New("no DICOM, JPG, or PNG files found")

// Format identifies which format family a scan produced.
type Format int

const (
	FormatDICOM Format = iota
	FormatRaster
)

func (f Format) String() string {
	switch f {
	case FormatDICOM:
		return "DICOM"
	case FormatRaster:
		return "JPG or PNG"
	default:
		return "unknown"
	}
}

// FindImageFiles recursively searches root for DICOM files. When none exist
// it falls back to JPEG and PNG files, JPEG matches listed before PNG
// matches. The returned order is otherwise the directory traversal order.
func FindImageFiles(root string) ([]string, Format, error) {
	dicoms, err := findByExtension(root, ".dcm")
	if err != nil {
		return nil, 0, err
	}
	if len(dicoms) > 0 {
		return dicoms, FormatDICOM, nil
	}

	jpegs, err := findByExtension(root, ".jpg", ".jpeg")
	if err != nil {
		return nil, 0, err
	}
	pngs, err := findByExtension(root, ".png")
	if err != nil {
		return nil, 0, err
	}

	files := append(jpegs, pngs...)
	if len(files) == 0 {
		return nil, 0, fmt.Errorf("%w in %s", ErrNoImages, root)
	}
	return files, FormatRaster, nil
}

func findByExtension(root string, extensions ...string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		for _, candidate := range extensions {
			if ext == candidate {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	return files, nil
}
