// Package store holds bounding-box annotations keyed by image file name and
// persists them as a CSV file with the header "filename,x,y,width,height".
//
// Two layers exist at runtime: annotations loaded from a previous run and
// annotations created in the current session. Save merges them with the
// session layer taking precedence for the same file name.
package store

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
)

// Annotation is one bounding box in image pixel coordinates. X and Y are the
// top-left corner; Width and Height are non-negative and may be zero.
type Annotation struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// RectFromCorners normalizes two arbitrary corner points into an Annotation.
// The result is invariant under corner order: X and Y are the minimum
// coordinates, Width and Height the absolute differences.
func RectFromCorners(x1, y1, x2, y2 float64) Annotation {
	return Annotation{
		X:      math.Min(x1, x2),
		Y:      math.Min(y1, y2),
		Width:  math.Abs(x2 - x1),
		Height: math.Abs(y2 - y1),
	}
}

var csvHeader = []string{"filename", "x", "y", "width", "height"}

// Store is the two-layer annotation container. It is not safe for concurrent
// use; all access happens on the UI event thread.
type Store struct {
	path     string
	existing map[string]Annotation
	session  map[string]Annotation
}

func New(path string) *Store {
	return &Store{
		path:     path,
		existing: make(map[string]Annotation),
		session:  make(map[string]Annotation),
	}
}

// Path returns the destination CSV path.
func (s *Store) Path() string {
	return s.path
}

// Load reads annotations from the CSV file into the existing layer. A missing
// file is not an error; the layer simply starts empty. The first row is
// treated as a header and skipped. Rows with fewer than five fields are
// silently dropped.
func (s *Store) Load() error {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open annotation file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read annotation file: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}

	for _, row := range rows[1:] {
		if len(row) < 5 {
			continue
		}
		ann, err := parseRow(row)
		if err != nil {
			return fmt.Errorf("failed to parse annotation row for %q: %w", row[0], err)
		}
		s.existing[row[0]] = ann
	}

	return nil
}

func parseRow(row []string) (Annotation, error) {
	values := make([]float64, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(row[i+1], 64)
		if err != nil {
			return Annotation{}, err
		}
		values[i] = v
	}
	return Annotation{X: values[0], Y: values[1], Width: values[2], Height: values[3]}, nil
}

// Put writes or overwrites the session-layer annotation for a file name.
func (s *Store) Put(name string, ann Annotation) {
	s.session[name] = ann
}

// Get returns the annotation for a file name, consulting the session layer
// first and the existing layer second.
func (s *Store) Get(name string) (Annotation, bool) {
	if ann, ok := s.session[name]; ok {
		return ann, true
	}
	ann, ok := s.existing[name]
	return ann, ok
}

// Merged combines both layers, session values winning for the same file name.
func (s *Store) Merged() map[string]Annotation {
	merged := make(map[string]Annotation, len(s.existing)+len(s.session))
	for name, ann := range s.existing {
		merged[name] = ann
	}
	for name, ann := range s.session {
		merged[name] = ann
	}
	return merged
}

// Save rewrites the destination file with the merged annotation set. Rows are
// sorted by file name so repeated saves produce identical files.
func (s *Store) Save() error {
	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create annotation file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	merged := s.Merged()
	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ann := merged[name]
		row := []string{
			name,
			formatFloat(ann.X),
			formatFloat(ann.Y),
			formatFloat(ann.Width),
			formatFloat(ann.Height),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for %q: %w", name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush annotation file: %w", err)
	}

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
