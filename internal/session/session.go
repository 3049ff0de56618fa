// Package session tracks the per-run viewer state: the enumerated file list
// and the cursor identifying the image currently on screen.
package session

import "path/filepath"

// Session owns the immutable file list and the current index. Navigation is
// clamped at both ends; there is no wraparound.
type Session struct {
	files []string
	index int
}

func New(files []string) *Session {
	return &Session{files: files}
}

// Next advances the cursor and reports whether it moved.
func (s *Session) Next() bool {
	if s.index < len(s.files)-1 {
		s.index++
		return true
	}
	return false
}

// Previous moves the cursor back and reports whether it moved.
func (s *Session) Previous() bool {
	if s.index > 0 {
		s.index--
		return true
	}
	return false
}

// Current returns the full path of the active image.
func (s *Session) Current() string {
	return s.files[s.index]
}

// CurrentName returns the base file name of the active image, the key used
// for annotations.
func (s *Session) CurrentName() string {
	return filepath.Base(s.files[s.index])
}

// Index returns the zero-based cursor position.
func (s *Session) Index() int {
	return s.index
}

// Count returns the number of enumerated files.
func (s *Session) Count() int {
	return len(s.files)
}
