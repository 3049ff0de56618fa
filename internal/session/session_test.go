package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigationClampsAtBoundaries(t *testing.T) {
	s := New([]string{"/data/a.dcm", "/data/b.dcm", "/data/c.dcm"})

	// Previous at index 0 is a no-op.
	assert.False(t, s.Previous())
	assert.Equal(t, 0, s.Index())

	assert.True(t, s.Next())
	assert.True(t, s.Next())
	assert.Equal(t, 2, s.Index())

	// Next at the last index is a no-op; no wraparound.
	assert.False(t, s.Next())
	assert.Equal(t, 2, s.Index())

	assert.True(t, s.Previous())
	assert.Equal(t, 1, s.Index())
}

func TestCurrentAndName(t *testing.T) {
	s := New([]string{"/data/sub/chest.dcm", "/data/skull.dcm"})

	assert.Equal(t, "/data/sub/chest.dcm", s.Current())
	assert.Equal(t, "chest.dcm", s.CurrentName())
	assert.Equal(t, 2, s.Count())

	s.Next()
	assert.Equal(t, "skull.dcm", s.CurrentName())
}

func TestSingleFileSession(t *testing.T) {
	s := New([]string{"only.png"})

	assert.False(t, s.Next())
	assert.False(t, s.Previous())
	assert.Equal(t, "only.png", s.Current())
}
