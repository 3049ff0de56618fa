package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrayFromValuesRescalesToFullRange(t *testing.T) {
	// 12-bit style intensities typical of DICOM pixel arrays.
	values := []int{0, 1024, 2048, 4096}
	gray := grayFromValues(values, 2, 2)

	require.Len(t, gray.Pix, 4)
	assert.Equal(t, uint8(0), gray.Pix[0])
	assert.Equal(t, uint8(63), gray.Pix[1])
	assert.Equal(t, uint8(127), gray.Pix[2])
	assert.Equal(t, uint8(255), gray.Pix[3])
}

func TestGrayFromValuesAllZero(t *testing.T) {
	values := make([]int, 16)
	gray := grayFromValues(values, 4, 4)

	for _, p := range gray.Pix {
		assert.Equal(t, uint8(0), p)
	}
}

func TestGrayFromValuesClampsNegatives(t *testing.T) {
	values := []int{-5, 10}
	gray := grayFromValues(values, 2, 1)

	assert.Equal(t, uint8(0), gray.Pix[0])
	assert.Equal(t, uint8(255), gray.Pix[1])
}

func TestGrayFromValuesShortInput(t *testing.T) {
	gray := grayFromValues([]int{1, 2}, 2, 2)

	require.Len(t, gray.Pix, 4)
	for _, p := range gray.Pix {
		assert.Equal(t, uint8(0), p)
	}
}

func TestGrayFromValuesDimensions(t *testing.T) {
	gray := grayFromValues(make([]int, 12), 4, 3)

	bounds := gray.Bounds()
	assert.Equal(t, 4, bounds.Dx())
	assert.Equal(t, 3, bounds.Dy())
}
