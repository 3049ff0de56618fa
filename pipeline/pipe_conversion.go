package pipeline

import "image"

// grayFromValues linearly rescales raw intensity values to the full 0-255
// display range and packs them into an 8-bit grayscale image. Rescaling is
// skipped when the maximum value is zero, so an all-black image stays black
// instead of dividing by zero. Negative intensities clamp to zero.
func grayFromValues(values []int, width, height int) *image.Gray {
	gray := image.NewGray(image.Rect(0, 0, width, height))
	if len(values) < width*height {
		return gray
	}

	maxValue := 0
	for _, v := range values {
		if v > maxValue {
			maxValue = v
		}
	}
	if maxValue == 0 {
		return gray
	}

	for i := 0; i < width*height; i++ {
		v := values[i]
		if v < 0 {
			v = 0
		}
		gray.Pix[i] = uint8(v * 255 / maxValue)
	}

	return gray
}
