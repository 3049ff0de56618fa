package pipeline

import (
	"fmt"

	"gocv.io/x/gocv"
)

// decodeRaster reads a JPEG or PNG file as 8-bit grayscale through OpenCV
// and normalizes it the same way as the DICOM path.
func (p *ImagePipeline) decodeRaster(path string) (*ImageData, error) {
	mat := gocv.IMRead(path, gocv.IMReadGrayScale)
	if mat.Empty() {
		return nil, fmt.Errorf("OpenCV could not decode %s", path)
	}
	defer mat.Close()

	raw, err := mat.DataPtrUint8()
	if err != nil {
		return nil, fmt.Errorf("failed to access pixel data: %w", err)
	}

	width := mat.Cols()
	height := mat.Rows()
	values := make([]int, len(raw))
	for i, v := range raw {
		values[i] = int(v)
	}

	gray := grayFromValues(values, width, height)
	return &ImageData{
		Image:  gray,
		Width:  width,
		Height: height,
		Path:   path,
		Format: "raster",
	}, nil
}
