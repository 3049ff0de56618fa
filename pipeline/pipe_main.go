// Package pipeline decodes image files for display. Decoders are attempted
// in order: DICOM first, then grayscale raster through OpenCV; the first
// success short-circuits the rest.
package pipeline

import (
	"fmt"
	"image"

	"xray-labeler/internal/logger"
)

// ImageData holds one decoded image ready for display.
type ImageData struct {
	Image  *image.Gray
	Width  int
	Height int
	Path   string
	Format string
}

type ImagePipeline struct {
	logger logger.Logger
}

func NewImagePipeline(log logger.Logger) *ImagePipeline {
	return &ImagePipeline{logger: log}
}

// LoadFile decodes a file as a DICOM pixel array, falling back to a
// grayscale raster decode when that fails. Intensities are linearly rescaled
// to the 0-255 display range.
func (p *ImagePipeline) LoadFile(path string) (*ImageData, error) {
	data, dicomErr := p.decodeDICOM(path)
	if dicomErr == nil {
		p.logger.Debug("Pipeline", "decoded DICOM pixel array", map[string]interface{}{
			"file":   path,
			"width":  data.Width,
			"height": data.Height,
		})
		return data, nil
	}

	p.logger.Debug("Pipeline", "DICOM decode failed, trying raster fallback", map[string]interface{}{
		"file":  path,
		"error": dicomErr.Error(),
	})

	data, rasterErr := p.decodeRaster(path)
	if rasterErr != nil {
		return nil, fmt.Errorf("could not read image file %s: %v (DICOM: %v)", path, rasterErr, dicomErr)
	}

	p.logger.Debug("Pipeline", "decoded raster image", map[string]interface{}{
		"file":   path,
		"width":  data.Width,
		"height": data.Height,
	})
	return data, nil
}
