package pipeline

import (
	"fmt"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// decodeDICOM parses a DICOM dataset and converts the first PixelData frame
// into a normalized grayscale image.
func (p *ImagePipeline) decodeDICOM(path string) (*ImageData, error) {
	dataset, err := dicom.ParseFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DICOM dataset: %w", err)
	}

	element, err := dataset.FindElementByTag(tag.PixelData)
	if err != nil {
		return nil, fmt.Errorf("dataset has no PixelData element: %w", err)
	}

	info, ok := element.Value.GetValue().(dicom.PixelDataInfo)
	if !ok {
		return nil, fmt.Errorf("unexpected PixelData value type %T", element.Value.GetValue())
	}
	if len(info.Frames) == 0 {
		return nil, fmt.Errorf("PixelData contains no frames")
	}

	native, err := info.Frames[0].GetNativeFrame()
	if err != nil {
		return nil, fmt.Errorf("failed to extract native pixel frame: %w", err)
	}

	// One intensity per pixel; extra samples (e.g. RGB DICOM) are ignored
	// beyond the first channel.
	values := make([]int, 0, native.Rows*native.Cols)
	for _, samples := range native.Data {
		values = append(values, samples[0])
	}

	gray := grayFromValues(values, native.Cols, native.Rows)
	return &ImageData{
		Image:  gray,
		Width:  native.Cols,
		Height: native.Rows,
		Path:   path,
		Format: "dicom",
	}, nil
}
