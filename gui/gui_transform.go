package gui

import "fyne.io/fyne/v2"

// displayTransform maps between widget coordinates and image pixel
// coordinates for an image letterboxed into a widget area with preserved
// aspect ratio (canvas.ImageFillContain).
type displayTransform struct {
	scale   float32
	offsetX float32
	offsetY float32
	imgW    float32
	imgH    float32
}

func newDisplayTransform(widgetSize fyne.Size, imgW, imgH int) displayTransform {
	t := displayTransform{imgW: float32(imgW), imgH: float32(imgH), scale: 1}
	if imgW <= 0 || imgH <= 0 || widgetSize.Width <= 0 || widgetSize.Height <= 0 {
		return t
	}
	t.scale = fyne.Min(widgetSize.Width/t.imgW, widgetSize.Height/t.imgH)
	t.offsetX = (widgetSize.Width - t.imgW*t.scale) / 2
	t.offsetY = (widgetSize.Height - t.imgH*t.scale) / 2
	return t
}

// toPixel converts a widget position to image pixel coordinates, clamped to
// the image bounds.
func (t displayTransform) toPixel(pos fyne.Position) (x, y float64) {
	px := clamp((pos.X-t.offsetX)/t.scale, 0, t.imgW)
	py := clamp((pos.Y-t.offsetY)/t.scale, 0, t.imgH)
	return float64(px), float64(py)
}

// toWidget converts image pixel coordinates to a widget position.
func (t displayTransform) toWidget(x, y float64) fyne.Position {
	return fyne.NewPos(float32(x)*t.scale+t.offsetX, float32(y)*t.scale+t.offsetY)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
