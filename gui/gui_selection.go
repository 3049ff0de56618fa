package gui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"xray-labeler/store"
)

// Drags smaller than this on either axis do not produce a selection.
const minDragSpan = 5

// RegionSelector displays one image and lets the user drag a single
// rectangular selection over it. Only one outline is shown at a time; a new
// drag replaces the previous selection. Committed selections are reported in
// image pixel coordinates through the onSelect callback.
type RegionSelector struct {
	widget.BaseWidget

	raster  *canvas.Image
	outline *canvas.Rectangle

	imgW, imgH int
	region     *store.Annotation

	dragging  bool
	dragStart fyne.Position
	dragEnd   fyne.Position

	onSelect func(region store.Annotation)
}

func NewRegionSelector(onSelect func(store.Annotation)) *RegionSelector {
	rs := &RegionSelector{onSelect: onSelect}

	rs.raster = canvas.NewImageFromImage(nil)
	rs.raster.FillMode = canvas.ImageFillContain

	rs.outline = canvas.NewRectangle(color.Transparent)
	rs.outline.StrokeColor = color.NRGBA{R: 255, A: 255}
	rs.outline.StrokeWidth = 2
	rs.outline.Hide()

	rs.ExtendBaseWidget(rs)
	return rs
}

// SetImage replaces the displayed image and cancels any in-progress drag.
func (rs *RegionSelector) SetImage(img image.Image) {
	rs.raster.Image = img
	if img != nil {
		bounds := img.Bounds()
		rs.imgW = bounds.Dx()
		rs.imgH = bounds.Dy()
	} else {
		rs.imgW, rs.imgH = 0, 0
	}
	rs.dragging = false
	rs.Refresh()
}

// SetRegion sets the annotation outline shown over the image; nil hides it.
func (rs *RegionSelector) SetRegion(region *store.Annotation) {
	rs.region = region
	rs.dragging = false
	rs.Refresh()
}

func (rs *RegionSelector) transform() displayTransform {
	return newDisplayTransform(rs.Size(), rs.imgW, rs.imgH)
}

// Dragged implements fyne.Draggable. The outline follows the pointer while
// the drag is in progress.
func (rs *RegionSelector) Dragged(event *fyne.DragEvent) {
	if rs.raster.Image == nil {
		return
	}
	if !rs.dragging {
		rs.dragging = true
		rs.dragStart = fyne.NewPos(event.Position.X-event.Dragged.DX, event.Position.Y-event.Dragged.DY)
	}
	rs.dragEnd = event.Position
	rs.Refresh()
}

// DragEnd implements fyne.Draggable. Drags below the minimum span on either
// axis are rejected, restoring the previous outline.
func (rs *RegionSelector) DragEnd() {
	if !rs.dragging {
		return
	}
	rs.dragging = false

	if abs32(rs.dragEnd.X-rs.dragStart.X) < minDragSpan ||
		abs32(rs.dragEnd.Y-rs.dragStart.Y) < minDragSpan {
		rs.Refresh()
		return
	}

	t := rs.transform()
	x1, y1 := t.toPixel(rs.dragStart)
	x2, y2 := t.toPixel(rs.dragEnd)
	region := store.RectFromCorners(x1, y1, x2, y2)
	rs.region = &region
	rs.Refresh()

	if rs.onSelect != nil {
		rs.onSelect(region)
	}
}

func (rs *RegionSelector) CreateRenderer() fyne.WidgetRenderer {
	return &regionSelectorRenderer{selector: rs}
}

type regionSelectorRenderer struct {
	selector *RegionSelector
}

func (r *regionSelectorRenderer) Layout(size fyne.Size) {
	r.selector.raster.Resize(size)
	r.selector.raster.Move(fyne.NewPos(0, 0))
	r.positionOutline()
}

// positionOutline places the outline either at the live drag bounds or at
// the stored annotation projected into widget coordinates.
func (r *regionSelectorRenderer) positionOutline() {
	rs := r.selector
	switch {
	case rs.dragging:
		x := fyne.Min(rs.dragStart.X, rs.dragEnd.X)
		y := fyne.Min(rs.dragStart.Y, rs.dragEnd.Y)
		rs.outline.Move(fyne.NewPos(x, y))
		rs.outline.Resize(fyne.NewSize(
			abs32(rs.dragEnd.X-rs.dragStart.X),
			abs32(rs.dragEnd.Y-rs.dragStart.Y)))
		rs.outline.Show()
	case rs.region != nil && rs.raster.Image != nil:
		t := rs.transform()
		topLeft := t.toWidget(rs.region.X, rs.region.Y)
		bottomRight := t.toWidget(rs.region.X+rs.region.Width, rs.region.Y+rs.region.Height)
		rs.outline.Move(topLeft)
		rs.outline.Resize(fyne.NewSize(bottomRight.X-topLeft.X, bottomRight.Y-topLeft.Y))
		rs.outline.Show()
	default:
		rs.outline.Hide()
	}
}

func (r *regionSelectorRenderer) MinSize() fyne.Size {
	return fyne.NewSize(ImageDisplayWidth, ImageDisplayHeight)
}

func (r *regionSelectorRenderer) Refresh() {
	r.selector.raster.Refresh()
	r.positionOutline()
	canvas.Refresh(r.selector)
}

func (r *regionSelectorRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.selector.raster, r.selector.outline}
}

func (r *regionSelectorRenderer) Destroy() {}
