package progressring

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"progressring/internal/core/ring"
)

type renderer struct {
	widget *ProgressRing
	raster *canvas.Raster
	label  *canvas.Text
	frame  ring.Recorder
	side   float32
	offset fyne.Position
}

func newRenderer(progressRing *ProgressRing) *renderer {
	label := canvas.NewText("", nil)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = labelStyle

	ringRenderer := &renderer{widget: progressRing, label: label}
	ringRenderer.raster = canvas.NewRaster(ringRenderer.generate)
	return ringRenderer
}

func (ringRenderer *renderer) Layout(size fyne.Size) {
	core := ringRenderer.widget.core
	side, _ := core.Measure(ring.Exact(size.Width), ring.Exact(size.Height))
	if side != ringRenderer.side || ringRenderer.widget.layoutRequested {
		core.SizeChanged(side, side, ringRenderer.side, ringRenderer.side)
		ringRenderer.side = side
		ringRenderer.widget.layoutRequested = false
	}

	ringRenderer.offset = fyne.NewPos((size.Width-side)/2, (size.Height-side)/2)
	ringRenderer.raster.Move(ringRenderer.offset)
	ringRenderer.raster.Resize(fyne.NewSize(side, side))
	ringRenderer.draw()
}

func (ringRenderer *renderer) MinSize() fyne.Size {
	width, height := ringRenderer.widget.core.Measure(ring.Constraint{}, ring.Constraint{})
	return fyne.NewSize(width, height)
}

func (ringRenderer *renderer) Refresh() {
	if ringRenderer.widget.layoutRequested {
		ringRenderer.Layout(ringRenderer.widget.Size())
	} else {
		ringRenderer.draw()
	}
	ringRenderer.raster.Refresh()
	ringRenderer.label.Refresh()
}

func (ringRenderer *renderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{ringRenderer.raster, ringRenderer.label}
}

func (ringRenderer *renderer) Destroy() {
	ringRenderer.widget.core.Stop()
}

// draw records a frame and places the label from its text command.
func (ringRenderer *renderer) draw() {
	ringRenderer.frame.Reset()
	ringRenderer.widget.core.Draw(&ringRenderer.frame)
	if len(ringRenderer.frame.Texts) == 0 {
		return
	}

	op := ringRenderer.frame.Texts[0]
	label := ringRenderer.label
	label.Text = op.Text
	label.TextSize = op.Style.Size
	if op.Style.Gradient != nil {
		label.Color = op.Style.Gradient.Stop0
	}
	// canvas.Text is positioned by its top edge; the ring anchors on the baseline.
	measured, baseline := renderedLabel(op.Text, op.Style.Size)
	label.Move(ringRenderer.offset.AddXY(0, op.Anchor.Y-baseline))
	label.Resize(fyne.NewSize(ringRenderer.side, measured.Height))
}

func (ringRenderer *renderer) generate(width, height int) image.Image {
	if ringRenderer.side <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, width, height))
	}
	return rasterize(&ringRenderer.frame, width, height, float32(width)/ringRenderer.side)
}
