package scene

// Braille cells are 2 dots wide and 4 dots tall.
const (
	dotsPerCol = 2
	dotsPerRow = 4
)

// ResizeAdapter turns external size notifications into controller resizes.
type ResizeAdapter struct {
	ctrl *Controller
	// ReservedRows are terminal rows kept free for chrome around the canvas.
	ReservedRows int
}

func NewResizeAdapter(c *Controller, reservedRows int) *ResizeAdapter {
	return &ResizeAdapter{ctrl: c, ReservedRows: reservedRows}
}

// Cells handles a terminal size in character cells.
func (a *ResizeAdapter) Cells(cols, rows int) bool {
	return a.ctrl.Resize(a.ViewportForCells(cols, rows))
}

// Pixels handles a window size in pixels.
func (a *ResizeAdapter) Pixels(w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	return a.ctrl.Resize(Viewport{Width: w, Height: h})
}

// ViewportForCells is the viewport Cells would apply.
func (a *ResizeAdapter) ViewportForCells(cols, rows int) Viewport {
	rows -= a.ReservedRows
	if cols <= 0 || rows <= 0 {
		return Viewport{}
	}
	return Viewport{Width: cols * dotsPerCol, Height: rows * dotsPerRow}
}
