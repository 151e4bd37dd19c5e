package render

// Camera translates between world coordinates and screen coordinates for a
// map view that may be smaller than the map.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera with the given viewport.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// Resize changes the viewport.
func (c *Camera) Resize(viewW, viewH int) {
	c.ViewWidth, c.ViewHeight = viewW, viewH
}

// Follow centers the camera on (cx, cy) without scrolling past the edges of
// a worldW×worldH map. A map smaller than the viewport is pinned top-left.
func (c *Camera) Follow(cx, cy, worldW, worldH int) {
	c.OffsetX = follow(cx, c.ViewWidth, worldW)
	c.OffsetY = follow(cy, c.ViewHeight, worldH)
}

func follow(center, view, world int) int {
	if world <= view {
		return 0
	}
	return max(0, min(world-view, center-view/2))
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = wx - c.OffsetX
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx + c.OffsetX, sy + c.OffsetY
}
