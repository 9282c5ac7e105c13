// Package viewport implements the stateful zoom/pan controller that maps
// world coordinates onto a screen viewport.
//
// All zoom mutations clamp to the configured [Options.MinZoom,
// Options.MaxZoom] range, so the transform's zoom factor is always strictly
// positive. Panning is a two-phase drag session with no momentum: movement
// stops the instant the pointer is released.
//
// A Controller holds the state of at most one in-progress drag.
// StartPan/UpdatePan/EndPan must be sequenced by a single logical pointer
// drag; interleaving concurrent drag sessions on one controller is not
// supported. Everything else on the controller is plain synchronous state.
package viewport

import "github.com/seatforge/seatforge/pkg/geo"

// Options bound and scale the controller's zoom behavior.
type Options struct {
	MinZoom   float64 // lower zoom clamp, must be > 0
	MaxZoom   float64 // upper zoom clamp
	ZoomSpeed float64 // per-step zoom factor and wheel sensitivity
}

// DefaultOptions returns the standard zoom bounds.
func DefaultOptions() Options {
	return Options{
		MinZoom:   0.1,
		MaxZoom:   5,
		ZoomSpeed: 0.1,
	}
}

// Controller is a stateful viewport transform: zoom plus pan offset, with
// an optional in-progress drag session.
type Controller struct {
	opts Options

	zoom float64
	panX float64
	panY float64

	panning    bool
	panStartX  float64 // pan offset when the drag began
	panStartY  float64
	dragStartX float64 // pointer position when the drag began
	dragStartY float64
}

// New creates a controller at zoom 1 with no pan offset. Zero or inverted
// option fields fall back to defaults.
func New(opts Options) *Controller {
	def := DefaultOptions()
	if opts.MinZoom <= 0 {
		opts.MinZoom = def.MinZoom
	}
	if opts.MaxZoom <= opts.MinZoom {
		opts.MaxZoom = def.MaxZoom
	}
	if opts.ZoomSpeed <= 0 {
		opts.ZoomSpeed = def.ZoomSpeed
	}
	return &Controller{opts: opts, zoom: 1}
}

// Zoom returns the current zoom factor.
func (c *Controller) Zoom() float64 { return c.zoom }

// Pan returns the current pan offset.
func (c *Controller) Pan() (x, y float64) { return c.panX, c.panY }

// IsPanning reports whether a drag session is in progress.
func (c *Controller) IsPanning() bool { return c.panning }

// Transform returns the current view transform
// (screen = world*zoom + pan).
func (c *Controller) Transform() geo.Transform {
	return geo.Transform{Zoom: c.zoom, PanX: c.panX, PanY: c.panY}
}

// ZoomIn multiplies the zoom by (1 + ZoomSpeed), clamped to the bounds.
func (c *Controller) ZoomIn() {
	c.SetZoom(c.zoom * (1 + c.opts.ZoomSpeed))
}

// ZoomOut multiplies the zoom by (1 - ZoomSpeed), clamped to the bounds.
func (c *Controller) ZoomOut() {
	c.SetZoom(c.zoom * (1 - c.opts.ZoomSpeed))
}

// SetZoom sets the zoom factor, clamped to [MinZoom, MaxZoom].
func (c *Controller) SetZoom(zoom float64) {
	c.zoom = geo.Clamp(zoom, c.opts.MinZoom, c.opts.MaxZoom)
}

// Reset restores zoom 1 and a zero pan offset.
func (c *Controller) Reset() {
	c.zoom = 1
	c.panX, c.panY = 0, 0
}

// FitToView sets the zoom so the content fits inside the viewport with the
// given padding on every side, clamped to the zoom bounds, and resets the
// pan offset.
func (c *Controller) FitToView(contentW, contentH, viewportW, viewportH, padding float64) {
	scaleX := (viewportW - 2*padding) / contentW
	scaleY := (viewportH - 2*padding) / contentH
	c.SetZoom(min(scaleX, scaleY))
	c.panX, c.panY = 0, 0
}

// ZoomToPoint applies deltaZoom while keeping the world point under the
// given screen position visually fixed.
func (c *Controller) ZoomToPoint(clientX, clientY, deltaZoom float64) {
	oldZoom := c.zoom
	c.SetZoom(oldZoom + deltaZoom)
	ratio := c.zoom / oldZoom

	c.panX = clientX - (clientX-c.panX)*ratio
	c.panY = clientY - (clientY-c.panY)*ratio
}

// HandleWheel derives a zoom delta from a wheel event (negative deltaY
// zooms in), scaled by the zoom speed and the current zoom so steps feel
// uniform at every magnification, then zooms anchored at the cursor.
func (c *Controller) HandleWheel(clientX, clientY, deltaY float64) {
	delta := -deltaY / 100 * c.opts.ZoomSpeed * c.zoom
	c.ZoomToPoint(clientX, clientY, delta)
}

// StartPan opens a drag session, snapshotting the pan offset and pointer
// position.
func (c *Controller) StartPan(x, y float64) {
	c.panning = true
	c.panStartX, c.panStartY = c.panX, c.panY
	c.dragStartX, c.dragStartY = x, y
}

// UpdatePan moves the pan offset by the pointer's displacement since
// StartPan. A call without an open session is a no-op.
func (c *Controller) UpdatePan(x, y float64) {
	if !c.panning {
		return
	}
	c.panX = c.panStartX + (x - c.dragStartX)
	c.panY = c.panStartY + (y - c.dragStartY)
}

// EndPan closes the drag session. Panning stops instantly; there is no
// momentum.
func (c *Controller) EndPan() {
	c.panning = false
}
