package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Camera holds the pan/zoom state applied when drawing the world.
// TargetX/TargetY accumulate sub-pixel movement across frames; only the
// per-frame draw transform floors them.
type Camera struct {
	OffsetX  float64
	OffsetY  float64
	TargetX  float64
	TargetY  float64
	Rotation float64

	zoom     float64
	zoomStep float64
	minZoom  float64
	panStep  float64
}

// NewCamera creates a camera at the origin with zoom 1.0.
func NewCamera(panStep, zoomStep, minZoom float64) *Camera {
	return &Camera{
		zoom:     1.0,
		zoomStep: zoomStep,
		minZoom:  minZoom,
		panStep:  panStep,
	}
}

// Zoom returns the current zoom factor.
func (c *Camera) Zoom() float64 { return c.zoom }

// SetZoom updates the zoom, ignoring non-positive values and keeping the
// result above the minimum. There is no upper bound.
func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	if z < c.minZoom {
		z = c.minZoom
	}
	c.zoom = z
}

// ZoomIn raises the zoom by one step.
func (c *Camera) ZoomIn() { c.SetZoom(c.zoom + c.zoomStep) }

// ZoomOut lowers the zoom by one step, stopping at the minimum.
func (c *Camera) ZoomOut() {
	z := c.zoom - c.zoomStep
	if z < c.minZoom {
		z = c.minZoom
	}
	c.zoom = z
}

// Pan moves the target one step along each active axis. dx and dy are axis
// directions in {-1, 0, +1}; diagonals are not normalized, so diagonal
// movement is faster on purpose.
func (c *Camera) Pan(dx, dy float64) {
	c.TargetX += dx * c.panStep
	c.TargetY += dy * c.panStep
}

// Apply appends this frame's world-to-screen transform to g. The target is
// floored here for pixel-stable rendering; the stored target keeps its
// fractional part.
func (c *Camera) Apply(g *ebiten.GeoM) {
	g.Translate(-math.Floor(c.TargetX), -math.Floor(c.TargetY))
	if c.Rotation != 0 {
		g.Rotate(c.Rotation)
	}
	g.Scale(c.zoom, c.zoom)
	g.Translate(c.OffsetX, c.OffsetY)
}
