// Package render maps world coordinates (origin bottom-left, y up) onto
// ebiten's screen (origin top-left, y down) through a camera.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/flappy/internal/domain/entity"
)

// Canvas draws images at world positions.
type Canvas struct {
	screen *ebiten.Image
	camera entity.Camera
	scale  float64
}

// NewCanvas wraps screen. scale is screen pixels per world unit.
func NewCanvas(screen *ebiten.Image, camera entity.Camera, scale float64) *Canvas {
	return &Canvas{screen: screen, camera: camera, scale: scale}
}

// Project returns the screen position of the top-left corner of an image
// of height h whose bottom-left corner is at world (x, y).
func Project(camera entity.Camera, scale, x, y, h float64) (sx, sy float64) {
	sx = (x - camera.Left()) * scale
	sy = (camera.Top() - y - h) * scale
	return sx, sy
}

// DrawImage draws img with its bottom-left corner at world (x, y).
func (c *Canvas) DrawImage(img *ebiten.Image, x, y float64) {
	if img == nil {
		return
	}
	h := float64(img.Bounds().Dy())
	sx, sy := Project(c.camera, c.scale, x, y, h)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(c.scale, c.scale)
	op.GeoM.Translate(sx, sy)
	c.screen.DrawImage(img, op)
}

// Fill clears the whole screen.
func (c *Canvas) Fill(clr color.Color) {
	c.screen.Fill(clr)
}

// Camera returns the camera the canvas projects through.
func (c *Canvas) Camera() entity.Camera { return c.camera }

// Screen returns the target image.
func (c *Canvas) Screen() *ebiten.Image { return c.screen }
