// Package renderer draws particles with raylib shape primitives.
//
// Geometry is computed in pure functions so shape placement can be tested
// without a window; the raylib calls only submit the result.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/components"
)

// SquareRect returns the axis-aligned bounds of the square before rotation:
// a size x size square whose top-left corner sits at (x-size/2, y-size/2).
// The rotation is applied about that corner at draw time.
func SquareRect(p components.Physics) (x, y, w, h float64) {
	return p.X - p.Size/2, p.Y - p.Size/2, p.Size, p.Size
}

// ArrowVertices returns the triangle vertices for the given physics state.
// The local vertices (0, -size/2), (-size/3, size/2), (size/3, size/2) are
// rotated by p.Rotation about the anchor and translated to the anchor
// (x, y-size/2).
func ArrowVertices(p components.Physics) [3][2]float64 {
	ax := p.X
	ay := p.Y - p.Size/2

	local := [3][2]float64{
		{0, -p.Size / 2},
		{-p.Size / 3, p.Size / 2},
		{p.Size / 3, p.Size / 2},
	}

	sin, cos := math.Sincos(p.Rotation)
	var out [3][2]float64
	for i, v := range local {
		out[i][0] = ax + v[0]*cos - v[1]*sin
		out[i][1] = ay + v[0]*sin + v[1]*cos
	}
	return out
}

// CircleShape returns the center and radius of the circle: inscribed in the
// size x size square centered on (x, y), never rotated.
func CircleShape(p components.Physics) (cx, cy, radius float64) {
	return p.X, p.Y, p.Size / 2
}

// Draw submits one shape for the given sprite and physics state.
func Draw(s components.Sprite, p components.Physics) {
	col := ToRaylib(s.Color)

	switch s.Shape {
	case components.ShapeSquare:
		x, y, w, h := SquareRect(p)
		rec := rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}
		// Rotation is about the rectangle position (zero origin), raylib wants degrees.
		rl.DrawRectanglePro(rec, rl.Vector2{}, float32(p.Rotation*180/math.Pi), col)

	case components.ShapeArrow:
		v := ArrowVertices(p)
		v1 := rl.Vector2{X: float32(v[0][0]), Y: float32(v[0][1])}
		v2 := rl.Vector2{X: float32(v[1][0]), Y: float32(v[1][1])}
		v3 := rl.Vector2{X: float32(v[2][0]), Y: float32(v[2][1])}
		// DrawTriangle requires counter-clockwise winding; tip, left, right is CCW here.
		rl.DrawTriangle(v1, v2, v3, col)

	default:
		cx, cy, r := CircleShape(p)
		rl.DrawCircleV(rl.Vector2{X: float32(cx), Y: float32(cy)}, float32(r), col)
	}
}

// ToRaylib converts a float RGBA color to raylib's 8-bit color. Out-of-range
// channels saturate here; the stored color stays unclamped.
func ToRaylib(c components.Color) rl.Color {
	return rl.Color{
		R: channelByte(c.R),
		G: channelByte(c.G),
		B: channelByte(c.B),
		A: channelByte(c.A),
	}
}

func channelByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
