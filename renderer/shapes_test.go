package renderer

import (
	"math"
	"testing"

	"github.com/pthm-cable/drift/components"
)

func TestSquareRect_CenteredOnPosition(t *testing.T) {
	p := components.Physics{X: 100, Y: 60, Size: 10}
	x, y, w, h := SquareRect(p)

	if x != 95 || y != 55 || w != 10 || h != 10 {
		t.Fatalf("rect = (%v, %v, %v, %v), want (95, 55, 10, 10)", x, y, w, h)
	}

	// Pre-rotation centroid must sit on the entity position.
	cx, cy := x+w/2, y+h/2
	if cx != p.X || cy != p.Y {
		t.Errorf("centroid = (%v, %v), want (%v, %v)", cx, cy, p.X, p.Y)
	}
}

func TestArrowVertices_Unrotated(t *testing.T) {
	p := components.Physics{X: 100, Y: 60, Size: 12}
	v := ArrowVertices(p)

	// Anchor is (x, y-size/2); local vertices (0,-s/2), (-s/3,s/2), (s/3,s/2).
	want := [3][2]float64{
		{100, 48},
		{96, 60},
		{104, 60},
	}
	const eps = 1e-9
	for i := range want {
		if math.Abs(v[i][0]-want[i][0]) > eps || math.Abs(v[i][1]-want[i][1]) > eps {
			t.Errorf("vertex %d = (%v, %v), want (%v, %v)", i, v[i][0], v[i][1], want[i][0], want[i][1])
		}
	}

	// The triangle is symmetric about the vertical through x.
	xc := (v[0][0] + v[1][0] + v[2][0]) / 3
	if math.Abs(xc-p.X) > eps {
		t.Errorf("vertex x-centroid = %v, want %v", xc, p.X)
	}
}

func TestArrowVertices_RotationPreservesShape(t *testing.T) {
	p := components.Physics{X: 30, Y: 40, Size: 9}

	dist := func(v [3][2]float64, i int, ax, ay float64) float64 {
		return math.Hypot(v[i][0]-ax, v[i][1]-ay)
	}

	ax, ay := p.X, p.Y-p.Size/2
	base := ArrowVertices(p)

	p.Rotation = 3 * math.Pi / 4
	rot := ArrowVertices(p)

	const eps = 1e-9
	for i := 0; i < 3; i++ {
		if math.Abs(dist(base, i, ax, ay)-dist(rot, i, ax, ay)) > eps {
			t.Errorf("vertex %d changed distance from anchor under rotation", i)
		}
	}
}

func TestCircleShape(t *testing.T) {
	p := components.Physics{X: 7, Y: -3, Size: 10, Rotation: 1.5}
	cx, cy, r := CircleShape(p)

	if cx != 7 || cy != -3 {
		t.Errorf("center = (%v, %v), want (7, -3)", cx, cy)
	}
	if r != 5 {
		t.Errorf("radius = %v, want 5", r)
	}
}

func TestToRaylib_Saturates(t *testing.T) {
	tests := []struct {
		name string
		in   components.Color
		want [4]uint8
	}{
		{"in range", components.Color{R: 0, G: 1, B: 0.5, A: 1}, [4]uint8{0, 255, 128, 255}},
		{"over range", components.Color{R: 1.25, G: 2, B: 0, A: 1}, [4]uint8{255, 255, 0, 255}},
		{"under range", components.Color{R: -0.5, G: 0, B: 0, A: 1}, [4]uint8{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToRaylib(tt.in)
			if got.R != tt.want[0] || got.G != tt.want[1] || got.B != tt.want[2] || got.A != tt.want[3] {
				t.Errorf("ToRaylib(%+v) = %+v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
