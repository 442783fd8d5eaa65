// Package components defines ECS components for the walk simulation.
package components

// Physics is the passive motion state of a particle.
// Rotation is in radians.
type Physics struct {
	X, Y     float64
	Size     float64
	Rotation float64
}

// Color is an RGBA quadruple with float channels, nominally in [0, 1].
// Channels are never clamped; conversion to the 8-bit backend color
// saturates at the draw boundary only.
type Color struct {
	R, G, B, A float32
}

// ShapeKind selects how a particle is drawn.
type ShapeKind uint8

const (
	ShapeSquare ShapeKind = iota
	ShapeArrow
	ShapeCircle
)

// Sprite determines the rendered appearance of a particle.
type Sprite struct {
	Shape ShapeKind
	Color Color
}

// BehaviorKind selects the per-tick mutation strategy of a particle.
// Behaviors are stateless, so a tag is enough; the update step
// dispatches on it without any ownership transfer.
type BehaviorKind uint8

const (
	BehaviorNone BehaviorKind = iota
	BehaviorWalker
)

// Particle identifies one simulated entity.
type Particle struct {
	ID       uint32
	Behavior BehaviorKind
}
