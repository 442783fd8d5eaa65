// Package systems implements the simulation systems operating on components.
package systems

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/pthm-cable/drift/components"
)

// Walker advances particles through an independent per-particle random walk.
// Each step draws a direction pair uniformly from {-1, 0, 1}^2 and a speed
// from a Normal distribution. The speed is not clamped and may be negative.
type Walker struct {
	rng   *rand.Rand
	speed distuv.Normal
}

// NewWalker creates a walker with the given speed distribution parameters
// and randomness source. Returns an error for a non-positive sigma.
func NewWalker(speedMean, speedSigma float64, src rand.Source) (*Walker, error) {
	if speedSigma <= 0 {
		return nil, fmt.Errorf("walker: speed sigma must be positive, got %v", speedSigma)
	}
	return &Walker{
		rng:   rand.New(src),
		speed: distuv.Normal{Mu: speedMean, Sigma: speedSigma, Src: src},
	}, nil
}

// Apply mutates the physics state by one random-walk step.
func (w *Walker) Apply(p *components.Physics) {
	dx := w.rng.IntN(3) - 1
	dy := w.rng.IntN(3) - 1
	Step(p, dx, dy, w.speed.Rand())
}

// Step displaces the particle by (dx*speed, dy*speed) and points its
// rotation along the walk direction. A (0, 0) direction leaves the
// rotation unchanged. Positions are not clamped to any bounds.
func Step(p *components.Physics, dx, dy int, speed float64) {
	p.X += float64(dx) * speed
	p.Y += float64(dy) * speed
	if h, ok := Heading(dx, dy); ok {
		p.Rotation = h
	}
}

// Heading maps a discrete direction pair to one of eight fixed headings
// at 45 degree increments. ok is false for the (0, 0) pair, which has no
// direction.
func Heading(dx, dy int) (heading float64, ok bool) {
	switch dx {
	case -1:
		switch dy {
		case -1:
			return -math.Pi / 4, true
		case 1:
			return -3 * math.Pi / 4, true
		default:
			return -math.Pi / 2, true
		}
	case 1:
		switch dy {
		case -1:
			return math.Pi / 4, true
		case 1:
			return 3 * math.Pi / 4, true
		default:
			return math.Pi / 2, true
		}
	default:
		switch dy {
		case -1:
			return 0, true
		case 1:
			return math.Pi, true
		}
	}
	return 0, false
}
