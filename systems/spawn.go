package systems

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/pthm-cable/drift/components"
)

// FixedPopulation is the population size the spawner has always produced,
// regardless of the count it was asked for. The override is kept as the
// default; see PopulationConfig.HonorCount.
const FixedPopulation = 300

// Seed is one spawned particle, ready to be inserted into the world.
type Seed struct {
	Physics  components.Physics
	Sprite   components.Sprite
	Particle components.Particle
}

// Spawner produces the initial particle population with Gaussian-distributed
// positions: X ~ N(width/2, width/6), Y ~ N(height/2, height/6). Samples are
// not clamped to the screen.
type Spawner struct {
	width, height float64
	size          float64
	honorCount    bool
	xDist, yDist  distuv.Normal
}

// NewSpawner creates a spawner for a width x height screen. size is the
// particle size. When honorCount is false, Spawn pins the population at
// FixedPopulation.
func NewSpawner(width, height, size float64, honorCount bool, src rand.Source) *Spawner {
	return &Spawner{
		width:      width,
		height:     height,
		size:       size,
		honorCount: honorCount,
		xDist:      distuv.Normal{Mu: width / 2, Sigma: width / 6, Src: src},
		yDist:      distuv.Normal{Mu: height / 2, Sigma: height / 6, Src: src},
	}
}

// Spawn produces the initial population. The requested count is ignored and
// FixedPopulation entities are produced unless the spawner honors counts.
// Every particle is a circle carrying the walker behavior, size and rotation
// fixed, color derived from its spawn position, IDs sequential from 0.
func (s *Spawner) Spawn(count int) []Seed {
	n := FixedPopulation
	if s.honorCount {
		n = count
	}

	seeds := make([]Seed, 0, n)
	for id := 0; id < n; id++ {
		x := s.xDist.Rand()
		y := s.yDist.Rand()

		seeds = append(seeds, Seed{
			Physics: components.Physics{X: x, Y: y, Size: s.size},
			Sprite: components.Sprite{
				Shape: components.ShapeCircle,
				Color: ColorAt(x, y, s.width, s.height),
			},
			Particle: components.Particle{ID: uint32(id), Behavior: components.BehaviorWalker},
		})
	}
	return seeds
}

// ColorAt derives a particle color from its spawn position: red tracks x,
// green tracks y, no blue, opaque. Channels are not clamped; positions in
// the Gaussian tails yield out-of-range channels on purpose.
func ColorAt(x, y, width, height float64) components.Color {
	return components.Color{
		R: float32(x / width),
		G: float32(y / height),
		B: 0,
		A: 1,
	}
}
