// Package game ties the world, systems and rendering into the frame loop.
package game

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/drift/components"
	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/renderer"
	"github.com/pthm-cable/drift/systems"
	"github.com/pthm-cable/drift/telemetry"
	"github.com/pthm-cable/drift/ui"
)

// Options configures a Game.
type Options struct {
	Seed           int64
	Headless       bool
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	StepsPerUpdate int
}

// Game holds the complete simulation state.
type Game struct {
	world  *ecs.World
	mapper *ecs.Map3[components.Physics, components.Sprite, components.Particle]
	filter *ecs.Filter3[components.Physics, components.Sprite, components.Particle]

	walker    *systems.Walker
	collector *telemetry.Collector
	output    *telemetry.OutputManager

	controls ui.State
	panel    *ui.ControlsPanel

	logStats   bool
	statsEvery int32 // ticks per stats window
	dt         float64

	tick       int32
	background rl.Color

	width, height float64
}

// NewGame creates a game instance and spawns the initial population.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	src := rand.NewPCG(uint64(opts.Seed), uint64(opts.Seed)+1)

	walker, err := systems.NewWalker(cfg.Walk.SpeedMean, cfg.Walk.SpeedSigma, src)
	if err != nil {
		return nil, err
	}

	stepsPerUpdate := opts.StepsPerUpdate
	if stepsPerUpdate < 1 {
		stepsPerUpdate = 1
	}

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	statsEvery := int32(statsWindow * float64(cfg.Screen.TargetFPS))
	if statsEvery < 1 {
		statsEvery = 1
	}

	world := ecs.NewWorld()
	g := &Game{
		world: world,
		mapper: ecs.NewMap3[
			components.Physics,
			components.Sprite,
			components.Particle,
		](world),
		filter: ecs.NewFilter3[
			components.Physics,
			components.Sprite,
			components.Particle,
		](world),
		walker:    walker,
		collector: telemetry.NewCollector(),
		controls: ui.State{
			StepsPerFrame: stepsPerUpdate,
			WalkEnabled:   true,
		},
		panel:      ui.NewControlsPanel(10, 90, 190),
		logStats:   opts.LogStats,
		statsEvery: statsEvery,
		dt:         1.0 / float64(cfg.Screen.TargetFPS),
		background: renderer.ToRaylib(components.Color{
			R: cfg.Background.R,
			G: cfg.Background.G,
			B: cfg.Background.B,
			A: cfg.Background.A,
		}),
		width:  cfg.Derived.ScreenW,
		height: cfg.Derived.ScreenH,
	}

	// Spawn initial population. Entities are created once here; none are
	// added or removed afterwards.
	spawner := systems.NewSpawner(g.width, g.height, cfg.Entity.Size, cfg.Population.HonorCount, src)
	seeds := spawner.Spawn(cfg.Population.Size)
	for i := range seeds {
		g.mapper.NewEntity(&seeds[i].Physics, &seeds[i].Sprite, &seeds[i].Particle)
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.output = output
	if err := g.output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	return g, nil
}

// Update handles input and runs simulation steps for one frame.
func (g *Game) Update() {
	g.handleInput()

	if g.controls.Paused {
		return
	}

	for i := 0; i < g.controls.StepsPerFrame; i++ {
		g.step()
	}
}

// UpdateHeadless runs simulation steps without any input or rendering.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.controls.StepsPerFrame; i++ {
		g.step()
	}
}

// step runs a single tick: apply each entity's behavior, then telemetry.
func (g *Game) step() {
	if g.controls.WalkEnabled {
		query := g.filter.Query()
		for query.Next() {
			phys, _, part := query.Get()
			if part.Behavior == components.BehaviorWalker {
				prevX, prevY := phys.X, phys.Y
				g.walker.Apply(phys)
				g.collector.RecordStep(math.Hypot(phys.X-prevX, phys.Y-prevY))
			}
		}
	}

	g.tick++

	if g.tick%g.statsEvery == 0 {
		g.flushStats()
	}
}

// flushStats folds the window's step samples and current positions into
// stats and emits them. Runs every window so the collector buffer resets
// even when output is disabled.
func (g *Game) flushStats() {
	var xs, ys []float64
	query := g.filter.Query()
	for query.Next() {
		phys, _, _ := query.Get()
		xs = append(xs, phys.X)
		ys = append(ys, phys.Y)
	}

	stats := g.collector.Flush(g.tick, g.dt, xs, ys)
	if g.logStats {
		stats.Log()
	}
	if err := g.output.WriteStats(stats); err != nil {
		slog.Error("failed to write stats", "error", err)
	}
}

// Draw renders one frame: clear to the background color, then every entity
// in insertion order, then the HUD.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(g.background)

	query := g.filter.Query()
	for query.Next() {
		phys, sprite, _ := query.Get()
		renderer.Draw(*sprite, *phys)
	}

	rl.DrawText(fmt.Sprintf("Tick: %d", g.tick), 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Entities: %d  Speed: %dx  [</>]", g.Count(), g.controls.StepsPerFrame), 10, 35, 20, rl.White)
	if g.controls.Paused {
		rl.DrawText("PAUSED", 10, 60, 20, rl.Yellow)
	}
	rl.DrawText("[TAB] controls", 10, int32(g.height)-25, 14, rl.White)

	g.panel.Draw(&g.controls)

	rl.EndDrawing()
}

// Count returns the number of entities in the world.
func (g *Game) Count() int {
	n := 0
	query := g.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

// ForEach visits every entity in insertion order.
func (g *Game) ForEach(fn func(p *components.Physics, s *components.Sprite, pt *components.Particle)) {
	query := g.filter.Query()
	for query.Next() {
		phys, sprite, part := query.Get()
		fn(phys, sprite, part)
	}
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Unload releases run outputs.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
