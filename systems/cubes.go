package systems

import (
	"time"

	"github.com/automoto/wirecubes/components"
	cfg "github.com/automoto/wirecubes/config"
	"github.com/automoto/wirecubes/systems/factory"
	"github.com/automoto/wirecubes/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SecondsOfDay returns the seconds elapsed since local midnight of t. Every
// instance derives the same value from the wall clock, so cubes rotate in
// step across windows.
func SecondsOfDay(t time.Time) float64 {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return t.Sub(midnight).Seconds()
}

// UpdateClock samples the time of day for this tick.
func UpdateClock(ecs *ecs.ECS) {
	root, ok := tags.SceneRoot.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(root)
	now := clock.Now
	if now == nil {
		now = time.Now
	}
	clock.Seconds = SecondsOfDay(now())
}

// UpdateCubes sets each cube's rotation directly from the time of day and
// advances spawn animations. Rotation is not accumulated, so it jumps after
// the loop has been suspended.
func UpdateCubes(ecs *ecs.ECS) {
	root, ok := tags.SceneRoot.First(ecs.World)
	if !ok {
		return
	}
	t := components.Clock.Get(root).Seconds
	dt := 1 / float32(ebiten.TPS())

	var spawned []donburi.Entity
	tags.Cube.Each(ecs.World, func(e *donburi.Entry) {
		cube := components.Cube.Get(e)
		cube.RotationX = t * cfg.Cube.RotationSpeedX
		cube.RotationY = t * cfg.Cube.RotationSpeedY

		if !e.HasComponent(components.Spawn) {
			return
		}
		spawn := components.Spawn.Get(e)
		scale, done := spawn.Tween.Update(dt)
		cube.Scale = float64(scale)
		if done {
			cube.Scale = 1
			spawned = append(spawned, e.Entity())
		}
	})

	// Structural changes wait until iteration is over.
	for _, ent := range spawned {
		ecs.World.Entry(ent).RemoveComponent(components.Spawn)
	}
}

// RebuildCubes destroys every cube and creates one per window record, in
// record order.
func RebuildCubes(ecs *ecs.ECS, n int) {
	var stale []donburi.Entity
	tags.Cube.Each(ecs.World, func(e *donburi.Entry) {
		stale = append(stale, e.Entity())
	})
	for _, ent := range stale {
		ecs.World.Remove(ent)
	}

	for i := 0; i < n; i++ {
		factory.CreateCube(ecs, i, n)
	}
}

// CubeCount returns the number of live cubes.
func CubeCount(ecs *ecs.ECS) int {
	count := 0
	tags.Cube.Each(ecs.World, func(*donburi.Entry) {
		count++
	})
	return count
}
