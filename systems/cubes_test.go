package systems

import (
	"testing"
	"time"

	"github.com/automoto/wirecubes/components"
	cfg "github.com/automoto/wirecubes/config"
	"github.com/automoto/wirecubes/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestSecondsOfDay(t *testing.T) {
	assert.Equal(t, 100.0, SecondsOfDay(testTime))
	assert.Equal(t, 0.0, SecondsOfDay(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

	loc := time.FixedZone("UTC+9", 9*60*60)
	assert.Equal(t, 3600.5, SecondsOfDay(time.Date(2024, 1, 1, 1, 0, 0, 5e8, loc)))
}

func TestRebuildMatchesRecordCount(t *testing.T) {
	e, _ := newTestScene(t, nil)

	for _, n := range []int{3, 1, 5, 0, 2} {
		RebuildCubes(e, n)
		assert.Equal(t, n, CubeCount(e))
	}
}

func TestRebuildAssignsIndexSizeAndPlacement(t *testing.T) {
	e, _ := newTestScene(t, nil)
	RebuildCubes(e, 3)

	seen := map[int]components.CubeData{}
	tags.Cube.Each(e.World, func(entry *donburi.Entry) {
		c := components.Cube.Get(entry)
		seen[c.Index] = *c
	})
	require.Len(t, seen, 3)

	for i := 0; i < 3; i++ {
		c := seen[i]
		size := cfg.Cube.BaseSize + float64(i)*cfg.Cube.SizeStep
		assert.Equal(t, size, c.Size)
		assert.InDelta(t, float64(i)*size*cfg.Cube.Spacing-3*size*cfg.Cube.Spacing*0.5, c.Position.X, 1e-9)
		assert.Equal(t, 0.0, c.Position.Y)
	}
	assert.NotEqual(t, seen[0].Color, seen[1].Color)
}

func TestRebuildReplacesEveryCube(t *testing.T) {
	e, _ := newTestScene(t, nil)
	RebuildCubes(e, 2)

	var before []donburi.Entity
	tags.Cube.Each(e.World, func(entry *donburi.Entry) {
		before = append(before, entry.Entity())
	})

	RebuildCubes(e, 2)
	for _, ent := range before {
		assert.False(t, e.World.Valid(ent), "old cube survived the rebuild")
	}
	assert.Equal(t, 2, CubeCount(e))
}

func TestCubeRotationFollowsClock(t *testing.T) {
	e, _ := newTestScene(t, nil)
	RebuildCubes(e, 2)

	UpdateClock(e)
	UpdateCubes(e)

	tags.Cube.Each(e.World, func(entry *donburi.Entry) {
		c := components.Cube.Get(entry)
		assert.InDelta(t, 100*cfg.Cube.RotationSpeedX, c.RotationX, 1e-9)
		assert.InDelta(t, 100*cfg.Cube.RotationSpeedY, c.RotationY, 1e-9)
	})

	// rotation is derived, not accumulated
	UpdateCubes(e)
	tags.Cube.Each(e.World, func(entry *donburi.Entry) {
		assert.InDelta(t, 100*cfg.Cube.RotationSpeedX, components.Cube.Get(entry).RotationX, 1e-9)
	})
}

func TestSpawnTweenGrowsCubes(t *testing.T) {
	withConfig(t)
	cfg.Cube.SpawnSeconds = 0.1

	e, _ := newTestScene(t, nil)
	RebuildCubes(e, 1)

	entry, ok := tags.Cube.First(e.World)
	require.True(t, ok)
	assert.Equal(t, 0.0, components.Cube.Get(entry).Scale)
	assert.True(t, entry.HasComponent(components.Spawn))

	for i := 0; i < 30; i++ {
		UpdateCubes(e)
	}

	entry, ok = tags.Cube.First(e.World)
	require.True(t, ok)
	assert.Equal(t, 1.0, components.Cube.Get(entry).Scale)
	assert.False(t, entry.HasComponent(components.Spawn))
}

func TestSpawnDisabled(t *testing.T) {
	withConfig(t)
	cfg.Cube.SpawnSeconds = 0

	e, _ := newTestScene(t, nil)
	RebuildCubes(e, 1)

	entry, ok := tags.Cube.First(e.World)
	require.True(t, ok)
	assert.Equal(t, 1.0, components.Cube.Get(entry).Scale)
	assert.False(t, entry.HasComponent(components.Spawn))
}
