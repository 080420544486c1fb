package systems

import (
	"testing"
	"time"

	"github.com/automoto/wirecubes/components"
	cfg "github.com/automoto/wirecubes/config"
	"github.com/automoto/wirecubes/systems/factory"
	"github.com/automoto/wirecubes/windows"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var testTime = time.Date(2024, 5, 1, 0, 1, 40, 0, time.UTC) // 100s after midnight

func newTestScene(t *testing.T, registry components.Registry) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	root := factory.CreateSceneRoot(e, registry, func() time.Time { return testTime })
	return e, root
}

func newTestRegistry(t *testing.T, store windows.Store) *windows.Manager {
	t.Helper()
	m := windows.New(store, windows.Options{TTL: time.Minute, Now: func() time.Time { return testTime }})
	require.NoError(t, m.Init(windows.Shape{W: 640, H: 480}, nil))
	return m
}

// press marks an action as newly pressed for the next tick.
func press(e *ecs.ECS, id cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[id] = true
}

// releaseAll clears every action.
func releaseAll(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
}

func withConfig(t *testing.T) {
	t.Helper()
	saved := cfg.Current()
	t.Cleanup(func() { cfg.Apply(saved) })
}
