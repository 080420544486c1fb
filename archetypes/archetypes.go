package archetypes

import (
	"github.com/automoto/wirecubes/components"
	cfg "github.com/automoto/wirecubes/config"
	"github.com/automoto/wirecubes/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	SceneRoot = newArchetype(
		tags.SceneRoot,
		components.Offset,
		components.Pointer,
		components.Windows,
		components.Clock,
		components.Settings,
	)
	Cube = newArchetype(
		tags.Cube,
		components.Cube,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
