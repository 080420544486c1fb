package scenes

import (
	"sync"

	"github.com/automoto/wirecubes/components"
	cfg "github.com/automoto/wirecubes/config"
	"github.com/automoto/wirecubes/logging"
	"github.com/automoto/wirecubes/systems"
	"github.com/automoto/wirecubes/systems/factory"
	"github.com/automoto/wirecubes/tags"
	"github.com/automoto/wirecubes/ui"
	"github.com/automoto/wirecubes/windows"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CubeScene renders one cube per registered window and lets the user pan it.
type CubeScene struct {
	ecs      *ecs.ECS
	registry *windows.Manager
	store    windows.Store
	reload   <-chan cfg.File
	hud      *ui.WindowsUI
	once     sync.Once
}

// NewCubeScene creates the scene. The registry must already be initialised;
// store is used for view persistence and may be nil.
func NewCubeScene(registry *windows.Manager, store windows.Store, reload <-chan cfg.File) *CubeScene {
	return &CubeScene{registry: registry, store: store, reload: reload}
}

func (cs *CubeScene) Update() {
	cs.once.Do(cs.configure)
	if cs.hud != nil {
		cs.hud.Update()
	}
	cs.ecs.Update()
	if cs.hud != nil {
		cs.hud.SetState(len(cs.registry.Windows()), systems.CanRemoveWindow(cs.ecs))
	}
}

func (cs *CubeScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Scene.BackgroundColor)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
	if cs.hud != nil {
		cs.hud.UI.Draw(screen)
	}
}

// Close saves the view and unregisters this instance's windows.
func (cs *CubeScene) Close() {
	log := logging.Named("scene")
	if cs.ecs != nil {
		if err := systems.SaveView(cs.store, systems.CurrentView(cs.ecs)); err != nil {
			log.Warnw("could not save view", "error", err)
		}
	}
	if err := cs.registry.Close(); err != nil {
		log.Warnw("could not unregister window", "error", err)
	}
}

func (cs *CubeScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input is polled before anything reads it
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateReload)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePointer)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateWindowShape)
	ecs.AddSystem(systems.UpdateWindows)
	ecs.AddSystem(systems.UpdateOffset)
	ecs.AddSystem(systems.UpdateCubes)

	ecs.AddRenderer(cfg.Default, systems.DrawCubes)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	cs.ecs = ecs

	root := factory.CreateSceneRoot(ecs, cs.registry, nil)

	reload := ecs.World.Entry(ecs.World.Create(components.Reload))
	components.Reload.SetValue(reload, components.ReloadData{Updates: cs.reload})

	saved, err := systems.LoadView(cs.store)
	if err != nil {
		logging.Named("scene").Warnw("could not load saved view", "error", err)
	}
	systems.ApplySavedView(ecs, saved)

	hud, err := ui.NewWindowsUI(
		func() { systems.AddWindow(ecs) },
		func() { systems.RemoveWindow(ecs) },
		func() {
			if r, ok := tags.SceneRoot.First(ecs.World); ok {
				systems.ResetView(components.Offset.Get(r))
			}
		},
	)
	if err != nil {
		logging.Named("scene").Warnw("HUD disabled", "error", err)
		return
	}
	cs.hud = hud
	components.Pointer.Get(root).Ignore = hud.Contains
}
