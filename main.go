package main

import (
	"context"
	"fmt"
	"os"

	cfg "github.com/automoto/wirecubes/config"
	"github.com/automoto/wirecubes/fonts"
	"github.com/automoto/wirecubes/logging"
	"github.com/automoto/wirecubes/scenes"
	"github.com/automoto/wirecubes/systems"
	"github.com/automoto/wirecubes/windows"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Close()
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.scene.Close()
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the outside size so the scene always fills the window.
func (g *Game) Layout(width, height int) (int, int) {
	return width, height
}

var (
	settingsPath string
	debug        bool
	clearStorage bool
	seedWindows  int
)

var rootCmd = &cobra.Command{
	Use:   "wirecubes",
	Short: "Rotating wireframe cubes, one per registered window",
	Long: `wirecubes draws a rotating wireframe cube for every window in a
registry shared by all running instances. Drag with the mouse or a finger
to pan the scene.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Init(debug)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&settingsPath, "config", "c", "", "YAML settings file, reloaded on change")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "verbose logging and debug overlay")
	rootCmd.Flags().BoolVar(&clearStorage, "clear", false, "wipe stored windows and view state, then exit")
	rootCmd.Flags().IntVarP(&seedWindows, "windows", "n", -1, "virtual windows to create on start (default from settings)")
}

func run(cmd *cobra.Command, args []string) error {
	log := logging.Named("main")
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var reload <-chan cfg.File
	if settingsPath != "" {
		f, err := cfg.LoadFile(settingsPath)
		if err != nil {
			return err
		}
		cfg.Apply(f)
	}
	if debug {
		cfg.Debug.Enabled = true
	}
	if settingsPath != "" {
		var err error
		reload, err = cfg.Watch(ctx, settingsPath)
		if err != nil {
			log.Warnw("settings hot reload disabled", "error", err)
		}
	}

	store := openStore(cfg.Window.AppName)

	if clearStorage {
		if err := windows.Clear(store); err != nil {
			return err
		}
		if err := systems.ClearView(store); err != nil {
			return err
		}
		log.Infow("cleared stored windows and view")
		return nil
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Warnw("debug overlay font unavailable", "error", err)
	}

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	registry := windows.New(store, windows.Options{TTL: cfg.Window.TTL})
	if err := registry.Init(systems.CurrentShape(), map[string]string{"foo": "bar"}); err != nil {
		return fmt.Errorf("register window: %w", err)
	}

	seed := cfg.Window.SeedCount
	if seedWindows >= 0 {
		seed = seedWindows
	}
	for i := 0; i < seed; i++ {
		if _, err := registry.Add(map[string]string{"kind": "virtual"}); err != nil {
			return fmt.Errorf("seed windows: %w", err)
		}
	}

	game := &Game{scene: scenes.NewCubeScene(registry, store, reload)}
	if err := ebiten.RunGame(game); err != nil {
		return err
	}
	return nil
}

// openStore falls back to memory storage so the scene still runs where
// gdata is unavailable; windows are then not shared between instances.
func openStore(appName string) windows.Store {
	store, err := windows.OpenGDataStore(appName)
	if err != nil {
		logging.Named("main").Warnw("could not initialize persistence, using memory", "error", err)
		return windows.NewMemoryStore()
	}
	return store
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
