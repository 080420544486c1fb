package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer
const Default ecs.LayerID = 0

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// SceneConfig contains offset smoothing and scene root configuration
type SceneConfig struct {
	// Falloff is the per-tick fraction of the remaining distance the live
	// offset covers toward its target (0.0-1.0)
	Falloff float64 `yaml:"falloff"`

	// CenterOrigin places the scene root at the middle of the screen instead
	// of the top-left corner
	CenterOrigin bool `yaml:"centerOrigin"`

	// FollowWindow pins the scene to the desktop: when this instance's window
	// moves, the offset target becomes the negated window position
	FollowWindow bool `yaml:"followWindow"`

	BackgroundColor color.RGBA `yaml:"backgroundColor"`
}

// CubeConfig contains cube generation and animation values
type CubeConfig struct {
	BaseSize   float64 `yaml:"baseSize"`   // edge length of the first cube
	SizeStep   float64 `yaml:"sizeStep"`   // added per record index
	Spacing    float64 `yaml:"spacing"`    // horizontal slot width as a multiple of size
	HueStep    float64 `yaml:"hueStep"`    // hue increment per index (0-1 wraps)
	Saturation float64 `yaml:"saturation"` // HSL saturation
	Lightness  float64 `yaml:"lightness"`  // HSL lightness

	// Radians per second of the time of day
	RotationSpeedX float64 `yaml:"rotationSpeedX"`
	RotationSpeedY float64 `yaml:"rotationSpeedY"`

	StrokeWidth  float32 `yaml:"strokeWidth"`
	SpawnSeconds float32 `yaml:"spawnSeconds"` // pop-in duration after a rebuild, 0 disables
}

// WindowConfig contains window registry configuration
type WindowConfig struct {
	AppName      string        `yaml:"appName"`      // gdata application name
	TTL          time.Duration `yaml:"ttl"`          // records not seen for this long expire
	SyncInterval int           `yaml:"syncInterval"` // ticks between registry reloads
	SeedCount    int           `yaml:"seedCount"`    // virtual windows created on first start
}

// DebugConfig contains debug overlay options
type DebugConfig struct {
	Enabled   bool       `yaml:"enabled"`
	TextColor color.RGBA `yaml:"textColor"`
}

// HUDConfig contains the window panel colours
type HUDConfig struct {
	PanelColor   color.RGBA
	ButtonIdle   color.RGBA
	ButtonHover  color.RGBA
	ButtonPress  color.RGBA
	TextColor    color.RGBA
	LabelColor   color.RGBA
	PanelPadding int
}

// Global configuration instances
var C *Config
var Scene SceneConfig
var Cube CubeConfig
var Window WindowConfig
var Debug DebugConfig
var HUD HUDConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	LightGreen = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	DarkPanel  = color.RGBA{R: 20, G: 20, B: 30, A: 200}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "wirecubes",
	}

	Scene = SceneConfig{
		Falloff:         0.05,
		CenterOrigin:    true,
		FollowWindow:    false,
		BackgroundColor: Black,
	}

	Cube = CubeConfig{
		BaseSize:       100,
		SizeStep:       50,
		Spacing:        1.5,
		HueStep:        0.1,
		Saturation:     1.0,
		Lightness:      0.5,
		RotationSpeedX: 0.5,
		RotationSpeedY: 0.3,
		StrokeWidth:    1,
		SpawnSeconds:   0.4,
	}

	Window = WindowConfig{
		AppName:      "wirecubes",
		TTL:          10 * time.Second,
		SyncInterval: 30, // twice a second at 60 TPS
		SeedCount:    1,
	}

	Debug = DebugConfig{
		Enabled:   false,
		TextColor: LightGreen,
	}

	HUD = HUDConfig{
		PanelColor:   DarkPanel,
		ButtonIdle:   color.RGBA{R: 60, G: 60, B: 80, A: 255},
		ButtonHover:  color.RGBA{R: 80, G: 80, B: 110, A: 255},
		ButtonPress:  color.RGBA{R: 40, G: 40, B: 60, A: 255},
		TextColor:    White,
		LabelColor:   color.RGBA{R: 200, G: 200, B: 200, A: 255},
		PanelPadding: 8,
	}
}
