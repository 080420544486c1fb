package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the subset of configuration that can be overridden from a YAML
// settings file. Keys missing from the file keep their current values.
type File struct {
	Scene  SceneConfig  `yaml:"scene"`
	Cube   CubeConfig   `yaml:"cube"`
	Window WindowConfig `yaml:"window"`
	Debug  DebugConfig  `yaml:"debug"`
}

// Current returns the active overridable configuration
func Current() File {
	return File{
		Scene:  Scene,
		Cube:   Cube,
		Window: Window,
		Debug:  Debug,
	}
}

// Parse decodes YAML settings on top of the active configuration.
func Parse(data []byte) (File, error) {
	return ParseOnto(Current(), data)
}

// ParseOnto decodes YAML settings on top of base. It reads no package state,
// so it is safe to call off the game loop.
func ParseOnto(base File, data []byte) (File, error) {
	f := base
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse settings: %w", err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// LoadFile reads and parses a YAML settings file.
func LoadFile(path string) (File, error) {
	return LoadFileOnto(Current(), path)
}

// LoadFileOnto reads a YAML settings file and parses it on top of base.
func LoadFileOnto(base File, path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read settings %s: %w", path, err)
	}
	return ParseOnto(base, data)
}

// Validate rejects values that would break the scene.
func (f File) Validate() error {
	if f.Scene.Falloff <= 0 || f.Scene.Falloff > 1 {
		return fmt.Errorf("scene.falloff must be in (0, 1], got %v", f.Scene.Falloff)
	}
	if f.Cube.BaseSize <= 0 {
		return fmt.Errorf("cube.baseSize must be positive, got %v", f.Cube.BaseSize)
	}
	if f.Window.SyncInterval < 1 {
		return fmt.Errorf("window.syncInterval must be at least 1, got %d", f.Window.SyncInterval)
	}
	return nil
}

// Apply makes f the active configuration. Call from the game loop only.
func Apply(f File) {
	Scene = f.Scene
	Cube = f.Cube
	Window = f.Window
	Debug = f.Debug
}
