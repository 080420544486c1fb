package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverridesOnlyGivenKeys(t *testing.T) {
	f, err := Parse([]byte(`
scene:
  falloff: 0.1
cube:
  baseSize: 64
window:
  ttl: 30s
`))
	require.NoError(t, err)

	assert.Equal(t, 0.1, f.Scene.Falloff)
	assert.Equal(t, Scene.CenterOrigin, f.Scene.CenterOrigin)
	assert.Equal(t, 64.0, f.Cube.BaseSize)
	assert.Equal(t, Cube.SizeStep, f.Cube.SizeStep)
	assert.Equal(t, 30*time.Second, f.Window.TTL)
	assert.Equal(t, Window.AppName, f.Window.AppName)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	_, err := Parse([]byte("scene:\n  falloff: 0\n"))
	assert.ErrorContains(t, err, "falloff")

	_, err = Parse([]byte("cube:\n  baseSize: -1\n"))
	assert.ErrorContains(t, err, "baseSize")

	_, err = Parse([]byte("window:\n  syncInterval: 0\n"))
	assert.ErrorContains(t, err, "syncInterval")

	_, err = Parse([]byte("scene: ["))
	assert.Error(t, err)
}

func TestApplyAndCurrent(t *testing.T) {
	saved := Current()
	t.Cleanup(func() { Apply(saved) })

	f := Current()
	f.Scene.Falloff = 0.5
	f.Debug.Enabled = true
	Apply(f)

	assert.Equal(t, 0.5, Scene.Falloff)
	assert.True(t, Debug.Enabled)
	assert.Equal(t, f, Current())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWatchDeliversReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scene:\n  falloff: 0.1\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := Watch(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("scene:\n  falloff: 0.3\n"), 0o644))

	var got File
	require.Eventually(t, func() bool {
		select {
		case got = <-updates:
			return got.Scene.Falloff == 0.3
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
}

func TestParseOntoIgnoresActiveConfig(t *testing.T) {
	saved := Current()
	t.Cleanup(func() { Apply(saved) })

	base := Current()
	base.Cube.BaseSize = 20
	Cube.BaseSize = 999

	f, err := ParseOnto(base, []byte("scene:\n  falloff: 0.4\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.4, f.Scene.Falloff)
	assert.Equal(t, 20.0, f.Cube.BaseSize)
}

func TestWatchReloadsOntoStartupConfig(t *testing.T) {
	saved := Current()
	t.Cleanup(func() { Apply(saved) })

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scene:\n  falloff: 0.1\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	startSize := Cube.BaseSize
	updates, err := Watch(ctx, path)
	require.NoError(t, err)

	// Later changes on the game loop do not leak into reloads.
	Cube.BaseSize = startSize + 1

	require.NoError(t, os.WriteFile(path, []byte("scene:\n  falloff: 0.6\n"), 0o644))

	var got File
	require.Eventually(t, func() bool {
		select {
		case got = <-updates:
			return got.Scene.Falloff == 0.6
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, startSize, got.Cube.BaseSize)
}

// Run with -race: the watcher parses while the loop applies.
func TestWatchWhileApplying(t *testing.T) {
	saved := Current()
	t.Cleanup(func() { Apply(saved) })

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scene:\n  falloff: 0.1\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := Watch(ctx, path)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			data := []byte("scene:\n  falloff: 0.5\ncube:\n  baseSize: 42\n")
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return
			}
			time.Sleep(2 * time.Millisecond)
		}
	}()

	applied := 0
	deadline := time.After(5 * time.Second)
loop:
	for {
		select {
		case f := <-updates:
			Apply(f)
			applied++
		case <-done:
			break loop
		case <-deadline:
			break loop
		}
	}
	<-done

	// pick up a reload still pending after the writer stopped
	require.Eventually(t, func() bool {
		select {
		case f := <-updates:
			Apply(f)
			applied++
		default:
		}
		return applied > 0
	}, 5*time.Second, 10*time.Millisecond)
}
