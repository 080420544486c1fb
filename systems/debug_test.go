package systems

import (
	"testing"

	"github.com/automoto/wirecubes/components"
	"github.com/automoto/wirecubes/windows"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugLinesDescribeScene(t *testing.T) {
	registry := newTestRegistry(t, windows.NewMemoryStore())
	_, err := registry.Add(nil)
	require.NoError(t, err)

	e, root := newTestScene(t, registry)
	UpdateWindows(e)
	ptr := components.Pointer.Get(root)
	offset := components.Offset.Get(root)
	BeginDrag(ptr, offset, components.PointerMouse, 12, 34)
	MoveDrag(ptr, offset, 40, 50)

	lines := DebugLines(e)
	require.Len(t, lines, 7)
	assert.Equal(t, "pointer: dragging from (12, 34) at (40, 50)", lines[3])
	assert.Equal(t, "input: keyboard", lines[4])
	assert.Contains(t, lines[5], "cubes: 2")
	assert.Equal(t, "records: [1 2]", lines[6])
}

func TestDebugLinesShowInputMethod(t *testing.T) {
	e, _ := newTestScene(t, nil)

	getOrCreateInput(e).LastInputMethod = components.InputPointer
	assert.Equal(t, "input: pointer", DebugLines(e)[4])

	getOrCreateInput(e).LastInputMethod = components.InputGamepad
	assert.Equal(t, "input: gamepad", DebugLines(e)[4])
}
