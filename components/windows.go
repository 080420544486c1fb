package components

import (
	"time"

	"github.com/automoto/wirecubes/windows"
	"github.com/yohamta/donburi"
)

// Registry is the subset of the window manager the scene uses.
type Registry interface {
	Windows() []windows.Record
	ID() int
	Update(shape windows.Shape) error
	Sync() error
	Add(meta map[string]string) (windows.Record, error)
	Remove(id int) error
	LastVirtual() (windows.Record, bool)
	SetShapeChangeCallback(fn func())
	SetWindowsChangeCallback(fn func())
	SetTTL(ttl time.Duration)
}

// WindowsData links the scene to the window registry. The registry
// callbacks only raise flags here; systems act on them during the tick.
type WindowsData struct {
	Registry     Registry
	Records      []windows.Record // snapshot the current cubes were built from
	Dirty        bool             // record list changed, cubes need a rebuild
	ShapeChanged bool
	SyncTimer    int // ticks until the next registry sync
}

var Windows = donburi.NewComponentType[WindowsData]()
