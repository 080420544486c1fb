// Package windows is a registry of window records shared between running
// instances through a Store. Each instance registers itself, can add
// virtual windows of its own, and periodically syncs to pick up records
// written by other instances. Records of instances that stop syncing expire
// after a TTL.
package windows

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/automoto/wirecubes/logging"
	"go.uber.org/zap"
)

const (
	windowsKey = "windows"
	countKey   = "count"
)

// ErrNotInitialized is returned by operations that need a registered instance.
var ErrNotInitialized = errors.New("window manager not initialized")

// ErrUnknownWindow is returned when removing a record this instance does not own.
var ErrUnknownWindow = errors.New("unknown window")

// Shape is the position and size of a window on screen.
type Shape struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Record is one registered window.
type Record struct {
	ID       int               `json:"id"`
	Owner    int               `json:"owner"` // ID of the instance that wrote the record
	Virtual  bool              `json:"virtual,omitempty"`
	Shape    Shape             `json:"shape"`
	Meta     map[string]string `json:"metaData,omitempty"`
	LastSeen time.Time         `json:"lastSeen"`
}

// Options configures a Manager.
type Options struct {
	// TTL after which records of silent instances are dropped. Zero disables expiry.
	TTL time.Duration
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Manager tracks the registry for one instance. It is not safe for
// concurrent use; callbacks run on the goroutine that triggered them.
type Manager struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
	log   *zap.SugaredLogger

	id      int
	shape   Shape
	windows []Record

	onShapeChange   func()
	onWindowsChange func()
}

func New(store Store, opts Options) *Manager {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Manager{
		store: store,
		ttl:   opts.TTL,
		now:   now,
		log:   logging.Named("windows"),
	}
}

// SetShapeChangeCallback registers fn to run after this instance's shape changes.
func (m *Manager) SetShapeChangeCallback(fn func()) {
	m.onShapeChange = fn
}

// SetWindowsChangeCallback registers fn to run after the set of records changes.
func (m *Manager) SetWindowsChangeCallback(fn func()) {
	m.onWindowsChange = fn
}

// SetTTL changes the expiry applied on the next Sync. Zero disables expiry.
func (m *Manager) SetTTL(ttl time.Duration) {
	m.ttl = ttl
}

// ID returns this instance's record ID, 0 before Init.
func (m *Manager) ID() int {
	return m.id
}

// Windows returns a copy of the known records ordered by ID.
func (m *Manager) Windows() []Record {
	return slices.Clone(m.windows)
}

// Init registers this instance with the given shape and metadata. It does
// not fire the windows callback; callers rebuild from Windows() directly.
func (m *Manager) Init(shape Shape, meta map[string]string) error {
	stored, err := m.load()
	if err != nil {
		return err
	}
	id, err := m.nextID()
	if err != nil {
		return err
	}

	m.id = id
	m.shape = shape
	self := Record{
		ID:       id,
		Owner:    id,
		Shape:    shape,
		Meta:     meta,
		LastSeen: m.now(),
	}
	m.windows = sortByID(append(m.expire(stored), self))
	if err := m.save(); err != nil {
		return err
	}

	m.log.Infow("registered window", "id", id, "windows", len(m.windows))
	return nil
}

// Update records a new shape for this instance. When it differs from the
// last one the registry is saved and the shape callback fires.
func (m *Manager) Update(shape Shape) error {
	if m.id == 0 {
		return ErrNotInitialized
	}
	if shape == m.shape {
		return nil
	}
	m.shape = shape
	for i := range m.windows {
		if m.windows[i].ID == m.id {
			m.windows[i].Shape = shape
			m.windows[i].LastSeen = m.now()
		}
	}
	if err := m.save(); err != nil {
		return err
	}
	if m.onShapeChange != nil {
		m.onShapeChange()
	}
	return nil
}

// Sync merges the stored registry with this instance's own records,
// refreshes their heartbeat and drops expired records. The windows
// callback fires when the set of record IDs changed.
func (m *Manager) Sync() error {
	if m.id == 0 {
		return ErrNotInitialized
	}
	stored, err := m.load()
	if err != nil {
		return err
	}

	now := m.now()
	merged := make([]Record, 0, len(stored)+1)
	for _, r := range stored {
		if r.Owner != m.id {
			merged = append(merged, r)
		}
	}
	for _, r := range m.windows {
		if r.Owner == m.id {
			r.LastSeen = now
			merged = append(merged, r)
		}
	}

	before := ids(m.windows)
	m.windows = sortByID(m.expire(merged))
	if err := m.save(); err != nil {
		return err
	}

	if !slices.Equal(before, ids(m.windows)) {
		m.log.Debugw("windows changed", "before", len(before), "after", len(m.windows))
		m.notifyWindows()
	}
	return nil
}

// Add registers a virtual window owned by this instance and returns it.
func (m *Manager) Add(meta map[string]string) (Record, error) {
	if m.id == 0 {
		return Record{}, ErrNotInitialized
	}
	id, err := m.nextID()
	if err != nil {
		return Record{}, err
	}
	r := Record{
		ID:       id,
		Owner:    m.id,
		Virtual:  true,
		Shape:    m.shape,
		Meta:     meta,
		LastSeen: m.now(),
	}
	m.windows = sortByID(append(m.windows, r))
	if err := m.save(); err != nil {
		return Record{}, err
	}
	m.notifyWindows()
	return r, nil
}

// Remove deletes a virtual window owned by this instance.
func (m *Manager) Remove(id int) error {
	idx := slices.IndexFunc(m.windows, func(r Record) bool {
		return r.ID == id && r.Owner == m.id && r.Virtual
	})
	if idx < 0 {
		return fmt.Errorf("remove window %d: %w", id, ErrUnknownWindow)
	}
	m.windows = slices.Delete(m.windows, idx, idx+1)
	if err := m.save(); err != nil {
		return err
	}
	m.notifyWindows()
	return nil
}

// LastVirtual returns the newest virtual window owned by this instance.
func (m *Manager) LastVirtual() (Record, bool) {
	for i := len(m.windows) - 1; i >= 0; i-- {
		r := m.windows[i]
		if r.Virtual && r.Owner == m.id {
			return r, true
		}
	}
	return Record{}, false
}

// Close removes every record owned by this instance from the registry.
func (m *Manager) Close() error {
	if m.id == 0 {
		return nil
	}
	stored, err := m.load()
	if err != nil {
		return err
	}
	m.windows = slices.DeleteFunc(stored, func(r Record) bool {
		return r.Owner == m.id
	})
	if err := m.save(); err != nil {
		return err
	}
	m.log.Infow("unregistered window", "id", m.id)
	m.id = 0
	return nil
}

// Clear wipes the registry and the ID counter from store.
func Clear(store Store) error {
	if err := store.Save(windowsKey, nil); err != nil {
		return fmt.Errorf("clear windows: %w", err)
	}
	if err := store.Save(countKey, nil); err != nil {
		return fmt.Errorf("clear window count: %w", err)
	}
	return nil
}

func (m *Manager) notifyWindows() {
	if m.onWindowsChange != nil {
		m.onWindowsChange()
	}
}

func (m *Manager) expire(records []Record) []Record {
	if m.ttl <= 0 {
		return records
	}
	now := m.now()
	return slices.DeleteFunc(records, func(r Record) bool {
		if r.Owner == m.id && m.id != 0 {
			return false
		}
		if now.Sub(r.LastSeen) >= m.ttl {
			m.log.Infow("expired window", "id", r.ID, "owner", r.Owner,
				"lastSeen", now.Sub(r.LastSeen).Round(time.Second))
			return true
		}
		return false
	})
}

func (m *Manager) load() ([]Record, error) {
	data, err := m.store.Load(windowsKey)
	if err != nil {
		return nil, fmt.Errorf("load windows: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		// A corrupt registry is replaced on the next save.
		m.log.Warnw("could not parse stored windows", "error", err)
		return nil, nil
	}
	return records, nil
}

func (m *Manager) save() error {
	data, err := json.Marshal(m.windows)
	if err != nil {
		return fmt.Errorf("encode windows: %w", err)
	}
	if err := m.store.Save(windowsKey, data); err != nil {
		return fmt.Errorf("save windows: %w", err)
	}
	return nil
}

func (m *Manager) nextID() (int, error) {
	data, err := m.store.Load(countKey)
	if err != nil {
		return 0, fmt.Errorf("load window count: %w", err)
	}
	var count int
	if len(data) > 0 {
		if err := json.Unmarshal(data, &count); err != nil {
			m.log.Warnw("could not parse window count, restarting", "error", err)
			count = 0
		}
	}
	count++
	data, err = json.Marshal(count)
	if err != nil {
		return 0, fmt.Errorf("encode window count: %w", err)
	}
	if err := m.store.Save(countKey, data); err != nil {
		return 0, fmt.Errorf("save window count: %w", err)
	}
	return count, nil
}

func sortByID(records []Record) []Record {
	slices.SortFunc(records, func(a, b Record) int {
		return a.ID - b.ID
	})
	return records
}

func ids(records []Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
