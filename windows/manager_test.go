package windows

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func newManager(t *testing.T, store Store, clock *fakeClock) *Manager {
	t.Helper()
	m := New(store, Options{TTL: 10 * time.Second, Now: clock.Now})
	require.NoError(t, m.Init(Shape{W: 800, H: 600}, map[string]string{"foo": "bar"}))
	return m
}

func TestInitRegistersInstance(t *testing.T) {
	m := newManager(t, NewMemoryStore(), newClock())

	wins := m.Windows()
	require.Len(t, wins, 1)
	assert.Equal(t, 1, m.ID())
	assert.Equal(t, 1, wins[0].ID)
	assert.Equal(t, "bar", wins[0].Meta["foo"])
	assert.False(t, wins[0].Virtual)
}

func TestOperationsBeforeInit(t *testing.T) {
	m := New(NewMemoryStore(), Options{})

	assert.ErrorIs(t, m.Sync(), ErrNotInitialized)
	assert.ErrorIs(t, m.Update(Shape{W: 1}), ErrNotInitialized)
	_, err := m.Add(nil)
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.NoError(t, m.Close())
	assert.Empty(t, m.Windows())
}

func TestSyncSeesOtherInstances(t *testing.T) {
	store := NewMemoryStore()
	clock := newClock()
	a := newManager(t, store, clock)

	changes := 0
	a.SetWindowsChangeCallback(func() { changes++ })

	b := newManager(t, store, clock)
	assert.Equal(t, 2, b.ID())
	assert.Len(t, b.Windows(), 2)

	require.NoError(t, a.Sync())
	assert.Equal(t, 1, changes)
	assert.Len(t, a.Windows(), 2)

	// nothing changed since the last sync
	require.NoError(t, a.Sync())
	assert.Equal(t, 1, changes)
}

func TestAddAndRemoveVirtualWindows(t *testing.T) {
	m := newManager(t, NewMemoryStore(), newClock())
	changes := 0
	m.SetWindowsChangeCallback(func() { changes++ })

	r1, err := m.Add(nil)
	require.NoError(t, err)
	r2, err := m.Add(map[string]string{"kind": "virtual"})
	require.NoError(t, err)

	assert.True(t, r1.Virtual)
	assert.Greater(t, r2.ID, r1.ID)
	assert.Len(t, m.Windows(), 3)
	assert.Equal(t, 2, changes)

	last, ok := m.LastVirtual()
	require.True(t, ok)
	assert.Equal(t, r2.ID, last.ID)

	require.NoError(t, m.Remove(r2.ID))
	assert.Len(t, m.Windows(), 2)
	assert.Equal(t, 3, changes)

	// the instance's own record is not virtual
	assert.ErrorIs(t, m.Remove(m.ID()), ErrUnknownWindow)
	assert.ErrorIs(t, m.Remove(999), ErrUnknownWindow)
}

func TestVirtualWindowsVisibleToOtherInstances(t *testing.T) {
	store := NewMemoryStore()
	clock := newClock()
	a := newManager(t, store, clock)
	b := newManager(t, store, clock)

	_, err := a.Add(nil)
	require.NoError(t, err)

	require.NoError(t, b.Sync())
	assert.Len(t, b.Windows(), 3)

	// b's sync must not drop a's records
	require.NoError(t, a.Sync())
	assert.Len(t, a.Windows(), 3)
}

func TestUpdateFiresShapeCallbackOnChange(t *testing.T) {
	m := newManager(t, NewMemoryStore(), newClock())
	calls := 0
	m.SetShapeChangeCallback(func() { calls++ })

	require.NoError(t, m.Update(Shape{W: 800, H: 600}))
	assert.Equal(t, 0, calls)

	require.NoError(t, m.Update(Shape{X: 10, W: 800, H: 600}))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 10, m.Windows()[0].Shape.X)
}

func TestSilentInstancesExpire(t *testing.T) {
	store := NewMemoryStore()
	clock := newClock()
	a := newManager(t, store, clock)
	newManager(t, store, clock)

	require.NoError(t, a.Sync())
	require.Len(t, a.Windows(), 2)

	clock.Advance(5 * time.Second)
	require.NoError(t, a.Sync())
	assert.Len(t, a.Windows(), 2)

	clock.Advance(6 * time.Second)
	require.NoError(t, a.Sync())
	wins := a.Windows()
	require.Len(t, wins, 1)
	assert.Equal(t, a.ID(), wins[0].ID)
}

func TestSetTTLAppliesOnNextSync(t *testing.T) {
	store := NewMemoryStore()
	clock := newClock()
	a := newManager(t, store, clock)
	newManager(t, store, clock)

	clock.Advance(5 * time.Second)
	require.NoError(t, a.Sync())
	require.Len(t, a.Windows(), 2)

	a.SetTTL(3 * time.Second)
	require.NoError(t, a.Sync())
	assert.Len(t, a.Windows(), 1)

	a.SetTTL(0)
	clock.Advance(time.Hour)
	require.NoError(t, a.Sync())
	assert.Len(t, a.Windows(), 1)
}

func TestCloseRemovesOwnRecords(t *testing.T) {
	store := NewMemoryStore()
	clock := newClock()
	a := newManager(t, store, clock)
	b := newManager(t, store, clock)
	_, err := b.Add(nil)
	require.NoError(t, err)

	require.NoError(t, b.Close())
	assert.Equal(t, 0, b.ID())

	require.NoError(t, a.Sync())
	wins := a.Windows()
	require.Len(t, wins, 1)
	assert.Equal(t, a.ID(), wins[0].ID)
}

func TestClearResetsRegistry(t *testing.T) {
	store := NewMemoryStore()
	clock := newClock()
	newManager(t, store, clock)
	newManager(t, store, clock)

	require.NoError(t, Clear(store))

	m := newManager(t, store, clock)
	assert.Equal(t, 1, m.ID())
	assert.Len(t, m.Windows(), 1)
}

func TestCorruptRegistryIsReplaced(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(windowsKey, []byte("{not json")))

	m := newManager(t, store, newClock())
	assert.Len(t, m.Windows(), 1)
}
