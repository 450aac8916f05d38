package layout

import (
	"log/slog"
	"sync"

	"keylayout/pkg/keys"
)

// Cache resolves keyboard layouts on demand and keeps every layout it
// has resolved for the lifetime of the process. Resolving a layout
// issues thousands of probes against the OS, so each layout id is
// resolved at most once.
//
// All methods are safe for concurrent use. A single mutex guards both
// the layout map and the string interner; probing also mutates
// OS-internal dead key state, so serializing construction is required
// for correctness, not just for the shared maps.
type Cache struct {
	mu      sync.Mutex
	native  NativeAPI
	layouts map[LayoutID]*Layout
	strings *keys.Interner
	log     *slog.Logger
}

// NewCache returns a cache backed by the running platform. On systems
// without the required OS services the cache degrades to empty layouts
// rather than failing.
func NewCache() *Cache {
	return NewCacheWith(newPlatformNative())
}

// NewCacheWith returns a cache backed by the given native API. Tests
// use this with a Simulated backend.
func NewCacheWith(native NativeAPI) *Cache {
	return &Cache{
		native:  native,
		layouts: make(map[LayoutID]*Layout),
		strings: keys.NewInterner(),
		log:     slog.Default().With("component", "layout"),
	}
}

// GetCurrentLayout returns the layout active for the calling thread's
// foreground window, resolving it first if this is the first time the
// cache sees its id.
func (c *Cache) GetCurrentLayout() (LayoutID, *Layout) {
	id := c.native.ActiveLayoutID()

	c.mu.Lock()
	defer c.mu.Unlock()

	l, ok := c.layouts[id]
	if !ok {
		l = buildLayout(c.native, c.strings, id, c.log)
		c.layouts[id] = l
	}
	return id, l
}

// AgnosticModifiers reads the live keyboard state and reports which
// layout-independent modifiers are pressed. On layouts with AltGr the
// right Alt key reports as Control+Alt at the OS level; those two are
// suppressed while it is down, since the typist is selecting a third
// character level rather than holding modifiers.
func (c *Cache) AgnosticModifiers() keys.ModifierSet {
	state := c.native.KeyboardState()
	_, l := c.GetCurrentLayout()

	var mods keys.ModifierSet
	if state[VK_SHIFT]&keyDownBit != 0 {
		mods |= keys.ModShift
	}
	if state[VK_CONTROL]&keyDownBit != 0 {
		mods |= keys.ModControl
	}
	if state[VK_MENU]&keyDownBit != 0 {
		mods |= keys.ModAlt
	}
	if state[VK_LWIN]&keyDownBit != 0 || state[VK_RWIN]&keyDownBit != 0 {
		mods |= keys.ModSuper
	}

	if l.HasAltGraph() && state[VK_RMENU]&keyDownBit != 0 {
		mods &^= keys.ModControl | keys.ModAlt
	}

	return mods
}
