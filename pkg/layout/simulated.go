package layout

import "sync"

// SimKey describes one physical key position of a simulated layout:
// which virtual key selects it, which scan code it sits on, and what
// it produces at each modifier level. Empty strings and zero runes
// mean the level produces nothing.
type SimKey struct {
	VK   uint32
	Scan uint32

	// Character levels. Letter marks keys whose case follows CapsLock
	// as well as Shift.
	Base   string
	Shift  string
	Letter bool

	// Third and fourth level, reached with Control+Alt held.
	AltGr      string
	AltGrShift string

	// Dead diacritics. When set, the level latches instead of typing.
	DeadBase  rune
	DeadShift rune
}

// SimLayout is a complete keyboard layout description for the
// Simulated backend.
type SimLayout struct {
	ID      LayoutID
	Keys    map[uint32]SimKey
	Compose map[[2]rune]rune
}

// Clone returns a deep copy, so tests can derive layout variants
// without mutating the original.
func (l *SimLayout) Clone() *SimLayout {
	c := &SimLayout{
		ID:      l.ID,
		Keys:    make(map[uint32]SimKey, len(l.Keys)),
		Compose: make(map[[2]rune]rune, len(l.Compose)),
	}
	for vk, k := range l.Keys {
		c.Keys[vk] = k
	}
	for pair, r := range l.Compose {
		c.Compose[pair] = r
	}
	return c
}

// Simulated is an in-memory NativeAPI for tests and for running the
// resolver on machines without the real keyboard services. It
// reproduces the behaviors the resolver depends on, including the
// stateful dead key latch that makes the second translation call
// mandatory.
type Simulated struct {
	mu     sync.Mutex
	active *SimLayout
	state  [256]byte
	latch  rune
}

var _ NativeAPI = (*Simulated)(nil)

// NewSimulated returns a simulated backend with the given layout
// active.
func NewSimulated(l *SimLayout) *Simulated {
	return &Simulated{active: l}
}

// SetActiveLayout switches the active layout, as the user switching
// input languages would.
func (s *Simulated) SetActiveLayout(l *SimLayout) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = l
}

// SetKeyDown marks a virtual key pressed or released in the live
// keyboard state.
func (s *Simulated) SetKeyDown(vkey uint32, down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if down {
		s.state[vkey] |= keyDownBit
	} else {
		s.state[vkey] &^= keyDownBit
	}
}

// SetToggled sets a virtual key's toggle bit (CapsLock, NumLock).
func (s *Simulated) SetToggled(vkey uint32, on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if on {
		s.state[vkey] |= keyToggleBit
	} else {
		s.state[vkey] &^= keyToggleBit
	}
}

func (s *Simulated) ActiveLayoutID() LayoutID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active.ID
}

func (s *Simulated) MapToScanCode(vkey uint32, id LayoutID) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active.Keys[vkey].Scan
}

func (s *Simulated) KeyboardState() [256]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ToUnicode translates a key against the passed-in key state, not the
// live one, mirroring how the real call takes an explicit state
// snapshot. The dead key latch is backend-global, again mirroring the
// real service.
func (s *Simulated) ToUnicode(vkey, scancode uint32, state *[256]byte, id LayoutID) ProbeResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	k, ok := s.active.Keys[vkey]
	if !ok {
		return ProbeResult{Kind: ProbeNone}
	}

	shift := state[VK_SHIFT]&keyDownBit != 0
	ctrl := state[VK_CONTROL]&keyDownBit != 0
	alt := state[VK_MENU]&keyDownBit != 0
	caps := state[VK_CAPITAL]&keyToggleBit != 0

	// Control without Alt suppresses character production. Alt alone
	// leaves it unchanged.
	if ctrl && !alt {
		return ProbeResult{Kind: ProbeNone}
	}

	// Third level. Layouts without entries here fall back to the
	// plain character, which is what makes them AltGr-free.
	if ctrl && alt {
		if shift && k.AltGrShift != "" {
			return s.emit(k.AltGrShift)
		}
		if !shift && k.AltGr != "" {
			return s.emit(k.AltGr)
		}
	}

	effShift := shift
	if k.Letter {
		effShift = shift != caps
	}

	dead := k.DeadBase
	if effShift {
		dead = k.DeadShift
	}
	if dead != 0 {
		if s.latch != 0 {
			prev := s.latch
			s.latch = 0
			return ProbeResult{Kind: ProbeText, Text: string(prev)}
		}
		s.latch = dead
		return ProbeResult{Kind: ProbeDead, Text: string(dead)}
	}

	text := k.Base
	if effShift {
		text = k.Shift
	}
	if text == "" {
		return ProbeResult{Kind: ProbeNone}
	}
	return s.emit(text)
}

// emit finishes a character-producing translation, applying and
// clearing any pending dead key latch. Callers hold s.mu.
func (s *Simulated) emit(text string) ProbeResult {
	if s.latch != 0 {
		base := []rune(text)[0]
		if composed, ok := s.active.Compose[[2]rune{s.latch, base}]; ok {
			text = string(composed)
		} else {
			text = string(s.latch) + text
		}
		s.latch = 0
	}
	return ProbeResult{Kind: ProbeText, Text: text}
}
