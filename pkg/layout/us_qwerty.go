package layout

// usQwertyID is the en-US HKL value: layout 0x0409 in both halves.
const usQwertyID LayoutID = 0x04090409

// USQwerty returns a simulated US QWERTY layout. It covers the full
// alphanumeric block, punctuation, the numpad, and the navigation
// cluster, with the scan code conventions the resolver relies on:
// navigation keys report the numpad positions they alias, and the
// numpad divide key translates to nothing.
func USQwerty() *SimLayout {
	l := &SimLayout{
		ID:      usQwertyID,
		Keys:    make(map[uint32]SimKey, 128),
		Compose: make(map[[2]rune]rune),
	}

	letters := []struct {
		vk   uint32
		scan uint32
	}{
		{0x41, 0x1E}, {0x42, 0x30}, {0x43, 0x2E}, {0x44, 0x20},
		{0x45, 0x12}, {0x46, 0x21}, {0x47, 0x22}, {0x48, 0x23},
		{0x49, 0x17}, {0x4A, 0x24}, {0x4B, 0x25}, {0x4C, 0x26},
		{0x4D, 0x32}, {0x4E, 0x31}, {0x4F, 0x18}, {0x50, 0x19},
		{0x51, 0x10}, {0x52, 0x13}, {0x53, 0x1F}, {0x54, 0x14},
		{0x55, 0x16}, {0x56, 0x2F}, {0x57, 0x11}, {0x58, 0x2D},
		{0x59, 0x15}, {0x5A, 0x2C},
	}
	for _, e := range letters {
		lower := string(rune('a' + e.vk - 0x41))
		upper := string(rune('A' + e.vk - 0x41))
		l.Keys[e.vk] = SimKey{VK: e.vk, Scan: e.scan, Base: lower, Shift: upper, Letter: true}
	}

	digits := []struct {
		vk      uint32
		scan    uint32
		base    string
		shifted string
	}{
		{0x31, 0x02, "1", "!"}, {0x32, 0x03, "2", "@"}, {0x33, 0x04, "3", "#"},
		{0x34, 0x05, "4", "$"}, {0x35, 0x06, "5", "%"}, {0x36, 0x07, "6", "^"},
		{0x37, 0x08, "7", "&"}, {0x38, 0x09, "8", "*"}, {0x39, 0x0A, "9", "("},
		{0x30, 0x0B, "0", ")"},
	}
	for _, e := range digits {
		l.Keys[e.vk] = SimKey{VK: e.vk, Scan: e.scan, Base: e.base, Shift: e.shifted}
	}

	punct := []struct {
		vk      uint32
		scan    uint32
		base    string
		shifted string
	}{
		{VK_OEM_1, 0x27, ";", ":"},
		{VK_OEM_PLUS, 0x0D, "=", "+"},
		{VK_OEM_COMMA, 0x33, ",", "<"},
		{VK_OEM_MINUS, 0x0C, "-", "_"},
		{VK_OEM_PERIOD, 0x34, ".", ">"},
		{VK_OEM_2, 0x35, "/", "?"},
		{VK_OEM_3, 0x29, "`", "~"},
		{VK_OEM_4, 0x1A, "[", "{"},
		{VK_OEM_5, 0x2B, "\\", "|"},
		{VK_OEM_6, 0x1B, "]", "}"},
		{VK_OEM_7, 0x28, "'", "\""},
		{VK_SPACE, 0x39, " ", " "},
	}
	for _, e := range punct {
		l.Keys[e.vk] = SimKey{VK: e.vk, Scan: e.scan, Base: e.base, Shift: e.shifted}
	}

	numpad := []struct {
		vk   uint32
		scan uint32
		char string
	}{
		{VK_NUMPAD0, 0x52, "0"}, {VK_NUMPAD1, 0x4F, "1"}, {VK_NUMPAD2, 0x50, "2"},
		{VK_NUMPAD3, 0x51, "3"}, {VK_NUMPAD4, 0x4B, "4"}, {VK_NUMPAD5, 0x4C, "5"},
		{VK_NUMPAD6, 0x4D, "6"}, {VK_NUMPAD7, 0x47, "7"}, {VK_NUMPAD8, 0x48, "8"},
		{VK_NUMPAD9, 0x49, "9"}, {VK_DECIMAL, 0x53, "."},
		{VK_MULTIPLY, 0x37, "*"}, {VK_ADD, 0x4E, "+"}, {VK_SUBTRACT, 0x4A, "-"},
	}
	for _, e := range numpad {
		l.Keys[e.vk] = SimKey{VK: e.vk, Scan: e.scan, Base: e.char, Shift: e.char}
	}
	// The divide key produces no text through translation; the
	// resolver patches in the slash itself.
	l.Keys[VK_DIVIDE] = SimKey{VK: VK_DIVIDE, Scan: 0xE035}

	// Navigation keys sit on the numpad positions they alias while
	// NumLock is off; the scan mapping reflects that convention.
	nav := []struct {
		vk   uint32
		scan uint32
	}{
		{VK_UP, 0x48}, {VK_DOWN, 0x50}, {VK_LEFT, 0x4B}, {VK_RIGHT, 0x4D},
		{VK_HOME, 0x47}, {VK_END, 0x4F}, {VK_PRIOR, 0x49}, {VK_NEXT, 0x51},
		{VK_INSERT, 0x52}, {VK_DELETE, 0x53}, {VK_CLEAR, 0x4C},
	}
	for _, e := range nav {
		l.Keys[e.vk] = SimKey{VK: e.vk, Scan: e.scan}
	}

	// Non-character keys only need scan positions.
	scanOnly := []struct {
		vk   uint32
		scan uint32
	}{
		{VK_ESCAPE, 0x01}, {VK_BACK, 0x0E}, {VK_TAB, 0x0F}, {VK_RETURN, 0x1C},
		{VK_CAPITAL, 0x3A}, {VK_SHIFT, 0x2A}, {VK_LSHIFT, 0x2A}, {VK_RSHIFT, 0x36},
		{VK_CONTROL, 0x1D}, {VK_LCONTROL, 0x1D}, {VK_RCONTROL, 0xE01D},
		{VK_MENU, 0x38}, {VK_LMENU, 0x38}, {VK_RMENU, 0xE038},
		{VK_LWIN, 0xE05B}, {VK_RWIN, 0xE05C}, {VK_APPS, 0xE05D},
		{VK_SNAPSHOT, 0xE037}, {VK_SCROLL, 0x46}, {VK_PAUSE, 0x45},
		{VK_NUMLOCK, 0xE045},
		{VK_F1, 0x3B}, {VK_F2, 0x3C}, {VK_F3, 0x3D}, {VK_F4, 0x3E},
		{VK_F5, 0x3F}, {VK_F6, 0x40}, {VK_F7, 0x41}, {VK_F8, 0x42},
		{VK_F9, 0x43}, {VK_F10, 0x44}, {VK_F11, 0x57}, {VK_F12, 0x58},
	}
	for _, e := range scanOnly {
		l.Keys[e.vk] = SimKey{VK: e.vk, Scan: e.scan}
	}

	return l
}
