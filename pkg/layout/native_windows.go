//go:build windows

package layout

import (
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procGetKeyboardLayout = user32.NewProc("GetKeyboardLayout")
	procMapVirtualKeyExW  = user32.NewProc("MapVirtualKeyExW")
	procToUnicodeEx       = user32.NewProc("ToUnicodeEx")
	procGetKeyboardState  = user32.NewProc("GetKeyboardState")
)

const mapvkVKToVSCEx = 4 // MAPVK_VK_TO_VSC_EX

// windowsNative talks to user32.dll directly. All functions degrade to
// zero values when a call fails; the resolver treats those the same as
// a key that produces nothing.
type windowsNative struct{}

var _ NativeAPI = windowsNative{}

func newPlatformNative() NativeAPI {
	return windowsNative{}
}

func (windowsNative) ActiveLayoutID() LayoutID {
	// Thread id 0 means the calling thread.
	hkl, _, _ := procGetKeyboardLayout.Call(0)
	return LayoutID(hkl)
}

func (windowsNative) MapToScanCode(vkey uint32, id LayoutID) uint32 {
	sc, _, _ := procMapVirtualKeyExW.Call(
		uintptr(vkey),
		mapvkVKToVSCEx,
		uintptr(id),
	)
	return uint32(sc)
}

func (windowsNative) ToUnicode(vkey, scancode uint32, state *[256]byte, id LayoutID) ProbeResult {
	var buf [8]uint16
	ret, _, _ := procToUnicodeEx.Call(
		uintptr(vkey),
		uintptr(scancode),
		uintptr(unsafe.Pointer(&state[0])),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		0,
		uintptr(id),
	)
	wideLen := int32(ret)
	switch {
	case wideLen > 0:
		if int(wideLen) > len(buf) {
			wideLen = int32(len(buf))
		}
		return ProbeResult{Kind: ProbeText, Text: string(utf16.Decode(buf[:wideLen]))}
	case wideLen < 0:
		// Dead key. The buffer holds the diacritic character.
		return ProbeResult{Kind: ProbeDead, Text: string(utf16.Decode(buf[:1]))}
	default:
		return ProbeResult{Kind: ProbeNone}
	}
}

func (windowsNative) KeyboardState() [256]byte {
	var state [256]byte
	procGetKeyboardState.Call(uintptr(unsafe.Pointer(&state[0])))
	return state
}
