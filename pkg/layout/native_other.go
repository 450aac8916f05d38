//go:build !windows

package layout

// stubNative is a no-op backend for platforms without the keyboard
// services this package consumes. Layouts resolved through it are
// empty; callers still get valid (if uninformative) results.
type stubNative struct{}

var _ NativeAPI = stubNative{}

func newPlatformNative() NativeAPI {
	return stubNative{}
}

func (stubNative) ActiveLayoutID() LayoutID { return 0 }

func (stubNative) MapToScanCode(vkey uint32, id LayoutID) uint32 { return 0 }

func (stubNative) ToUnicode(vkey, scancode uint32, state *[256]byte, id LayoutID) ProbeResult {
	return ProbeResult{Kind: ProbeNone}
}

func (stubNative) KeyboardState() [256]byte {
	var state [256]byte
	return state
}
