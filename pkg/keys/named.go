package keys

import "fmt"

// NamedKey identifies a non-printable key by its W3C UI Events name.
type NamedKey uint16

const (
	NamedUnknown NamedKey = iota

	// Modifiers.
	NamedAlt
	NamedAltGraph
	NamedCapsLock
	NamedControl
	NamedNumLock
	NamedScrollLock
	NamedShift
	NamedSuper

	// Whitespace and editing.
	NamedEnter
	NamedTab
	NamedSpace
	NamedBackspace
	NamedClear
	NamedCopy
	NamedCrSel
	NamedDelete
	NamedEraseEof
	NamedExSel
	NamedInsert

	// Navigation.
	NamedArrowDown
	NamedArrowLeft
	NamedArrowRight
	NamedArrowUp
	NamedEnd
	NamedHome
	NamedPageDown
	NamedPageUp

	// UI and device.
	NamedAccept
	NamedAttn
	NamedContextMenu
	NamedEscape
	NamedExecute
	NamedHelp
	NamedPause
	NamedPlay
	NamedPrint
	NamedPrintScreen
	NamedSelect
	NamedStandby
	NamedZoomToggle

	// IME and composition.
	NamedConvert
	NamedFinalMode
	NamedModeChange
	NamedNonConvert
	NamedProcess

	// Korean.
	NamedHangulMode
	NamedHanjaMode
	NamedJunjaMode

	// Japanese.
	NamedHankaku
	NamedKanaMode
	NamedKanjiMode
	NamedKatakana
	NamedRomaji
	NamedZenkaku

	// Browser.
	NamedBrowserBack
	NamedBrowserFavorites
	NamedBrowserForward
	NamedBrowserHome
	NamedBrowserRefresh
	NamedBrowserSearch
	NamedBrowserStop

	// Audio and media.
	NamedAudioVolumeDown
	NamedAudioVolumeMute
	NamedAudioVolumeUp
	NamedMediaPlayPause
	NamedMediaStop
	NamedMediaTrackNext
	NamedMediaTrackPrevious

	// Application launchers.
	NamedLaunchApplication1
	NamedLaunchApplication2
	NamedLaunchMail
	NamedLaunchMediaPlayer

	// Function keys.
	NamedF1
	NamedF2
	NamedF3
	NamedF4
	NamedF5
	NamedF6
	NamedF7
	NamedF8
	NamedF9
	NamedF10
	NamedF11
	NamedF12
	NamedF13
	NamedF14
	NamedF15
	NamedF16
	NamedF17
	NamedF18
	NamedF19
	NamedF20
	NamedF21
	NamedF22
	NamedF23
	NamedF24
)

var namedKeyNames = map[NamedKey]string{
	NamedAlt:                 "Alt",
	NamedAltGraph:            "AltGraph",
	NamedCapsLock:            "CapsLock",
	NamedControl:             "Control",
	NamedNumLock:             "NumLock",
	NamedScrollLock:          "ScrollLock",
	NamedShift:               "Shift",
	NamedSuper:               "Super",
	NamedEnter:               "Enter",
	NamedTab:                 "Tab",
	NamedSpace:               "Space",
	NamedBackspace:           "Backspace",
	NamedClear:               "Clear",
	NamedCopy:                "Copy",
	NamedCrSel:               "CrSel",
	NamedDelete:              "Delete",
	NamedEraseEof:            "EraseEof",
	NamedExSel:               "ExSel",
	NamedInsert:              "Insert",
	NamedArrowDown:           "ArrowDown",
	NamedArrowLeft:           "ArrowLeft",
	NamedArrowRight:          "ArrowRight",
	NamedArrowUp:             "ArrowUp",
	NamedEnd:                 "End",
	NamedHome:                "Home",
	NamedPageDown:            "PageDown",
	NamedPageUp:              "PageUp",
	NamedAccept:              "Accept",
	NamedAttn:                "Attn",
	NamedContextMenu:         "ContextMenu",
	NamedEscape:              "Escape",
	NamedExecute:             "Execute",
	NamedHelp:                "Help",
	NamedPause:               "Pause",
	NamedPlay:                "Play",
	NamedPrint:               "Print",
	NamedPrintScreen:         "PrintScreen",
	NamedSelect:              "Select",
	NamedStandby:             "Standby",
	NamedZoomToggle:          "ZoomToggle",
	NamedConvert:             "Convert",
	NamedFinalMode:           "FinalMode",
	NamedModeChange:          "ModeChange",
	NamedNonConvert:          "NonConvert",
	NamedProcess:             "Process",
	NamedHangulMode:          "HangulMode",
	NamedHanjaMode:           "HanjaMode",
	NamedJunjaMode:           "JunjaMode",
	NamedHankaku:             "Hankaku",
	NamedKanaMode:            "KanaMode",
	NamedKanjiMode:           "KanjiMode",
	NamedKatakana:            "Katakana",
	NamedRomaji:              "Romaji",
	NamedZenkaku:             "Zenkaku",
	NamedBrowserBack:         "BrowserBack",
	NamedBrowserFavorites:    "BrowserFavorites",
	NamedBrowserForward:      "BrowserForward",
	NamedBrowserHome:         "BrowserHome",
	NamedBrowserRefresh:      "BrowserRefresh",
	NamedBrowserSearch:       "BrowserSearch",
	NamedBrowserStop:         "BrowserStop",
	NamedAudioVolumeDown:     "AudioVolumeDown",
	NamedAudioVolumeMute:     "AudioVolumeMute",
	NamedAudioVolumeUp:       "AudioVolumeUp",
	NamedMediaPlayPause:      "MediaPlayPause",
	NamedMediaStop:           "MediaStop",
	NamedMediaTrackNext:      "MediaTrackNext",
	NamedMediaTrackPrevious:  "MediaTrackPrevious",
	NamedLaunchApplication1:  "LaunchApplication1",
	NamedLaunchApplication2:  "LaunchApplication2",
	NamedLaunchMail:          "LaunchMail",
	NamedLaunchMediaPlayer:   "LaunchMediaPlayer",
	NamedF1:                  "F1",
	NamedF2:                  "F2",
	NamedF3:                  "F3",
	NamedF4:                  "F4",
	NamedF5:                  "F5",
	NamedF6:                  "F6",
	NamedF7:                  "F7",
	NamedF8:                  "F8",
	NamedF9:                  "F9",
	NamedF10:                 "F10",
	NamedF11:                 "F11",
	NamedF12:                 "F12",
	NamedF13:                 "F13",
	NamedF14:                 "F14",
	NamedF15:                 "F15",
	NamedF16:                 "F16",
	NamedF17:                 "F17",
	NamedF18:                 "F18",
	NamedF19:                 "F19",
	NamedF20:                 "F20",
	NamedF21:                 "F21",
	NamedF22:                 "F22",
	NamedF23:                 "F23",
	NamedF24:                 "F24",
}

func (n NamedKey) String() string {
	if s, ok := namedKeyNames[n]; ok {
		return s
	}
	return fmt.Sprintf("NamedKey(%d)", uint16(n))
}
