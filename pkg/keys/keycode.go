package keys

import "fmt"

// KeyCode identifies a physical key position independent of the active
// layout, mirroring KeyboardEvent.code values ("KeyA", "AltRight", ...).
type KeyCode uint16

const (
	CodeUnidentified KeyCode = iota

	// Writing system keys.
	CodeBackquote
	CodeBackslash
	CodeBracketLeft
	CodeBracketRight
	CodeComma
	CodeDigit0
	CodeDigit1
	CodeDigit2
	CodeDigit3
	CodeDigit4
	CodeDigit5
	CodeDigit6
	CodeDigit7
	CodeDigit8
	CodeDigit9
	CodeEqual
	CodeIntlBackslash
	CodeIntlRo
	CodeIntlYen
	CodeKeyA
	CodeKeyB
	CodeKeyC
	CodeKeyD
	CodeKeyE
	CodeKeyF
	CodeKeyG
	CodeKeyH
	CodeKeyI
	CodeKeyJ
	CodeKeyK
	CodeKeyL
	CodeKeyM
	CodeKeyN
	CodeKeyO
	CodeKeyP
	CodeKeyQ
	CodeKeyR
	CodeKeyS
	CodeKeyT
	CodeKeyU
	CodeKeyV
	CodeKeyW
	CodeKeyX
	CodeKeyY
	CodeKeyZ
	CodeMinus
	CodePeriod
	CodeQuote
	CodeSemicolon
	CodeSlash

	// Functional keys.
	CodeAltLeft
	CodeAltRight
	CodeBackspace
	CodeCapsLock
	CodeContextMenu
	CodeControlLeft
	CodeControlRight
	CodeEnter
	CodeSuperLeft
	CodeSuperRight
	CodeShiftLeft
	CodeShiftRight
	CodeSpace
	CodeTab

	// IME keys.
	CodeConvert
	CodeKanaMode
	CodeLang1
	CodeLang2
	CodeLang3
	CodeLang4
	CodeLang5
	CodeNonConvert

	// Control pad.
	CodeDelete
	CodeEnd
	CodeHelp
	CodeHome
	CodeInsert
	CodePageDown
	CodePageUp

	// Arrow pad.
	CodeArrowDown
	CodeArrowLeft
	CodeArrowRight
	CodeArrowUp

	// Numpad.
	CodeNumLock
	CodeNumpad0
	CodeNumpad1
	CodeNumpad2
	CodeNumpad3
	CodeNumpad4
	CodeNumpad5
	CodeNumpad6
	CodeNumpad7
	CodeNumpad8
	CodeNumpad9
	CodeNumpadAdd
	CodeNumpadComma
	CodeNumpadDecimal
	CodeNumpadDivide
	CodeNumpadEnter
	CodeNumpadEqual
	CodeNumpadMultiply
	CodeNumpadSubtract

	// Function and system keys.
	CodeEscape
	CodeFn
	CodePrintScreen
	CodeScrollLock
	CodePause
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
	CodeF13
	CodeF14
	CodeF15
	CodeF16
	CodeF17
	CodeF18
	CodeF19
	CodeF20
	CodeF21
	CodeF22
	CodeF23
	CodeF24

	// Browser, media, launcher and power keys.
	CodeBrowserBack
	CodeBrowserFavorites
	CodeBrowserForward
	CodeBrowserHome
	CodeBrowserRefresh
	CodeBrowserSearch
	CodeBrowserStop
	CodeAudioVolumeDown
	CodeAudioVolumeMute
	CodeAudioVolumeUp
	CodeMediaPlayPause
	CodeMediaSelect
	CodeMediaStop
	CodeMediaTrackNext
	CodeMediaTrackPrevious
	CodeLaunchApp1
	CodeLaunchApp2
	CodeLaunchMail
	CodePower
	CodeSleep
	CodeWakeUp
)

var keyCodeNames = map[KeyCode]string{
	CodeBackquote:          "Backquote",
	CodeBackslash:          "Backslash",
	CodeBracketLeft:        "BracketLeft",
	CodeBracketRight:       "BracketRight",
	CodeComma:              "Comma",
	CodeDigit0:             "Digit0",
	CodeDigit1:             "Digit1",
	CodeDigit2:             "Digit2",
	CodeDigit3:             "Digit3",
	CodeDigit4:             "Digit4",
	CodeDigit5:             "Digit5",
	CodeDigit6:             "Digit6",
	CodeDigit7:             "Digit7",
	CodeDigit8:             "Digit8",
	CodeDigit9:             "Digit9",
	CodeEqual:              "Equal",
	CodeIntlBackslash:      "IntlBackslash",
	CodeIntlRo:             "IntlRo",
	CodeIntlYen:            "IntlYen",
	CodeKeyA:               "KeyA",
	CodeKeyB:               "KeyB",
	CodeKeyC:               "KeyC",
	CodeKeyD:               "KeyD",
	CodeKeyE:               "KeyE",
	CodeKeyF:               "KeyF",
	CodeKeyG:               "KeyG",
	CodeKeyH:               "KeyH",
	CodeKeyI:               "KeyI",
	CodeKeyJ:               "KeyJ",
	CodeKeyK:               "KeyK",
	CodeKeyL:               "KeyL",
	CodeKeyM:               "KeyM",
	CodeKeyN:               "KeyN",
	CodeKeyO:               "KeyO",
	CodeKeyP:               "KeyP",
	CodeKeyQ:               "KeyQ",
	CodeKeyR:               "KeyR",
	CodeKeyS:               "KeyS",
	CodeKeyT:               "KeyT",
	CodeKeyU:               "KeyU",
	CodeKeyV:               "KeyV",
	CodeKeyW:               "KeyW",
	CodeKeyX:               "KeyX",
	CodeKeyY:               "KeyY",
	CodeKeyZ:               "KeyZ",
	CodeMinus:              "Minus",
	CodePeriod:             "Period",
	CodeQuote:              "Quote",
	CodeSemicolon:          "Semicolon",
	CodeSlash:              "Slash",
	CodeAltLeft:            "AltLeft",
	CodeAltRight:           "AltRight",
	CodeBackspace:          "Backspace",
	CodeCapsLock:           "CapsLock",
	CodeContextMenu:        "ContextMenu",
	CodeControlLeft:        "ControlLeft",
	CodeControlRight:       "ControlRight",
	CodeEnter:              "Enter",
	CodeSuperLeft:          "SuperLeft",
	CodeSuperRight:         "SuperRight",
	CodeShiftLeft:          "ShiftLeft",
	CodeShiftRight:         "ShiftRight",
	CodeSpace:              "Space",
	CodeTab:                "Tab",
	CodeConvert:            "Convert",
	CodeKanaMode:           "KanaMode",
	CodeLang1:              "Lang1",
	CodeLang2:              "Lang2",
	CodeLang3:              "Lang3",
	CodeLang4:              "Lang4",
	CodeLang5:              "Lang5",
	CodeNonConvert:         "NonConvert",
	CodeDelete:             "Delete",
	CodeEnd:                "End",
	CodeHelp:               "Help",
	CodeHome:               "Home",
	CodeInsert:             "Insert",
	CodePageDown:           "PageDown",
	CodePageUp:             "PageUp",
	CodeArrowDown:          "ArrowDown",
	CodeArrowLeft:          "ArrowLeft",
	CodeArrowRight:         "ArrowRight",
	CodeArrowUp:            "ArrowUp",
	CodeNumLock:            "NumLock",
	CodeNumpad0:            "Numpad0",
	CodeNumpad1:            "Numpad1",
	CodeNumpad2:            "Numpad2",
	CodeNumpad3:            "Numpad3",
	CodeNumpad4:            "Numpad4",
	CodeNumpad5:            "Numpad5",
	CodeNumpad6:            "Numpad6",
	CodeNumpad7:            "Numpad7",
	CodeNumpad8:            "Numpad8",
	CodeNumpad9:            "Numpad9",
	CodeNumpadAdd:          "NumpadAdd",
	CodeNumpadComma:        "NumpadComma",
	CodeNumpadDecimal:      "NumpadDecimal",
	CodeNumpadDivide:       "NumpadDivide",
	CodeNumpadEnter:        "NumpadEnter",
	CodeNumpadEqual:        "NumpadEqual",
	CodeNumpadMultiply:     "NumpadMultiply",
	CodeNumpadSubtract:     "NumpadSubtract",
	CodeEscape:             "Escape",
	CodeFn:                 "Fn",
	CodePrintScreen:        "PrintScreen",
	CodeScrollLock:         "ScrollLock",
	CodePause:              "Pause",
	CodeF1:                 "F1",
	CodeF2:                 "F2",
	CodeF3:                 "F3",
	CodeF4:                 "F4",
	CodeF5:                 "F5",
	CodeF6:                 "F6",
	CodeF7:                 "F7",
	CodeF8:                 "F8",
	CodeF9:                 "F9",
	CodeF10:                "F10",
	CodeF11:                "F11",
	CodeF12:                "F12",
	CodeF13:                "F13",
	CodeF14:                "F14",
	CodeF15:                "F15",
	CodeF16:                "F16",
	CodeF17:                "F17",
	CodeF18:                "F18",
	CodeF19:                "F19",
	CodeF20:                "F20",
	CodeF21:                "F21",
	CodeF22:                "F22",
	CodeF23:                "F23",
	CodeF24:                "F24",
	CodeBrowserBack:        "BrowserBack",
	CodeBrowserFavorites:   "BrowserFavorites",
	CodeBrowserForward:     "BrowserForward",
	CodeBrowserHome:        "BrowserHome",
	CodeBrowserRefresh:     "BrowserRefresh",
	CodeBrowserSearch:      "BrowserSearch",
	CodeBrowserStop:        "BrowserStop",
	CodeAudioVolumeDown:    "AudioVolumeDown",
	CodeAudioVolumeMute:    "AudioVolumeMute",
	CodeAudioVolumeUp:      "AudioVolumeUp",
	CodeMediaPlayPause:     "MediaPlayPause",
	CodeMediaSelect:        "MediaSelect",
	CodeMediaStop:          "MediaStop",
	CodeMediaTrackNext:     "MediaTrackNext",
	CodeMediaTrackPrevious: "MediaTrackPrevious",
	CodeLaunchApp1:         "LaunchApp1",
	CodeLaunchApp2:         "LaunchApp2",
	CodeLaunchMail:         "LaunchMail",
	CodePower:              "Power",
	CodeSleep:              "Sleep",
	CodeWakeUp:             "WakeUp",
}

func (c KeyCode) String() string {
	if s, ok := keyCodeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Unidentified(%d)", uint16(c))
}

var keyCodesByName = func() map[string]KeyCode {
	m := make(map[string]KeyCode, len(keyCodeNames))
	for c, name := range keyCodeNames {
		m[name] = c
	}
	return m
}()

// ParseKeyCode resolves a KeyboardEvent.code name ("KeyA", "AltRight")
// to its KeyCode.
func ParseKeyCode(name string) (KeyCode, error) {
	if c, ok := keyCodesByName[name]; ok {
		return c, nil
	}
	return CodeUnidentified, fmt.Errorf("unknown key code %q", name)
}
