package layout

import "keylayout/pkg/keys"

// numpadVKeys are the sixteen numpad-specific virtual keys. Windows only
// delivers these while NumLock is active.
var numpadVKeys = [16]uint32{
	VK_NUMPAD0,
	VK_NUMPAD1,
	VK_NUMPAD2,
	VK_NUMPAD3,
	VK_NUMPAD4,
	VK_NUMPAD5,
	VK_NUMPAD6,
	VK_NUMPAD7,
	VK_NUMPAD8,
	VK_NUMPAD9,
	VK_MULTIPLY,
	VK_ADD,
	VK_SEPARATOR,
	VK_SUBTRACT,
	VK_DECIMAL,
	VK_DIVIDE,
}

// numpadKeyCodes are the physical numpad positions matching numpadVKeys.
var numpadKeyCodes = map[keys.KeyCode]bool{
	keys.CodeNumpad0:        true,
	keys.CodeNumpad1:        true,
	keys.CodeNumpad2:        true,
	keys.CodeNumpad3:        true,
	keys.CodeNumpad4:        true,
	keys.CodeNumpad5:        true,
	keys.CodeNumpad6:        true,
	keys.CodeNumpad7:        true,
	keys.CodeNumpad8:        true,
	keys.CodeNumpad9:        true,
	keys.CodeNumpadMultiply: true,
	keys.CodeNumpadAdd:      true,
	keys.CodeNumpadComma:    true,
	keys.CodeNumpadSubtract: true,
	keys.CodeNumpadDecimal:  true,
	keys.CodeNumpadDivide:   true,
}

func isNumpadSpecific(vkey uint32) bool {
	switch vkey {
	case VK_NUMPAD0, VK_NUMPAD1, VK_NUMPAD2, VK_NUMPAD3, VK_NUMPAD4,
		VK_NUMPAD5, VK_NUMPAD6, VK_NUMPAD7, VK_NUMPAD8, VK_NUMPAD9,
		VK_ADD, VK_SUBTRACT, VK_DIVIDE, VK_DECIMAL, VK_SEPARATOR:
		return true
	}
	return false
}

// keyCodeToVKey maps a physical key position back to the virtual key it
// carries under the given layout. 0 means no stable mapping; character
// positions deliberately map to nothing because their virtual key varies
// with the layout.
func keyCodeToVKey(code keys.KeyCode, id LayoutID) uint32 {
	lang := id.primaryLang()
	isKorean := lang == langKorean
	isJapanese := lang == langJapanese

	switch code {
	case keys.CodeAltLeft:
		return VK_LMENU
	case keys.CodeAltRight:
		return VK_RMENU
	case keys.CodeBackspace:
		return VK_BACK
	case keys.CodeCapsLock:
		return VK_CAPITAL
	case keys.CodeContextMenu:
		return VK_APPS
	case keys.CodeControlLeft:
		return VK_LCONTROL
	case keys.CodeControlRight:
		return VK_RCONTROL
	case keys.CodeEnter:
		return VK_RETURN
	case keys.CodeSuperLeft:
		return VK_LWIN
	case keys.CodeSuperRight:
		return VK_RWIN
	case keys.CodeShiftLeft:
		// The shift positions map to the opposite-side virtual keys,
		// unlike Control and Alt above. Kept crossed until confirmed
		// wrong on a real layout; see the package tests.
		return VK_RSHIFT
	case keys.CodeShiftRight:
		return VK_LSHIFT
	case keys.CodeSpace:
		return VK_SPACE
	case keys.CodeTab:
		return VK_TAB
	case keys.CodeConvert:
		return VK_CONVERT
	case keys.CodeKanaMode:
		return VK_KANA
	case keys.CodeLang1:
		if isKorean {
			return VK_HANGUL
		}
		if isJapanese {
			return VK_KANA
		}
		return 0
	case keys.CodeLang2:
		if isKorean {
			return VK_HANJA
		}
		return 0
	case keys.CodeLang3:
		if isJapanese {
			return VK_OEM_FINISH
		}
		return 0
	case keys.CodeNonConvert:
		return VK_NONCONVERT
	case keys.CodeDelete:
		return VK_DELETE
	case keys.CodeEnd:
		return VK_END
	case keys.CodeHelp:
		return VK_HELP
	case keys.CodeHome:
		return VK_HOME
	case keys.CodeInsert:
		return VK_INSERT
	case keys.CodePageDown:
		return VK_NEXT
	case keys.CodePageUp:
		return VK_PRIOR
	case keys.CodeArrowDown:
		return VK_DOWN
	case keys.CodeArrowLeft:
		return VK_LEFT
	case keys.CodeArrowRight:
		return VK_RIGHT
	case keys.CodeArrowUp:
		return VK_UP
	case keys.CodeNumLock:
		return VK_NUMLOCK
	case keys.CodeNumpad0:
		return VK_NUMPAD0
	case keys.CodeNumpad1:
		return VK_NUMPAD1
	case keys.CodeNumpad2:
		return VK_NUMPAD2
	case keys.CodeNumpad3:
		return VK_NUMPAD3
	case keys.CodeNumpad4:
		return VK_NUMPAD4
	case keys.CodeNumpad5:
		return VK_NUMPAD5
	case keys.CodeNumpad6:
		return VK_NUMPAD6
	case keys.CodeNumpad7:
		return VK_NUMPAD7
	case keys.CodeNumpad8:
		return VK_NUMPAD8
	case keys.CodeNumpad9:
		return VK_NUMPAD9
	case keys.CodeNumpadAdd:
		return VK_ADD
	case keys.CodeNumpadComma:
		return VK_SEPARATOR
	case keys.CodeNumpadDecimal:
		return VK_DECIMAL
	case keys.CodeNumpadDivide:
		return VK_DIVIDE
	case keys.CodeNumpadEnter:
		return VK_RETURN
	case keys.CodeNumpadMultiply:
		return VK_MULTIPLY
	case keys.CodeNumpadSubtract:
		return VK_SUBTRACT
	case keys.CodeEscape:
		return VK_ESCAPE
	case keys.CodePrintScreen:
		return VK_SNAPSHOT
	case keys.CodeScrollLock:
		return VK_SCROLL
	case keys.CodePause:
		return VK_PAUSE
	case keys.CodeBrowserBack:
		return VK_BROWSER_BACK
	case keys.CodeBrowserFavorites:
		return VK_BROWSER_FAVORITES
	case keys.CodeBrowserForward:
		return VK_BROWSER_FORWARD
	case keys.CodeBrowserHome:
		return VK_BROWSER_HOME
	case keys.CodeBrowserRefresh:
		return VK_BROWSER_REFRESH
	case keys.CodeBrowserSearch:
		return VK_BROWSER_SEARCH
	case keys.CodeBrowserStop:
		return VK_BROWSER_STOP
	case keys.CodeLaunchApp1:
		return VK_LAUNCH_APP1
	case keys.CodeLaunchApp2:
		return VK_LAUNCH_APP2
	case keys.CodeLaunchMail:
		return VK_LAUNCH_MAIL
	case keys.CodeMediaPlayPause:
		return VK_MEDIA_PLAY_PAUSE
	case keys.CodeMediaSelect:
		return VK_LAUNCH_MEDIA_SELECT
	case keys.CodeMediaStop:
		return VK_MEDIA_STOP
	case keys.CodeMediaTrackNext:
		return VK_MEDIA_NEXT_TRACK
	case keys.CodeMediaTrackPrevious:
		return VK_MEDIA_PREV_TRACK
	case keys.CodeAudioVolumeDown:
		return VK_VOLUME_DOWN
	case keys.CodeAudioVolumeMute:
		return VK_VOLUME_MUTE
	case keys.CodeAudioVolumeUp:
		return VK_VOLUME_UP
	case keys.CodeF1:
		return VK_F1
	case keys.CodeF2:
		return VK_F2
	case keys.CodeF3:
		return VK_F3
	case keys.CodeF4:
		return VK_F4
	case keys.CodeF5:
		return VK_F5
	case keys.CodeF6:
		return VK_F6
	case keys.CodeF7:
		return VK_F7
	case keys.CodeF8:
		return VK_F8
	case keys.CodeF9:
		return VK_F9
	case keys.CodeF10:
		return VK_F10
	case keys.CodeF11:
		return VK_F11
	case keys.CodeF12:
		return VK_F12
	case keys.CodeF13:
		return VK_F13
	case keys.CodeF14:
		return VK_F14
	case keys.CodeF15:
		return VK_F15
	case keys.CodeF16:
		return VK_F16
	case keys.CodeF17:
		return VK_F17
	case keys.CodeF18:
		return VK_F18
	case keys.CodeF19:
		return VK_F19
	case keys.CodeF20:
		return VK_F20
	case keys.CodeF21:
		return VK_F21
	case keys.CodeF22:
		return VK_F22
	case keys.CodeF23:
		return VK_F23
	case keys.CodeF24:
		return VK_F24
	default:
		return 0
	}
}

// vkeyToNonCharKey converts a virtual key to a logical key when the
// conversion is unambiguous from the arguments alone: it covers the
// non-character keys plus disambiguation of the IME virtual keys the OS
// shares between languages. Keys known to produce characters come back
// Unidentified so callers fall through to the layout's character tables.
//
// The function is pure and total over virtual keys 0..255. The Web key
// names it produces follow
// https://developer.mozilla.org/en-US/docs/Web/API/KeyboardEvent/key/Key_Values
func vkeyToNonCharKey(vkey uint32, native keys.NativeCode, id LayoutID, hasAltGraph bool) keys.Key {
	lang := id.primaryLang()
	isKorean := lang == langKorean
	isJapanese := lang == langJapanese

	switch vkey {
	case VK_LBUTTON, VK_RBUTTON, VK_MBUTTON, VK_XBUTTON1, VK_XBUTTON2:
		// Mouse buttons have no keyboard identity at all.
		return keys.NewUnidentified(keys.NativeCode{})

	case VK_BACK:
		return keys.NewNamed(keys.NamedBackspace)
	case VK_TAB:
		return keys.NewNamed(keys.NamedTab)
	case VK_CLEAR:
		return keys.NewNamed(keys.NamedClear)
	case VK_RETURN:
		return keys.NewNamed(keys.NamedEnter)
	case VK_SHIFT, VK_LSHIFT, VK_RSHIFT:
		return keys.NewNamed(keys.NamedShift)
	case VK_CONTROL, VK_LCONTROL, VK_RCONTROL:
		return keys.NewNamed(keys.NamedControl)
	case VK_MENU, VK_LMENU:
		return keys.NewNamed(keys.NamedAlt)
	case VK_RMENU:
		if hasAltGraph {
			return keys.NewNamed(keys.NamedAltGraph)
		}
		return keys.NewNamed(keys.NamedAlt)
	case VK_PAUSE:
		return keys.NewNamed(keys.NamedPause)
	case VK_CAPITAL:
		return keys.NewNamed(keys.NamedCapsLock)

	// VK_HANGUL and VK_KANA share a value, as do VK_HANJA and
	// VK_KANJI; the layout's primary language tells them apart.
	case VK_KANA:
		if isKorean {
			return keys.NewNamed(keys.NamedHangulMode)
		}
		if isJapanese {
			return keys.NewNamed(keys.NamedKanaMode)
		}
		return keys.NewUnidentified(native)
	case VK_JUNJA:
		return keys.NewNamed(keys.NamedJunjaMode)
	case VK_FINAL:
		return keys.NewNamed(keys.NamedFinalMode)
	case VK_HANJA:
		if isKorean {
			return keys.NewNamed(keys.NamedHanjaMode)
		}
		if isJapanese {
			return keys.NewNamed(keys.NamedKanjiMode)
		}
		return keys.NewUnidentified(native)

	case VK_ESCAPE:
		return keys.NewNamed(keys.NamedEscape)
	case VK_CONVERT:
		return keys.NewNamed(keys.NamedConvert)
	case VK_NONCONVERT:
		return keys.NewNamed(keys.NamedNonConvert)
	case VK_ACCEPT:
		return keys.NewNamed(keys.NamedAccept)
	case VK_MODECHANGE:
		return keys.NewNamed(keys.NamedModeChange)
	case VK_SPACE:
		return keys.NewNamed(keys.NamedSpace)
	case VK_PRIOR:
		return keys.NewNamed(keys.NamedPageUp)
	case VK_NEXT:
		return keys.NewNamed(keys.NamedPageDown)
	case VK_END:
		return keys.NewNamed(keys.NamedEnd)
	case VK_HOME:
		return keys.NewNamed(keys.NamedHome)
	case VK_LEFT:
		return keys.NewNamed(keys.NamedArrowLeft)
	case VK_UP:
		return keys.NewNamed(keys.NamedArrowUp)
	case VK_RIGHT:
		return keys.NewNamed(keys.NamedArrowRight)
	case VK_DOWN:
		return keys.NewNamed(keys.NamedArrowDown)
	case VK_SELECT:
		return keys.NewNamed(keys.NamedSelect)
	case VK_PRINT:
		return keys.NewNamed(keys.NamedPrint)
	case VK_EXECUTE:
		return keys.NewNamed(keys.NamedExecute)
	case VK_SNAPSHOT:
		return keys.NewNamed(keys.NamedPrintScreen)
	case VK_INSERT:
		return keys.NewNamed(keys.NamedInsert)
	case VK_DELETE:
		return keys.NewNamed(keys.NamedDelete)
	case VK_HELP:
		return keys.NewNamed(keys.NamedHelp)
	case VK_LWIN, VK_RWIN:
		return keys.NewNamed(keys.NamedSuper)
	case VK_APPS:
		return keys.NewNamed(keys.NamedContextMenu)
	case VK_SLEEP:
		return keys.NewNamed(keys.NamedStandby)

	// Numpad keys produce characters; let the character tables decide.
	case VK_NUMPAD0, VK_NUMPAD1, VK_NUMPAD2, VK_NUMPAD3, VK_NUMPAD4,
		VK_NUMPAD5, VK_NUMPAD6, VK_NUMPAD7, VK_NUMPAD8, VK_NUMPAD9,
		VK_MULTIPLY, VK_ADD, VK_SEPARATOR, VK_SUBTRACT, VK_DECIMAL,
		VK_DIVIDE:
		return keys.NewUnidentified(native)

	case VK_F1:
		return keys.NewNamed(keys.NamedF1)
	case VK_F2:
		return keys.NewNamed(keys.NamedF2)
	case VK_F3:
		return keys.NewNamed(keys.NamedF3)
	case VK_F4:
		return keys.NewNamed(keys.NamedF4)
	case VK_F5:
		return keys.NewNamed(keys.NamedF5)
	case VK_F6:
		return keys.NewNamed(keys.NamedF6)
	case VK_F7:
		return keys.NewNamed(keys.NamedF7)
	case VK_F8:
		return keys.NewNamed(keys.NamedF8)
	case VK_F9:
		return keys.NewNamed(keys.NamedF9)
	case VK_F10:
		return keys.NewNamed(keys.NamedF10)
	case VK_F11:
		return keys.NewNamed(keys.NamedF11)
	case VK_F12:
		return keys.NewNamed(keys.NamedF12)
	case VK_F13:
		return keys.NewNamed(keys.NamedF13)
	case VK_F14:
		return keys.NewNamed(keys.NamedF14)
	case VK_F15:
		return keys.NewNamed(keys.NamedF15)
	case VK_F16:
		return keys.NewNamed(keys.NamedF16)
	case VK_F17:
		return keys.NewNamed(keys.NamedF17)
	case VK_F18:
		return keys.NewNamed(keys.NamedF18)
	case VK_F19:
		return keys.NewNamed(keys.NamedF19)
	case VK_F20:
		return keys.NewNamed(keys.NamedF20)
	case VK_F21:
		return keys.NewNamed(keys.NamedF21)
	case VK_F22:
		return keys.NewNamed(keys.NamedF22)
	case VK_F23:
		return keys.NewNamed(keys.NamedF23)
	case VK_F24:
		return keys.NewNamed(keys.NamedF24)

	case VK_NUMLOCK:
		return keys.NewNamed(keys.NamedNumLock)
	case VK_SCROLL:
		return keys.NewNamed(keys.NamedScrollLock)

	case VK_BROWSER_BACK:
		return keys.NewNamed(keys.NamedBrowserBack)
	case VK_BROWSER_FORWARD:
		return keys.NewNamed(keys.NamedBrowserForward)
	case VK_BROWSER_REFRESH:
		return keys.NewNamed(keys.NamedBrowserRefresh)
	case VK_BROWSER_STOP:
		return keys.NewNamed(keys.NamedBrowserStop)
	case VK_BROWSER_SEARCH:
		return keys.NewNamed(keys.NamedBrowserSearch)
	case VK_BROWSER_FAVORITES:
		return keys.NewNamed(keys.NamedBrowserFavorites)
	case VK_BROWSER_HOME:
		return keys.NewNamed(keys.NamedBrowserHome)
	case VK_VOLUME_MUTE:
		return keys.NewNamed(keys.NamedAudioVolumeMute)
	case VK_VOLUME_DOWN:
		return keys.NewNamed(keys.NamedAudioVolumeDown)
	case VK_VOLUME_UP:
		return keys.NewNamed(keys.NamedAudioVolumeUp)
	case VK_MEDIA_NEXT_TRACK:
		return keys.NewNamed(keys.NamedMediaTrackNext)
	case VK_MEDIA_PREV_TRACK:
		return keys.NewNamed(keys.NamedMediaTrackPrevious)
	case VK_MEDIA_STOP:
		return keys.NewNamed(keys.NamedMediaStop)
	case VK_MEDIA_PLAY_PAUSE:
		return keys.NewNamed(keys.NamedMediaPlayPause)
	case VK_LAUNCH_MAIL:
		return keys.NewNamed(keys.NamedLaunchMail)
	case VK_LAUNCH_MEDIA_SELECT:
		return keys.NewNamed(keys.NamedLaunchMediaPlayer)
	case VK_LAUNCH_APP1:
		return keys.NewNamed(keys.NamedLaunchApplication1)
	case VK_LAUNCH_APP2:
		return keys.NewNamed(keys.NamedLaunchApplication2)

	case VK_PROCESSKEY:
		return keys.NewNamed(keys.NamedProcess)

	case VK_OEM_ATTN:
		return keys.NewNamed(keys.NamedAttn)
	case VK_OEM_FINISH:
		if isJapanese {
			return keys.NewNamed(keys.NamedKatakana)
		}
		// Matches IE and Firefox: for non-Japanese layouts there is no
		// Web name for Finish.
		return keys.NewUnidentified(native)
	case VK_OEM_COPY:
		return keys.NewNamed(keys.NamedCopy)
	case VK_OEM_AUTO:
		return keys.NewNamed(keys.NamedHankaku)
	case VK_OEM_ENLW:
		return keys.NewNamed(keys.NamedZenkaku)
	case VK_OEM_BACKTAB:
		return keys.NewNamed(keys.NamedRomaji)
	case VK_ATTN:
		return keys.NewNamed(keys.NamedKanaMode)
	case VK_CRSEL:
		return keys.NewNamed(keys.NamedCrSel)
	case VK_EXSEL:
		return keys.NewNamed(keys.NamedExSel)
	case VK_EREOF:
		return keys.NewNamed(keys.NamedEraseEof)
	case VK_PLAY:
		return keys.NewNamed(keys.NamedPlay)
	case VK_ZOOM:
		return keys.NewNamed(keys.NamedZoomToggle)
	case VK_OEM_CLEAR:
		return keys.NewNamed(keys.NamedClear)

	default:
		// Everything else either produces characters (the OEM
		// punctuation keys), has no Web key name (gamepad and
		// navigation input, VK_CANCEL, VK_PACKET, the OEM vendor
		// keys), or is unassigned.
		return keys.NewUnidentified(native)
	}
}
