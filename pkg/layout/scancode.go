package layout

import "keylayout/pkg/keys"

// keyCodeFromScanCode maps an extended scan code (set 1 make code, with
// the 0xE0 prefix folded into the high byte) to the physical key
// position it occupies.
func keyCodeFromScanCode(scancode uint32) keys.KeyCode {
	switch scancode {
	case 0x0001:
		return keys.CodeEscape
	case 0x0002:
		return keys.CodeDigit1
	case 0x0003:
		return keys.CodeDigit2
	case 0x0004:
		return keys.CodeDigit3
	case 0x0005:
		return keys.CodeDigit4
	case 0x0006:
		return keys.CodeDigit5
	case 0x0007:
		return keys.CodeDigit6
	case 0x0008:
		return keys.CodeDigit7
	case 0x0009:
		return keys.CodeDigit8
	case 0x000A:
		return keys.CodeDigit9
	case 0x000B:
		return keys.CodeDigit0
	case 0x000C:
		return keys.CodeMinus
	case 0x000D:
		return keys.CodeEqual
	case 0x000E:
		return keys.CodeBackspace
	case 0x000F:
		return keys.CodeTab
	case 0x0010:
		return keys.CodeKeyQ
	case 0x0011:
		return keys.CodeKeyW
	case 0x0012:
		return keys.CodeKeyE
	case 0x0013:
		return keys.CodeKeyR
	case 0x0014:
		return keys.CodeKeyT
	case 0x0015:
		return keys.CodeKeyY
	case 0x0016:
		return keys.CodeKeyU
	case 0x0017:
		return keys.CodeKeyI
	case 0x0018:
		return keys.CodeKeyO
	case 0x0019:
		return keys.CodeKeyP
	case 0x001A:
		return keys.CodeBracketLeft
	case 0x001B:
		return keys.CodeBracketRight
	case 0x001C:
		return keys.CodeEnter
	case 0x001D:
		return keys.CodeControlLeft
	case 0x001E:
		return keys.CodeKeyA
	case 0x001F:
		return keys.CodeKeyS
	case 0x0020:
		return keys.CodeKeyD
	case 0x0021:
		return keys.CodeKeyF
	case 0x0022:
		return keys.CodeKeyG
	case 0x0023:
		return keys.CodeKeyH
	case 0x0024:
		return keys.CodeKeyJ
	case 0x0025:
		return keys.CodeKeyK
	case 0x0026:
		return keys.CodeKeyL
	case 0x0027:
		return keys.CodeSemicolon
	case 0x0028:
		return keys.CodeQuote
	case 0x0029:
		return keys.CodeBackquote
	case 0x002A:
		return keys.CodeShiftLeft
	case 0x002B:
		return keys.CodeBackslash
	case 0x002C:
		return keys.CodeKeyZ
	case 0x002D:
		return keys.CodeKeyX
	case 0x002E:
		return keys.CodeKeyC
	case 0x002F:
		return keys.CodeKeyV
	case 0x0030:
		return keys.CodeKeyB
	case 0x0031:
		return keys.CodeKeyN
	case 0x0032:
		return keys.CodeKeyM
	case 0x0033:
		return keys.CodeComma
	case 0x0034:
		return keys.CodePeriod
	case 0x0035:
		return keys.CodeSlash
	case 0x0036:
		return keys.CodeShiftRight
	case 0x0037:
		return keys.CodeNumpadMultiply
	case 0x0038:
		return keys.CodeAltLeft
	case 0x0039:
		return keys.CodeSpace
	case 0x003A:
		return keys.CodeCapsLock
	case 0x003B:
		return keys.CodeF1
	case 0x003C:
		return keys.CodeF2
	case 0x003D:
		return keys.CodeF3
	case 0x003E:
		return keys.CodeF4
	case 0x003F:
		return keys.CodeF5
	case 0x0040:
		return keys.CodeF6
	case 0x0041:
		return keys.CodeF7
	case 0x0042:
		return keys.CodeF8
	case 0x0043:
		return keys.CodeF9
	case 0x0044:
		return keys.CodeF10
	case 0x0045:
		return keys.CodePause
	case 0x0046:
		return keys.CodeScrollLock
	case 0x0047:
		return keys.CodeNumpad7
	case 0x0048:
		return keys.CodeNumpad8
	case 0x0049:
		return keys.CodeNumpad9
	case 0x004A:
		return keys.CodeNumpadSubtract
	case 0x004B:
		return keys.CodeNumpad4
	case 0x004C:
		return keys.CodeNumpad5
	case 0x004D:
		return keys.CodeNumpad6
	case 0x004E:
		return keys.CodeNumpadAdd
	case 0x004F:
		return keys.CodeNumpad1
	case 0x0050:
		return keys.CodeNumpad2
	case 0x0051:
		return keys.CodeNumpad3
	case 0x0052:
		return keys.CodeNumpad0
	case 0x0053:
		return keys.CodeNumpadDecimal
	case 0x0054:
		return keys.CodePrintScreen // Alt+PrintScreen (SysRq)
	case 0x0056:
		return keys.CodeIntlBackslash
	case 0x0057:
		return keys.CodeF11
	case 0x0058:
		return keys.CodeF12
	case 0x0059:
		return keys.CodeNumpadEqual
	case 0x0064:
		return keys.CodeF13
	case 0x0065:
		return keys.CodeF14
	case 0x0066:
		return keys.CodeF15
	case 0x0067:
		return keys.CodeF16
	case 0x0068:
		return keys.CodeF17
	case 0x0069:
		return keys.CodeF18
	case 0x006A:
		return keys.CodeF19
	case 0x006B:
		return keys.CodeF20
	case 0x006C:
		return keys.CodeF21
	case 0x006D:
		return keys.CodeF22
	case 0x006E:
		return keys.CodeF23
	case 0x0070:
		return keys.CodeKanaMode
	case 0x0071:
		return keys.CodeLang2
	case 0x0072:
		return keys.CodeLang1
	case 0x0073:
		return keys.CodeIntlRo
	case 0x0076:
		return keys.CodeF24
	case 0x0079:
		return keys.CodeConvert
	case 0x007B:
		return keys.CodeNonConvert
	case 0x007D:
		return keys.CodeIntlYen
	case 0x007E:
		return keys.CodeNumpadComma

	case 0xE010:
		return keys.CodeMediaTrackPrevious
	case 0xE019:
		return keys.CodeMediaTrackNext
	case 0xE01C:
		return keys.CodeNumpadEnter
	case 0xE01D:
		return keys.CodeControlRight
	case 0xE020:
		return keys.CodeAudioVolumeMute
	case 0xE021:
		return keys.CodeLaunchApp2
	case 0xE022:
		return keys.CodeMediaPlayPause
	case 0xE024:
		return keys.CodeMediaStop
	case 0xE02E:
		return keys.CodeAudioVolumeDown
	case 0xE030:
		return keys.CodeAudioVolumeUp
	case 0xE032:
		return keys.CodeBrowserHome
	case 0xE035:
		return keys.CodeNumpadDivide
	case 0xE037:
		return keys.CodePrintScreen
	case 0xE038:
		return keys.CodeAltRight
	case 0xE045:
		return keys.CodeNumLock
	case 0xE047:
		return keys.CodeHome
	case 0xE048:
		return keys.CodeArrowUp
	case 0xE049:
		return keys.CodePageUp
	case 0xE04B:
		return keys.CodeArrowLeft
	case 0xE04D:
		return keys.CodeArrowRight
	case 0xE04F:
		return keys.CodeEnd
	case 0xE050:
		return keys.CodeArrowDown
	case 0xE051:
		return keys.CodePageDown
	case 0xE052:
		return keys.CodeInsert
	case 0xE053:
		return keys.CodeDelete
	case 0xE05B:
		return keys.CodeSuperLeft
	case 0xE05C:
		return keys.CodeSuperRight
	case 0xE05D:
		return keys.CodeContextMenu
	case 0xE05E:
		return keys.CodePower
	case 0xE05F:
		return keys.CodeSleep
	case 0xE063:
		return keys.CodeWakeUp
	case 0xE065:
		return keys.CodeBrowserSearch
	case 0xE066:
		return keys.CodeBrowserFavorites
	case 0xE067:
		return keys.CodeBrowserRefresh
	case 0xE068:
		return keys.CodeBrowserStop
	case 0xE069:
		return keys.CodeBrowserForward
	case 0xE06A:
		return keys.CodeBrowserBack
	case 0xE06B:
		return keys.CodeLaunchApp1
	case 0xE06C:
		return keys.CodeLaunchMail
	case 0xE06D:
		return keys.CodeMediaSelect
	default:
		return keys.CodeUnidentified
	}
}
