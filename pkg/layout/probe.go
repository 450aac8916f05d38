package layout

// probeOutcome is the settled result of the two-phase probe protocol.
type probeOutcome struct {
	kind ProbeKind
	text string // kind == ProbeText
	dead rune   // kind == ProbeDead; 0 when unknown
}

// settleProbe runs the Unicode conversion for one key and settles the
// stateful part of the protocol: when the first call reports a dead key
// it has also latched the dead character into hidden OS state, so a
// second call at the same inputs is mandatory before any further probing.
// The consuming call usually emits the pending accent, which becomes the
// dead key's base character.
func settleProbe(native NativeAPI, vkey, scancode uint32, state *[256]byte, id LayoutID) probeOutcome {
	res := native.ToUnicode(vkey, scancode, state, id)
	switch res.Kind {
	case ProbeText:
		if res.Text == "" {
			return probeOutcome{kind: ProbeNone}
		}
		return probeOutcome{kind: ProbeText, text: res.Text}
	case ProbeDead:
		consumed := native.ToUnicode(vkey, scancode, state, id)
		if consumed.Kind == ProbeText || consumed.Kind == ProbeDead {
			for _, r := range consumed.Text {
				return probeOutcome{kind: ProbeDead, dead: r}
			}
		}
		return probeOutcome{kind: ProbeDead}
	default:
		return probeOutcome{kind: ProbeNone}
	}
}
