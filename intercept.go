package vtcore

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// interceptedSequencePattern matches the sequences go-ansicode gives the
// Handler no way to observe or tell apart: DECSCA (character protection), the
// DECSED/DECSEL private-marker variants of ED/EL, the CSI ? 26 n charset
// report, the OSC 21 title query, SGR parameter lists made up entirely of the
// typographic codes the library's attribute decoder does not model (10-19
// font selection, 50-55 proportional/framed/encircled/overlined, 73-75
// super/subscript), and the alternate-screen/cursor-save private modes
// (CSI ? 47/1047/1048/1049 h/l, which the library collapses into a single
// Handler mode value with the number discarded). Write strips matches from
// the stream and executes them here instead of in the decoder. An SGR list
// mixing typographic and ordinary codes, or a private-mode list combining a
// screen mode with others, is left to the decoder, which applies what it
// knows and drops the rest.
//
// The scan runs per Write call, so one of these sequences split across two
// Write calls is not intercepted; it falls through to the decoder, which at
// worst degrades DECSED/DECSEL to their non-selective forms, folds a screen
// mode into the 1049 fallback, or ignores the rest. Never a crash, just a
// missed interception on that one boundary.
var interceptedSequencePattern = regexp.MustCompile(
	`\x1b\[(?:([0-9;]*)"q|\?([0-9;]*)J|\?([0-9;]*)K|\?26n|((?:1[0-9]|5[0-5]|7[3-5])(?:;(?:1[0-9]|5[0-5]|7[3-5]))*)m|\?(47|1047|1048|1049)([hl]))|\x1b\]21(?:;[^\x07\x1b]*)?(?:\x07|\x1b\\)`)

// dispatchInterceptedSequence executes one match produced by
// interceptedSequencePattern, where m is a FindAllSubmatchIndex entry
// against data.
func (t *Terminal) dispatchInterceptedSequence(data []byte, m []int) {
	switch {
	case m[2] >= 0: // DECSCA: CSI Ps " q
		ps := firstParam(data[m[2]:m[3]], 0)
		t.SetCharacterProtection(ps == 1)
	case m[4] >= 0: // DECSED: CSI ? Ps J
		t.selectiveClearScreenInternal(firstParam(data[m[4]:m[5]], 0))
	case m[6] >= 0: // DECSEL: CSI ? Ps K
		t.selectiveClearLineInternal(firstParam(data[m[6]:m[7]], 0))
	case m[8] >= 0: // SGR, typographic codes only
		t.applyTypographicSGR(data[m[8]:m[9]])
	case m[10] >= 0: // CSI ? 47/1047/1048/1049 h/l
		mode := firstParam(data[m[10]:m[11]], 0)
		t.applyScreenMode(mode, data[m[12]] == 'h')
	case data[m[0]+1] == '[': // CSI ? 26 n
		t.reportActiveCharset()
	default: // OSC 21
		t.reportTitle()
	}
}

// applyTypographicSGR folds font selection and the framed/encircled/
// overlined/proportional/script attributes into the current template. Only
// ever called with parameters drawn from the codes the pattern admits.
func (t *Terminal) applyTypographicSGR(params []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, p := range strings.Split(string(params), ";") {
		n, err := strconv.Atoi(p)
		if err != nil {
			continue
		}
		switch {
		case n >= 10 && n <= 19:
			t.template.Font = n - 10
		case n == 50:
			t.template.SetFlag(CellFlagProportionalOff)
		case n == 51:
			t.template.SetFlag(CellFlagFramed)
		case n == 52:
			t.template.SetFlag(CellFlagEncircled)
		case n == 53:
			t.template.SetFlag(CellFlagOverlined)
		case n == 54:
			t.template.ClearFlag(CellFlagFramed | CellFlagEncircled)
		case n == 55:
			t.template.ClearFlag(CellFlagOverlined)
		case n == 73:
			t.template.SetFlag(CellFlagSuperscript)
			t.template.ClearFlag(CellFlagSubscript)
		case n == 74:
			t.template.SetFlag(CellFlagSubscript)
			t.template.ClearFlag(CellFlagSuperscript)
		case n == 75:
			t.template.ClearFlag(CellFlagSuperscript | CellFlagSubscript)
		}
	}
}

// firstParam parses the leading ;-separated numeric parameter, returning def
// if it is absent or malformed.
func firstParam(params []byte, def int) int {
	s := string(params)
	if i := strings.IndexByte(s, ';'); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// reportActiveCharset answers CSI ? 26 n with the designator of the currently
// selected charset slot: "0" while DEC Special Graphics is active, "B" (US
// ASCII) otherwise.
func (t *Terminal) reportActiveCharset() {
	t.mu.RLock()
	designator := byte('B')
	if t.activeCharset >= 0 && t.activeCharset < 4 && t.charsets[t.activeCharset] == CharsetLineDrawing {
		designator = '0'
	}
	t.mu.RUnlock()

	t.writeResponseString(fmt.Sprintf("\x1b[?26;%c\x1b\\", designator))
}

// reportTitle answers the OSC 21 title query with the ST-terminated form.
func (t *Terminal) reportTitle() {
	t.mu.RLock()
	title := t.title
	t.mu.RUnlock()

	t.writeResponseString("\x1b]L" + title + "\x1b\\")
}
