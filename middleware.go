package vtcore

import (
	"image/color"
	"reflect"

	"github.com/danielgatis/go-ansicode"
)

// Middleware intercepts handler dispatch. Every field wraps exactly one
// handler method: when set, the terminal calls the interceptor with the
// original arguments plus a next function running the default behavior.
// An interceptor may inspect, rewrite, or swallow the call by choosing
// whether and with what arguments to invoke next. Nil fields dispatch
// straight to the default behavior.
type Middleware struct {
	// Printing and C0 controls.
	Input          func(r rune, next func(rune))
	Bell           func(next func())
	Backspace      func(next func())
	CarriageReturn func(next func())
	LineFeed       func(next func())
	Tab            func(n int, next func(int))
	Substitute     func(next func())

	// Cursor motion and addressing.
	Goto             func(row, col int, next func(int, int))
	GotoLine         func(row int, next func(int))
	GotoCol          func(col int, next func(int))
	MoveUp           func(n int, next func(int))
	MoveDown         func(n int, next func(int))
	MoveForward      func(n int, next func(int))
	MoveBackward     func(n int, next func(int))
	MoveUpCr         func(n int, next func(int))
	MoveDownCr       func(n int, next func(int))
	MoveForwardTabs  func(n int, next func(int))
	MoveBackwardTabs func(n int, next func(int))

	// Erasing and editing.
	ClearLine        func(mode ansicode.LineClearMode, next func(ansicode.LineClearMode))
	ClearScreen      func(mode ansicode.ClearMode, next func(ansicode.ClearMode))
	ClearTabs        func(mode ansicode.TabulationClearMode, next func(ansicode.TabulationClearMode))
	InsertBlank      func(n int, next func(int))
	InsertBlankLines func(n int, next func(int))
	DeleteChars      func(n int, next func(int))
	DeleteLines      func(n int, next func(int))
	EraseChars       func(n int, next func(int))

	// Scrolling and regions.
	ScrollUp           func(n int, next func(int))
	ScrollDown         func(n int, next func(int))
	SetScrollingRegion func(top, bottom int, next func(int, int))

	// Cursor state.
	SaveCursorPosition    func(next func())
	RestoreCursorPosition func(next func())
	ReverseIndex          func(next func())
	SetCursorStyle        func(style ansicode.CursorStyle, next func(ansicode.CursorStyle))

	// Modes and reset.
	SetMode                    func(mode ansicode.TerminalMode, next func(ansicode.TerminalMode))
	UnsetMode                  func(mode ansicode.TerminalMode, next func(ansicode.TerminalMode))
	SetKeypadApplicationMode   func(next func())
	UnsetKeypadApplicationMode func(next func())
	ResetState                 func(next func())
	Decaln                     func(next func())

	// Attributes, colors, hyperlinks.
	SetTerminalCharAttribute func(attr ansicode.TerminalCharAttribute, next func(ansicode.TerminalCharAttribute))
	SetColor                 func(index int, c color.Color, next func(int, color.Color))
	ResetColor               func(i int, next func(int))
	SetDynamicColor          func(prefix string, index int, terminator string, next func(string, int, string))
	SetHyperlink             func(hyperlink *ansicode.Hyperlink, next func(*ansicode.Hyperlink))

	// Character sets.
	ConfigureCharset func(index ansicode.CharsetIndex, charset ansicode.Charset, next func(ansicode.CharsetIndex, ansicode.Charset))
	SetActiveCharset func(n int, next func(int))

	// Tab stops.
	HorizontalTabSet func(next func())

	// Device reports.
	DeviceStatus       func(n int, next func(int))
	IdentifyTerminal   func(b byte, next func(byte))
	TextAreaSizeChars  func(next func())
	TextAreaSizePixels func(next func())

	// Clipboard (OSC 52).
	ClipboardLoad  func(clipboard byte, terminator string, next func(byte, string))
	ClipboardStore func(clipboard byte, data []byte, next func(byte, []byte))

	// Window title.
	SetTitle  func(title string, next func(string))
	PushTitle func(next func())
	PopTitle  func(next func())

	// Keyboard protocol.
	SetKeyboardMode       func(mode ansicode.KeyboardMode, behavior ansicode.KeyboardModeBehavior, next func(ansicode.KeyboardMode, ansicode.KeyboardModeBehavior))
	PushKeyboardMode      func(mode ansicode.KeyboardMode, next func(ansicode.KeyboardMode))
	PopKeyboardMode       func(n int, next func(int))
	ReportKeyboardMode    func(next func())
	SetModifyOtherKeys    func(modify ansicode.ModifyOtherKeys, next func(ansicode.ModifyOtherKeys))
	ReportModifyOtherKeys func(next func())

	// Opaque string sequences (APC / PM / SOS).
	ApplicationCommandReceived func(data []byte, next func([]byte))
	PrivacyMessageReceived     func(data []byte, next func([]byte))
	StartOfStringReceived      func(data []byte, next func([]byte))

	// Shell integration and working directory (OSC 133 / OSC 7).
	ShellIntegrationMark func(mark ansicode.ShellIntegrationMark, exitCode int, next func(ansicode.ShellIntegrationMark, int))
	SetWorkingDirectory  func(uri string, next func(string))
}

// Merge copies every non-nil interceptor from other into m, overwriting any
// already set. Every Middleware field is a func, so a single reflective sweep
// covers them all; adding a field to the struct needs no matching edit here.
func (m *Middleware) Merge(other *Middleware) {
	if other == nil {
		return
	}
	dst := reflect.ValueOf(m).Elem()
	src := reflect.ValueOf(other).Elem()
	for i := 0; i < src.NumField(); i++ {
		if f := src.Field(i); !f.IsNil() {
			dst.Field(i).Set(f)
		}
	}
}
