// Package vtcore is a headless VT100/xterm-compatible terminal emulator: a
// byte-stream-driven state machine that keeps a cell grid, cursor, styling
// state, scrollback history, and window metadata without ever rendering a
// pixel. Feed it the bytes a PTY-attached program produces and read the
// resulting screen model.
//
// Typical uses: end-to-end tests of CLI and TUI programs, terminal recorders
// and multiplexers, web terminals that render server-side state, and screen
// scraping.
//
// # Quick start
//
//	term := vtcore.New()
//	term.WriteString("\x1b[31mHello \x1b[32mWorld\x1b[0m!")
//	fmt.Println(term.String()) // "Hello World!"
//
// [Terminal] implements [io.Writer], so a command can write straight into it:
//
//	term := vtcore.New(
//	    vtcore.WithSize(24, 80),
//	    vtcore.WithScrollback(vtcore.NewMemoryScrollback(10000)),
//	    vtcore.WithResponse(ptyWriter), // terminal query responses go here
//	)
//	cmd := exec.Command("ls", "-la", "--color")
//	cmd.Stdout = term
//	cmd.Run()
//	for row := 0; row < term.Rows(); row++ {
//	    fmt.Println(term.LineContent(row))
//	}
//
// # Screen model
//
// The grid is made of [Cell] values: a rune, foreground/background/underline
// colors (as [image/color] values — named, indexed, or 24-bit RGB), an
// attribute bitmask, and an optional hyperlink. Cells snapshot the styling
// state at write time; changing the current attributes never restyles
// already-written cells.
//
// There are two grids. The primary buffer feeds scrollback as lines scroll
// off its top; the alternate buffer (entered by full-screen programs via
// CSI ?1049h) never does. IsAlternateScreen reports which one is live.
//
// # Responses and events
//
// Some sequences make the terminal talk back: cursor position reports
// (CSI 6 n), device attributes (CSI c), size reports (CSI 18 t), color
// queries (OSC 10/11), the title query (OSC 21), and the charset report
// (CSI ?26 n). Responses are written, in order, to the [ResponseProvider]
// given via WithResponse.
//
// Other observer hooks, all optional and synchronous:
//
//   - WithUpdate: called with a fresh [Snapshot] after every Write that
//     changed visible state
//   - [BellProvider]: BEL
//   - [TitleProvider]: window title changes and stack operations (OSC 0/1/2,
//     CSI 22/23 t)
//   - [DecModeProvider]: every DEC private mode set/reset with its mode number
//   - [ClipboardProvider]: OSC 52 reads and writes, subject to payload limits
//   - [ShellIntegrationProvider]: OSC 133 prompt marks
//   - [RecordingProvider]: raw input bytes, before parsing
//
// Observer callbacks run on the writing goroutine and must not call Write.
//
// # Scrollback and viewports
//
// Scrollback storage is pluggable via [ScrollbackProvider];
// [NewMemoryScrollback] is the bounded in-memory default. Evicted rows are
// immutable copies: later screen edits never rewrite history.
//
// To render a scrolled-back view, address rows in the combined space where 0
// is the oldest scrollback line and ScrollbackLen() is the top visible row:
//
//	rows := term.ViewportRows(top, height) // rows a viewport at top shows
//
// ViewportRowToAbsolute and AbsoluteRowToViewport convert between the two row
// spaces; Search and SearchScrollback locate text in either.
//
// # Snapshots
//
// Snapshot captures the screen at three detail levels: SnapshotDetailText
// (plain lines), SnapshotDetailStyled (per-line runs of identical style, handy
// for HTML), and SnapshotDetailFull (per-cell data including underline style
// and color, blink rate, and hyperlinks). Snapshots share no storage with the
// terminal and marshal cleanly with encoding/json.
//
// # Modes, regions, protection
//
// The emulator tracks DECAWM autowrap (including deferred wrap at the last
// column), origin mode, scroll regions (DECSTBM), insert mode, cursor
// visibility and style (DECSCUSR), bracketed paste, mouse reporting flags,
// and G0–G3 charset designation with DEC Special Graphics translation.
// DECSCA-protected cells survive the selective erase forms (CSI ?J / ?K).
// HasMode inspects any flag; see [TerminalMode].
//
// # Middleware
//
// [Middleware] intercepts handler dispatch one method at a time — log a call,
// rewrite its arguments, or swallow it by not invoking next:
//
//	mw := &vtcore.Middleware{
//	    Bell: func(next func()) {}, // silence the bell
//	    Input: func(r rune, next func(rune)) {
//	        next(unicode.ToUpper(r))
//	    },
//	}
//	term := vtcore.New(vtcore.WithMiddleware(mw))
//
// # Incomplete input
//
// The decoder holds partial escape/OSC/UTF-8 sequences across Write calls and
// resumes when the rest arrives. FlushIncomplete drops anything pending and
// returns the parser to ground — useful when the byte source died mid-sequence.
//
// # Shell integration
//
// OSC 133 prompt marks are recorded with absolute row positions, so a caller
// can jump between prompts (NextPromptRow/PrevPromptRow) or pull the last
// command's output (GetLastCommandOutput) even after it scrolled into history.
// OSC 7 working-directory reports are available via WorkingDirectory.
//
// # Diagnostics
//
// The core never fails on malformed input: bad UTF-8 becomes U+FFFD, broken
// escape sequences are dropped, unknown CSI/OSC are ignored, oversized OSC 52
// payloads are discarded. WithLogger attaches a zerolog.Logger that receives
// debug entries for discarded OSC 52 payloads and for received APC
// sequences; the other paths above are not logged. NewConsoleLogger builds a
// TTY-aware logger.
//
// # Concurrency
//
// All methods are safe for concurrent use through internal locking, but the
// model is single-writer: interleaving Write calls from multiple goroutines
// produces interleaved parsing.
package vtcore
