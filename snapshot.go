package vtcore

import (
	"fmt"
	"image/color"
)

// SnapshotDetail selects how much information a snapshot carries.
type SnapshotDetail string

const (
	// SnapshotDetailText captures plain text only.
	SnapshotDetailText SnapshotDetail = "text"
	// SnapshotDetailStyled captures text plus per-line style segments.
	SnapshotDetailStyled SnapshotDetail = "styled"
	// SnapshotDetailFull captures complete per-cell data.
	SnapshotDetailFull SnapshotDetail = "full"
)

// Snapshot is a point-in-time capture of the visible screen. It shares no
// storage with the terminal: reading it after further writes is safe.
type Snapshot struct {
	Size   SnapshotSize   `json:"size"`
	Cursor SnapshotCursor `json:"cursor"`
	Lines  []SnapshotLine `json:"lines"`
}

// SnapshotSize holds the grid dimensions.
type SnapshotSize struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// SnapshotCursor holds cursor position, visibility, and rendering style.
type SnapshotCursor struct {
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Visible bool   `json:"visible"`
	Style   string `json:"style"`
}

// SnapshotLine is one captured screen row.
type SnapshotLine struct {
	Text     string            `json:"text"`
	Segments []SnapshotSegment `json:"segments,omitempty"`
	Cells    []SnapshotCell    `json:"cells,omitempty"`
}

// SnapshotSegment is a maximal run of identically-styled characters.
type SnapshotSegment struct {
	Text       string        `json:"text"`
	Fg         string        `json:"fg,omitempty"`
	Bg         string        `json:"bg,omitempty"`
	Attributes SnapshotAttrs `json:"attrs,omitempty"`
	Hyperlink  *SnapshotLink `json:"hyperlink,omitempty"`
}

// SnapshotCell is one captured cell with full attributes.
type SnapshotCell struct {
	Char           string        `json:"char"`
	Fg             string        `json:"fg"`
	Bg             string        `json:"bg"`
	UnderlineColor string        `json:"underline_color,omitempty"`
	Attributes     SnapshotAttrs `json:"attrs,omitempty"`
	Hyperlink      *SnapshotLink `json:"hyperlink,omitempty"`
	Wide           bool          `json:"wide,omitempty"`
	WideSpacer     bool          `json:"wide_spacer,omitempty"`
}

// SnapshotAttrs holds text formatting attributes. Underline carries the style
// name ("single", "double", "curly", "dotted", "dashed") or "" when not
// underlined; Blink is "slow", "fast", or "".
type SnapshotAttrs struct {
	Bold          bool   `json:"bold,omitempty"`
	Dim           bool   `json:"dim,omitempty"`
	Italic        bool   `json:"italic,omitempty"`
	Underline     string `json:"underline,omitempty"`
	Blink         string `json:"blink,omitempty"`
	Reverse       bool   `json:"reverse,omitempty"`
	Hidden        bool   `json:"hidden,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty"`
}

// SnapshotLink holds hyperlink information.
type SnapshotLink struct {
	ID  string `json:"id,omitempty"`
	URI string `json:"uri"`
}

// Snapshot captures the current terminal state at the given detail level.
func (t *Terminal) Snapshot(detail SnapshotDetail) *Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	snap := &Snapshot{
		Size: SnapshotSize{Rows: t.rows, Cols: t.cols},
		Cursor: SnapshotCursor{
			Row:     t.cursor.Row,
			Col:     t.cursor.Col,
			Visible: t.cursor.Visible,
			Style:   cursorStyleName(t.cursor.Style),
		},
		Lines: make([]SnapshotLine, t.rows),
	}

	for row := range snap.Lines {
		line := SnapshotLine{Text: t.activeBuffer.LineContent(row)}
		switch detail {
		case SnapshotDetailStyled:
			line.Segments = t.captureSegments(row)
		case SnapshotDetailFull:
			line.Cells = t.captureCells(row)
		}
		snap.Lines[row] = line
	}

	return snap
}

// segmentStyle is the comparable style key a run of cells must share to be
// folded into one segment.
type segmentStyle struct {
	fg, bg  string
	attrs   SnapshotAttrs
	linkID  string
	linkURI string
	hasLink bool
}

func styleOf(cell *Cell) segmentStyle {
	s := segmentStyle{
		fg:    colorToHex(cell.Fg),
		bg:    colorToHex(cell.Bg),
		attrs: captureAttrs(cell),
	}
	if cell.Hyperlink != nil {
		s.hasLink = true
		s.linkID = cell.Hyperlink.ID
		s.linkURI = cell.Hyperlink.URI
	}
	return s
}

func (s segmentStyle) link() *SnapshotLink {
	if !s.hasLink {
		return nil
	}
	return &SnapshotLink{ID: s.linkID, URI: s.linkURI}
}

// captureSegments folds a row into maximal runs of identical style.
func (t *Terminal) captureSegments(row int) []SnapshotSegment {
	var segments []SnapshotSegment
	var run []rune
	var cur segmentStyle
	started := false

	flush := func() {
		if started && len(run) > 0 {
			segments = append(segments, SnapshotSegment{
				Text:       string(run),
				Fg:         cur.fg,
				Bg:         cur.bg,
				Attributes: cur.attrs,
				Hyperlink:  cur.link(),
			})
		}
		run = run[:0]
	}

	for col := 0; col < t.cols; col++ {
		cell := t.activeBuffer.Cell(row, col)
		if cell == nil || cell.IsWideSpacer() {
			continue
		}

		style := styleOf(cell)
		if !started || style != cur {
			flush()
			cur = style
			started = true
		}

		ch := cell.Char
		if ch == 0 {
			ch = ' '
		}
		run = append(run, ch)
	}
	flush()

	return segments
}

// captureCells copies a row cell by cell.
func (t *Terminal) captureCells(row int) []SnapshotCell {
	cells := make([]SnapshotCell, 0, t.cols)

	for col := 0; col < t.cols; col++ {
		cell := t.activeBuffer.Cell(row, col)
		if cell == nil {
			cells = append(cells, SnapshotCell{Char: " "})
			continue
		}

		ch := cell.Char
		if ch == 0 {
			ch = ' '
		}
		cells = append(cells, SnapshotCell{
			Char:           string(ch),
			Fg:             colorToHex(cell.Fg),
			Bg:             colorToHex(cell.Bg),
			UnderlineColor: colorToHex(cell.UnderlineColor),
			Attributes:     captureAttrs(cell),
			Hyperlink:      captureLink(cell),
			Wide:           cell.IsWide(),
			WideSpacer:     cell.IsWideSpacer(),
		})
	}

	return cells
}

// colorToHex renders a cell color as "#rrggbb" against the default theme.
// A nil color yields "".
func colorToHex(c color.Color) string {
	if c == nil {
		return ""
	}
	rgba := ResolveDefaultColor(c, true)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

func captureAttrs(cell *Cell) SnapshotAttrs {
	return SnapshotAttrs{
		Bold:          cell.HasFlag(CellFlagBold),
		Dim:           cell.HasFlag(CellFlagDim),
		Italic:        cell.HasFlag(CellFlagItalic),
		Underline:     underlineStyleName(cell.Flags),
		Blink:         blinkName(cell.Flags),
		Reverse:       cell.HasFlag(CellFlagReverse),
		Hidden:        cell.HasFlag(CellFlagHidden),
		Strikethrough: cell.HasFlag(CellFlagStrike),
	}
}

// underlineStyleName maps the mutually exclusive underline flags to their
// snapshot label, or "" when the cell is not underlined.
func underlineStyleName(f CellFlags) string {
	switch {
	case f&CellFlagDoubleUnderline != 0:
		return "double"
	case f&CellFlagCurlyUnderline != 0:
		return "curly"
	case f&CellFlagDottedUnderline != 0:
		return "dotted"
	case f&CellFlagDashedUnderline != 0:
		return "dashed"
	case f&CellFlagUnderline != 0:
		return "single"
	}
	return ""
}

// blinkName maps the blink flags to their snapshot label, or "".
func blinkName(f CellFlags) string {
	switch {
	case f&CellFlagBlinkFast != 0:
		return "fast"
	case f&CellFlagBlinkSlow != 0:
		return "slow"
	}
	return ""
}

func captureLink(cell *Cell) *SnapshotLink {
	if cell.Hyperlink == nil {
		return nil
	}
	return &SnapshotLink{ID: cell.Hyperlink.ID, URI: cell.Hyperlink.URI}
}

// cursorStyleName maps a cursor style to its snapshot label.
func cursorStyleName(style CursorStyle) string {
	switch style {
	case CursorStyleBlinkingUnderline, CursorStyleSteadyUnderline:
		return "underline"
	case CursorStyleBlinkingBar, CursorStyleSteadyBar:
		return "bar"
	default:
		return "block"
	}
}
