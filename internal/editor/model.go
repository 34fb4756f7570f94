package editor

import (
	"image"
	"image/color"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/framemaker/internal/frame"
	"github.com/example/framemaker/internal/palette"
	"github.com/example/framemaker/internal/preset"
)

const (
	stripHeight  = 32
	statusHeight = 18
	swatchSize   = 20
	swatchGap    = 6
	swatchPad    = 6

	zoomStep   = 1.1
	panStep    = 10.0
	hoverTint  = 0.3
	statusTime = 2 * time.Second
)

// addCycle supplies the colour for each press of the add swatch.
var addCycle = []string{"gold", "white", "royalblue", "forestgreen", "crimson", "black"}

type action int

const (
	actNone action = iota
	actChanged
	actQuit
	actSave
	actCopy
	actPaste
)

// model is the editor state that does not depend on a window. All methods
// run on the event loop goroutine.
type model struct {
	state     frame.State
	layout    frame.Layout
	policy    frame.ViewportPolicy
	clamp     bool
	presets   []*preset.Preset
	presetIdx int
	addIdx    int

	hover    int
	dragging bool
	last     image.Point

	status      string
	statusUntil time.Time
}

func (m *model) size() int {
	if m.layout.Size <= 0 {
		return frame.ReferenceSize
	}
	return m.layout.Size
}

// windowSize is the initial window: the frame above the swatch strip and
// status line.
func (m *model) windowSize() image.Point {
	w := m.size()
	if minW := swatchPad + 8*(swatchSize+swatchGap); w < minW {
		w = minW
	}
	return image.Pt(w, m.size()+stripHeight+statusHeight)
}

func (m *model) settle() {
	if m.clamp {
		m.state.Clamp(m.policy, float64(m.size()))
	}
}

func (m *model) zoomBy(f float64) {
	m.state.SetZoom(m.state.Zoom * f)
	m.settle()
}

func (m *model) panBy(dx, dy float64) {
	m.state.Pan(dx, dy)
	m.settle()
}

func (m *model) resetView() {
	m.state.SetPan(0, 0)
	m.state.SetZoom(1)
	m.settle()
}

func (m *model) setPhoto(img image.Image) {
	m.state.SetImage(img)
	m.settle()
}

func (m *model) typeRune(r rune) {
	m.state.SetMessage(m.state.Message + string(r))
}

func (m *model) backspace() {
	msg := m.state.Message
	if msg == "" {
		return
	}
	_, n := utf8.DecodeLastRuneInString(msg)
	m.state.SetMessage(msg[:len(msg)-n])
}

// nextPreset applies the following preset and returns its name.
func (m *model) nextPreset() string {
	if len(m.presets) == 0 {
		return ""
	}
	m.presetIdx = (m.presetIdx + 1) % len(m.presets)
	p := m.presets[m.presetIdx]
	p.Apply(&m.state)
	return p.Name
}

func (m *model) setStatus(msg string, now time.Time) {
	m.status = msg
	m.statusUntil = now.Add(statusTime)
}

func (m *model) statusAt(now time.Time) string {
	if now.Before(m.statusUntil) {
		return m.status
	}
	return ""
}

// swatchRect is the square for swatch i. Index len(RibbonColors) is the add
// button.
func (m *model) swatchRect(i int) image.Rectangle {
	x := swatchPad + i*(swatchSize+swatchGap)
	y := m.size() + (stripHeight-swatchSize)/2
	return image.Rect(x, y, x+swatchSize, y+swatchSize)
}

// swatchAt returns the swatch under p or -1.
func (m *model) swatchAt(p image.Point) int {
	for i := 0; i <= len(m.state.RibbonColors); i++ {
		if p.In(m.swatchRect(i)) {
			return i
		}
	}
	return -1
}

// clickSwatch removes a ribbon colour or, on the add button, appends the next
// colour from addCycle.
func (m *model) clickSwatch(idx int) error {
	if idx == len(m.state.RibbonColors) {
		c, err := palette.Parse(addCycle[m.addIdx%len(addCycle)])
		if err != nil {
			return err
		}
		m.addIdx++
		m.state.AddRibbonColor(c)
		return nil
	}
	return m.state.RemoveRibbonColor(idx)
}

// swatchColor is the colour drawn for swatch i, tinted when hovered.
func (m *model) swatchColor(i int) color.NRGBA {
	c := color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	if i < len(m.state.RibbonColors) {
		c = m.state.RibbonColors[i]
	}
	if i == m.hover {
		return palette.Tint(c, hoverTint)
	}
	return c
}

// handleKey applies editing keys to the model and returns the action the
// window loop must carry out.
func (m *model) handleKey(e key.Event) action {
	if e.Direction == key.DirRelease {
		return actNone
	}
	ctrl := e.Modifiers&key.ModControl != 0
	if ctrl {
		switch {
		case e.Code == key.CodeS || e.Rune == 's':
			return actSave
		case e.Code == key.CodeC || e.Rune == 'c':
			return actCopy
		case e.Code == key.CodeV || e.Rune == 'v':
			return actPaste
		case e.Code == key.CodeEqualSign || e.Rune == '=' || e.Rune == '+':
			m.zoomBy(zoomStep)
			return actChanged
		case e.Code == key.CodeHyphenMinus || e.Rune == '-':
			m.zoomBy(1 / zoomStep)
			return actChanged
		case e.Code == key.Code0 || e.Rune == '0':
			m.resetView()
			return actChanged
		}
		return actNone
	}
	switch e.Code {
	case key.CodeEscape:
		return actQuit
	case key.CodeTab:
		if m.nextPreset() == "" {
			return actNone
		}
		return actChanged
	case key.CodeDeleteBackspace:
		m.backspace()
		return actChanged
	case key.CodeLeftArrow:
		m.panBy(-panStep, 0)
		return actChanged
	case key.CodeRightArrow:
		m.panBy(panStep, 0)
		return actChanged
	case key.CodeUpArrow:
		m.panBy(0, -panStep)
		return actChanged
	case key.CodeDownArrow:
		m.panBy(0, panStep)
		return actChanged
	}
	if e.Modifiers&(key.ModAlt|key.ModMeta) != 0 {
		return actNone
	}
	if e.Rune > 0 && unicode.IsPrint(e.Rune) {
		m.typeRune(e.Rune)
		return actChanged
	}
	return actNone
}

// handleMouse pans on drag, zooms on the wheel and tracks swatch hover. It
// returns actChanged when a repaint is needed and the error from a swatch
// click, if any.
func (m *model) handleMouse(e mouse.Event) (action, error) {
	p := image.Pt(int(e.X), int(e.Y))
	switch e.Button {
	case mouse.ButtonWheelUp:
		m.zoomBy(zoomStep)
		return actChanged, nil
	case mouse.ButtonWheelDown:
		m.zoomBy(1 / zoomStep)
		return actChanged, nil
	}

	res := actNone
	if hover := m.swatchAt(p); hover != m.hover {
		m.hover = hover
		res = actChanged
	}

	switch e.Direction {
	case mouse.DirPress:
		if e.Button != mouse.ButtonLeft {
			return res, nil
		}
		if m.hover >= 0 {
			return actChanged, m.clickSwatch(m.hover)
		}
		if p.Y < m.size() {
			m.dragging = true
			m.last = p
		}
	case mouse.DirRelease:
		m.dragging = false
	case mouse.DirNone:
		if m.dragging {
			m.panBy(float64(p.X-m.last.X), float64(p.Y-m.last.Y))
			m.last = p
			return actChanged, nil
		}
	}
	return res, nil
}
