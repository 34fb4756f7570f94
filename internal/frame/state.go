package frame

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrLastRibbonColor is returned when removing the only ribbon colour.
var ErrLastRibbonColor = errors.New("ribbon needs at least one color")

// Default ribbon and text colours.
var (
	DefaultRibbonColors = []color.NRGBA{
		{R: 0xd4, G: 0x24, B: 0x26, A: 0xff},
		{R: 0x2a, G: 0x9d, B: 0x8f, A: 0xff},
	}
	DefaultTextColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// State is everything the compositor needs to draw one frame. Callers mutate
// it through the setters and pass it by value to Compose.
type State struct {
	Image        image.Image
	PanX, PanY   float64
	Zoom         float64
	Message      string
	TextColor    color.NRGBA
	RibbonColors []color.NRGBA
}

// NewState returns a state with no photo, zoom 1 and the default colours.
func NewState() State {
	s := State{Zoom: 1, TextColor: DefaultTextColor}
	s.SetRibbonColors(DefaultRibbonColors)
	return s
}

// SetImage replaces the photo and recentres it. A nil image is ignored so a
// failed load leaves the previous photo in place.
func (s *State) SetImage(img image.Image) {
	if img == nil {
		return
	}
	s.Image = img
	s.PanX, s.PanY = 0, 0
}

// SetPan sets the absolute pan offset in canvas pixels.
func (s *State) SetPan(x, y float64) {
	s.PanX, s.PanY = x, y
}

// Pan moves the photo by a delta.
func (s *State) Pan(dx, dy float64) {
	s.PanX += dx
	s.PanY += dy
}

// SetZoom sets the zoom multiplier.
func (s *State) SetZoom(z float64) {
	s.Zoom = z
}

// SetMessage sets the ribbon text.
func (s *State) SetMessage(m string) {
	s.Message = m
}

// SetTextColor sets the glyph colour.
func (s *State) SetTextColor(c color.NRGBA) {
	s.TextColor = c
}

// SetRibbonColors replaces the ribbon colours with a copy of colors.
func (s *State) SetRibbonColors(colors []color.NRGBA) {
	s.RibbonColors = append([]color.NRGBA(nil), colors...)
}

// AddRibbonColor appends a colour to the ribbon.
func (s *State) AddRibbonColor(c color.NRGBA) {
	s.RibbonColors = append(append([]color.NRGBA(nil), s.RibbonColors...), c)
}

// RemoveRibbonColor drops the colour at idx. The last remaining colour
// cannot be removed.
func (s *State) RemoveRibbonColor(idx int) error {
	if idx < 0 || idx >= len(s.RibbonColors) {
		return fmt.Errorf("ribbon color %d out of range", idx)
	}
	if len(s.RibbonColors) <= 1 {
		return ErrLastRibbonColor
	}
	out := make([]color.NRGBA, 0, len(s.RibbonColors)-1)
	out = append(out, s.RibbonColors[:idx]...)
	out = append(out, s.RibbonColors[idx+1:]...)
	s.RibbonColors = out
	return nil
}

// Clamp applies policy to the zoom and pan.
func (s *State) Clamp(p ViewportPolicy, canvasSize float64) {
	s.Zoom = p.ClampZoom(s.Zoom)
	if s.Image == nil {
		return
	}
	b := s.Image.Bounds()
	s.PanX, s.PanY = p.ClampPan(b.Dx(), b.Dy(), canvasSize, s.Zoom, s.PanX, s.PanY)
}
