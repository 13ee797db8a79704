// Package hero lays out the static hero section drawn over the backdrop.
package hero

import (
	"fmt"
	"time"

	"github.com/iburimskiy/hackpage/internal/config"
	"github.com/iburimskiy/hackpage/internal/effects"
)

// Glyph metrics of the bitmap face used to draw every label.
const (
	GlyphWidth  = 7
	GlyphHeight = 13
)

const (
	buttonPadX   = 24
	buttonPadY   = 16
	buttonGap    = 24
	socialSize   = 44
	socialGap    = 16
	sectionGap   = 18
	maxWidthFrac = 0.9
)

// Kind identifies what an element is.
type Kind int

const (
	Title Kind = iota
	Version
	Tagline
	Highlight
	Countdown
	Button
	Social
	Status
)

// Rect is an axis-aligned box in logical pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) is inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Element is one positioned piece of the hero.
type Element struct {
	Kind     Kind
	Text     string
	URL      string
	Variant  string // button kind: primary | secondary | accent
	Rect     Rect
	Scale    float64 // text scale relative to the bitmap face
	Delay    float64 // entrance delay in seconds
	Duration float64 // entrance duration in seconds
}

// TextWidth returns the pixel width of the label at its scale.
func (e Element) TextWidth() float64 {
	return float64(len(e.Text)) * GlyphWidth * e.Scale
}

// Opacity returns the entrance fade at elapsed seconds.
func (e Element) Opacity(elapsed float64) float64 {
	return effects.FadeIn(elapsed, e.Delay, e.Duration)
}

// Clickable reports whether the element reacts to clicks.
func (e Element) Clickable() bool { return e.Kind == Button || e.Kind == Social }

// Hero holds the content and the last layout.
type Hero struct {
	cfg      config.HeroConfig
	start    time.Time
	elements []Element
	width    float64
	height   float64
}

// New validates the content.
func New(cfg config.HeroConfig) (*Hero, error) {
	start, err := cfg.Countdown()
	if err != nil {
		return nil, err
	}
	return &Hero{cfg: cfg, start: start}, nil
}

// Elements returns the last layout.
func (h *Hero) Elements() []Element { return h.elements }

// Layout positions every element centred on a width x height surface.
// It recomputes only when the size changed.
func (h *Hero) Layout(width, height float64) []Element {
	if width == h.width && height == h.height && h.elements != nil {
		return h.elements
	}
	h.width, h.height = width, height
	h.elements = h.elements[:0]

	cx := width / 2
	y := height * 0.18

	// clamp(2.5rem, 7vw, 6rem)
	headline := effects.Clamp(width*0.07, 40, 96) / GlyphHeight
	// clamp(1rem, 1.8vw, 1.8rem)
	body := effects.Clamp(width*0.018, 16, 28.8) / GlyphHeight

	y = h.addCentered(Element{Kind: Title, Text: h.cfg.Title, Scale: headline, Delay: 0.5, Duration: 1.2}, cx, y)
	y = h.addCentered(Element{Kind: Version, Text: h.cfg.Version, Scale: headline, Delay: 0.8, Duration: 1.5}, cx, y)
	y += sectionGap

	for _, line := range h.cfg.Taglines {
		e := Element{Kind: Tagline, Text: line, Scale: body, Delay: 1.2, Duration: 1}
		if line == h.cfg.Highlight {
			e.Kind = Highlight
			e.Scale = body * 1.8
		}
		y = h.addCentered(e, cx, y)
	}
	if !h.start.IsZero() {
		y = h.addCentered(Element{Kind: Countdown, Scale: body, Delay: 1.2, Duration: 1}, cx, y)
	}
	y += sectionGap * 2

	y = h.layoutButtons(cx, y, width, body*0.8)
	y += sectionGap
	y = h.layoutSocials(cx, y)
	y += sectionGap

	if h.cfg.Status != "" {
		h.addCentered(Element{Kind: Status, Text: h.cfg.Status, Scale: 1, Delay: 2.2, Duration: 1}, cx, y)
	}
	return h.elements
}

func (h *Hero) addCentered(e Element, cx, y float64) float64 {
	w := e.TextWidth()
	e.Rect = Rect{X: cx - w/2, Y: y, W: w, H: GlyphHeight * e.Scale}
	h.elements = append(h.elements, e)
	return y + e.Rect.H + 4*e.Scale
}

// layoutButtons puts the call-to-actions side by side, or stacks them when
// they do not fit in 90% of the width.
func (h *Hero) layoutButtons(cx, y, width, scale float64) float64 {
	if len(h.cfg.Buttons) == 0 {
		return y
	}
	buttons := make([]Element, len(h.cfg.Buttons))
	total := 0.0
	for i, b := range h.cfg.Buttons {
		e := Element{Kind: Button, Text: b.Label, URL: b.URL, Variant: b.Kind, Scale: scale, Delay: 1.8, Duration: 1}
		e.Rect.W = e.TextWidth() + 2*buttonPadX
		e.Rect.H = GlyphHeight*scale + 2*buttonPadY
		total += e.Rect.W
		buttons[i] = e
	}
	total += buttonGap * float64(len(buttons)-1)

	if total <= width*maxWidthFrac {
		x := cx - total/2
		for _, e := range buttons {
			e.Rect.X, e.Rect.Y = x, y
			x += e.Rect.W + buttonGap
			h.elements = append(h.elements, e)
		}
		return y + buttons[0].Rect.H
	}
	for _, e := range buttons {
		e.Rect.X, e.Rect.Y = cx-e.Rect.W/2, y
		y += e.Rect.H + buttonGap/2
		h.elements = append(h.elements, e)
	}
	return y
}

func (h *Hero) layoutSocials(cx, y float64) float64 {
	n := len(h.cfg.Socials)
	if n == 0 {
		return y
	}
	total := float64(n)*socialSize + float64(n-1)*socialGap
	x := cx - total/2
	for _, s := range h.cfg.Socials {
		h.elements = append(h.elements, Element{
			Kind: Social, Text: s.Name, URL: s.URL, Scale: 1, Delay: 2.0, Duration: 1,
			Rect: Rect{X: x, Y: y, W: socialSize, H: socialSize},
		})
		x += socialSize + socialGap
	}
	return y + socialSize
}

// HitTest returns the clickable element under (x, y), if any.
func (h *Hero) HitTest(x, y float64) (Element, bool) {
	for _, e := range h.elements {
		if e.Clickable() && e.Rect.Contains(x, y) {
			return e, true
		}
	}
	return Element{}, false
}

// CountdownText formats the time left until the event.
func (h *Hero) CountdownText(now time.Time) string {
	if h.start.IsZero() {
		return ""
	}
	return FormatCountdown(h.start.Sub(now))
}

// FormatCountdown formats d as "Dd HH:MM:SS", or a live message once it has passed.
func FormatCountdown(d time.Duration) string {
	if d <= 0 {
		return "Hacking is live!"
	}
	d = d.Truncate(time.Second)
	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int(d / time.Minute)
	seconds := int((d - time.Duration(minutes)*time.Minute) / time.Second)
	return fmt.Sprintf("%dd %02d:%02d:%02d", days, hours, minutes, seconds)
}
