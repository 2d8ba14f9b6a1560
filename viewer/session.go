package main

import (
	"fmt"
	"image"
	"time"

	"github.com/scottkirkwood/fractals"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

// session is the viewer state between frames: which fractal is shown,
// the viewport, and the raster it was last drawn into.
type session struct {
	kind     fractals.Kind
	vp       fractals.Viewport
	params   fractals.Params
	seed     fractals.Seed
	renderer *fractals.Renderer
	ctx      *fractals.Context
	dirty    bool
}

func newSession(kind fractals.Kind, params fractals.Params, seed fractals.Seed) *session {
	s := &session{kind: kind, seed: seed}
	s.setParams(params)
	return s
}

func (s *session) setParams(p fractals.Params) {
	s.params = p
	s.renderer = fractals.NewRenderer(p, nil)
	if s.ctx == nil || s.ctx.Width() != p.Width || s.ctx.Height() != p.Height {
		s.ctx = fractals.NewContext(p.Width, p.Height)
		s.vp = fractals.NewViewport(p.Width, p.Height)
	}
	s.dirty = true
}

// applyConfig switches to a reloaded config. A bad config is reported and
// leaves the session untouched.
func (s *session) applyConfig(cfg fractals.Config) error {
	p, err := cfg.Params()
	if err != nil {
		return err
	}
	if cfg.Seed != "" {
		if err := s.seed.SetSeed(cfg.Seed); err != nil {
			return err
		}
	}
	s.setParams(p)
	return nil
}

func (s *session) canvasSize() image.Point {
	return image.Pt(s.params.Width, s.params.Height)
}

// click applies a press at canvas pixel (x, y). Every press moves the
// viewport, but only interactive fractals need a redraw.
func (s *session) click(x, y int, b mouse.Button) bool {
	var btn fractals.Button
	switch b {
	case mouse.ButtonLeft:
		btn = fractals.Primary
	case mouse.ButtonRight:
		btn = fractals.Secondary
	default:
		return false
	}
	s.vp = s.vp.ApplyClick(x, y, btn)
	if s.kind.Interactive() {
		s.dirty = true
	}
	return s.dirty
}

// handleMouse handles a window mouse event; frame is where the canvas sits
// in the window.
func (s *session) handleMouse(e mouse.Event, frame image.Rectangle) bool {
	if e.Direction != mouse.DirPress {
		return false
	}
	x, y := toCanvas(frame, s.canvasSize(), e.X, e.Y)
	return s.click(x, y, e.Button)
}

// handleKey returns whether to redraw and whether to quit.
func (s *session) handleKey(e key.Event) (redraw, quit bool) {
	if e.Direction != key.DirPress {
		return false, false
	}
	switch e.Code {
	case key.CodeEscape, key.CodeQ:
		return false, true
	case key.CodeR:
		s.vp = fractals.NewViewport(s.params.Width, s.params.Height)
		s.dirty = true
	case key.Code1, key.Code2, key.Code3, key.Code4, key.Code5, key.Code6:
		k, err := fractals.KindFromDigit(int(e.Code-key.Code1) + 1)
		if err != nil {
			return false, false
		}
		if k != s.kind {
			s.kind = k
			s.dirty = true
		}
	}
	return s.dirty, false
}

// draw renders the current fractal if anything changed since the last
// frame.
func (s *session) draw() image.Image {
	if !s.dirty {
		return s.ctx.Image()
	}
	start := time.Now()
	s.ctx.Clear(s.params.Background)
	s.renderer.Rand = s.seed.Rand()
	if err := s.renderer.Render(s.kind, s.ctx, s.vp); err != nil {
		fmt.Printf("Unable to render: %v\n", err)
	}
	s.dirty = false
	fmt.Printf("Rendered %s (center %.4f,%.4f scale %.4g) in %s\n",
		s.kind, s.vp.CenterX, s.vp.CenterY, s.vp.Scale, time.Since(start))
	return s.ctx.Image()
}
