package fractals

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Kind selects one of the fractals.
type Kind int

const (
	KindMandelbrot Kind = iota
	KindJulia
	KindKoch
	KindSierpinski
	KindFern
	KindTree
)

// Kinds lists every fractal in menu order.
var Kinds = []Kind{KindMandelbrot, KindJulia, KindKoch, KindSierpinski, KindFern, KindTree}

var kindNames = map[Kind]string{
	KindMandelbrot: "mandelbrot",
	KindJulia:      "julia",
	KindKoch:       "koch",
	KindSierpinski: "sierpinski",
	KindFern:       "fern",
	KindTree:       "tree",
}

// ErrUnknownKind is returned for names or digits that select no fractal.
var ErrUnknownKind = errors.New("unknown fractal")

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Interactive reports whether clicks change the rendering of k.
func (k Kind) Interactive() bool {
	switch k {
	case KindMandelbrot, KindKoch, KindSierpinski, KindTree:
		return true
	}
	return false
}

// ParseKind looks a fractal up by name, ignoring case.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownKind, name)
}

// KindFromDigit maps the menu numbers 1..6 to a Kind.
func KindFromDigit(d int) (Kind, error) {
	if d < 1 || d > len(Kinds) {
		return 0, fmt.Errorf("%w: no entry %d", ErrUnknownKind, d)
	}
	return Kinds[d-1], nil
}

var (
	// White is the default line color.
	White = colorful.Color{R: 1, G: 1, B: 1}
	// Green is the default fern color.
	Green = colorful.Color{R: 0, G: 1, B: 0}
	// Black is the background.
	Black = colorful.Color{}
)

// Params are the fixed inputs of every rendering.
type Params struct {
	Width, Height int

	MaxIterations int
	Boundary      float64
	JuliaC        complex128
	JuliaRect     PlaneRect

	KochDepth       int
	KochRadius      int
	SierpinskiDepth int
	TreeDepth       int
	FernPoints      int

	LineColor  color.Color
	FernColor  color.Color
	Background color.Color
}

// DefaultParams is an 800x600 canvas with the default depths and caps.
func DefaultParams() Params {
	return Params{
		Width:           800,
		Height:          600,
		MaxIterations:   MaxIterations,
		Boundary:        Boundary,
		JuliaC:          DefaultJuliaC,
		JuliaRect:       JuliaRect,
		KochDepth:       DefaultKochDepth,
		KochRadius:      DefaultKochRadius,
		SierpinskiDepth: DefaultSierpinskiDepth,
		TreeDepth:       DefaultTreeDepth,
		FernPoints:      DefaultFernPoints,
		LineColor:       White,
		FernColor:       Green,
		Background:      Black,
	}
}

// Renderer draws fractals onto a Surface.
type Renderer struct {
	Params
	// Rand feeds the fern. It is only read by Fern.
	Rand RandomSource
}

// NewRenderer returns a Renderer drawing the fern from src.
func NewRenderer(p Params, src RandomSource) *Renderer {
	return &Renderer{Params: p, Rand: src}
}

func (r *Renderer) field() Field {
	return Field{MaxIter: r.MaxIterations, Boundary: r.Boundary}
}

// Mandelbrot plots every pixel of the canvas in gray.
func (r *Renderer) Mandelbrot(s Surface, vp Viewport) {
	vp.Width, vp.Height = r.Width, r.Height
	for p := range r.field().Mandelbrot(vp) {
		s.Plot(p.X, p.Y, Gray(p.Count, r.MaxIterations))
	}
}

// Julia plots every pixel of the canvas in gray. It ignores any viewport.
func (r *Renderer) Julia(s Surface) {
	for p := range r.field().Julia(r.JuliaC, r.JuliaRect, r.Width, r.Height) {
		s.Plot(p.X, p.Y, Gray(p.Count, r.MaxIterations))
	}
}

// KochSnowflake draws the snowflake centered on the canvas.
func (r *Renderer) KochSnowflake(s Surface, vp Viewport) int {
	return DrawSegments(s, Snowflake(r.Width/2, r.Height/2, r.KochRadius, r.KochDepth, vp.Pan()), r.LineColor)
}

// SierpinskiTriangle returns the default triangle for the canvas.
func (r *Renderer) SierpinskiTriangle() Triangle {
	return Tri(r.Width/2, 100, 100, r.Height-100, r.Width-100, r.Height-100)
}

// Sierpinski draws the Sierpinski triangle.
func (r *Renderer) Sierpinski(s Surface, vp Viewport) int {
	return DrawSegments(s, Sierpinski(r.SierpinskiTriangle(), r.SierpinskiDepth, vp.Pan()), r.LineColor)
}

// Tree draws a tree growing straight up from the bottom middle of the
// canvas, its trunk a fifth of the canvas height.
func (r *Renderer) Tree(s Surface, vp Viewport) int {
	trunk := float64(r.Height) / 5.0
	return DrawSegments(s, Tree(r.Width/2, r.Height, trunk, math.Pi/2, r.TreeDepth, vp.Pan()), r.LineColor)
}

// Fern plots FernPoints points of a fresh fern system. Without a Rand it
// draws from the math/rand top-level source.
func (r *Renderer) Fern(s Surface) {
	src := r.Rand
	if src == nil {
		src = globalRand{}
	}
	f := NewFern(src)
	for i := 0; i < r.FernPoints; i++ {
		px := FernPixel(f.Next(), r.Width, r.Height)
		s.Plot(px.X, px.Y, r.FernColor)
	}
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Render dispatches to the renderer for k.
func (r *Renderer) Render(k Kind, s Surface, vp Viewport) error {
	switch k {
	case KindMandelbrot:
		r.Mandelbrot(s, vp)
	case KindJulia:
		r.Julia(s)
	case KindKoch:
		r.KochSnowflake(s, vp)
	case KindSierpinski:
		r.Sierpinski(s, vp)
	case KindFern:
		r.Fern(s)
	case KindTree:
		r.Tree(s, vp)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownKind, k)
	}
	return nil
}
