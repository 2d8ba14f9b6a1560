package fractals

import (
	"errors"
	"image/color"
	"math/rand"
	"testing"
)

// recorder is a Surface that counts what is drawn on it.
type recorder struct {
	plots   int
	lines   int
	colors  map[color.Color]int
	first   []Segment
	nonGray int
}

func newRecorder() *recorder {
	return &recorder{colors: map[color.Color]int{}}
}

func (r *recorder) Plot(x, y int, c color.Color) {
	r.plots++
	r.colors[c]++
	if rgba, ok := c.(color.RGBA); !ok || rgba.R != rgba.G || rgba.G != rgba.B {
		r.nonGray++
	}
	if len(r.first) < 3 {
		r.first = append(r.first, Seg(x, y, x, y))
	}
}

func (r *recorder) Line(x1, y1, x2, y2 int, c color.Color) {
	r.lines++
	r.colors[c]++
}

func TestRenderMandelbrot(t *testing.T) {
	r := NewRenderer(DefaultParams(), nil)
	rec := newRecorder()
	r.Mandelbrot(rec, NewViewport(800, 600))
	if rec.plots != 480000 {
		t.Errorf("got %d plots, want 480000", rec.plots)
	}
	if rec.nonGray != 0 {
		t.Errorf("%d plots were not gray", rec.nonGray)
	}
	if rec.lines != 0 {
		t.Errorf("got %d lines, want none", rec.lines)
	}
	// Column-major scan.
	if rec.first[1] != Seg(0, 1, 0, 1) {
		t.Errorf("second plot at %v, want (0,1)", rec.first[1].P1)
	}
}

func TestRenderMandelbrotCenterIsInterior(t *testing.T) {
	p := DefaultParams()
	p.Width, p.Height = 8, 6
	ctx := NewContext(p.Width, p.Height)
	NewRenderer(p, nil).Mandelbrot(ctx, NewViewport(p.Width, p.Height))
	// Pixel (4,3) is the plane origin, which never escapes.
	if got := ctx.Image().At(4, 3); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("center pixel = %v, want white", got)
	}
}

func TestRenderJulia(t *testing.T) {
	p := DefaultParams()
	p.Width, p.Height = 80, 60
	rec := newRecorder()
	NewRenderer(p, nil).Julia(rec)
	if rec.plots != 80*60 || rec.nonGray != 0 {
		t.Errorf("got %d plots (%d not gray), want %d gray", rec.plots, rec.nonGray, 80*60)
	}
}

func TestRenderCurves(t *testing.T) {
	r := NewRenderer(DefaultParams(), nil)
	vp := NewViewport(800, 600)
	tests := []struct {
		name string
		draw func(Surface) int
		want int
	}{
		{"koch", func(s Surface) int { return r.KochSnowflake(s, vp) }, 3 * 1024},
		{"sierpinski", func(s Surface) int { return r.Sierpinski(s, vp) }, 3 * 729},
		{"tree", func(s Surface) int { return r.Tree(s, vp) }, 1023},
	}
	for _, tt := range tests {
		rec := newRecorder()
		if n := tt.draw(rec); n != tt.want || rec.lines != tt.want {
			t.Errorf("%s: drew %d lines (reported %d), want %d", tt.name, rec.lines, n, tt.want)
		}
		if rec.colors[White] != tt.want {
			t.Errorf("%s: %d lines in white, want all", tt.name, rec.colors[White])
		}
	}
}

func TestRenderFern(t *testing.T) {
	r := NewRenderer(DefaultParams(), rand.New(rand.NewSource(1)))
	rec := newRecorder()
	r.Fern(rec)
	if rec.plots != DefaultFernPoints {
		t.Errorf("got %d plots, want %d", rec.plots, DefaultFernPoints)
	}
	if rec.colors[Green] != DefaultFernPoints {
		t.Errorf("%d plots in green, want all", rec.colors[Green])
	}
}

func TestRenderDispatch(t *testing.T) {
	p := DefaultParams()
	p.Width, p.Height = 40, 30
	p.FernPoints = 10
	r := NewRenderer(p, rand.New(rand.NewSource(1)))
	for _, k := range Kinds {
		rec := newRecorder()
		if err := r.Render(k, rec, NewViewport(p.Width, p.Height)); err != nil {
			t.Errorf("Render(%v) failed: %v", k, err)
		}
		if rec.plots+rec.lines == 0 {
			t.Errorf("Render(%v) drew nothing", k)
		}
	}
	if err := r.Render(Kind(42), newRecorder(), NewViewport(40, 30)); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Render(Kind(42)) = %v, want ErrUnknownKind", err)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if got, err := ParseKind(" Mandelbrot "); err != nil || got != KindMandelbrot {
		t.Errorf("ParseKind is not case-insensitive: %v, %v", got, err)
	}
	if _, err := ParseKind("dragon"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(dragon) = %v, want ErrUnknownKind", err)
	}
}

func TestKindFromDigit(t *testing.T) {
	tests := []struct {
		d    int
		want Kind
		ok   bool
	}{
		{1, KindMandelbrot, true},
		{3, KindKoch, true},
		{6, KindTree, true},
		{0, 0, false},
		{7, 0, false},
	}
	for _, tt := range tests {
		got, err := KindFromDigit(tt.d)
		if (err == nil) != tt.ok || (tt.ok && got != tt.want) {
			t.Errorf("KindFromDigit(%d) = %v, %v", tt.d, got, err)
		}
	}
}
