package fractals

import (
	"testing"
)

func TestEscapeCountKnownPoints(t *testing.T) {
	tests := []struct {
		name  string
		c, z0 complex128
		want  int
	}{
		{"origin never escapes", 0, 0, 100},
		{"far point escapes at once", complex(2, 2), complex(2, 2), 0},
		{"on the boundary counts as escaped", complex(2, 0), complex(2, 0), 0},
		{"c=1 leaves after one step", 1, 1, 1},
		{"c=-1 cycles", -1, -1, 100},
		{"julia start outside disk", DefaultJuliaC, complex(0, 3), 0},
	}
	for _, tt := range tests {
		if got := EscapeCount(tt.c, tt.z0, 100, 2.0); got != tt.want {
			t.Errorf("%s: EscapeCount(%v, %v) = %d, want %d", tt.name, tt.c, tt.z0, got, tt.want)
		}
	}
}

func TestEscapeCountMonotonicAndBounded(t *testing.T) {
	vp := Viewport{Scale: 0.9, Width: 40, Height: 30}
	for x := 0; x < vp.Width; x++ {
		for y := 0; y < vp.Height; y++ {
			c := vp.ToPlane(x, y)
			prev := 0
			for maxIter := 0; maxIter <= 60; maxIter += 5 {
				n := EscapeCount(c, c, maxIter, Boundary)
				if n < 0 || n > maxIter {
					t.Fatalf("EscapeCount(%v, maxIter=%d) = %d out of range", c, maxIter, n)
				}
				if n < prev {
					t.Fatalf("EscapeCount(%v) dropped from %d to %d at maxIter=%d", c, prev, n, maxIter)
				}
				prev = n
			}
		}
	}
}

func TestIntensity(t *testing.T) {
	tests := []struct {
		count, maxIter int
		want           uint8
	}{
		{0, 100, 0},
		{1, 100, 3}, // 2.55 rounds up
		{50, 100, 128},
		{100, 100, 255},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := Intensity(tt.count, tt.maxIter); got != tt.want {
			t.Errorf("Intensity(%d, %d) = %d, want %d", tt.count, tt.maxIter, got, tt.want)
		}
	}
	g := Gray(100, 100)
	if g.R != 255 || g.G != 255 || g.B != 255 || g.A != 255 {
		t.Errorf("Gray(100, 100) = %v, want opaque white", g)
	}
}

func TestFieldScanOrder(t *testing.T) {
	vp := Viewport{Scale: 1, Width: 3, Height: 2}
	var got [][2]int
	for p := range DefaultField.Mandelbrot(vp) {
		got = append(got, [2]int{p.X, p.Y})
	}
	want := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}}
	if len(got) != len(want) {
		t.Fatalf("got %d pixels, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pixel %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFieldJuliaUsesRect(t *testing.T) {
	f := Field{MaxIter: 50, Boundary: 2}
	// The corner (-2, -1.5) lies outside the escape disk.
	for p := range f.Julia(DefaultJuliaC, JuliaRect, 8, 6) {
		if p.X == 0 && p.Y == 0 && p.Count != 0 {
			t.Errorf("corner count = %d, want 0", p.Count)
		}
		want := EscapeCount(DefaultJuliaC, JuliaRect.ToPlane(p.X, p.Y, 8, 6), 50, 2)
		if p.Count != want {
			t.Errorf("pixel (%d, %d) = %d, want %d", p.X, p.Y, p.Count, want)
		}
	}
}

func TestFieldStopsEarly(t *testing.T) {
	n := 0
	for range DefaultField.Mandelbrot(NewViewport(100, 100)) {
		n++
		if n == 10 {
			break
		}
	}
	if n != 10 {
		t.Errorf("got %d pixels before break, want 10", n)
	}
}
