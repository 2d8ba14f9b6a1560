package fractals

import (
	"image"
	"image/color"
	"iter"

	"github.com/fogleman/gg"
)

// Surface is what the renderers draw on. Coordinates are not clipped;
// implementations deal with out of bounds pixels.
type Surface interface {
	Plot(x, y int, c color.Color)
	Line(x1, y1, x2, y2 int, c color.Color)
}

// Context is my abstraction for gg
type Context struct {
	ctx *gg.Context
}

var _ Surface = (*Context)(nil)

// NewContext makes a width x height raster.
func NewContext(width, height int) *Context {
	ctx := &Context{ctx: gg.NewContext(width, height)}
	ctx.ctx.SetLineWidth(1)
	return ctx
}

func (ctx *Context) Width() int  { return ctx.ctx.Width() }
func (ctx *Context) Height() int { return ctx.ctx.Height() }

// Clear fills the whole raster with col.
func (ctx *Context) Clear(col color.Color) {
	ctx.ctx.SetColor(col)
	ctx.ctx.Clear()
}

// Plot sets one pixel. gg ignores pixels outside the raster.
func (ctx *Context) Plot(x, y int, c color.Color) {
	ctx.ctx.SetColor(c)
	ctx.ctx.SetPixel(x, y)
}

// Line strokes a one pixel wide line through the pixel centers.
func (ctx *Context) Line(x1, y1, x2, y2 int, c color.Color) {
	ctx.ctx.SetColor(c)
	ctx.ctx.DrawLine(float64(x1)+0.5, float64(y1)+0.5, float64(x2)+0.5, float64(y2)+0.5)
	ctx.ctx.Stroke()
}

// Image is the raster drawn so far.
func (ctx *Context) Image() image.Image {
	return ctx.ctx.Image()
}

// DrawSegments draws every segment of seq in col and returns how many
// were drawn.
func DrawSegments(s Surface, seq iter.Seq[Segment], col color.Color) int {
	n := 0
	for seg := range seq {
		s.Line(seg.P1.X, seg.P1.Y, seg.P2.X, seg.P2.Y, col)
		n++
	}
	return n
}
