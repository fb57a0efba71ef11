package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gordonklaus/persona"
)

// A Canvas rasterizes frames into an RGBA image.  Its buffers are reused
// across frames; a Canvas is not safe for concurrent use.
type Canvas struct {
	Sampler     *persona.Sampler
	Rand        persona.Rand
	MaxPartials int

	img    *image.RGBA
	z      *vector.Rasterizer
	pts    []Point
	specks []Speck
}

func NewCanvas(w, h int, sampler *persona.Sampler, r persona.Rand) *Canvas {
	return &Canvas{
		Sampler:     sampler,
		Rand:        r,
		MaxPartials: sampler.Stages.MaxPartials(),
		img:         image.NewRGBA(image.Rect(0, 0, w, h)),
		z:           vector.NewRasterizer(w, h),
	}
}

func (c *Canvas) Image() *image.RGBA { return c.img }

// Resize reallocates the canvas if the size changed.
func (c *Canvas) Resize(w, h int) {
	if b := c.img.Bounds(); b.Dx() == w && b.Dy() == h {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
	c.z.Reset(w, h)
}

// Draw renders frame f at time t with settings s.
func (c *Canvas) Draw(f *persona.VisualFrame, s Settings, t float64) *image.RGBA {
	b := c.img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	c.background()

	lines, gc, gw := Grid(s, w, h)
	c.begin()
	for _, l := range lines {
		c.segment(float32(l.X0), float32(l.Y0), float32(l.X1), float32(l.Y1), float32(gw/2))
	}
	c.fill(gc)

	st := Layout(f, s, c.MaxPartials, w, h, t)
	for i, l := range st.Lines {
		c.pts = st.Polyline(c.pts[:0], i, c.Sampler, f, s.Entropy, w, t)
		glow := float32(st.LineWidth + 0.3*l.ShadowBlur)
		c.stroke(c.pts, glow/2)
		c.fill(st.Color.RGBA(0.15 * l.Alpha))
		c.stroke(c.pts, float32(st.LineWidth/2))
		c.fill(st.Color.RGBA(l.Alpha))
	}

	var alpha float64
	c.specks, alpha = Noise(c.specks, s, c.Rand, w, h)
	if len(c.specks) > 0 {
		c.begin()
		for _, p := range c.specks {
			x, y, r := float32(p.X), float32(p.Y), float32(p.Size/2)
			c.z.MoveTo(x-r, y-r)
			c.z.LineTo(x+r, y-r)
			c.z.LineTo(x+r, y+r)
			c.z.LineTo(x-r, y+r)
			c.z.ClosePath()
		}
		c.fill(color.NRGBA{R: 255, G: 255, B: 255, A: byteOf(alpha)})
	}
	return c.img
}

func (c *Canvas) background() {
	b := c.img.Bounds()
	h := float64(b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		col := Background(float64(y-b.Min.Y) / h)
		row := c.img.Pix[c.img.PixOffset(b.Min.X, y):c.img.PixOffset(b.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			row[i], row[i+1], row[i+2], row[i+3] = col.R, col.G, col.B, 255
		}
	}
}

func (c *Canvas) begin() {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
}

func (c *Canvas) fill(col color.NRGBA) {
	c.z.DrawOp = draw.Over
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// stroke adds a polyline of half-width r to a fresh path.
func (c *Canvas) stroke(pts []Point, r float32) {
	c.begin()
	for i := 1; i < len(pts); i++ {
		c.segment(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, r)
	}
}

// segment adds a quad covering the line from (x0,y0) to (x1,y1).  Every quad
// winds the same way relative to its direction so overlaps never cancel.
func (c *Canvas) segment(x0, y0, x1, y1, r float32) {
	dx, dy := x1-x0, y1-y0
	d := float32(math.Hypot(float64(dx), float64(dy)))
	if d == 0 {
		return
	}
	// extend each end by r so joints are covered
	ux, uy := dx/d*r, dy/d*r
	x0, y0, x1, y1 = x0-ux, y0-uy, x1+ux, y1+uy
	nx, ny := -uy, ux
	c.z.MoveTo(x0+nx, y0+ny)
	c.z.LineTo(x1+nx, y1+ny)
	c.z.LineTo(x1-nx, y1-ny)
	c.z.LineTo(x0-nx, y0-ny)
	c.z.ClosePath()
}
