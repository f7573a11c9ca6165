// Package cursorimg provides cursor shapes for the command-line tools.
package cursorimg

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/dyncursor/geom"
	"github.com/gogpu/dyncursor/render"
)

// DefaultSize is the edge length of the built-in arrow in pixels.
const DefaultSize = 24

// arrow is the outline of a left-pointing arrow in a 24x24 cell, tip at (2,2).
var arrow = []geom.Point{
	{X: 2, Y: 2},
	{X: 2, Y: 19},
	{X: 6.5, Y: 15},
	{X: 9.5, Y: 21.5},
	{X: 12.5, Y: 20},
	{X: 9.5, Y: 13.5},
	{X: 15.5, Y: 13.5},
}

// Arrow rasterizes the built-in arrow at the given scale. The hotspot is the
// arrow tip in logical units.
func Arrow(scale float64) render.CursorImage {
	if scale <= 0 {
		scale = 1
	}
	size := int(DefaultSize*scale + 0.5)
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	// Outline first, then the body shrunk toward its centroid.
	fill(img, arrow, scale, 1, color.RGBA{A: 0xff})
	fill(img, arrow, scale, 0.72, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

	return render.CursorImage{
		Image:   img,
		Size:    geom.Pt(float64(size), float64(size)),
		Scale:   scale,
		Hotspot: arrow[0],
	}
}

func fill(dst draw.Image, outline []geom.Point, scale, shrink float64, c color.Color) {
	var center geom.Point
	for _, p := range outline {
		center = center.Add(p)
	}
	center = center.Div(float64(len(outline)))

	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	for i, p := range outline {
		p = center.Add(p.Sub(center).Mul(shrink)).Mul(scale)
		if i == 0 {
			r.MoveTo(float32(p.X), float32(p.Y))
			continue
		}
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()
	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// Load reads a PNG cursor image from path.
func Load(path string, hotspot geom.Point, scale float64) (render.CursorImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return render.CursorImage{}, fmt.Errorf("cursorimg: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return render.CursorImage{}, fmt.Errorf("cursorimg: decode %s: %w", path, err)
	}

	c := render.NewCursorImage(img, hotspot)
	if scale > 0 {
		c.Scale = scale
	}
	return c, nil
}
