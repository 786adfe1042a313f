package geomap

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/Hans4yu/commerce-insights/internal/analytics"
)

// ExportFilename is the fixed download name for the rendered map.
const ExportFilename = "brazil_customer_distribution.png"

const exportDPI = 300

// Palette matches the dashboard's geographic color scheme:
// #003f5c #2f4b7c #665191 #a05195 #d45087 #f95d6a #ff7c43 #ffa600
var Palette = []color.Color{
	color.RGBA{R: 0x00, G: 0x3f, B: 0x5c, A: 0xff},
	color.RGBA{R: 0x2f, G: 0x4b, B: 0x7c, A: 0xff},
	color.RGBA{R: 0x66, G: 0x51, B: 0x91, A: 0xff},
	color.RGBA{R: 0xa0, G: 0x51, B: 0x95, A: 0xff},
	color.RGBA{R: 0xd4, G: 0x50, B: 0x87, A: 0xff},
	color.RGBA{R: 0xf9, G: 0x5d, B: 0x6a, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7c, B: 0x43, A: 0xff},
	color.RGBA{R: 0xff, G: 0xa6, B: 0x00, A: 0xff},
}

// RenderPNG draws the bucketed customer points over the country outline and
// returns the encoded image: black background, fixed 300 DPI.
func RenderPNG(points []analytics.BucketedPoint, boundary Boundary) ([]byte, error) {
	p := plot.New()
	p.BackgroundColor = color.Black
	p.Title.Text = "Customer Distribution in Brazil"
	p.Title.TextStyle.Color = color.White
	p.HideAxes()

	for _, ring := range boundary.Rings {
		xys := make(plotter.XYs, len(ring))
		for i, pt := range ring {
			xys[i].X = pt.Lng
			xys[i].Y = pt.Lat
		}
		outline, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("failed to build boundary outline: %w", err)
		}
		outline.LineStyle.Color = color.White
		outline.LineStyle.Width = vg.Points(1)
		p.Add(outline)
	}

	buckets := make(map[int]plotter.XYs)
	labels := make(map[int]string)
	var order []int
	for _, pt := range points {
		if _, ok := buckets[pt.ColorGroup]; !ok {
			order = append(order, pt.ColorGroup)
			labels[pt.ColorGroup] = pt.State
		}
		buckets[pt.ColorGroup] = append(buckets[pt.ColorGroup], plotter.XY{X: pt.Lng, Y: pt.Lat})
	}

	for _, group := range order {
		scatter, err := plotter.NewScatter(buckets[group])
		if err != nil {
			return nil, fmt.Errorf("failed to build scatter for group %d: %w", group, err)
		}
		scatter.GlyphStyle.Color = Palette[group%len(Palette)]
		scatter.GlyphStyle.Radius = vg.Points(1.5)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
		p.Legend.Add(labels[group], scatter)
	}
	p.Legend.TextStyle.Color = color.White
	p.Legend.Top = true

	setViewLimits(p, points)

	canvas := vgimg.NewWith(
		vgimg.UseWH(12*vg.Inch, 15*vg.Inch),
		vgimg.UseDPI(exportDPI),
		vgimg.UseBackgroundColor(color.Black),
	)
	p.Draw(draw.New(canvas))

	var buf bytes.Buffer
	pngCanvas := vgimg.PngCanvas{Canvas: canvas}
	if _, err := pngCanvas.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// View follows the data bounds with two degrees of padding, falling back to
// the boundary extent when there are no points.
func setViewLimits(p *plot.Plot, points []analytics.BucketedPoint) {
	if len(points) == 0 {
		return
	}

	minX, maxX := points[0].Lng, points[0].Lng
	minY, maxY := points[0].Lat, points[0].Lat
	for _, pt := range points[1:] {
		if pt.Lng < minX {
			minX = pt.Lng
		}
		if pt.Lng > maxX {
			maxX = pt.Lng
		}
		if pt.Lat < minY {
			minY = pt.Lat
		}
		if pt.Lat > maxY {
			maxY = pt.Lat
		}
	}

	const padding = 2
	p.X.Min, p.X.Max = minX-padding, maxX+padding
	p.Y.Min, p.Y.Max = minY-padding, maxY+padding
}
