package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gobeam/internal/statics"
)

// ExportMomentDiagram writes the bending-moment diagram to an image file.
// Key points are marked and labeled; loadPositions get dashed vertical
// markers. The file format follows the extension (png, svg, pdf); an
// unknown extension falls back to png.
func ExportMomentDiagram(field statics.MomentField, keyPoints []KeyPoint, loadPositions []float64, filename string) error {
	p := plot.New()
	p.Title.Text = "Bending Moment Diagram"
	p.X.Label.Text = "Distance x (m)"
	p.Y.Label.Text = "Bending Moment M (kN-m)"

	// Moment curve
	curve := make(plotter.XYs, len(field))
	for i, s := range field {
		curve[i] = plotter.XY{X: s.X, Y: s.M}
	}
	momentLine, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	momentLine.LineStyle.Width = vg.Points(2)
	momentLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 205, A: 255}
	p.Add(momentLine)

	// Zero-moment reference axis
	if len(field) > 0 {
		zeroLine, err := plotter.NewLine(plotter.XYs{
			{X: field[0].X, Y: 0},
			{X: field[len(field)-1].X, Y: 0},
		})
		if err != nil {
			return err
		}
		zeroLine.LineStyle.Width = vg.Points(1)
		zeroLine.LineStyle.Color = color.Gray{Y: 128}
		p.Add(zeroLine)
	}

	// Load position markers
	minM, maxM := fieldRange(field)
	for _, a := range loadPositions {
		loadLine, err := plotter.NewLine(plotter.XYs{
			{X: a, Y: minM},
			{X: a, Y: maxM},
		})
		if err != nil {
			return err
		}
		loadLine.LineStyle.Color = color.Gray{Y: 64}
		loadLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(loadLine)
	}

	// Key points with labels
	if len(keyPoints) > 0 {
		pts := make(plotter.XYs, len(keyPoints))
		labels := make([]string, len(keyPoints))
		for i, kp := range keyPoints {
			pts[i] = plotter.XY{X: kp.X, Y: kp.M}
			labels[i] = kp.Label
		}

		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		scatter.GlyphStyle.Radius = vg.Points(4)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)

		l, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: labels})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	width := 10 * vg.Inch
	height := 6 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

func fieldRange(field statics.MomentField) (minM, maxM float64) {
	for i, s := range field {
		if i == 0 || s.M < minM {
			minM = s.M
		}
		if i == 0 || s.M > maxM {
			maxM = s.M
		}
	}
	return minM, maxM
}
