package spline

import (
	"io"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Plot renders planar curves, their control polygons and curvature combs.
type Plot struct {
	p *plot.Plot
	// n counts the added curves and selects their colors.
	n int
}

// NewPlot returns an empty plot with the given title.
func NewPlot(title string) *Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())
	return &Plot{p: p}
}

func xys(pts []Vec2) plotter.XYs {
	out := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		out[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return out
}

func sampleCurve(c Evaler[Vec2], opts SampleOptions) ([]Vec2, error) {
	if opts.Resolution < 2 {
		return nil, errors.Wrapf(ErrInvalidArgument, "plot resolution %d is less than 2", opts.Resolution)
	}
	pts := make([]Vec2, 0, opts.Resolution)
	for _, pt := range Samples(c, opts.Interval, opts.Resolution) {
		pts = append(pts, pt)
	}
	return pts, nil
}

// AddCurve samples c and adds it as a line. If name is not empty, the curve
// gets a legend entry.
func (p *Plot) AddCurve(name string, c Evaler[Vec2], opts SampleOptions) error {
	pts, err := sampleCurve(c, opts)
	if err != nil {
		return err
	}
	l, err := plotter.NewLine(xys(pts))
	if err != nil {
		return errors.Wrap(err, "couldn't create line")
	}
	l.LineStyle.Width = vg.Points(1.5)
	l.LineStyle.Color = plotutil.Color(p.n)
	p.n++
	p.p.Add(l)
	if name != "" {
		p.p.Legend.Add(name, l)
	}
	return nil
}

// AddControlPolygon adds the polyline through pts, with a marker at every
// point.
func (p *Plot) AddControlPolygon(pts []Vec2) error {
	l, s, err := plotter.NewLinePoints(xys(pts))
	if err != nil {
		return errors.Wrap(err, "couldn't create control polygon")
	}
	l.LineStyle.Dashes = plotutil.Dashes(1)
	l.LineStyle.Color = plotutil.DarkColors[len(plotutil.DarkColors)-1]
	s.GlyphStyle.Shape = draw.BoxGlyph{}
	p.p.Add(l, s)
	return nil
}

// AddCurvatureComb adds a curvature comb: at every sample, a tooth
// perpendicular to the curve whose length is scale times the signed curvature.
// The teeth of a comb point away from the center of curvature.
func (p *Plot) AddCurvatureComb(c interface {
	Evaler[Vec2]
	Deriver[Vec2]
	SecondDeriver[Vec2]
}, opts SampleOptions, scale float64) error {
	if opts.Resolution < 2 {
		return errors.Wrapf(ErrInvalidArgument, "plot resolution %d is less than 2", opts.Resolution)
	}
	tips := make([]Vec2, 0, opts.Resolution)
	for t, pt := range Samples[Vec2](c, opts.Interval, opts.Resolution) {
		tip := pt.Sub(Normal2(c, t).Mul(Curvature2(c, t) * scale))
		tips = append(tips, tip)
		tooth, err := plotter.NewLine(xys([]Vec2{pt, tip}))
		if err != nil {
			return errors.Wrap(err, "couldn't create comb tooth")
		}
		tooth.LineStyle.Width = vg.Points(0.5)
		tooth.LineStyle.Color = plotutil.SoftColors[2]
		p.p.Add(tooth)
	}
	env, err := plotter.NewLine(xys(tips))
	if err != nil {
		return errors.Wrap(err, "couldn't create comb envelope")
	}
	env.LineStyle.Color = plotutil.SoftColors[2]
	p.p.Add(env)
	return nil
}

// Save writes the plot to file. The format is determined by the file's
// extension, as supported by gonum.org/v1/plot (svg, pdf, png, …).
func (p *Plot) Save(width, height vg.Length, file string) error {
	return errors.Wrapf(p.p.Save(width, height, file), "couldn't save plot to %s", file)
}

// Render writes the plot to w in the given format, such as "svg" or "png".
func (p *Plot) Render(w io.Writer, width, height vg.Length, format string) error {
	wt, err := p.p.WriterTo(width, height, format)
	if err != nil {
		return errors.Wrapf(err, "unsupported plot format %q", format)
	}
	_, err = wt.WriteTo(w)
	return errors.Wrap(err, "couldn't write plot")
}
