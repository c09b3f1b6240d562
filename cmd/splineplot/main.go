// Command splineplot renders a planar spline, its control polygon and
// optionally its curvature comb to an image file.
//
// Usage:
//
//	splineplot [options] <output>
//
// The output format is picked by the file extension (svg, pdf, png, …).
package main

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/tdewolff/argp"
	"gonum.org/v1/plot/vg"
	"honnef.co/go/spline"
)

var logger = log.New(os.Stderr, "splineplot: ", 0)

type Options struct {
	Kind    string  `short:"k" default:"bspline" desc:"Curve kind: bspline, nurbs, catmullrom or bezier"`
	Points  string  `short:"p" desc:"Control points as space-separated x,y pairs"`
	Knots   string  `desc:"Knot vector as comma-separated values, uniform if empty"`
	Weights string  `short:"w" desc:"NURBS weights as comma-separated values, all 1 if empty"`
	Degree  int     `short:"d" default:"3" desc:"B-spline degree"`
	Open    bool    `default:"true" desc:"Clamp uniform knot vectors to the end points"`
	Samples int     `short:"n" default:"200" desc:"Number of samples per curve"`
	Comb    float64 `desc:"Curvature comb scale, 0 to disable"`
	Size    float64 `default:"12" desc:"Image width and height in centimeters"`
	Output  string  `index:"0" desc:"Output filename"`
}

func main() {
	opts := &Options{Points: "0,0 1,2 3,2 4,0 6,1"}
	cmd := argp.NewCmd(opts, "Render a planar spline to an image file")
	cmd.Error = logger
	cmd.Parse()
}

func (o *Options) config() (curveConfig, error) {
	points, err := parsePoints(o.Points)
	if err != nil {
		return curveConfig{}, errors.Wrap(err, "points")
	}
	cfg := curveConfig{
		kind:   o.Kind,
		points: points,
		degree: o.Degree,
		open:   o.Open,
	}
	if o.Knots != "" {
		if cfg.knots, err = parseFloats(o.Knots); err != nil {
			return curveConfig{}, errors.Wrap(err, "knots")
		}
	}
	if o.Weights != "" {
		if cfg.weights, err = parseFloats(o.Weights); err != nil {
			return curveConfig{}, errors.Wrap(err, "weights")
		}
	}
	return cfg, nil
}

func (o *Options) Run() error {
	if o.Output == "" {
		return argp.ShowUsage
	}
	cfg, err := o.config()
	if err != nil {
		return err
	}
	c, err := cfg.build()
	if err != nil {
		return err
	}

	sopts := spline.SampleOptions{Resolution: o.Samples, Interval: spline.UnitInterval}
	p := spline.NewPlot(o.Kind)
	if err := p.AddControlPolygon(cfg.points); err != nil {
		return err
	}
	if err := p.AddCurve(o.Kind, c, sopts); err != nil {
		return err
	}
	if o.Comb != 0 {
		if err := p.AddCurvatureComb(c, sopts, o.Comb); err != nil {
			return err
		}
	}

	length := spline.ArcLength[spline.Vec2](c, spline.UnitInterval, o.Samples)
	logger.Printf("%s of degree %d, arc length ≈ %g", o.Kind, c.Degree(), length)

	w := vg.Length(o.Size) * vg.Centimeter
	return p.Save(w, w, o.Output)
}
