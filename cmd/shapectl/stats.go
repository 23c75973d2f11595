package main

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"tcanvas/canvas"
)

// circleStats summarizes how closely a point sequence follows a circle around the origin.
type circleStats struct {
	Count        int
	RadiusMean   float64
	RadiusStdDev float64
	RadiusMin    float64
	RadiusMax    float64
	// StepMean and StepStdDev are the angular distance between consecutive points, in degrees.
	StepMean   float64
	StepStdDev float64
}

func measure(pts []canvas.Coordinate) (circleStats, error) {
	var s circleStats
	s.Count = len(pts)
	if len(pts) == 0 {
		return s, errors.New("no points")
	}

	radii := make(stats.Float64Data, len(pts))
	for i, p := range pts {
		radii[i] = p.Radius()
	}

	steps := make(stats.Float64Data, 0, len(pts))
	for i := 0; i+1 < len(pts); i++ {
		d := pts[i+1].Angle() - pts[i].Angle()
		d = math.Mod(d+3*math.Pi, 2*math.Pi) - math.Pi
		steps = append(steps, d*180/math.Pi)
	}

	var err error
	if s.RadiusMean, err = radii.Mean(); err != nil {
		return s, errors.Wrap(err, "radius mean")
	}
	if s.RadiusStdDev, err = radii.StandardDeviation(); err != nil {
		return s, errors.Wrap(err, "radius stddev")
	}
	if s.RadiusMin, err = radii.Min(); err != nil {
		return s, errors.Wrap(err, "radius min")
	}
	if s.RadiusMax, err = radii.Max(); err != nil {
		return s, errors.Wrap(err, "radius max")
	}
	if len(steps) > 0 {
		if s.StepMean, err = steps.Mean(); err != nil {
			return s, errors.Wrap(err, "step mean")
		}
		if s.StepStdDev, err = steps.StandardDeviation(); err != nil {
			return s, errors.Wrap(err, "step stddev")
		}
	}
	return s, nil
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Measure the radius and angular spacing of the circle points",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := measure(canvas.Collect(canvas.DefaultCircle().Points()))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "points:        %d\n", s.Count)
		fmt.Fprintf(out, "radius mean:   %.6f\n", s.RadiusMean)
		fmt.Fprintf(out, "radius stddev: %.6f\n", s.RadiusStdDev)
		fmt.Fprintf(out, "radius range:  [%.6f, %.6f]\n", s.RadiusMin, s.RadiusMax)
		fmt.Fprintf(out, "step mean:     %.6f deg\n", s.StepMean)
		fmt.Fprintf(out, "step stddev:   %.6f deg\n", s.StepStdDev)
		return nil
	},
}
