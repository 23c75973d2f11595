package main

import (
	"encoding/csv"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	pointsLimit int

	pointsCmd = &cobra.Command{
		Use:   "points",
		Short: "Write the circle points as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			circle, err := circleFromFlags()
			if err != nil {
				return err
			}

			w := csv.NewWriter(cmd.OutOrStdout())
			if err := w.Write([]string{"x", "y"}); err != nil {
				return errors.Wrap(err, "write header")
			}

			limit := circle.Len()
			if pointsLimit > 0 && pointsLimit < limit {
				limit = pointsLimit
			}
			it := circle.Points()
			for n := 0; n < limit; n++ {
				p, ok := it.Next()
				if !ok {
					break
				}
				rec := []string{
					strconv.FormatFloat(p.X, 'f', -1, 64),
					strconv.FormatFloat(p.Y, 'f', -1, 64),
				}
				if err := w.Write(rec); err != nil {
					return errors.Wrapf(err, "write point %d", n)
				}
			}
			w.Flush()
			return errors.Wrap(w.Error(), "flush csv")
		},
	}
)

func init() {
	pointsCmd.Flags().IntVar(&pointsLimit, "limit", 0, "only write the first N points (0 = all)")
}
