package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fieldkit/curve"
)

func newPointCmd(flags *rootFlags) *cobra.Command {
	var value float64

	cmd := &cobra.Command{
		Use:   "point",
		Short: "Print the point for a normalized value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if math.IsNaN(value) || value < 0 || value > 1 {
				return fmt.Errorf("--value must be between 0 and 1, got %v", value)
			}
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			pt := s.samples.PointForValue(value)
			fmt.Fprintf(cmd.OutOrStdout(), "%.4f,%.4f\n", pt.X, pt.Y)
			return nil
		},
	}

	cmd.Flags().Float64Var(&value, "value", 0, "Normalized value in [0, 1]")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newValueCmd(flags *rootFlags) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "value",
		Short: "Print the normalized value of the sample nearest to a point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pt, err := parsePoint(at)
			if err != nil {
				return fmt.Errorf("invalid --at: %w", err)
			}
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", s.samples.ValueForPoint(pt))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Point as x,y")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

// parsePoint parses "x,y".
func parsePoint(s string) (curve.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return curve.Point{}, errors.New("want x,y")
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return curve.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return curve.Point{}, err
	}
	return curve.Pt(x, y), nil
}
