package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type sampleReport struct {
	Path     string        `yaml:"path"`
	Segments int           `yaml:"segments"`
	Length   float64       `yaml:"length"`
	Samples  []samplePoint `yaml:"samples"`
}

type samplePoint struct {
	Index int     `yaml:"index"`
	Value float64 `yaml:"value"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

func newSampleCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Print the samples of a path as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			return runSample(cmd, s)
		},
	}
}

func runSample(cmd *cobra.Command, s *session) error {
	report := sampleReport{
		Path:     s.name,
		Segments: s.segments,
		Length:   s.measured.Length(),
		Samples:  make([]samplePoint, 0, s.samples.Len()),
	}
	for i, pt := range s.samples.All() {
		report.Samples = append(report.Samples, samplePoint{Index: i, Value: s.value(i), X: pt.X, Y: pt.Y})
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}
	return enc.Close()
}
