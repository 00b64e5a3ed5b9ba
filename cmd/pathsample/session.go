package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldkit/curve"
	"github.com/fieldkit/curve/internal/config"
	"github.com/fieldkit/curve/internal/logger"
	"github.com/fieldkit/curve/internal/shapes"
)

// session is the state shared by the commands: the configuration, the
// logger, and the selected path with its samples.
type session struct {
	cfg *config.Config
	log *logger.Logger

	name     string
	path     curve.BezPath
	measured *curve.MeasuredPath
	segments int
	samples  curve.Samples
}

func loadConfig(flags *rootFlags) (*config.Config, error) {
	if flags.configPath == "" {
		cfg := config.Default()
		return &cfg, nil
	}
	return config.Load(flags.configPath)
}

func newLogger(cmd *cobra.Command, cfg *config.Config, flags *rootFlags) (*logger.Logger, error) {
	level := cfg.Log.Level
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.Human,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log, nil
}

// newSession loads the configuration and samples the path selected by the
// flags.
func newSession(cmd *cobra.Command, flags *rootFlags) (*session, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cmd, cfg, flags)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, log: log}
	if err := s.selectPath(flags); err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("segments") {
		if flags.segments < 1 {
			return nil, fmt.Errorf("--segments must be at least 1, got %d", flags.segments)
		}
		s.segments = flags.segments
	}

	s.measured = s.path.Measure(cfg.Accuracy)
	s.samples = curve.NewSamples(s.measured, s.segments)
	s.log.WithFields(map[string]any{
		"path":     s.name,
		"segments": s.segments,
		"length":   s.measured.Length(),
	}).Debug("sampled path")
	return s, nil
}

func (s *session) selectPath(flags *rootFlags) error {
	n := 0
	for _, v := range []string{flags.shape, flags.svg, flags.path} {
		if v != "" {
			n++
		}
	}
	switch n {
	case 0:
		return errors.New("no path selected; use --shape, --svg or --path")
	case 1:
	default:
		return errors.New("--shape, --svg and --path are mutually exclusive")
	}

	s.segments = s.cfg.Segments
	switch {
	case flags.shape != "":
		p, err := shapes.Path(flags.shape, s.cfg.Tolerance)
		if err != nil {
			return fmt.Errorf("%w (available: %v)", err, shapes.Names())
		}
		s.name, s.path = flags.shape, p
	case flags.svg != "":
		p, err := curve.ParseSVG(flags.svg)
		if err != nil {
			return fmt.Errorf("invalid --svg: %w", err)
		}
		s.name, s.path = "svg", p
	default:
		if flags.configPath == "" {
			return errors.New("--path requires --config")
		}
		pc, ok := s.cfg.Path(flags.path)
		if !ok {
			return fmt.Errorf("no path named %q in %s", flags.path, flags.configPath)
		}
		p, err := pc.Build(s.cfg.Tolerance)
		if err != nil {
			return err
		}
		s.name, s.path = pc.Name, p
		s.segments = s.cfg.SegmentsFor(pc)
	}
	if len(s.path) == 0 {
		return fmt.Errorf("path %q is empty", s.name)
	}
	return nil
}

// value returns the normalized value of the sample with index i.
func (s *session) value(i int) float64 {
	if s.samples.Len() == 1 {
		return 0
	}
	return float64(i) / float64(s.samples.Len()-1)
}
