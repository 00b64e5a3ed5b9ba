package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fieldkit/curve"
)

const (
	overlayMargin = 10
	dotRadius     = 1.5
)

type svgOptions struct {
	output string
	watch  bool
}

func newSVGCmd(flags *rootFlags) *cobra.Command {
	opts := &svgOptions{}

	cmd := &cobra.Command{
		Use:   "svg",
		Short: "Draw a path and its samples as an SVG document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSVG(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to this file instead of standard output")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Redraw whenever the configuration file changes")

	return cmd
}

func runSVG(cmd *cobra.Command, flags *rootFlags, opts *svgOptions) error {
	if opts.watch {
		if flags.configPath == "" {
			return errors.New("--watch requires --config")
		}
		if opts.output == "" {
			return errors.New("--watch requires --output")
		}
	}

	s, err := newSession(cmd, flags)
	if err != nil {
		return err
	}
	if err := writeOverlayTo(cmd, s, opts.output); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := s.log
	log.Info("watching " + flags.configPath)
	return watchFile(ctx, flags.configPath, func() {
		s, err := newSession(cmd, flags)
		if err != nil {
			log.Error(err, "reloading configuration")
			return
		}
		if err := writeOverlayTo(cmd, s, opts.output); err != nil {
			log.Error(err, "redrawing")
			return
		}
		log.Info("wrote " + opts.output)
	})
}

func writeOverlayTo(cmd *cobra.Command, s *session, output string) error {
	if output == "" {
		return writeOverlay(cmd.OutOrStdout(), s.path, s.samples)
	}
	var buf bytes.Buffer
	if err := writeOverlay(&buf, s.path, s.samples); err != nil {
		return err
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	return nil
}

// writeOverlay writes an SVG document showing path with a dot on every
// sample.
func writeOverlay(w io.Writer, path curve.BezPath, samples curve.Samples) error {
	box := path.BoundingBox().Inflate(overlayMargin, overlayMargin)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%g %g %g %g">`+"\n",
		box.X0, box.Y0, box.Width(), box.Height())
	fmt.Fprintf(&buf, `  <path d="%s" fill="none" stroke="black"/>`+"\n",
		path.SVG(curve.SVGOptions{MaxPrecision: 3}))
	for _, pt := range samples.All() {
		fmt.Fprintf(&buf, `  <circle cx="%.3f" cy="%.3f" r="%g" fill="red"/>`+"\n", pt.X, pt.Y, dotRadius)
	}
	buf.WriteString("</svg>\n")

	_, err := w.Write(buf.Bytes())
	return err
}
