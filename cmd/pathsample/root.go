package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	segments   int
	logLevel   string
	verbose    bool

	shape string
	svg   string
	path  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "pathsample",
		Short:         "Sample paths and map slider values to points along them",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Configuration file (YAML, or TOML with a .toml extension)")
	pf.IntVarP(&flags.segments, "segments", "n", 0, "Sample resolution, overriding the configuration")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&flags.shape, "shape", "", "Sample a built-in shape")
	pf.StringVar(&flags.svg, "svg", "", "Sample SVG path data")
	pf.StringVarP(&flags.path, "path", "p", "", "Sample a path named in the configuration")

	cmd.AddCommand(newSampleCmd(flags))
	cmd.AddCommand(newPointCmd(flags))
	cmd.AddCommand(newValueCmd(flags))
	cmd.AddCommand(newSVGCmd(flags))
	cmd.AddCommand(newShapesCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
