package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roadmapkit/trail"
)

// waypointFlags are the alternative waypoint sources of path and segments.
// A list starting with a negative coordinate reads as a shorthand flag when
// given as argument, so it has to go through --waypoints or follow "--".
type waypointFlags struct {
	file string
	list string
}

func (f *waypointFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", `roadmap file to take the waypoints from ("-" for stdin)`)
	cmd.Flags().StringVarP(&f.list, "waypoints", "w", "", `waypoints as "x,y|x,y|..."`)
}

// waypoints returns the waypoints given as argument, with --waypoints or,
// with --file, the waypoints of a roadmap document.
func (a *app) waypoints(cmd *cobra.Command, args []string, f *waypointFlags) ([]trail.Point, error) {
	listed := cmd.Flags().Changed("waypoints")
	sources := 0
	for _, given := range []bool{len(args) > 0, listed, f.file != ""} {
		if given {
			sources++
		}
	}
	switch {
	case sources > 1:
		return nil, errors.New("waypoints argument, --waypoints and --file are mutually exclusive")
	case f.file != "":
		rm, err := loadRoadmap(cmd, f.file)
		if err != nil {
			return nil, err
		}
		return rm.Waypoints(), nil
	case listed:
		return trail.ParseWaypoints(f.list)
	case len(args) == 1:
		return trail.ParseWaypoints(args[0])
	default:
		return nil, errors.New("no waypoints given")
	}
}

func (a *app) newPathCmd() *cobra.Command {
	var flags waypointFlags
	cmd := &cobra.Command{
		Use:   "path [waypoints]",
		Short: "Print the smooth path through the waypoints",
		Example: `  trail path "0,0|10,0|10,10"
  trail path --waypoints "-5,0|10,0|10,10"
  trail path -- "-5,0|10,0|10,10"
  trail path --file roadmap.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := a.waypoints(cmd, args, &flags)
			if err != nil {
				return err
			}
			a.logger.Debug("smoothing path", zap.Int("waypoints", len(pts)))
			out := cmd.OutOrStdout()
			if err := a.cfg.Smoother().Path(pts).WriteSVG(out, a.cfg.SVGOptions()); err != nil {
				return err
			}
			return writeLines(out, "")
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *app) newSegmentsCmd() *cobra.Command {
	var flags waypointFlags
	cmd := &cobra.Command{
		Use:   "segments [waypoints]",
		Short: "Print one path per pair of consecutive waypoints",
		Example: `  trail segments "0,0|10,0|10,10"
  trail segments -w "-5,0|10,0|10,10"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := a.waypoints(cmd, args, &flags)
			if err != nil {
				return err
			}
			paths := a.cfg.Smoother().SegmentPaths(pts)
			a.logger.Debug("smoothing segments", zap.Int("waypoints", len(pts)), zap.Int("segments", len(paths)))
			lines := make([]string, len(paths))
			for i, p := range paths {
				lines[i] = p.SVG(a.cfg.SVGOptions())
			}
			return writeLines(cmd.OutOrStdout(), lines...)
		},
	}
	flags.register(cmd)
	return cmd
}
