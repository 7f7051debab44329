package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roadmapkit/trail/internal/render"
)

func (a *app) newRenderCmd() *cobra.Command {
	var file, out string
	cmd := &cobra.Command{
		Use:     "render",
		Short:   "Render a roadmap as an SVG image",
		Example: `  trail render --file roadmap.yaml --out roadmap.svg`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rm, err := loadRoadmap(cmd, file)
			if err != nil {
				return err
			}
			w, err := createOutput(cmd, out)
			if err != nil {
				return err
			}
			if err := render.Write(w, rm, a.cfg.RenderOptions()); err != nil {
				w.Close()
				return err
			}
			if err := w.Close(); err != nil {
				return fmt.Errorf("close output: %w", err)
			}
			a.logger.Info("rendered roadmap",
				zap.String("title", rm.Title),
				zap.Int("milestones", len(rm.Milestones)),
				zap.String("out", out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", `roadmap file ("-" for stdin)`)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
