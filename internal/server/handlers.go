package server

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/roadmapkit/trail"
	"github.com/roadmapkit/trail/internal/render"
	"github.com/roadmapkit/trail/internal/roadmap"
)

// PathResponse is the body of GET /v1/path.
type PathResponse struct {
	Path      string   `json:"path"`
	Segments  []string `json:"segments"`
	Waypoints int      `json:"waypoints"`
}

// TrailResponse is the body of POST /v1/roadmaps/trail.
type TrailResponse struct {
	Title    string            `json:"title"`
	Timeline roadmap.Timeline  `json:"timeline"`
	Path     string            `json:"path"`
	Segments []roadmap.Segment `json:"segments"`
	Bounds   *trail.Rect       `json:"bounds,omitempty"`
	Progress roadmap.Progress  `json:"progress"`
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// svgOptions applies the precision query parameter over the configured
// default.
func (s *Server) svgOptions(c *fiber.Ctx) (trail.SVGOptions, error) {
	opts := s.cfg.SVGOptions()
	if v := c.Query("precision"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return opts, errors.New("precision must be a non-negative integer")
		}
		opts.MaxPrecision = n
	}
	return opts, nil
}

func (s *Server) handlePath(c *fiber.Ctx) error {
	pts, err := trail.ParseWaypoints(c.Query("waypoints"))
	if err != nil {
		return errBadRequest(c, err.Error())
	}
	opts, err := s.svgOptions(c)
	if err != nil {
		return errBadRequest(c, err.Error())
	}

	sm := s.cfg.Smoother()
	paths := sm.SegmentPaths(pts)
	resp := PathResponse{
		Path:      sm.Path(pts).SVG(opts),
		Segments:  make([]string, len(paths)),
		Waypoints: len(pts),
	}
	for i, p := range paths {
		resp.Segments[i] = p.SVG(opts)
	}
	s.metrics.smoothed(len(pts), len(paths))
	return c.JSON(resp)
}

func (s *Server) loadRoadmap(c *fiber.Ctx, endpoint string) (*roadmap.Roadmap, error) {
	rm, err := roadmap.Parse(c.Body())
	if err != nil {
		s.metrics.roadmapsRejected.WithLabelValues(endpoint).Inc()
		s.logger.Debug("rejected roadmap", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, err
	}
	return rm, nil
}

func (s *Server) handleRender(c *fiber.Ctx) error {
	rm, err := s.loadRoadmap(c, "render")
	if err != nil {
		return errBadRequest(c, err.Error())
	}
	opts := s.cfg.RenderOptions()
	if opts.SVG, err = s.svgOptions(c); err != nil {
		return errBadRequest(c, err.Error())
	}
	doc, err := render.Render(rm, opts)
	if err != nil {
		s.logger.Error("render roadmap", zap.Error(err))
		return errInternal(c, "failed to render roadmap")
	}
	s.metrics.smoothed(len(rm.Milestones), max(0, len(rm.Milestones)-1))
	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.Send(doc)
}

func (s *Server) handleTrail(c *fiber.Ctx) error {
	rm, err := s.loadRoadmap(c, "trail")
	if err != nil {
		return errBadRequest(c, err.Error())
	}
	opts, err := s.svgOptions(c)
	if err != nil {
		return errBadRequest(c, err.Error())
	}
	tr := rm.Trail(s.cfg.Smoother(), opts)
	s.metrics.smoothed(len(rm.Milestones), len(tr.Segments))
	return c.JSON(TrailResponse{
		Title:    rm.Title,
		Timeline: rm.Timeline,
		Path:     tr.Path,
		Segments: tr.Segments,
		Bounds:   tr.Bounds,
		Progress: rm.Progress(),
	})
}
