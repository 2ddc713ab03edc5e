package server

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cast"

	"github.com/san-kum/linprimer/internal/lesson"
	"github.com/san-kum/linprimer/internal/numfmt"
	"github.com/san-kum/linprimer/internal/tex"
	"github.com/san-kum/linprimer/internal/viz"
)

func (s *Server) listSections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, lesson.Summaries())
}

func (s *Server) getSection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if doc, ok := s.docs.Get(id); ok {
		writeJSON(w, http.StatusOK, doc)
		return
	}

	sec, err := lesson.Lookup(id)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	doc := sec.Document()
	s.docs.SetDefault(id, doc)
	writeJSON(w, http.StatusOK, doc)
}

type frameEntry struct {
	Tick   int          `json:"tick"`
	Frame  lesson.Frame `json:"frame"`
	Canvas string       `json:"canvas,omitempty"`
}

type framesResponse struct {
	Animation string       `json:"animation"`
	Caption   string       `json:"caption"`
	From      int          `json:"from"`
	Frames    []frameEntry `json:"frames"`
}

// getFrames plays a fresh copy of the animation up to ?from= and returns
// ?count= consecutive frames. ?canvas=N adds a braille drawing N cells wide.
func (s *Server) getFrames(w http.ResponseWriter, r *http.Request) {
	sec, err := lesson.Lookup(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("index: %w", err))
		return
	}

	q := r.URL.Query()
	from, err := intParam(q.Get("from"), 0)
	if err != nil || from < 0 || from > MaxFrom {
		writeError(w, http.StatusBadRequest, fmt.Errorf("from must be between 0 and %d", MaxFrom))
		return
	}
	count, err := intParam(q.Get("count"), 1)
	if err != nil || count < 1 || count > MaxFrames {
		writeError(w, http.StatusBadRequest, fmt.Errorf("count must be between 1 and %d", MaxFrames))
		return
	}
	cols, err := intParam(q.Get("canvas"), 0)
	if err != nil || cols < 0 || cols > MaxCanvasCols {
		writeError(w, http.StatusBadRequest, fmt.Errorf("canvas must be between 0 and %d", MaxCanvasCols))
		return
	}

	p, err := sec.Animation(index)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	defer p.Stop()

	name := lesson.AnimationName(sec.ID, index)
	resp := framesResponse{
		Animation: name,
		Caption:   sec.Animations()[index].Caption,
		From:      from,
		Frames:    make([]frameEntry, 0, count),
	}

	frame, err := s.advance(r.Context(), p, from)
	if err != nil {
		if r.Context().Err() != nil {
			s.logger.Debug("frames request abandoned", "animation", name, "from", from, "ticks", p.Ticks())
			writeError(w, http.StatusServiceUnavailable, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	for i := 0; i < count; i++ {
		if err := r.Context().Err(); err != nil {
			writeError(w, http.StatusServiceUnavailable, err)
			return
		}
		if i > 0 {
			s.metrics.TimeRender(func() { frame, err = p.Tick() })
			if err != nil {
				writeError(w, http.StatusInternalServerError, err)
				return
			}
		}
		entry := frameEntry{Tick: from + i, Frame: frame}
		if cols > 0 {
			c := viz.CanvasFor(frame.Scene, cols)
			viz.RenderScene(c, frame.Scene, true)
			entry.Canvas = c.String()
		}
		resp.Frames = append(resp.Frames, entry)
	}
	s.metrics.Ticks.WithLabelValues(name).Add(float64(p.Ticks()))

	writeJSON(w, http.StatusOK, resp)
}

// advance plays n ticks in chunks, giving up once ctx is done.
func (s *Server) advance(ctx context.Context, p lesson.Player, n int) (lesson.Frame, error) {
	var frame lesson.Frame
	if n <= 0 {
		s.metrics.TimeRender(func() { frame = p.Frame() })
		return frame, nil
	}
	for n > 0 {
		if err := ctx.Err(); err != nil {
			return frame, err
		}
		step := min(n, advanceChunk)
		var err error
		s.metrics.TimeRender(func() { frame, err = p.Advance(step) })
		if err != nil {
			return frame, err
		}
		n -= step
	}
	return frame, nil
}

type texResponse struct {
	tex.Node
	Env  string `json:"env"`
	Text string `json:"text"`
}

func (s *Server) getTeX(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	m, err := tex.ParseLiteral(q.Get("m"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var opts tex.Options
	if v := q.Get("inline"); v != "" {
		if opts.Inline, err = cast.ToBoolE(v); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("inline: %w", err))
			return
		}
	}
	if opts.Env, err = tex.ParseEnvironment(q.Get("env")); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	node := tex.NewNode(m, opts)
	writeJSON(w, http.StatusOK, texResponse{Node: node, Env: opts.Env.String(), Text: viz.Typeset(node)})
}

type truncateResponse struct {
	Value     float64 `json:"value"`
	Precision int     `json:"precision"`
	Truncated float64 `json:"truncated"`
	Text      string  `json:"text"`
}

func (s *Server) getTruncate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("v") == "" {
		writeError(w, http.StatusBadRequest, errors.New("v is required"))
		return
	}
	v, err := cast.ToFloat64E(q.Get("v"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("v: %w", err))
		return
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		writeError(w, http.StatusBadRequest, errors.New("v must be finite"))
		return
	}
	p, err := intParam(q.Get("p"), s.precision)
	if err != nil || p < -15 || p > 15 {
		writeError(w, http.StatusBadRequest, errors.New("p must be an integer between -15 and 15"))
		return
	}

	writeJSON(w, http.StatusOK, truncateResponse{
		Value:     v,
		Precision: p,
		Truncated: numfmt.Truncate(v, p),
		Text:      numfmt.Format(v, p),
	})
}

func intParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
