// Package web serves the charts as HTML pages and replays the pointer events
// of the browser on the line chart viewer.
package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/midbel/datavis/barchart"
	"github.com/midbel/datavis/linechart"
)

const svgType = "image/svg+xml"

var ErrEvent = errors.New("unknown event")

// Event is an interaction sent by the page of the line chart.
type Event struct {
	Type   string  `json:"type"`
	Series string  `json:"series"`
	X0     float64 `json:"x0"`
	X1     float64 `json:"x1"`
}

// Apply replays the event on the viewer.
func (e Event) Apply(v *linechart.Viewer) error {
	switch e.Type {
	case "enter":
		v.Enter(e.Series)
	case "leave":
		v.Leave(e.Series)
	case "click":
		v.Click(e.Series)
	case "brush":
		v.Brush(e.X0, e.X1)
	case "clear":
		v.Clear()
	default:
		return fmt.Errorf("%w: %q", ErrEvent, e.Type)
	}
	return nil
}

// Options gives the charts served. A chart that failed to load is given by
// its error: its pages then show the error instead of a partial chart.
type Options struct {
	Bars     *barchart.Chart
	BarsErr  error
	Lines    *linechart.Viewer
	LinesErr error
	Logger   *slog.Logger
}

type Server struct {
	bars     *barchart.Chart
	barsErr  error
	linesErr error
	logger   *slog.Logger

	mu    sync.Mutex
	lines *linechart.Viewer
}

func New(opts Options) *Server {
	s := Server{
		bars:     opts.Bars,
		barsErr:  opts.BarsErr,
		lines:    opts.Lines,
		linesErr: opts.LinesErr,
		logger:   opts.Logger,
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.bars == nil && s.barsErr == nil {
		s.barsErr = barchart.ErrNoRows
	}
	if s.lines == nil && s.linesErr == nil {
		s.linesErr = linechart.ErrNoSeries
	}
	return &s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /bars", s.handleBars)
	mux.HandleFunc("GET /bars.svg", s.handleBarsSVG)
	mux.HandleFunc("GET /lines", s.handleLines)
	mux.HandleFunc("GET /lines.svg", s.handleLinesSVG)
	mux.HandleFunc("POST /lines/events", s.handleEvent)
	return s.logRequest(mux)
}

// ListenAndServe serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	s.logger.Info("listening", "addr", addr)
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(sctx)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, tmplIndex, map[string]any{
		"Title": "datavis",
		"Bars":  status(s.barsErr),
		"Lines": status(s.linesErr),
	})
}

func (s *Server) handleBars(w http.ResponseWriter, r *http.Request) {
	const title = "Top tourist attractions in Austria"
	if s.barsErr != nil {
		s.renderError(w, title, s.barsErr)
		return
	}
	var buf bytes.Buffer
	if err := s.bars.Render(&buf); err != nil {
		s.renderError(w, title, err)
		return
	}
	s.render(w, http.StatusOK, tmplBars, map[string]any{
		"Title": title,
		"Chart": template.HTML(buf.String()),
	})
}

func (s *Server) handleBarsSVG(w http.ResponseWriter, r *http.Request) {
	if s.barsErr != nil {
		http.Error(w, s.barsErr.Error(), http.StatusServiceUnavailable)
		return
	}
	var buf bytes.Buffer
	if err := s.bars.Render(&buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeSVG(w, buf.Bytes())
}

func (s *Server) handleLines(w http.ResponseWriter, r *http.Request) {
	const title = "World fertility rates"
	if s.linesErr != nil {
		s.renderError(w, title, s.linesErr)
		return
	}
	buf, err := s.renderLines(nil)
	if err != nil {
		s.renderError(w, title, err)
		return
	}
	s.render(w, http.StatusOK, tmplLines, map[string]any{
		"Title": title,
		"Chart": template.HTML(buf),
	})
}

func (s *Server) handleLinesSVG(w http.ResponseWriter, r *http.Request) {
	if s.linesErr != nil {
		http.Error(w, s.linesErr.Error(), http.StatusServiceUnavailable)
		return
	}
	buf, err := s.renderLines(nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeSVG(w, buf)
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	if s.linesErr != nil {
		http.Error(w, s.linesErr.Error(), http.StatusServiceUnavailable)
		return
	}
	var ev Event
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<12)).Decode(&ev); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	buf, err := s.renderLines(&ev)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, ErrEvent) {
			code = http.StatusBadRequest
		}
		http.Error(w, err.Error(), code)
		return
	}
	s.logger.Debug("event", "type", ev.Type, "series", ev.Series, "x0", ev.X0, "x1", ev.X1)
	s.writeSVG(w, buf)
}

// renderLines applies the event, if any, and draws the viewer. Events are
// handled one at a time.
func (s *Server) renderLines(ev *Event) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ev != nil {
		if err := ev.Apply(s.lines); err != nil {
			return nil, err
		}
	}
	var buf bytes.Buffer
	if err := s.lines.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Server) writeSVG(w http.ResponseWriter, buf []byte) {
	w.Header().Set("Content-Type", svgType)
	if _, err := w.Write(buf); err != nil {
		s.logger.Warn("write response", "err", err)
	}
}

func (s *Server) render(w http.ResponseWriter, code int, tmplStr string, data any) {
	t, err := template.New("page").Parse(tmplBase + tmplStr)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		s.logger.Error("template error", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	w.Write(buf.Bytes())
}

func (s *Server) renderError(w http.ResponseWriter, title string, err error) {
	s.logger.Error("chart unavailable", "chart", title, "err", err)
	s.render(w, http.StatusServiceUnavailable, tmplError, map[string]any{
		"Title": title,
		"Error": err.Error(),
	})
}

type statusWriter struct {
	http.ResponseWriter
	code int
	size int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.code == 0 {
		w.code = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

func (s *Server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var (
			now = time.Now()
			sw  = statusWriter{ResponseWriter: w}
		)
		next.ServeHTTP(&sw, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.code,
			"size", humanize.Bytes(uint64(sw.size)),
			"elapsed", time.Since(now),
		)
	})
}

func status(err error) string {
	if err != nil {
		return "unavailable: " + err.Error()
	}
	return "ready"
}
