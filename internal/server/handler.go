// Package server serves a built portfolio for local preview. The page is
// rendered per request so the visitor's color-scheme client hint decides
// the initial theme; every other path is served from the output directory.
package server

import (
	"bytes"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/dothrak/Portfolio-2.0/internal/site"
	"github.com/dothrak/Portfolio-2.0/internal/theme"
)

// Handler serves the page and the static files of one output directory.
type Handler struct {
	site      atomic.Pointer[site.Site]
	outputDir string
	files     http.Handler
	logger    *zap.Logger
}

// NewHandler returns a handler rendering s and serving files from outputDir.
func NewHandler(s *site.Site, outputDir string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{
		outputDir: outputDir,
		files:     http.FileServer(http.Dir(outputDir)),
		logger:    logger,
	}
	h.site.Store(s)
	return h
}

// SetSite swaps the rendered site after a rebuild. In-flight requests keep
// the site they started with.
func (h *Handler) SetSite(s *site.Site) {
	h.site.Store(s)
}

// Routes returns the root handler.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.serve)
	return h.logRequests(mux)
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request) {
	noCache(w.Header())
	if r.URL.Path == "/" || r.URL.Path == "/index.html" {
		h.page(w, r)
		return
	}
	h.static(w, r)
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	header := w.Header()
	header.Set("Accept-CH", theme.ClientHintHeader)
	header.Set("Critical-CH", theme.ClientHintHeader)
	header.Add("Vary", theme.ClientHintHeader)

	t := theme.NewResolver(theme.HeaderSource(r), h.logger).Current()

	var buf bytes.Buffer
	if err := h.site.Load().RenderPage(&buf, t); err != nil {
		h.logger.Error("failed to render page", zap.Error(err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	header.Set("Content-Type", "text/html; charset=utf-8")
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) static(w http.ResponseWriter, r *http.Request) {
	// Directories are only served through their index.html.
	if strings.HasSuffix(r.URL.Path, "/") {
		index := filepath.Join(h.outputDir, filepath.FromSlash(r.URL.Path), "index.html")
		if _, err := os.Stat(index); errors.Is(err, fs.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
	}
	h.files.ServeHTTP(w, r)
}

func noCache(header http.Header) {
	header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	header.Set("Pragma", "no-cache")
	header.Set("Expires", "0")
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		observer := &statusObserver{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(observer, r)
		h.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", observer.status),
			zap.Duration("duration", time.Since(started)),
		)
	})
}

type statusObserver struct {
	http.ResponseWriter
	status int
}

func (o *statusObserver) WriteHeader(status int) {
	o.status = status
	o.ResponseWriter.WriteHeader(status)
}
