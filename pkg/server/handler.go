// Package server exposes dataset listings over HTTP using gorilla/mux.
package server

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/goliatone/go-listgen/pkg/dataset"
	"github.com/goliatone/go-listgen/pkg/model"
	"github.com/goliatone/go-listgen/pkg/render"
)

// Handler serves the model index, model listings, related listings and CSV
// exports of a dataset.
type Handler struct {
	opts     Options
	data     *dataset.Dataset
	registry *render.Registry
	router   *mux.Router
	prefix   string
	now      func() time.Time
}

// NewHandler builds a handler for data, rendering through registry.
func NewHandler(data *dataset.Dataset, registry *render.Registry, fns ...OptionFn) (*Handler, error) {
	if data == nil {
		return nil, errors.New("server: dataset is required")
	}
	if registry == nil {
		return nil, errors.New("server: renderer registry is required")
	}
	opts := NewOptions(fns...)
	if !registry.Has(opts.DefaultRenderer) {
		return nil, errors.New("server: default renderer " + strconv.Quote(opts.DefaultRenderer) + " is not registered")
	}

	prefix := opts.URLPrefix
	if prefix == "" {
		prefix = data.URLPrefix
	}

	h := &Handler{
		opts:     opts,
		data:     data,
		registry: registry,
		router:   mux.NewRouter(),
		prefix:   normalisePrefix(prefix),
		now:      time.Now,
	}
	h.routes()
	return h, nil
}

// Prefix returns the normalised route root ("" or "/name").
func (h *Handler) Prefix() string {
	return h.prefix
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) routes() {
	get := []string{http.MethodGet, http.MethodHead}

	h.router.HandleFunc(h.prefix+"/", h.guarded(h.index)).Methods(get...)
	if h.prefix != "" {
		h.router.HandleFunc(h.prefix, h.guarded(h.index)).Methods(get...)
	}
	h.router.HandleFunc(h.prefix+"/export/db", h.guarded(h.exportAll)).Methods(get...)
	h.router.HandleFunc(h.prefix+"/{model}/list", h.guarded(h.list)).Methods(get...)
	h.router.HandleFunc(h.prefix+"/{model}/read/{id:[0-9]+}/{attribute}", h.guarded(h.related)).Methods(get...)
	h.router.HandleFunc(h.prefix+"/{model}/export", h.guarded(h.export)).Methods(get...)
	h.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.opts.Logger.Debugf("no route for %s %s", r.Method, r.URL.Path)
		http.NotFound(w, r)
	})
}

func (h *Handler) guarded(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.opts.Guard != nil {
			if err := h.opts.Guard(r); err != nil {
				h.opts.Logger.Warnf("guard rejected %s %s: %v", r.Method, r.URL.Path, err)
				writeGuardError(w, err)
				return
			}
		}
		next(w, r)
	}
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.renderListing(w, r, h.data.Index(), nil)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	listing, err := h.data.Listing(vars["model"])
	h.renderListing(w, r, listing, err)
}

func (h *Handler) related(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		h.fail(w, r, StatusError{Code: http.StatusBadRequest, Err: err})
		return
	}
	listing, err := h.data.RelatedListing(vars["model"], id, vars["attribute"])
	h.renderListing(w, r, listing, err)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["model"]
	var buf bytes.Buffer
	if err := h.data.WriteCSV(&buf, name); err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeAttachment(w, r, "text/csv; charset=utf-8", dataset.ExportFilename(name), buf.Bytes())
}

func (h *Handler) exportAll(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.data.WriteZip(&buf, h.now()); err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeAttachment(w, r, "application/zip", h.data.FullExportFilename(), buf.Bytes())
}

func (h *Handler) renderListing(w http.ResponseWriter, r *http.Request, listing model.Listing, err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}

	renderer, err := h.rendererFor(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	opts := h.opts.Render
	opts.Viewer = h.opts.Viewer(r)

	body, err := renderer.Render(r.Context(), listing, opts)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.opts.Logger.Debugf("rendered %q with %s for role %q", listing.Title, renderer.Name(), opts.Viewer.Role)

	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(body); err != nil {
		h.opts.Logger.Warnf("write response: %v", err)
	}
}

// rendererFor honours the format query parameter first, then the Accept
// header, then the default renderer.
func (h *Handler) rendererFor(r *http.Request) (render.Renderer, error) {
	if format := strings.TrimSpace(r.URL.Query().Get(h.opts.FormatParam)); format != "" {
		return h.registry.Get(format)
	}
	if renderer, ok := h.registry.ForMediaType(r.Header.Get("Accept")); ok {
		return renderer, nil
	}
	return h.registry.Get(h.opts.DefaultRenderer)
}

func (h *Handler) writeAttachment(w http.ResponseWriter, r *http.Request, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(body); err != nil {
		h.opts.Logger.Warnf("write attachment: %v", err)
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		h.opts.Logger.Errorf("%s %s: %v", r.Method, r.URL.Path, err)
	} else {
		h.opts.Logger.Infof("%s %s: %v", r.Method, r.URL.Path, err)
	}
	http.Error(w, http.StatusText(code), code)
}

func normalisePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" || prefix == "/" {
		return ""
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return strings.TrimRight(prefix, "/")
}
