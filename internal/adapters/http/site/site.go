// Package site renders the portfolio page and serves its static documents.
package site

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/okian/scholarfolio/internal/adapters/http/api"
	"github.com/okian/scholarfolio/internal/domain/content"
	"github.com/okian/scholarfolio/internal/domain/scholar"
	"github.com/okian/scholarfolio/pkg/logger"
	"github.com/okian/scholarfolio/pkg/metrics"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	// trustedURL admits schemes like tel: from the static content.
	"trustedURL": func(s string) template.URL { return template.URL(s) }, //nolint:gosec // literal content
}).ParseFS(templateFS, "templates/*.html"))

// Dependencies are the reads the page needs. PeekMetrics must not wait on
// the metrics source.
type Dependencies interface {
	PeekMetrics(ctx context.Context) scholar.Result
	Profile(ctx context.Context) content.Portfolio
}

// Handler renders the page and accepts contact submissions.
type Handler struct {
	deps   Dependencies
	assets http.Handler
	logger logger.Logger
	now    func() time.Time
	newRef func() string
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger for contact submissions and render failures.
func WithLogger(l logger.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithClock sets the clock used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		if now != nil {
			h.now = now
		}
	}
}

// NewHandler creates a page handler. Files under assetsDir are served as-is;
// an empty assetsDir serves none.
func NewHandler(deps Dependencies, assetsDir string, opts ...Option) *Handler {
	h := &Handler{
		deps:   deps,
		assets: http.NotFoundHandler(),
		logger: logger.Discard(),
		now:    time.Now,
		newRef: func() string { return uuid.NewString() },
	}
	if assetsDir != "" {
		h.assets = noListing(http.FileServer(http.Dir(assetsDir)))
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register attaches the page, the contact form and the asset routes to mux.
func (h *Handler) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.HandleFunc("/", api.MetricsMiddleware(h.HandleRoot, "site"))
	mux.HandleFunc("/contact", api.MetricsMiddleware(h.HandleContact, "contact"))
}

// HandleRoot renders the page at / and serves assets for every other path.
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.assets.ServeHTTP(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}
	profile := h.deps.Profile(r.Context())
	state := parseState(r.URL.Query(), len(profile.About.Highlights))
	h.render(w, r, http.StatusOK, profile, state, contactView{})
}

// HandleContact handles POST /contact. Nothing is sent anywhere; the
// submission is logged and acknowledged with a reference id.
func (h *Handler) HandleContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	ctx := r.Context()
	profile := h.deps.Profile(ctx)
	state := defaultState()

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	form, err := readContactForm(r)
	if err != nil {
		metrics.RecordContactSubmission("rejected")
		h.render(w, r, http.StatusBadRequest, profile, state, contactView{
			Errors: map[string]string{"form": "The form could not be read."},
		})
		return
	}
	if errs := form.validate(); len(errs) > 0 {
		metrics.RecordContactSubmission("rejected")
		h.render(w, r, http.StatusBadRequest, profile, state, contactView{Form: form, Errors: errs})
		return
	}

	ref := h.newRef()
	h.logger.Info(ctx, "contact form submitted",
		logger.String("reference", ref),
		logger.String("name", form.Name),
		logger.String("email", form.Email),
		logger.String("subject", form.Subject),
		logger.Int("messageLength", utf8.RuneCountInString(form.Message)),
	)
	metrics.RecordContactSubmission("accepted")
	h.render(w, r, http.StatusOK, profile, state, contactView{Ack: AckMessage, Reference: ref})
}

type pageData struct {
	Profile        content.Portfolio
	State          viewState
	Stats          []content.Stat
	LastUpdated    time.Time
	Origin         scholar.Origin
	Codes          []content.CodeSample
	ActiveCategory content.CodeCategory
	Contact        contactView
	Year           int
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, profile content.Portfolio, state viewState, cv contactView) {
	ctx := r.Context()
	res := h.deps.PeekMetrics(ctx)
	category, _ := content.Category(state.Codes)

	data := pageData{
		Profile:        profile,
		State:          state,
		Stats:          content.ResearchStats(res.Metrics.TotalCitations, res.Metrics.HIndex, res.Metrics.PublicationCount),
		LastUpdated:    res.Metrics.LastUpdated,
		Origin:         res.Origin,
		Codes:          content.CodesForTab(state.Codes),
		ActiveCategory: category,
		Contact:        cv,
		Year:           h.now().Year(),
	}

	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "page", data); err != nil {
		h.logger.Error(ctx, "failed to render page", logger.Error(fmt.Errorf("%w: %w", ErrRender, err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	metrics.RecordPageRender("home")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		_, _ = buf.WriteTo(w)
	}
}

// noListing hides directory indexes.
func noListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
