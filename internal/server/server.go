package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/teemow/tabcal/internal/agenda"
	"github.com/teemow/tabcal/internal/calendar"
	"github.com/teemow/tabcal/internal/instrumentation"
	"github.com/teemow/tabcal/internal/logging"
	"github.com/teemow/tabcal/internal/render"
	"github.com/teemow/tabcal/internal/settings"
	"github.com/teemow/tabcal/internal/source"
)

const (
	// DefaultAddr binds to loopback only; the page is personal data and
	// must not be reachable from the network.
	DefaultAddr = "127.0.0.1:8793"

	// DefaultRefreshSpec is the background refresh cadence.
	DefaultRefreshSpec = "@every 5m"

	defaultReadHeaderTimeout = 10 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
)

// SourceFactory creates the event source for the current settings. It is
// called per fetch so settings changes (account, calendar) take effect
// without a restart.
type SourceFactory func(ctx context.Context, cfg settings.Settings) (source.Source, error)

// Config holds configuration for the page server.
type Config struct {
	// Addr is the listen address (default: 127.0.0.1:8793).
	Addr string

	// SettingsPath is the settings file location (default: settings.DefaultPath()).
	SettingsPath string

	// SourceFactory creates the event source for each fetch. Required.
	SourceFactory SourceFactory

	// InstrumentationProvider supplies the metrics recorder. Optional; a
	// nil provider disables recording.
	InstrumentationProvider *instrumentation.Provider

	// Location is the display timezone (default: time.Local).
	Location *time.Location

	// RefreshSpec is the cron spec for background refreshes
	// (default: "@every 5m").
	RefreshSpec string

	// CacheTTL bounds how stale served events may be (default: 5m).
	CacheTTL time.Duration

	// Now is the clock used to derive "today". Defaults to time.Now;
	// overridable for tests.
	Now func() time.Time
}

// Server renders the new-tab calendar page.
type Server struct {
	addr          string
	settingsPath  string
	sourceFactory SourceFactory
	renderer      *render.HTMLRenderer
	metrics       *instrumentation.Metrics
	health        *HealthChecker
	loc           *time.Location
	now           func() time.Time
	refreshSpec   string
	cron          *cron.Cron
	cache         *eventCache
	httpServer    *http.Server
	shutdown      atomic.Bool
}

// New creates a page server.
func New(config Config) (*Server, error) {
	if config.SourceFactory == nil {
		return nil, fmt.Errorf("source factory is required")
	}
	if config.Addr == "" {
		config.Addr = DefaultAddr
	}
	if config.SettingsPath == "" {
		path, err := settings.DefaultPath()
		if err != nil {
			return nil, err
		}
		config.SettingsPath = path
	}
	if config.Location == nil {
		config.Location = time.Local
	}
	if config.RefreshSpec == "" {
		config.RefreshSpec = DefaultRefreshSpec
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	renderer, err := render.NewHTMLRenderer()
	if err != nil {
		return nil, err
	}

	metrics := &instrumentation.Metrics{}
	if config.InstrumentationProvider != nil {
		metrics = config.InstrumentationProvider.Metrics()
	}

	s := &Server{
		addr:          config.Addr,
		settingsPath:  config.SettingsPath,
		sourceFactory: config.SourceFactory,
		renderer:      renderer,
		metrics:       metrics,
		loc:           config.Location,
		now:           config.Now,
		refreshSpec:   config.RefreshSpec,
		cache:         newEventCache(config.CacheTTL),
	}
	s.health = NewHealthChecker(s.shutdown.Load)
	return s, nil
}

// Handler returns the full HTTP handler, including health endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/refresh", s.handleRefresh)
	mux.HandleFunc("/settings", s.handleSettings)
	s.health.RegisterHealthEndpoints(mux)
	return s.withInstrumentation(mux)
}

// Start runs the server until Shutdown is called. The background refresh
// schedule starts alongside the listener.
func (s *Server) Start() error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.refreshSpec, s.backgroundRefresh); err != nil {
		return fmt.Errorf("failed to schedule background refresh: %w", err)
	}
	s.cron.Start()

	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		WriteTimeout:      defaultWriteTimeout,
		IdleTimeout:       defaultIdleTimeout,
	}

	slog.Info("starting page server", "addr", s.addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown drains the server and stops the refresh schedule.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shutdown.Store(true)
	s.health.SetReady(false)

	if s.cron != nil {
		s.cron.Stop()
	}
	if s.httpServer != nil {
		slog.Info("shutting down page server")
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// loadSettings reads the settings file, falling back to defaults when the
// file is unreadable. A broken settings file must not take the page down.
func (s *Server) loadSettings() settings.Settings {
	cfg, err := settings.Load(s.settingsPath)
	if err != nil {
		slog.Warn("failed to load settings, using defaults",
			"path", s.settingsPath,
			logging.Err(err),
		)
		return settings.Default()
	}
	return cfg
}

// fetchEvents pulls events from the configured source for one render window.
func (s *Server) fetchEvents(ctx context.Context, cfg settings.Settings, today calendar.CivilDate) ([]calendar.Event, error) {
	src, err := s.sourceFactory(ctx, cfg)
	if err != nil {
		return nil, err
	}

	from, to := source.Window(today, cfg.DaySpan, s.loc)

	ctx, span := instrumentation.StartSourceSpan(ctx, src.Name(), instrumentation.OperationList)
	defer span.End()

	start := time.Now()
	events, err := src.Events(ctx, from, to)
	duration := time.Since(start)

	if err != nil {
		instrumentation.SetSpanError(span, err)
		s.metrics.RecordSourceFetch(ctx, src.Name(), instrumentation.OperationList,
			instrumentation.StatusError, cfg.Account, 0, duration)
		slog.Error("event fetch failed",
			logging.Source(src.Name()),
			logging.Status(logging.StatusError),
			logging.UserHash(cfg.Account),
			logging.Err(err),
		)
		return nil, err
	}

	instrumentation.SetSpanSuccess(span)
	s.metrics.RecordSourceFetch(ctx, src.Name(), instrumentation.OperationList,
		instrumentation.StatusSuccess, cfg.Account, len(events), duration)
	slog.Info("events fetched",
		logging.Source(src.Name()),
		logging.Status(logging.StatusSuccess),
		logging.DaySpan(cfg.DaySpan),
		slog.Int("count", len(events)),
		slog.Duration(logging.KeyDuration, duration),
	)
	return events, nil
}

// backgroundRefresh refetches events under the current settings so page
// loads keep hitting a warm cache.
func (s *Server) backgroundRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg := s.loadSettings()
	today := calendar.CivilDateOf(s.now().In(s.loc))

	s.cache.invalidate()
	if _, err := s.cache.get(ctx, s.now(), cfg, func(ctx context.Context) ([]calendar.Event, error) {
		return s.fetchEvents(ctx, cfg, today)
	}); err != nil {
		slog.Warn("background refresh failed", logging.Err(err))
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.renderIndex(w, r)
}

func (s *Server) renderIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cfg := s.loadSettings()
	now := s.now().In(s.loc)
	today := calendar.CivilDateOf(now)

	view := agenda.ViewGrid
	viewLabel := instrumentation.ViewGridLabel
	if cfg.ListView {
		view = agenda.ViewAgenda
		viewLabel = instrumentation.ViewAgendaLabel
	}

	ctx, span := instrumentation.StartRenderSpan(ctx, viewLabel, cfg.DaySpan)
	defer span.End()
	renderStart := time.Now()

	data := render.PageData{
		Today:       today,
		Settings:    cfg,
		GeneratedAt: now,
	}

	events, err := s.cache.get(ctx, s.now(), cfg, func(ctx context.Context) ([]calendar.Event, error) {
		return s.fetchEvents(ctx, cfg, today)
	})
	if err != nil {
		// A failed fetch renders as an explicit error panel, never as an
		// empty calendar.
		data.ErrorMessage = "Couldn't load calendar events. Check the connection and try Refresh."
		data.Days = agenda.BuildDays(nil, today, cfg.DaySpan, agenda.Options{View: view, Location: s.loc})
	} else {
		days := agenda.BuildDays(events, today, cfg.DaySpan, agenda.Options{
			View:       view,
			MaxVisible: cfg.MaxVisible,
			ExpandAll:  cfg.ExpandAll,
			Location:   s.loc,
		})
		data.Days = days
		data.Empty = agenda.Empty(days)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	status := instrumentation.StatusSuccess
	if renderErr := s.renderer.RenderPage(w, data); renderErr != nil {
		status = instrumentation.StatusError
		instrumentation.SetSpanError(span, renderErr)
		slog.Error("page render failed",
			slog.String(logging.KeyView, viewLabel),
			logging.Err(renderErr),
		)
	} else if err != nil {
		status = instrumentation.StatusError
		instrumentation.SetSpanError(span, err)
	} else {
		instrumentation.SetSpanSuccess(span)
	}

	s.metrics.RecordRenderPass(ctx, viewLabel, status, time.Since(renderStart))
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.cache.invalidate()
	slog.Info("cache invalidated", logging.Operation("refresh"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		// The settings form lives on the main page.
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case http.MethodPost:
		s.saveSettings(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) saveSettings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	cfg := s.loadSettings()
	if v := r.PostFormValue("day_span"); v != "" {
		span, err := strconv.Atoi(v)
		if err != nil || !settings.ValidDaySpan(span) {
			http.Error(w, fmt.Sprintf("invalid day span %q", v), http.StatusBadRequest)
			return
		}
		cfg.DaySpan = span
	}
	cfg.ListView = r.PostFormValue("list_view") != ""
	cfg.ExpandAll = r.PostFormValue("expand_all") != ""
	if v := r.PostFormValue("account"); v != "" {
		cfg.Account = v
	}
	if v := r.PostFormValue("calendar_id"); v != "" {
		cfg.CalendarID = v
	}

	if err := settings.Save(s.settingsPath, cfg); err != nil {
		slog.Error("failed to save settings", logging.Err(err))
		http.Error(w, "failed to save settings", http.StatusInternalServerError)
		return
	}

	slog.Info("settings saved",
		logging.Operation("settings"),
		logging.DaySpan(cfg.DaySpan),
		slog.Bool("list_view", cfg.ListView),
	)
	s.cache.invalidate()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// statusRecorder captures the response status code for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) withInstrumentation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		duration := time.Since(start)
		s.metrics.RecordHTTPRequest(r.Context(), r.Method, r.URL.Path, rec.status, duration)
		slog.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			slog.Duration(logging.KeyDuration, duration),
		)
	})
}
