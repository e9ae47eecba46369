package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/care-dashboard/internal/dashboard"
	"github.com/sells-group/care-dashboard/internal/render"
	"github.com/sells-group/care-dashboard/internal/snapshot"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the live dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		port := resolvePort(servePort, cfg.Server.Port)
		cfg.Server.Port = port
		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		// A failed load still starts the server so the failure notice is visible.
		snap, dash, loadErr := loadDashboard(ctx, cfg)
		app := &dashboardApp{
			title:   cfg.Dashboard.Title,
			snap:    snap,
			dash:    dash,
			loadErr: loadErr,
		}

		return startServer(ctx, buildRouter(app), port)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

// dashboardApp is the state behind the HTTP handlers. Either loadErr is set or
// snap and dash are.
type dashboardApp struct {
	title   string
	snap    *snapshot.Snapshot
	dash    *dashboard.Dashboard
	loadErr error
}

// resolvePort prefers the flag value when set.
func resolvePort(flag, configured int) int {
	if flag != 0 {
		return flag
	}
	return configured
}

func buildRouter(app *dashboardApp) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/", app.handleDashboard)

	r.Group(func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Get("/api/view", app.handleView)
		r.Get("/data/{name}", app.handleData)
	})

	return r
}

// selectionFrom reads ?org=&event=. A missing org parameter keeps the default
// selection; a present but empty one selects all organizations.
func (a *dashboardApp) selectionFrom(r *http.Request) dashboard.Selection {
	q := r.URL.Query()
	sel := a.dash.DefaultSelection()
	if vals, ok := q["org"]; ok {
		sel.Org = strings.TrimSpace(vals[0])
	}
	sel.Event = strings.TrimSpace(q.Get("event"))
	return sel
}

func (a *dashboardApp) handleDashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	if a.loadErr != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		if err := render.Failure(w, a.title); err != nil {
			zap.L().Error("render failure page", zap.Error(err))
		}
		return
	}

	view := a.dash.Apply(a.selectionFrom(r))
	if err := render.Dashboard(w, view.Page(a.title, false)); err != nil {
		zap.L().Error("render dashboard", zap.Error(err))
	}
}

func (a *dashboardApp) handleView(w http.ResponseWriter, r *http.Request) {
	if a.loadErr != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": render.LoadFailureNotice})
		return
	}
	writeJSON(w, http.StatusOK, a.dash.Apply(a.selectionFrom(r)))
}

// handleData re-serves one loaded resource byte for byte as it was fetched.
// Responses are never cached so a reload always reflects the current snapshot.
func (a *dashboardApp) handleData(w http.ResponseWriter, r *http.Request) {
	if a.loadErr != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": render.LoadFailureNotice})
		return
	}

	name := chi.URLParam(r, "name")
	data, ok := a.snap.Raw(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown resource"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(data); err != nil {
		zap.L().Debug("write resource", zap.String("resource", name), zap.Error(err))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Debug("write json response", zap.Error(err))
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		zap.L().Info("http request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// startServer serves handler on port until ctx is cancelled, then shuts down gracefully.
func startServer(ctx context.Context, handler http.Handler, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		<-ctx.Done()
		zap.L().Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	zap.L().Info("starting server", zap.Int("port", port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return eris.Wrap(err, "server listen")
	}

	return nil
}
