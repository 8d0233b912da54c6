package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
)

var (
	flagServeAddr   string
	flagServeSource string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve profile search over HTTP",
	Long: `Serve exposes the search as JSON:

  GET /search?q=java&q=amsterdam
  GET /healthz`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "", "Listen address; defaults to config serve_addr")
	serveCmd.Flags().StringVar(&flagServeSource, "source", "", "Profile source; defaults to config")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	addr := a.cfg.ServeAddr
	if flagServeAddr != "" {
		addr = flagServeAddr
	}
	source := a.cfg.Source
	if flagServeSource != "" {
		source = flagServeSource
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(a, source),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	printOK(cmd.OutOrStdout(), "", fmt.Sprintf("listening on http://%s (source=%s)", addr, source))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("cannot shut down server: %w", err)
	}
	printInfo(cmd.OutOrStdout(), "", "server stopped")
	return nil
}

func newRouter(a *app, source string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(a.log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/search", searchHandler(a, source))
	return r
}

// requestLogger logs one line per request through log, so access lines follow
// the configured level and format.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				log.Info("http request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start),
					"remote", r.RemoteAddr,
					"request_id", middleware.GetReqID(r.Context()))
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

func searchHandler(a *app, source string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keywords := parseKeywords(r.URL.Query()["q"])
		if len(keywords) == 0 {
			writeError(w, http.StatusBadRequest, "missing query parameter q")
			return
		}
		if err := checkKeywordLimit(keywords, a.cfg.MaxKeywords); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		results, loadErr := a.ranker.Search(r.Context(), source, keywords)
		writeJSON(w, http.StatusOK, searchResponse{
			Query:   keywords,
			Results: toViews(results),
			Warning: loadWarning(loadErr),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
