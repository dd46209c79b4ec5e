package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/voltexlighting/lumenplan/pkg/errors"
	"github.com/voltexlighting/lumenplan/pkg/photometry"
	"github.com/voltexlighting/lumenplan/pkg/pipeline"
)

// serveCommand creates the serve command exposing the calculation as HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [table.csv]",
		Short: "Serve the calculation as an HTTP API",
		Long: `Serve the calculation as an HTTP API.

The utilization-factor table is loaded once at startup; requests carry the
remaining calculation inputs as JSON.

Endpoints:
  POST /api/v1/calculate   run a calculation, returns the result as JSON
  GET  /api/v1/healthz     liveness probe`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, err := photometry.LoadFile(args[0])
			if err != nil {
				return fmt.Errorf("load table %s: %w", args[0], err)
			}
			srv := &server{
				runner:  c.newRunner(),
				dataset: dataset,
				cfg:     c.Config,
				logger:  c.Logger,
			}
			return c.listen(cmd.Context(), addr, srv.routes())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

// listen runs the HTTP server until the context is canceled, then shuts it
// down gracefully.
func (c *CLI) listen(ctx context.Context, addr string, handler http.Handler) error {
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return ctx.Err()
	}
}

// server bundles the immutable per-process state the handlers need.
type server struct {
	runner  *pipeline.Runner
	dataset *photometry.Dataset
	cfg     Config
	logger  *log.Logger
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(s.withRequestLogger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/calculate", s.handleCalculate)
		r.Get("/healthz", s.handleHealthz)
	})
	return r
}

// withRequestLogger attaches the process logger to the request context so
// handlers share the CLI's logging configuration.
func (s *server) withRequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.logger != nil {
			r = r.WithContext(withLogger(r.Context(), s.logger))
		}
		next.ServeHTTP(w, r)
	})
}

func (s *server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"fixture": s.dataset.Fixture.Name,
	})
}

// handleCalculate decodes a request body, fills in the served dataset and
// config-level tunables, and runs the pipeline.
func (s *server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req pipeline.Request
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "failed to parse request body"))
		return
	}

	req.Fixture = s.dataset.Fixture
	req.Table = s.dataset.Table
	if req.MaintenanceFactor == 0 {
		req.MaintenanceFactor = s.cfg.MaintenanceFactor
	}
	if req.SHRFactor == 0 {
		req.SHRFactor = s.cfg.SHRFactor
	}
	if req.MinSpacing == 0 {
		req.MinSpacing = s.cfg.MinSpacing
	}

	res, err := s.runner.Calculate(r.Context(), req)
	if err != nil {
		loggerFromContext(r.Context()).Warn("calculation failed", "err", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps structured error codes to HTTP statuses. Invalid inputs
// and out-of-range lookups are the client's fault; a malformed table is a
// server-side data problem surfaced as a bad request against this dataset.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidGeometry,
		errors.ErrCodeInvalidPhotometry, errors.ErrCodeOutOfRange:
		status = http.StatusUnprocessableEntity
	case errors.ErrCodeInvalidFormat, errors.ErrCodeMalformedTable:
		status = http.StatusBadRequest
	case errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}
	writeJSON(w, status, errorResponse{
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
