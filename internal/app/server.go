package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	crdberrors "github.com/cockroachdb/errors"

	"github.com/vk/samudra/internal/annotate"
	"github.com/vk/samudra/internal/ctxlog"
	"github.com/vk/samudra/internal/lexicon"
)

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// Handler routes the HTTP API.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", a.healthHandler)
	mux.Handle("GET /metrics", a.metrics.Handler())
	mux.HandleFunc("POST /parse", a.parseHandler)
	mux.HandleFunc("POST /konsep/{lemma}", a.konsepHandler)
	return mux
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

func (a *App) parseHandler(w http.ResponseWriter, r *http.Request) {
	a.handle(w, r, "")
}

// konsepHandler drafts the body as a konsep of the lemma in the path. A
// blank lemma such as "%20" is rejected by the builder.
func (a *App) konsepHandler(w http.ResponseWriter, r *http.Request) {
	a.handle(w, r, r.PathValue("lemma"))
}

// handle processes the request body as one input.
func (a *App) handle(w http.ResponseWriter, r *http.Request, lemma string) {
	ctx := ctxlog.WithLogger(r.Context(), a.logger.With("path", r.URL.Path))
	logger := ctxlog.FromContext(ctx)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			a.writeJSON(w, http.StatusRequestEntityTooLarge, errorPayload{Error: err.Error()})
			return
		}
		a.writeJSON(w, http.StatusBadRequest, errorPayload{Error: err.Error()})
		return
	}

	result, err := a.process(ctx, lemma, string(body))
	if err != nil {
		status := http.StatusInternalServerError
		if crdberrors.Is(err, annotate.ErrMalformedInput) || crdberrors.Is(err, lexicon.ErrInvalidDraft) {
			status = http.StatusBadRequest
		} else {
			logger.Error("Request failed.", "error", err)
		}
		a.writeJSON(w, status, newErrorPayload(err))
		return
	}
	a.writeJSON(w, http.StatusOK, result)
}

func (a *App) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Warn("Failed to write response.", "error", err)
	}
}

// serve runs the HTTP server until ctx is done, then shuts it down
// gracefully.
func (a *App) serve(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	addr := fmt.Sprintf(":%d", a.config.ServePort)

	a.httpServer = &http.Server{
		Addr:              addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "address", fmt.Sprintf("http://localhost%s", addr))
		// ListenAndServe returns ErrServerClosed on graceful shutdown.
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	return a.closeServer(ctx)
}

func (a *App) closeServer(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	if a.httpServer == nil {
		logger.Debug("Server was not running.")
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("Shutting down server...")
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
		return err
	}

	logger.Debug("Server shut down gracefully.")
	return nil
}
