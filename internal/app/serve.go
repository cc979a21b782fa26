package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"
	"github.com/specialistvlad/rosdocgo/internal/anchor"
	"github.com/specialistvlad/rosdocgo/internal/ctxlog"
	"github.com/specialistvlad/rosdocgo/internal/doctree"
	"github.com/specialistvlad/rosdocgo/internal/export"
	"github.com/specialistvlad/rosdocgo/internal/model"
)

const shutdownTimeout = 5 * time.Second

// Serve loads the declarations and runs the preview server until ctx is
// cancelled, then shuts it down gracefully.
func (a *App) Serve(ctx context.Context) error {
	ctx = a.context(ctx)
	logger := ctxlog.FromContext(ctx)

	if err := a.Load(ctx); err != nil {
		return fmt.Errorf("failed to load documentation: %w", err)
	}

	server := &http.Server{
		Addr:    a.config.Addr,
		Handler: a.Router(ctx),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("📚 Preview server starting", "address", fmt.Sprintf("http://%s/packages", a.config.Addr))
		// ListenAndServe returns ErrServerClosed on graceful shutdown.
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			logger.Error("Preview server failed unexpectedly", "error", err)
			return fmt.Errorf("preview server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("📚 Shutting down preview server...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Preview server shutdown failed", "error", err)
		return err
	}
	logger.Debug("Preview server shut down gracefully.")
	return nil
}

// Router returns the preview server routes. ctx must carry the app logger.
func (a *App) Router(ctx context.Context) *mux.Router {
	h := &handlers{app: a, ctx: ctx}
	router := mux.NewRouter()
	router.HandleFunc("/health", h.health).Methods(http.MethodGet)
	router.HandleFunc("/packages", h.listPackages).Methods(http.MethodGet)
	router.HandleFunc("/packages/{name}", h.packageHTML).Methods(http.MethodGet)
	router.HandleFunc("/packages/{name}/{format}", h.packageFormat).Methods(http.MethodGet)
	router.HandleFunc("/sections/{id}", h.section).Methods(http.MethodGet)
	return router
}

type handlers struct {
	app *App
	ctx context.Context
}

// health handles GET /health
func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	ctxlog.FromContext(h.ctx).Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// listPackages handles GET /packages
func (h *handlers) listPackages(w http.ResponseWriter, r *http.Request) {
	names := []string{}
	for _, pkg := range h.app.build.Registry().Packages() {
		names = append(names, pkg.Name)
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(names); err != nil {
		ctxlog.FromContext(h.ctx).Error("Failed to encode package list", "error", err)
	}
}

// packageHTML handles GET /packages/{name}
func (h *handlers) packageHTML(w http.ResponseWriter, r *http.Request) {
	h.exportPackage(w, mux.Vars(r)["name"], export.FormatHTML)
}

// packageFormat handles GET /packages/{name}/{format}
func (h *handlers) packageFormat(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	h.exportPackage(w, vars["name"], vars["format"])
}

// section handles GET /sections/{id}, redirecting an anchor such as
// exec_planner to the HTML page of the package that holds it.
func (h *handlers) section(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	a, err := anchor.Parse(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pkg, err := h.packageOf(a)
	if err != nil {
		http.Error(w, "section not found: "+id, http.StatusNotFound)
		return
	}
	target := "/packages/" + url.PathEscape(pkg) + "#" + url.PathEscape(a.String())
	http.Redirect(w, r, target, http.StatusFound)
}

// packageOf returns the name of the package whose page renders a.
func (h *handlers) packageOf(a anchor.Anchor) (string, error) {
	reg := h.app.build.Registry()
	switch a.Kind {
	case anchor.KindExecutable:
		exec, err := reg.ExecutableByName(a.Name)
		if err != nil {
			return "", err
		}
		return exec.Package, nil
	case anchor.KindLaunch:
		launch, err := reg.LaunchByName(a.Name)
		if err != nil {
			return "", err
		}
		return launch.Package, nil
	default:
		pkg, err := reg.Package(a.Name)
		if err != nil {
			return "", err
		}
		return pkg.Name, nil
	}
}

func (h *handlers) exportPackage(w http.ResponseWriter, name, format string) {
	logger := ctxlog.FromContext(h.ctx)

	exporter, err := export.New(format, export.Options{Title: name, Style: "notty"})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	root, err := h.app.build.RenderPackage(name)
	if err != nil {
		if errors.Is(err, model.ErrUnknownEntity) {
			http.Error(w, "package not found: "+name, http.StatusNotFound)
			return
		}
		http.Error(w, "failed to render package: "+err.Error(), http.StatusInternalServerError)
		return
	}

	data, err := exporter.Export([]*doctree.Node{root})
	if err != nil {
		logger.Error("Export failed", "package", name, "format", format, "error", err)
		http.Error(w, "failed to export package: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", exporter.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
