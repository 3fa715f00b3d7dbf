package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"aircnc/pkg/config"
	"aircnc/pkg/contracts"
	"aircnc/pkg/middleware"

	"github.com/julienschmidt/httprouter"
)

type Application struct {
	cfg           *config.Config
	server        *http.Server
	shutdownHooks []func()
}

func NewApplication(cfg *config.Config) *Application {
	return &Application{cfg: cfg}
}

func (a *Application) SetApp(handlers ...contracts.Handler) {
	router := httprouter.New()
	for _, h := range handlers {
		h.RegisterRoutes(router)
	}

	var appHandler http.Handler = router
	appHandler = middleware.ContentTypeValidation(a.cfg.Log)(appHandler)
	appHandler = middleware.CORS()(appHandler)
	appHandler = middleware.RequestLogging(a.cfg.Log)(appHandler)
	appHandler = middleware.Recovery(a.cfg.Log)(appHandler)

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      appHandler,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

// OnShutdown registers a hook run during graceful shutdown, after the HTTP
// server stops accepting requests and before the database connection is
// released. Hooks run in registration order.
func (a *Application) OnShutdown(hook func()) {
	a.shutdownHooks = append(a.shutdownHooks, hook)
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		a.cfg.Log.Fatal("HTTP server failed", "error", err)

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig)
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	a.cfg.Log.Info("Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Fatal("Could not stop server gracefully", "error", err)
		}
	}

	a.cfg.Log.Info("Stopping background workers...")
	for _, hook := range a.shutdownHooks {
		hook()
	}
	a.cfg.Log.Info("Background workers stopped")

	a.cfg.GracefulShutdown()

	a.cfg.Log.Info("Server stopped gracefully")
}
