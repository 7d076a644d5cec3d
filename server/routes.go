package server

import (
	"context"
	"net/http"
	"time"

	"github.com/RemoteState/petstash-server/metrics"
	"github.com/RemoteState/petstash-server/middlewares"
	"github.com/RemoteState/petstash-server/models"
	"github.com/RemoteState/petstash-server/utils"
	"github.com/go-chi/chi"
)

const (
	readTimeout     = 15 * time.Second
	writeTimeout    = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

type Server struct {
	chi.Router
	server *http.Server
}

// SetupRoutes provides all the routes that can be used
func SetupRoutes() *Server {
	router := chi.NewRouter()
	router.Method(http.MethodGet, "/metrics", metrics.Handler())
	router.Route("/api", func(r chi.Router) {
		r.Use(middlewares.CommonMiddlewares()...)

		// health endpoint
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusOK, models.Response{Success: true})
		})

		// storefront
		r.Route("/store", func(store chi.Router) {
			store.Group(storeRoutes)
		})

		// back office
		r.Route("/admin", func(admin chi.Router) {
			admin.Group(adminRoutes)
		})
	})
	return &Server{Router: router}
}

// Run serves until Shutdown is called, returning http.ErrServerClosed in that case
func (svc *Server) Run(addr string) error {
	svc.server = &http.Server{
		Addr:         addr,
		Handler:      svc.Router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
	return svc.server.ListenAndServe()
}

func (svc *Server) Shutdown() error {
	if svc.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return svc.server.Shutdown(ctx)
}
