package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humamux"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/transactions-report/internal/handlers/v1/report"
	"github.com/carson-networks/transactions-report/internal/handlers/v1/seed"
	"github.com/carson-networks/transactions-report/internal/handlers/v1/status"
	"github.com/carson-networks/transactions-report/internal/handlers/v1/transaction"
	"github.com/carson-networks/transactions-report/internal/logging"
	"github.com/carson-networks/transactions-report/internal/service"
)

const seedPath = "/api/seed"

type Rest struct {
	Logger         *logrus.Logger
	Port           string
	Service        *service.Service
	Backend        string
	RequestTimeout time.Duration
	SeedTimeout    time.Duration
	AllowedOrigins []string

	serverOnce sync.Once
	server     *http.Server
}

// Handler builds the full HTTP handler: CORS around a mux router whose
// routes are logged and bounded by a deadline.
func (r *Rest) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return logging.LoggingWrapper(r.Logger, next)
	})
	router.Use(r.deadline)

	statusHandler := status.NewHandler(r.Backend)
	router.Handle("/status", &statusHandler).Name("Status")

	api := humamux.New(router, huma.DefaultConfig("Transactions API", "1.0.0"))
	status.RegisterWelcome(api)
	seed.NewSeedHandler(r.Service.Seed).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	report.NewStatisticsHandler(r.Service.Report).Register(api)
	report.NewBarChartHandler(r.Service.Report).Register(api)
	report.NewPieChartHandler(r.Service.Report).Register(api)
	report.NewCombinedHandler(r.Service.Report).Register(api)

	c := cors.New(cors.Options{
		AllowedOrigins: r.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(router)
}

// deadline bounds every request. Seeding downloads and rewrites the whole
// dataset, so it gets the seed timeout on top of the request timeout.
func (r *Rest) deadline(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		timeout := r.RequestTimeout
		if req.URL.Path == seedPath {
			timeout += r.SeedTimeout
		}
		if timeout <= 0 {
			next.ServeHTTP(w, req)
			return
		}

		ctx, cancel := context.WithTimeout(req.Context(), timeout)
		defer cancel()
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

func (r *Rest) httpServer() *http.Server {
	r.serverOnce.Do(func() {
		r.server = &http.Server{
			Addr:              ":" + r.Port,
			Handler:           r.Handler(),
			ReadTimeout:       time.Duration(30) * time.Second,
			WriteTimeout:      r.RequestTimeout + r.SeedTimeout + time.Duration(5)*time.Second,
			IdleTimeout:       time.Duration(10) * time.Second,
			ReadHeaderTimeout: time.Duration(10) * time.Second,
		}
	})
	return r.server
}

// Serve blocks until the server stops. A clean Shutdown returns nil.
func (r *Rest) Serve() error {
	server := r.httpServer()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (r *Rest) Shutdown(ctx context.Context) error {
	return r.httpServer().Shutdown(ctx)
}
