package main

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Hans4yu/commerce-insights/internal/dataset"
	"github.com/Hans4yu/commerce-insights/internal/geomap"
	"github.com/Hans4yu/commerce-insights/internal/logger"
)

type application struct {
	config    config
	logger    *logger.Logger
	data      *dataset.Store
	providers []geomap.Provider

	boundaryOnce sync.Once
	boundary     geomap.Boundary
}

type config struct {
	addr         string
	dataDir      string
	dataSource   string
	csvEncoding  dataset.Encoding
	boundaryFile string
	boundaryURL  string
	db           dbConfig
}

type dbConfig struct {
	addr         string
	maxOpenConns int
	maxIdleConns int
	maxIdleTime  string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)
		r.Get("/dataset/bounds", app.handleGetDatasetBounds)
		r.Route("/orders", func(r chi.Router) {
			r.Get("/daily", app.handleGetDailyOrders)
			r.Get("/products/ranking", app.handleGetProductRanking)
			r.Get("/products/counts", app.handleGetProductCounts)
			r.Get("/by-seller-city", app.handleGetOrdersBySellerCity)
		})
		r.Route("/customers", func(r chi.Router) {
			r.Get("/by-state", app.handleGetCustomersByState)
			r.Get("/by-city", app.handleGetCustomersByCity)
			r.Get("/rfm", app.handleGetRFM)
		})
		r.Route("/payments", func(r chi.Router) {
			r.Get("/types", app.handleGetPaymentTypes)
			r.Get("/installments/by-city", app.handleGetInstallmentsByCity)
		})
		r.Route("/satisfaction", func(r chi.Router) {
			r.Get("/reviews", app.handleGetReviewScores)
			r.Get("/delivery-time", app.handleGetDeliveryTimes)
			r.Get("/late", app.handleGetLateDeliveries)
			r.Get("/on-time", app.handleGetOnTimeDeliveries)
		})
		r.Route("/geo", func(r chi.Router) {
			r.Get("/points", app.handleGetGeoPoints)
			r.Get("/map.png", app.handleGetGeoMap)
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 120,
		ReadTimeout:  time.Second * 40,
		IdleTimeout:  time.Minute,
	}

	log.Printf("Server started on %s", app.config.addr)
	return srv.ListenAndServe()
}

// resolveBoundary runs the provider chain once per session and caches the
// result; the chain itself never fails.
func (app *application) resolveBoundary(ctx context.Context) geomap.Boundary {
	app.boundaryOnce.Do(func() {
		app.boundary = geomap.Resolve(ctx, app.providers, app.logger)
	})
	return app.boundary
}
