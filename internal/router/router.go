package router

import (
	"net/http"

	"inventory-tracker/internal/handler"
	"inventory-tracker/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers the router dispatches to.
type Handlers struct {
	Product *handler.ProductHandler
	Stock   *handler.StockHandler
	Sale    *handler.SaleHandler
	System  *handler.SystemHandler
}

// resource is the set of CRUD endpoints mounted under one collection path.
type resource interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetAll(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.System.Health)
	mux.HandleFunc("GET /api/hello", h.System.Hello)

	mount(mux, "/api/products", h.Product)
	mount(mux, "/api/stocks", h.Stock)
	mount(mux, "/api/sales", h.Sale)

	// Apply middleware in order: Recovery -> Logging -> RequestID -> CORS
	var handler http.Handler = mux
	handler = middleware.CORS(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}

// mount registers collection routes both with and without a trailing slash.
func mount(mux *http.ServeMux, base string, res resource) {
	for _, path := range []string{base, base + "/{$}"} {
		mux.HandleFunc("POST "+path, res.Create)
		mux.HandleFunc("GET "+path, res.GetAll)
	}

	item := base + "/{id}"
	mux.HandleFunc("GET "+item, res.GetByID)
	mux.HandleFunc("PUT "+item, res.Update)
	mux.HandleFunc("DELETE "+item, res.Delete)
}
