package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inventory-tracker/internal/config"
	"inventory-tracker/internal/database"
	"inventory-tracker/internal/handler"
	"inventory-tracker/internal/repository"
	"inventory-tracker/internal/router"
	"inventory-tracker/internal/service"
	"inventory-tracker/internal/testutil"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// TestServer bundles the assembled HTTP stack with its database.
type TestServer struct {
	Pool    *pgxpool.Pool
	Handler http.Handler
}

// SetupTestServer starts PostgreSQL, applies the schema through the same
// path the binary uses, and wires every layer together.
func SetupTestServer(t *testing.T) *TestServer {
	t.Helper()

	ctx := context.Background()
	logger := zerolog.Nop()

	connStr := testutil.StartPostgres(t)

	pool, err := database.NewPool(ctx, config.DatabaseConfig{
		URL:             connStr,
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}, logger)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.EnsureSchema(ctx, pool, logger))

	productService := service.NewProductService(repository.NewProductRepository(pool, logger), logger)
	stockService := service.NewStockService(repository.NewStockRepository(pool, logger), logger)
	saleService := service.NewSaleService(repository.NewSaleRepository(pool, logger), logger)

	return &TestServer{
		Pool: pool,
		Handler: router.New(router.Handlers{
			Product: handler.NewProductHandler(productService, logger),
			Stock:   handler.NewStockHandler(stockService, logger),
			Sale:    handler.NewSaleHandler(saleService, logger),
			System:  handler.NewSystemHandler(pool, logger),
		}, logger),
	}
}

// Reset empties every table between subtests.
func (s *TestServer) Reset(t *testing.T) {
	t.Helper()
	testutil.Truncate(t, s.Pool)
}

// Do sends a request with an optional raw JSON body.
func (s *TestServer) Do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.Handler.ServeHTTP(w, req)
	return w
}

// Create posts body to path, expects 201 and returns the new id.
func (s *TestServer) Create(t *testing.T, path, body string) int64 {
	t.Helper()

	w := s.Do(t, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created handler.CreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	return created.ID
}
