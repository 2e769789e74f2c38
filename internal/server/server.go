package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/orvane/Gemstore_Go/internal/catalog"
	"github.com/orvane/Gemstore_Go/internal/database"
	"github.com/orvane/Gemstore_Go/internal/equipment"
	"github.com/orvane/Gemstore_Go/internal/fulfillment"
	"github.com/orvane/Gemstore_Go/internal/handler"
	"github.com/orvane/Gemstore_Go/internal/inventory"
	"github.com/orvane/Gemstore_Go/internal/logger"
	"github.com/orvane/Gemstore_Go/internal/metrics"
	"github.com/orvane/Gemstore_Go/internal/profile"
	"github.com/orvane/Gemstore_Go/internal/purchase"
	"github.com/orvane/Gemstore_Go/internal/wallet"
)

type Server struct {
	httpServer         *http.Server
	dbPool             database.Pool
	walletService      wallet.Service
	catalogService     catalog.Service
	purchaseService    purchase.Service
	inventoryService   inventory.Service
	fulfillmentService fulfillment.Service
	profileService     profile.Service
	equipmentService   equipment.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, walletService wallet.Service, catalogService catalog.Service, purchaseService purchase.Service, inventoryService inventory.Service, fulfillmentService fulfillment.Service, profileService profile.Service, equipmentService equipment.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Wallet routes
		r.Route("/wallet", func(r chi.Router) {
			r.Post("/register", handler.HandleRegisterAccount(walletService))
			r.Get("/", handler.HandleGetWallet(walletService))
			r.Get("/ledger", handler.HandleGetLedger(walletService))
			r.Post("/adjust", handler.HandleAdjustBalance(walletService))
		})

		// Catalog routes
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", handler.HandleListCatalog(catalogService))
			r.Get("/item", handler.HandleGetCatalogItem(catalogService))
		})

		// Purchase routes
		r.Post("/purchases", handler.HandleCreatePurchase(purchaseService))
		r.Get("/orders", handler.HandleListOrders(purchaseService))
		r.Route("/orders/{orderID}", func(r chi.Router) {
			r.Get("/", handler.HandleGetOrder(purchaseService))
			r.Get("/fulfillments", handler.HandleListOrderFulfillments(fulfillmentService))
			r.Post("/fulfillments/retry", handler.HandleRetryFulfillments(fulfillmentService))
		})

		// Fulfillment routes (worker callback included)
		r.Route("/fulfillments/{fulfillmentID}", func(r chi.Router) {
			r.Get("/", handler.HandleGetFulfillment(fulfillmentService))
			r.Post("/resolve", handler.HandleResolveFulfillment(fulfillmentService))
		})

		// Inventory routes
		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", handler.HandleGetInventory(inventoryService))
			r.Post("/use", handler.HandleUseItem(inventoryService))
		})

		// Profile and equipment routes
		r.Route("/profiles", func(r chi.Router) {
			r.Post("/", handler.HandleCreateProfile(profileService))
			r.Get("/", handler.HandleListProfiles(profileService))
			r.Get("/active", handler.HandleGetActiveProfile(profileService))

			r.Route("/{profileID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetProfile(profileService))
				r.Delete("/", handler.HandleDeleteProfile(profileService))
				r.Post("/activate", handler.HandleActivateProfile(profileService))

				r.Route("/equipment", func(r chi.Router) {
					r.Get("/", handler.HandleListEquipped(equipmentService))
					r.Post("/", handler.HandleEquipItem(equipmentService))
					r.Delete("/item/{itemID}", handler.HandleUnequipItem(equipmentService))
					r.Delete("/slot/{slot}", handler.HandleUnequipSlot(equipmentService))
				})
			})
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:             dbPool,
		walletService:      walletService,
		catalogService:     catalogService,
		purchaseService:    purchaseService,
		inventoryService:   inventoryService,
		fulfillmentService: fulfillmentService,
		profileService:     profileService,
		equipmentService:   equipmentService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
