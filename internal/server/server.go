package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/BrandishEconomy/internal/auction"
	"github.com/osse101/BrandishEconomy/internal/effect"
	"github.com/osse101/BrandishEconomy/internal/handler"
	"github.com/osse101/BrandishEconomy/internal/inventory"
	"github.com/osse101/BrandishEconomy/internal/ledger"
	"github.com/osse101/BrandishEconomy/internal/logger"
	"github.com/osse101/BrandishEconomy/internal/metrics"
	"github.com/osse101/BrandishEconomy/internal/pricing"
)

// Services are the economy services the routes call into
type Services struct {
	Ledger    ledger.Service
	Inventory inventory.Service
	Prices    pricing.Engine
	Effects   effect.Service
	Auctions  auction.Service
}

// Options configure the HTTP listener and its security middleware
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	ServiceName    string
	Version        string
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, store handler.Pinger, svcs Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, store, svcs),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the middleware stack and every route
func NewRouter(opts Options, store handler.Pinger, svcs Services) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in the order defined (outermost first)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))
	r.Get("/version", handler.HandleVersion(opts.ServiceName, opts.Version))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/user", handler.HandleGetUser(svcs.Ledger))
		r.Get("/leaderboard", handler.HandleLeaderboard(svcs.Ledger))
		r.Get("/transactions", handler.HandleGetTransactions(svcs.Ledger))

		r.Route("/money", func(r chi.Router) {
			r.Post("/add", handler.HandleAddMoney(svcs.Ledger))
			r.Post("/remove", handler.HandleRemoveMoney(svcs.Ledger))
			r.Post("/transfer", handler.HandleTransferMoney(svcs.Ledger))
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", handler.HandleGetInventory(svcs.Inventory))
			r.Post("/add", handler.HandleAddItem(svcs.Inventory))
			r.Post("/remove", handler.HandleRemoveItem(svcs.Inventory))
		})

		r.Route("/shop", func(r chi.Router) {
			r.Post("/purchase", handler.HandlePurchaseItem(svcs.Inventory))
			r.Post("/sell", handler.HandleSellItem(svcs.Inventory))
			r.Post("/sell/quote", handler.HandleQuoteSell(svcs.Inventory))
			r.Post("/sell/confirm", handler.HandleConfirmSell(svcs.Inventory))
		})

		r.Route("/prices", func(r chi.Router) {
			r.Get("/", handler.HandleGetPrices(svcs.Prices))
			r.Get("/{itemID}", handler.HandleGetItemPrice(svcs.Prices))
		})

		r.Route("/effects", func(r chi.Router) {
			r.Get("/", handler.HandleGetActiveEffects(svcs.Effects))
			r.Get("/stats", handler.HandleGetStats(svcs.Effects))
			r.Post("/apply", handler.HandleApplyEffects(svcs.Effects))
			r.Post("/use", handler.HandleUseItem(svcs.Effects))
		})

		r.Route("/auctions", func(r chi.Router) {
			r.Get("/", handler.HandleGetAuctions(svcs.Auctions))
			r.Post("/", handler.HandleCreateAuction(svcs.Auctions))
			r.Post("/settle-expired", handler.HandleSettleExpired(svcs.Auctions))

			r.Route("/{auctionID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetAuction(svcs.Auctions))
				r.Post("/bid", handler.HandlePlaceBid(svcs.Auctions))
				r.Post("/cancel", handler.HandleCancelAuction(svcs.Auctions))
				r.Post("/settle", handler.HandleSettleAuction(svcs.Auctions))
			})
		})
	})

	return r
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
		statusCode:     http.StatusOK,
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
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
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
