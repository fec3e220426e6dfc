// Package http carries the JSON API surface: routing, auth middleware,
// rate limiting, and per-owner summary caching.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/Abpa007/Expense-Tracker/internal/cache"
	"github.com/Abpa007/Expense-Tracker/internal/core"
	"github.com/Abpa007/Expense-Tracker/internal/log"
	"github.com/Abpa007/Expense-Tracker/internal/services"
)

// authRateLimit bounds credential attempts per IP per minute.
const authRateLimit = 60

// Options tunes server construction. Zero values fall back to defaults.
type Options struct {
	CacheTTL  time.Duration
	CacheSize int
	Logger    *log.Logger
}

type Server struct {
	http.Server

	expenses *services.ExpenseService
	accounts *services.AccountService

	rateLimiter *rateLimiter

	categoryCache *cache.LRUCache[[]core.CategoryTotal]
	dailyCache    *cache.LRUCache[[]core.DayTotal]
	cacheManager  *cache.Manager

	logger       *log.Logger
	structured   *log.StructuredLogger
	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(addr string, expenses *services.ExpenseService, accounts *services.AccountService, opts Options) *Server {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = 256
	}
	if opts.Logger == nil {
		opts.Logger = log.New(log.DefaultConfig())
	}

	logger := opts.Logger.WithComponent(log.ComponentHTTP)
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:           addr,
			Handler:        mux,
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: 64 << 10,
		},
		expenses:      expenses,
		accounts:      accounts,
		rateLimiter:   newRateLimiter(authRateLimit),
		categoryCache: cache.NewLRUCache[[]core.CategoryTotal](opts.CacheSize, opts.CacheTTL),
		dailyCache:    cache.NewLRUCache[[]core.DayTotal](opts.CacheSize, opts.CacheTTL),
		cacheManager:  cache.NewManager(),
		logger:        logger,
		structured:    log.NewStructuredLogger(logger),
	}

	s.cacheManager.Register(s.categoryCache)
	s.cacheManager.Register(s.dailyCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	mux.HandleFunc("POST /api/auth/register", s.withCommon(s.withRateLimit(s.handleRegister)))
	mux.HandleFunc("POST /api/auth/login", s.withCommon(s.withRateLimit(s.handleLogin)))
	mux.HandleFunc("GET /api/auth/profile", s.withCommon(s.withAuth(s.handleProfile)))
	mux.HandleFunc("GET /api/auth/validate", s.withCommon(s.withAuth(s.handleValidate)))

	mux.HandleFunc("POST /api/expenses", s.withCommon(s.withAuth(s.handleCreateExpense)))
	mux.HandleFunc("GET /api/expenses", s.withCommon(s.withAuth(s.handleListExpenses)))
	mux.HandleFunc("GET /api/expenses/all", s.withCommon(s.withAuth(s.handleListAllExpenses)))
	mux.HandleFunc("PUT /api/expenses/{id}", s.withCommon(s.withAuth(s.handleUpdateExpense)))
	mux.HandleFunc("DELETE /api/expenses/{id}", s.withCommon(s.withAuth(s.handleDeleteExpense)))

	mux.HandleFunc("GET /api/expenses/summary/categories", s.withCommon(s.withAuth(s.handleCategorySummary)))
	mux.HandleFunc("GET /api/expenses/summary/daily", s.withCommon(s.withAuth(s.handleDailySummary)))
	mux.HandleFunc("GET /api/expenses/export", s.withCommon(s.withAuth(s.handleExport)))

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)

	return s
}

// Shutdown stops the background routines, then the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.cacheManager.Stop()
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}
