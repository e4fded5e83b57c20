package handler

import (
	"slices"
	"time"

	"gold-ledger/internal/adapter/http/middleware"
	"gold-ledger/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	AllotmentSvc   ports.AllotmentService
	ReportSvc      ports.ReportService
	RateOracle     ports.RateOracle
	TokenSvc       ports.TokenService
	RateLimiter    ports.RateLimiter // nil = rate limiting disabled
	PublicLimit    *middleware.RateLimitRule
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	StorageDriver  string
	CORSOrigins    []string
	MaxBodyBytes   int64
	Mode           string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}
	if deps.MaxBodyBytes <= 0 {
		deps.MaxBodyBytes = 1 << 20
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(cors.New(corsConfig(deps.CORSOrigins)))
	r.Use(middleware.MaxBodySize(deps.MaxBodyBytes))

	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.StorageDriver, deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()
	if deps.PublicLimit != nil {
		rules["public"] = *deps.PublicLimit
	}

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimiter, group, rule, deps.Logger)
	}

	customers := NewCustomerHandler(deps.WalletSvc)
	deposits := NewDepositHandler(deps.WalletSvc)
	sells := NewSellHandler(deps.WalletSvc)
	coins := NewCoinHandler(deps.WalletSvc)
	allotments := NewAllotmentHandler(deps.AllotmentSvc)
	reports := NewReportHandler(deps.ReportSvc)
	rates := NewRateHandler(deps.RateOracle, deps.WalletSvc)

	v1 := r.Group("/api/v1")

	// --- Public routes ---
	public := v1.Group("", rl("public"))
	{
		public.POST("/deposits", rl("writes"), deposits.Record)
		public.POST("/sells", rl("writes"), sells.Record)
		public.POST("/coin-purchases", rl("writes"), coins.Create)

		public.GET("/customers/:phone/balance", customers.Balance)
		public.GET("/customers/:phone/deposits", deposits.List)
		public.GET("/customers/:phone/coin-purchases", coins.History)
		public.GET("/customers/:phone/allotments", allotments.ByCustomer)
		public.GET("/customers/:phone/report", rl("reports"), reports.Generate)

		public.GET("/rates", rates.History)
		public.GET("/rates/current", rates.Current)
		public.GET("/rates/convert", rates.Convert)
		public.GET("/charges", rates.Charges)
	}

	// --- Operator routes (JWT, operator role) ---
	operator := v1.Group("",
		middleware.JWTAuth(deps.TokenSvc, deps.Logger),
		middleware.RequireRole(ports.RoleOperator),
		rl("operator"),
	)
	{
		operator.POST("/customers", customers.Register)

		operator.POST("/deposits/:id/confirm", deposits.Confirm)
		operator.POST("/deposits/:id/cancel", deposits.Cancel)
		operator.POST("/sells/:id/approve", sells.Approve)
		operator.POST("/sells/:id/cancel", sells.Cancel)
		operator.POST("/coin-purchases/:id/approve", coins.Approve)
		operator.POST("/coin-purchases/:id/cancel", coins.Cancel)

		operator.POST("/allotments", allotments.Allot)

		operator.POST("/rates", rates.Record)
		operator.POST("/rates/refresh", rates.Refresh)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
