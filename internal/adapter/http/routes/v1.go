package routes

import (
	"meshguard_api/internal/adapter/http/handlers"
	"meshguard_api/internal/adapter/http/middleware"
	"meshguard_api/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth        = "/auth"
	PathQuotes      = "/quotes"
	PathPayments    = "/payments"
	PathAdmin       = "/admin"
	PathServiceArea = "/service-area"
	PathContact     = "/contact"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}

func addAuthRoutes(rg *gin.RouterGroup, deps Dependencies) {
	h := handlers.NewAuthHandler(deps.Auth)
	limit := middleware.RateLimit(deps.AuthLimiter)

	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", limit, h.Register)
		auth.POST("/login", limit, h.Login)
		auth.GET("/me", middleware.RequireAuth(deps.Tokens), h.Me)
	}
}

func addPublicRoutes(rg *gin.RouterGroup, deps Dependencies) {
	area := handlers.NewServiceAreaHandler(deps.ServiceArea)
	contact := handlers.NewContactHandler(deps.Contact)

	rg.GET(PathServiceArea, area.Check)
	rg.POST(PathContact, middleware.RateLimit(deps.AuthLimiter), contact.Submit)
}

func addCustomerRoutes(rg *gin.RouterGroup, deps Dependencies) {
	quotes := handlers.NewQuoteHandler(deps.Quotes)
	payments := handlers.NewPaymentHandler(deps.Payments)

	q := rg.Group(PathQuotes, middleware.RequireAuth(deps.Tokens))
	{
		q.POST("", quotes.SubmitQuote)
		q.GET("", quotes.ListMyQuotes)
		q.GET("/:quote_id", quotes.GetQuote)
		q.GET("/:quote_id/pdf", quotes.QuotePDF)
	}

	p := rg.Group(PathPayments, middleware.RequireAuth(deps.Tokens))
	{
		p.POST("", payments.InitiatePayment)
		p.GET("", payments.ListMyPayments)
		p.GET("/:payment_id", payments.GetPaymentStatus)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, deps Dependencies) {
	quotes := handlers.NewQuoteHandler(deps.Quotes)
	auth := handlers.NewAuthHandler(deps.Auth)
	contact := handlers.NewContactHandler(deps.Contact)
	stats := handlers.NewAdminHandler(deps.Admin)

	admin := rg.Group(PathAdmin, middleware.RequireAuth(deps.Tokens), middleware.RequireRole(entities.RoleAdmin))
	{
		admin.GET("/quotes", quotes.ListAllQuotes)
		admin.PATCH("/quotes/:quote_id/status", quotes.SetQuoteStatus)
		admin.GET("/users", auth.ListUsers)
		admin.GET("/contact-messages", contact.List)
		admin.GET("/stats", stats.Stats)
	}
}
