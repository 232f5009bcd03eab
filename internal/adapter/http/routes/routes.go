package routes

import (
	"log"
	"net/http"

	_ "meshguard_api/docs" // registers the swagger spec
	"meshguard_api/internal/adapter/http/middleware"
	"meshguard_api/internal/infrastructure/metrics"
	"meshguard_api/internal/infrastructure/ratelimit"
	"meshguard_api/internal/usecase"
	"meshguard_api/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies is everything the router needs; main builds it from config.
type Dependencies struct {
	Auth        usecase.IAuthUseCase
	Quotes      usecase.IQuoteUseCase
	Payments    usecase.IPaymentUseCase
	ServiceArea usecase.IServiceAreaUseCase
	Contact     usecase.IContactUseCase
	Admin       usecase.IAdminUseCase

	Tokens      interfaces.ITokenIssuer
	AuthLimiter ratelimit.Limiter
	CORSOrigins []string
}

// NewRouter builds the gin engine with every route mounted under /v1.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, deps)
	addPublicRoutes(v1, deps)
	addCustomerRoutes(v1, deps)
	addAdminRoutes(v1, deps)

	return router
}

func setMiddlewares(router *gin.Engine, deps Dependencies) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.CORS(deps.CORSOrigins))
	router.Use(metrics.Middleware())
}
