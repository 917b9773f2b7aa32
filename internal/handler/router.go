package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"charmforge/internal/domain/user"
	"charmforge/internal/handler/api"
	"charmforge/internal/handler/middleware"
	"charmforge/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	catalogHandler *api.CatalogHandler,
	designHandler *api.DesignHandler,
	checkoutHandler *api.CheckoutHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, catalogHandler, designHandler, checkoutHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	catalogHandler *api.CatalogHandler,
	designHandler *api.DesignHandler,
	checkoutHandler *api.CheckoutHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		// Catalog reads are public; OptionalAuth lets admins see inactive items.
		catalog := apiGroup.Group("")
		catalog.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(catalog, []route{
				{Method: http.MethodGet, Path: "/bracelets", Handler: catalogHandler.ListBracelets},
				{Method: http.MethodGet, Path: "/bracelets/:slug", Handler: catalogHandler.GetBracelet},
				{Method: http.MethodGet, Path: "/charms", Handler: catalogHandler.ListCharms},
			})
		}

		// Guests can design without an account; a token attaches ownership.
		designs := apiGroup.Group("/designs")
		designs.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(designs, []route{
				{Method: http.MethodPost, Path: "", Handler: designHandler.CreateDesign},
				{Method: http.MethodGet, Path: "/:id", Handler: designHandler.GetDesign},
				{Method: http.MethodGet, Path: "/:id/preview", Handler: designHandler.PreviewDesign},
			})
		}

		checkout := apiGroup.Group("/checkout")
		checkout.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "", Handler: checkoutHandler.PrepareCheckout},
				{Method: http.MethodPost, Path: "/finalize", Handler: checkoutHandler.FinalizeOrder},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/bracelets", Handler: catalogHandler.CreateBracelet},
				{Method: http.MethodPatch, Path: "/bracelets/:id", Handler: catalogHandler.UpdateBracelet},
				{Method: http.MethodPost, Path: "/charms", Handler: catalogHandler.CreateCharm},
				{Method: http.MethodPatch, Path: "/charms/:id", Handler: catalogHandler.UpdateCharm},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
