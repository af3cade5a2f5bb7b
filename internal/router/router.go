package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"mdf_gestor/internal/controller"
	"mdf_gestor/internal/middleware"

	_ "mdf_gestor/docs"
)

// Controllers groups everything the router needs to wire.
type Controllers struct {
	Board  *controller.BoardController
	Brand  *controller.BrandController
	Line   *controller.LineController
	Import *controller.ImportController
	Auth   *controller.AuthController
}

// Options toggles the optional surfaces of the router.
type Options struct {
	// UploadDir, when set, is served as static files under /uploads
	// (local storage provider).
	UploadDir string
	// RequireAuth protects mutating catalog routes behind the JWT
	// middleware. Read routes stay open either way.
	RequireAuth bool
}

// SetupRouter registers all routes.
func SetupRouter(logger *zap.Logger, ctls *Controllers, authGuard gin.HandlerFunc, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if opts.UploadDir != "" {
		r.Static("/uploads", opts.UploadDir)
	}

	guard := authGuard
	if !opts.RequireAuth || guard == nil {
		guard = middleware.NoAuth()
	}

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", ctls.Auth.Login)
		}

		chapas := api.Group("/chapas")
		{
			chapas.GET("", ctls.Board.GetBoards)
			chapas.GET("/template", ctls.Import.DownloadTemplate)
			chapas.GET("/:id", ctls.Board.GetBoard)

			chapas.POST("", guard, ctls.Board.CreateBoard)
			chapas.POST("/importar", guard, ctls.Import.ImportBoards)
			chapas.POST("/:id/precos/sugerir", guard, ctls.Board.SuggestPrices)
			chapas.PUT("/:id", guard, ctls.Board.UpdateBoard)
			chapas.DELETE("/:id", guard, ctls.Board.DeleteBoard)
		}

		marcas := api.Group("/marcas")
		{
			marcas.GET("", ctls.Brand.GetBrands)
			marcas.POST("", guard, ctls.Brand.CreateBrand)
		}

		linhas := api.Group("/linhas")
		{
			linhas.GET("", ctls.Line.GetLines)
			linhas.POST("", guard, ctls.Line.CreateLine)
		}
	}

	return r
}
