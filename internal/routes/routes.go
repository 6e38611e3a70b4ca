package routes

import (
	"net/http"

	"trackit-be/internal/config"
	"trackit-be/internal/controllers"
	"trackit-be/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Controllers groups the handlers registered on the router.
type Controllers struct {
	Auth   *controllers.AuthController
	Scan   *controllers.ScanController
	QRCode *controllers.QRCodeController
}

// Setup builds the gin engine from the startup configuration.
func Setup(cfg *config.Config, logger *zap.Logger, ctrl Controllers) *gin.Engine {
	router := gin.New()

	// CORS runs globally so preflight requests are answered for every route,
	// including ones without an OPTIONS handler.
	router.Use(
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.AllowedOrigins),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	router.POST("/scan", ctrl.Scan.Scan)
	router.POST("/login", ctrl.Auth.Login)
	router.GET("/qrcode/:course", ctrl.QRCode.GenerateQRCode)

	return router
}
