package controllers

import (
	"net/http"

	"trackit-be/internal/models"
	"trackit-be/internal/service"

	"github.com/gin-gonic/gin"
)

type ScanController struct {
	scanService service.ScanService
}

func NewScanController(scanService service.ScanService) *ScanController {
	return &ScanController{
		scanService: scanService,
	}
}

// Scan handles POST /scan - echoes the scanned code for any JSON object body
func (sc *ScanController) Scan(c *gin.Context) {
	var req models.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  models.StatusError,
			"message": "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ScanResponse{
		Status: models.StatusSuccess,
		Code:   sc.scanService.Receive(req.Code),
	})
}
