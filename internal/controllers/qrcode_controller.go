package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"trackit-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

type QRCodeController struct {
	attendanceService service.AttendanceService
	imageSize         int
}

func NewQRCodeController(attendanceService service.AttendanceService, imageSize int) *QRCodeController {
	return &QRCodeController{
		attendanceService: attendanceService,
		imageSize:         imageSize,
	}
}

// GenerateQRCode handles GET /qrcode/:course - issues a fresh attendance code as a PNG
func (qc *QRCodeController) GenerateQRCode(c *gin.Context) {
	code, err := qc.attendanceService.GenerateCode(c.Param("course"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCourse) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate attendance code",
		})
		return
	}

	// Medium error recovery keeps the code readable from a projector
	qrCode, err := qrcode.New(code.Payload, qrcode.Medium)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code",
		})
		return
	}

	pngData, err := qrCode.PNG(qc.imageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code image",
		})
		return
	}

	c.Header("X-QR-Code", code.Payload)
	c.Header("X-QR-Expires-In", strconv.Itoa(int(code.RotateEvery/time.Second)))
	c.Header("Expires", code.ExpiresAt().UTC().Format(http.TimeFormat))
	c.Header("Cache-Control", "no-store")
	c.Header("Content-Disposition", "inline; filename=attendance.png")
	c.Data(http.StatusOK, "image/png", pngData)
}
