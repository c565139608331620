package handlers

import (
	"errors"
	"net/http"

	"github.com/ByteOps02/URL-Shortener/internal/middleware"
	"github.com/ByteOps02/URL-Shortener/internal/services"

	"github.com/gin-gonic/gin"
)

type ShortenRequest struct {
	URL      string `json:"url" binding:"required,url"`
	Code     string `json:"code,omitempty"`
	DeviceID string `json:"deviceId,omitempty"`
}

// ShortenFree creates an anonymous link attributed to a client-supplied
// device id. The free-usage cap lives entirely in the client; the device id
// is recorded but never counted server-side.
func (h *Handler) ShortenFree(c *gin.Context) {
	var req ShortenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.DeviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Device ID is required for free tier"})
		return
	}

	dto := services.ShortenDTO{
		DeviceID:   &req.DeviceID,
		TargetURL:  req.URL,
		CustomCode: req.Code,
		IPAddress:  c.ClientIP(),
	}

	h.createAndRespond(c, dto)
}

// Shorten creates a link attributed to the authenticated user.
func (h *Handler) Shorten(c *gin.Context) {
	var req ShortenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)

	dto := services.ShortenDTO{
		UserID:     &user.ID,
		TargetURL:  req.URL,
		CustomCode: req.Code,
		IPAddress:  c.ClientIP(),
	}

	h.createAndRespond(c, dto)
}

func (h *Handler) createAndRespond(c *gin.Context, dto services.ShortenDTO) {
	newURL, err := h.shortenerService.CreateShortURL(dto)
	if err != nil {
		if errors.Is(err, services.ErrCodeTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to create short URL", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":        newURL.ID,
		"shortCode": newURL.ShortCode,
		"targetURL": newURL.TargetURL,
	})
}
