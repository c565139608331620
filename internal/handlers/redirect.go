package handlers

import (
	"errors"
	"net/http"

	"github.com/ByteOps02/URL-Shortener/internal/services"

	"github.com/gin-gonic/gin"
)

// RedirectToURL resolves a short code and redirects to the stored target
// verbatim. This is the only route whose success path carries no JSON body.
func (h *Handler) RedirectToURL(c *gin.Context) {
	shortCode := c.Param("shortCode")

	url, err := h.shortenerService.Resolve(shortCode)
	if err != nil {
		if errors.Is(err, services.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid URL"})
			return
		}
		h.logger.Error("Failed to resolve short code", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.Redirect(http.StatusFound, url.TargetURL)
}
