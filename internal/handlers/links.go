package handlers

import (
	"errors"
	"net/http"

	"github.com/ByteOps02/URL-Shortener/internal/middleware"
	"github.com/ByteOps02/URL-Shortener/internal/services"

	"github.com/gin-gonic/gin"
)

// ListCodes returns every link owned by the authenticated user.
func (h *Handler) ListCodes(c *gin.Context) {
	user := middleware.CurrentUser(c)

	codes, err := h.shortenerService.ListByUser(user.ID)
	if err != nil {
		h.logger.Error("Failed to list links", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"codes": codes})
}

// DeleteLink deletes a link by id, but only when the caller owns it. A
// foreign or unknown id gets the same not-found answer.
func (h *Handler) DeleteLink(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := c.Param("id")

	if err := h.shortenerService.Delete(id, user.ID); err != nil {
		if errors.Is(err, services.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
			return
		}
		h.logger.Error("Failed to delete link", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
