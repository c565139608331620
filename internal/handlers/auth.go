package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ByteOps02/URL-Shortener/internal/models"
	"github.com/ByteOps02/URL-Shortener/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SignupRequest struct {
	FirstName string `json:"firstname" binding:"required"`
	LastName  string `json:"lastname" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=5"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=5"`
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	salt, err := utils.GenerateSalt()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	newUser := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Salt:         salt,
		PasswordHash: utils.HashPassword(req.Password, salt),
	}

	// The unique constraint on email decides duplicates; a pre-select would
	// race with concurrent signups.
	if err := h.db.Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Reveals that the address is registered. Kept as original
			// behavior, see DESIGN.md.
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("User with email %s already exists!", req.Email),
			})
			return
		}
		h.logger.Error("Failed to create user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	h.auditService.LogAction(&newUser.ID, "SIGNUP", newUser.Email, nil, c.ClientIP())

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{"userId": newUser.ID},
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	result := h.db.Where("email = ?", req.Email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("User with email %s does not exist", req.Email),
			})
		} else {
			h.logger.Error("Failed to look up user", "error", result.Error)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		}
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Salt, user.PasswordHash) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Password"})
		return
	}

	tokenString, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.logger.Error("Failed to issue token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	h.auditService.LogAction(&user.ID, "LOGIN", user.Email, nil, c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}
