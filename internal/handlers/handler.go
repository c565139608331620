package handlers

import (
	"log/slog"

	"github.com/ByteOps02/URL-Shortener/internal/config"
	"github.com/ByteOps02/URL-Shortener/internal/services"
	"github.com/ByteOps02/URL-Shortener/internal/token"

	"gorm.io/gorm"
)

type Handler struct {
	cfg              config.Config
	logger           *slog.Logger
	db               *gorm.DB
	tokens           *token.Service
	shortenerService *services.ShortenerService
	auditService     *services.AuditService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	tokens *token.Service,
	shortenerService *services.ShortenerService,
	auditService *services.AuditService,
) *Handler {
	return &Handler{
		cfg:              cfg,
		logger:           logger,
		db:               db,
		tokens:           tokens,
		shortenerService: shortenerService,
		auditService:     auditService,
	}
}
