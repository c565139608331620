package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/ByteOps02/URL-Shortener/internal/models"

	"gorm.io/gorm"
)

type AuditService struct {
	db      *gorm.DB
	logger  *slog.Logger
	entries chan models.AuditLog
}

func NewAuditService(db *gorm.DB, logger *slog.Logger) *AuditService {
	return &AuditService{
		db:      db,
		logger:  logger,
		entries: make(chan models.AuditLog, 100),
	}
}

// Start drains the audit channel into the database until ctx is cancelled.
func (s *AuditService) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry := <-s.entries:
			if err := s.db.Create(&entry).Error; err != nil {
				s.logger.Error("Failed to write audit log", "error", err)
			}
		}
	}
}

// LogAction enqueues an audit entry. Entries are dropped when the buffer is
// full rather than blocking the request path.
func (s *AuditService) LogAction(userID *string, action, entityID string, details interface{}, ip string) {
	detailBytes, _ := json.Marshal(details)

	entry := models.AuditLog{
		UserID:    userID,
		Action:    action,
		EntityID:  entityID,
		Details:   string(detailBytes),
		IPAddress: ip,
		Timestamp: time.Now(),
	}

	select {
	case s.entries <- entry:
	default:
		s.logger.Warn("Audit channel full, dropping log", "action", action)
	}
}
