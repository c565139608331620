package services

import (
	"errors"

	"github.com/ByteOps02/URL-Shortener/internal/models"
	"github.com/ByteOps02/URL-Shortener/pkg/utils"

	"gorm.io/gorm"
)

var (
	// ErrCodeTaken means the requested custom code already resolves somewhere.
	ErrCodeTaken = errors.New("custom code already taken")
	// ErrLinkNotFound covers both unknown ids and links owned by someone else.
	ErrLinkNotFound = errors.New("link not found")
	// ErrCodeSpaceExhausted means generated codes kept colliding.
	ErrCodeSpaceExhausted = errors.New("could not allocate a unique short code")
)

// maxGenerateAttempts bounds collision retries for generated codes.
const maxGenerateAttempts = 5

type ShortenDTO struct {
	UserID     *string
	DeviceID   *string
	TargetURL  string
	CustomCode string
	IPAddress  string // For Audit Log
}

type ShortenerService struct {
	db            *gorm.DB
	auditService  *AuditService
	codeGenerator func(int) string
}

func NewShortenerService(db *gorm.DB, auditService *AuditService) *ShortenerService {
	return &ShortenerService{
		db:            db,
		auditService:  auditService,
		codeGenerator: utils.GenerateShortCode,
	}
}

// CreateShortURL allocates a short code and persists the link. The unique
// constraint on the code column is the final authority: inserts race, the
// constraint decides, and a violation either surfaces as ErrCodeTaken
// (custom code) or triggers a bounded regenerate-and-retry (generated code).
func (s *ShortenerService) CreateShortURL(dto ShortenDTO) (*models.URL, error) {
	if dto.CustomCode != "" {
		newURL := models.URL{
			UserID:    dto.UserID,
			DeviceID:  dto.DeviceID,
			ShortCode: dto.CustomCode,
			TargetURL: dto.TargetURL,
		}
		if err := s.db.Create(&newURL).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrCodeTaken
			}
			return nil, err
		}
		s.logCreated(&newURL, dto.IPAddress)
		return &newURL, nil
	}

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		newURL := models.URL{
			UserID:    dto.UserID,
			DeviceID:  dto.DeviceID,
			ShortCode: s.codeGenerator(utils.ShortCodeLength),
			TargetURL: dto.TargetURL,
		}
		err := s.db.Create(&newURL).Error
		if err == nil {
			s.logCreated(&newURL, dto.IPAddress)
			return &newURL, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}

	return nil, ErrCodeSpaceExhausted
}

// ListByUser returns every link owned by the user. No order is guaranteed.
func (s *ShortenerService) ListByUser(userID string) ([]models.URL, error) {
	var urls []models.URL
	if err := s.db.Where("user_id = ?", userID).Find(&urls).Error; err != nil {
		return nil, err
	}
	return urls, nil
}

// Delete removes the link only when it is owned by the given user. The
// ownership match is part of the delete condition, so a caller can never
// learn whether a foreign id exists.
func (s *ShortenerService) Delete(id, userID string) error {
	result := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.URL{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLinkNotFound
	}

	uid := userID
	s.auditService.LogAction(&uid, "DELETE_LINK", id, nil, "")
	return nil
}

// Resolve returns the target URL stored for a short code.
func (s *ShortenerService) Resolve(code string) (*models.URL, error) {
	var url models.URL
	if err := s.db.Where("code = ?", code).First(&url).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}
	return &url, nil
}

func (s *ShortenerService) logCreated(url *models.URL, ip string) {
	s.auditService.LogAction(url.UserID, "CREATE_LINK", url.ShortCode, map[string]interface{}{
		"target_url": url.TargetURL,
	}, ip)
}
