// Package relay is the quote-relay service the contact form posts to. It
// stores every accepted request with GORM, notifies staff by email, and
// exposes a small JWT-protected API for following requests up.
package relay

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kohinoor-interiors/showroom/internal/models"
)

// ErrNotFound is returned when no quote request has the given public id.
var ErrNotFound = errors.New("quote request not found")

// Store persists quote requests.
type Store struct {
	db *gorm.DB
}

// Open opens the database and runs AutoMigrate.
func Open(driver, path string) (*Store, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite", "":
		dialector = sqlite.Open(path)
	default:
		return nil, fmt.Errorf("unsupported db_driver %q (use 'sqlite')", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.AutoMigrate(&models.QuoteRequest{}); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Create assigns a public id and receive time, then inserts q.
func (s *Store) Create(q *models.QuoteRequest) error {
	if q.PublicID == "" {
		q.PublicID = uuid.NewString()
	}
	if q.ReceivedAt.IsZero() {
		q.ReceivedAt = time.Now().UTC()
	}
	if err := s.db.Create(q).Error; err != nil {
		return fmt.Errorf("saving quote request: %w", err)
	}
	return nil
}

// Get returns the request with the given public id.
func (s *Store) Get(publicID string) (*models.QuoteRequest, error) {
	var q models.QuoteRequest
	err := s.db.Where("public_id = ?", publicID).First(&q).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// List returns requests newest first. pendingOnly hides acknowledged ones;
// limit <= 0 means no limit.
func (s *Store) List(pendingOnly bool, limit int) ([]models.QuoteRequest, error) {
	q := s.db.Order("received_at desc").Order("id desc")
	if pendingOnly {
		q = q.Where("acknowledged = ?", false)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []models.QuoteRequest
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// MarkNotified records the outcome of the staff notification.
func (s *Store) MarkNotified(publicID string, notifyErr error) error {
	updates := map[string]any{"notified": notifyErr == nil, "notify_error": ""}
	if notifyErr != nil {
		updates["notify_error"] = notifyErr.Error()
	}
	res := s.db.Model(&models.QuoteRequest{}).Where("public_id = ?", publicID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Acknowledge marks a request as handled by staff. Acknowledging twice keeps
// the first timestamp.
func (s *Store) Acknowledge(publicID string) (*models.QuoteRequest, error) {
	q, err := s.Get(publicID)
	if err != nil {
		return nil, err
	}
	if q.Acknowledged {
		return q, nil
	}
	now := time.Now().UTC()
	if err := s.db.Model(q).Updates(map[string]any{
		"acknowledged":    true,
		"acknowledged_at": now,
	}).Error; err != nil {
		return nil, err
	}
	q.Acknowledged = true
	q.AcknowledgedAt = &now
	return q, nil
}
