package ledger

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fitclubhq/fitclub/app/models"
)

var ErrInvalidPayment = errors.New("payment is missing required fields")

// Ledger is the append-only record of monetary transactions. Only the
// purchase service writes to it; there is no update or delete.
type Ledger struct {
	db *gorm.DB
}

// New creates a payment ledger backed by GORM.
func New(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// Record appends a payment. When tx is non-nil the write joins that
// transaction so the payment commits or rolls back with its membership.
func (l *Ledger) Record(ctx context.Context, tx *gorm.DB, p *models.Payment) (uint, error) {
	if p.UserID == 0 || !models.IsValidPaymentMethod(p.Method) {
		return 0, ErrInvalidPayment
	}
	if p.Amount.IsNegative() || p.DiscountApplied.IsNegative() {
		return 0, ErrInvalidPayment
	}

	db := l.db
	if tx != nil {
		db = tx
	}
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		return 0, err
	}
	return p.ID, nil
}

// ListByUser returns the user's payments, newest first, with the linked
// membership plan preloaded for display.
func (l *Ledger) ListByUser(ctx context.Context, userID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := l.db.WithContext(ctx).
		Preload("Membership").
		Preload("Membership.Plan").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&payments).Error
	return payments, err
}
