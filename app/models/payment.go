package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PaymentStatusSuccess = "success"
	PaymentStatusPending = "pending"
	PaymentStatusFailed  = "failed"

	PaymentMethodUPI  = "upi"
	PaymentMethodCard = "card"
	PaymentMethodCash = "cash"
)

// Payment is an append-only ledger entry. Amount is the final charged amount
// after any coupon discount; DiscountApplied preserves the reduction for
// display and reporting.
type Payment struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Reference       string          `gorm:"type:varchar(36);not null;uniqueIndex" json:"reference"`
	UserID          uint            `gorm:"not null;index" json:"user_id"`
	User            *User           `gorm:"foreignKey:UserID" json:"-"`
	MembershipID    *uint           `gorm:"index;default:null" json:"membership_id,omitempty"`
	Membership      *Membership     `gorm:"foreignKey:MembershipID" json:"membership,omitempty"`
	Amount          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	DiscountApplied decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"discount_applied"`
	CouponCode      string          `gorm:"type:varchar(50);default:null" json:"coupon_code,omitempty"`
	Method          string          `gorm:"type:varchar(20);not null" json:"method"`
	Status          string          `gorm:"type:varchar(20);not null;default:'success'" json:"status"`
	CreatedAt       time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
}

// IsValidPaymentMethod reports whether the given method is supported.
func IsValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodUPI, PaymentMethodCard, PaymentMethodCash:
		return true
	}
	return false
}

// BeforeCreate assigns the external reference used on receipts.
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.Reference == "" {
		p.Reference = uuid.NewString()
	}
	return nil
}
