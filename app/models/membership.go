package models

import "time"

const (
	MembershipStatusActive    = "active"
	MembershipStatusExpired   = "expired"
	MembershipStatusCancelled = "cancelled"
)

// Membership is a time-bounded entitlement purchased from a plan. Created
// atomically with its payment by the purchase service and never mutated
// afterwards except by administrative cancellation.
type Membership struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"not null;index" json:"user_id"`
	User      *User           `gorm:"foreignKey:UserID" json:"-"`
	PlanID    uint            `gorm:"not null;index" json:"plan_id"`
	Plan      *MembershipPlan `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
	StartDate time.Time       `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time       `gorm:"type:date;not null" json:"end_date"`
	Status    string          `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// EffectiveStatus derives expiry from the date range; an explicit cancellation
// always wins.
func (m *Membership) EffectiveStatus(now time.Time) string {
	if m.Status == MembershipStatusCancelled {
		return MembershipStatusCancelled
	}
	if now.After(m.EndDate) {
		return MembershipStatusExpired
	}
	return MembershipStatusActive
}

// IsCurrent reports whether the membership entitles the user right now.
func (m *Membership) IsCurrent(now time.Time) bool {
	return m.EffectiveStatus(now) == MembershipStatusActive
}
