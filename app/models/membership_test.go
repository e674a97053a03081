package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMembershipEffectiveStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	current := Membership{
		StartDate: now.AddDate(0, -1, 0),
		EndDate:   now.AddDate(0, 1, 0),
		Status:    MembershipStatusActive,
	}
	assert.Equal(t, MembershipStatusActive, current.EffectiveStatus(now))
	assert.True(t, current.IsCurrent(now))

	lapsed := Membership{
		StartDate: now.AddDate(0, -13, 0),
		EndDate:   now.AddDate(0, -1, 0),
		Status:    MembershipStatusActive,
	}
	assert.Equal(t, MembershipStatusExpired, lapsed.EffectiveStatus(now))
	assert.False(t, lapsed.IsCurrent(now))

	cancelled := Membership{
		StartDate: now.AddDate(0, -1, 0),
		EndDate:   now.AddDate(0, 1, 0),
		Status:    MembershipStatusCancelled,
	}
	assert.Equal(t, MembershipStatusCancelled, cancelled.EffectiveStatus(now))
	assert.False(t, cancelled.IsCurrent(now))
}
