package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Session is a scheduled class with a fixed capacity. Reference data to the
// booking core: admins create and edit sessions, the core only reads them.
type Session struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Name           string        `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Description    string        `gorm:"type:text" json:"description"`
	BranchID       uint          `gorm:"not null;index" json:"branch_id" validate:"required"`
	Branch         *Branch       `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
	StudioID       uint          `gorm:"not null;index" json:"studio_id" validate:"required"`
	Studio         *Studio       `gorm:"foreignKey:StudioID" json:"studio,omitempty"`
	ActivityTypeID uint          `gorm:"not null;index" json:"activity_type_id" validate:"required"`
	ActivityType   *ActivityType `gorm:"foreignKey:ActivityTypeID" json:"activity_type,omitempty"`
	Instructor     string        `gorm:"type:varchar(100)" json:"instructor" validate:"max=100"`
	StartTime      time.Time     `gorm:"not null;index" json:"start_time" validate:"required"`
	EndTime        time.Time     `gorm:"not null" json:"end_time" validate:"required,gtfield=StartTime"`
	Capacity       int           `gorm:"not null" json:"capacity" validate:"required,gt=0"`
	CreatedAt      time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (s *Session) Validate() error {
	return validator.New().Struct(s)
}

// HasEnded reports whether the session end time has passed.
func (s *Session) HasEnded(now time.Time) bool {
	return now.After(s.EndTime)
}

// InCheckinWindow reports whether now falls within [start_time, end_time].
func (s *Session) InCheckinWindow(now time.Time) bool {
	return !now.Before(s.StartTime) && !now.After(s.EndTime)
}
