package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fitclubhq/fitclub/app/models"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
}

// SessionRepository defines the interface for class session operations
type SessionRepository interface {
	Create(session *models.Session) error
	GetByID(id uint) (*models.Session, error)
	Update(session *models.Session) error
	Delete(id uint) error
	ListUpcoming(now time.Time) ([]SessionWithAvailability, error)
	ListAll(offset, limit int) ([]models.Session, error)
	Count() (int64, error)
}

// BookingRepository defines read access for booking listings; all mutations
// go through the booking service
type BookingRepository interface {
	ListByUser(userID uint) ([]models.Booking, error)
	CountHeld(sessionID uint) (int64, error)
}

// PlanRepository defines the interface for membership plan operations
type PlanRepository interface {
	Create(plan *models.MembershipPlan) error
	GetByID(id uint) (*models.MembershipPlan, error)
	Update(plan *models.MembershipPlan) error
	Delete(id uint) error
	ListActive() ([]models.MembershipPlan, error)
	ListAll() ([]models.MembershipPlan, error)
}

// MembershipRepository defines read access for membership listings
type MembershipRepository interface {
	ListByUser(userID uint) ([]models.Membership, error)
}

// CouponRepository defines the interface for coupon management; validation
// and discount math live in the coupon engine
type CouponRepository interface {
	Create(coupon *models.Coupon) error
	GetByID(id uint) (*models.Coupon, error)
	Update(coupon *models.Coupon) error
	Delete(id uint) error
	ListCurrent(now time.Time) ([]models.Coupon, error)
	ListAll() ([]models.Coupon, error)
}

// CatalogRepository manages the club reference data: branches, studios and
// activity types
type CatalogRepository interface {
	CreateBranch(branch *models.Branch) error
	GetBranch(id uint) (*models.Branch, error)
	UpdateBranch(branch *models.Branch) error
	DeleteBranch(id uint) error
	ListBranches() ([]models.Branch, error)

	CreateStudio(studio *models.Studio) error
	GetStudio(id uint) (*models.Studio, error)
	UpdateStudio(studio *models.Studio) error
	DeleteStudio(id uint) error
	ListStudios() ([]models.Studio, error)

	CreateActivityType(at *models.ActivityType) error
	GetActivityType(id uint) (*models.ActivityType, error)
	UpdateActivityType(at *models.ActivityType) error
	DeleteActivityType(id uint) error
	ListActivityTypes() ([]models.ActivityType, error)
}

// ReportRepository provides read-only aggregations for the admin dashboard
type ReportRepository interface {
	RevenueByBranch() ([]BranchRevenue, error)
	SessionPopularity(limit int) ([]SessionPopularity, error)
}

// SessionWithAvailability joins a session with its derived available spots
type SessionWithAvailability struct {
	Session        models.Session
	AvailableSpots int
}

// BranchRevenue aggregates bookings and revenue per branch
type BranchRevenue struct {
	BranchID      uint            `json:"branch_id"`
	BranchName    string          `json:"branch_name"`
	City          string          `json:"city"`
	TotalSessions int64           `json:"total_sessions"`
	TotalBookings int64           `json:"total_bookings"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

// SessionPopularity measures how full a session got
type SessionPopularity struct {
	SessionID         uint    `json:"session_id"`
	SessionName       string  `json:"session_name"`
	Instructor        string  `json:"instructor"`
	ActivityType      string  `json:"activity_type"`
	BranchName        string  `json:"branch_name"`
	TotalBookings     int64   `json:"total_bookings"`
	Capacity          int     `json:"capacity"`
	BookingPercentage float64 `json:"booking_percentage"`
}

// Repositories struct holds all repository instances
type Repositories struct {
	User       UserRepository
	Session    SessionRepository
	Booking    BookingRepository
	Plan       PlanRepository
	Membership MembershipRepository
	Coupon     CouponRepository
	Catalog    CatalogRepository
	Report     ReportRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db),
		Session:    NewSessionRepository(db),
		Booking:    NewBookingRepository(db),
		Plan:       NewPlanRepository(db),
		Membership: NewMembershipRepository(db),
		Coupon:     NewCouponRepository(db),
		Catalog:    NewCatalogRepository(db),
		Report:     NewReportRepository(db),
	}
}
