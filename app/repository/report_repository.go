package repository

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fitclubhq/fitclub/app/models"
)

// reportRepository implements the ReportRepository interface
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// RevenueByBranch aggregates session counts, booking counts and successful
// payment revenue per branch. Revenue is attributed through the bookings of
// the branch's sessions; membership purchases are club wide and excluded.
func (r *reportRepository) RevenueByBranch() ([]BranchRevenue, error) {
	var rows []struct {
		BranchID      uint
		BranchName    string
		City          string
		TotalSessions int64
		TotalBookings int64
	}

	err := r.db.Model(&models.Branch{}).
		Select(`branches.id AS branch_id,
			branches.name AS branch_name,
			branches.city AS city,
			COUNT(DISTINCT sessions.id) AS total_sessions,
			COUNT(bookings.id) AS total_bookings`).
		Joins("LEFT JOIN sessions ON sessions.branch_id = branches.id").
		Joins("LEFT JOIN bookings ON bookings.session_id = sessions.id AND bookings.status <> ?", models.BookingStatusCancelled).
		Group("branches.id, branches.name, branches.city").
		Order("branches.name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate branch activity: %w", err)
	}

	var revenue []struct {
		BranchID uint
		Total    decimal.Decimal
	}
	err = r.db.Model(&models.Payment{}).
		Select("sessions.branch_id AS branch_id, COALESCE(SUM(payments.amount), 0) AS total").
		Joins("JOIN memberships ON memberships.id = payments.membership_id").
		Joins("JOIN bookings ON bookings.user_id = memberships.user_id").
		Joins("JOIN sessions ON sessions.id = bookings.session_id").
		Where("payments.status = ?", models.PaymentStatusSuccess).
		Group("sessions.branch_id").
		Find(&revenue).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate branch revenue: %w", err)
	}

	revenueByBranch := make(map[uint]decimal.Decimal, len(revenue))
	for _, rev := range revenue {
		revenueByBranch[rev.BranchID] = rev.Total
	}

	result := make([]BranchRevenue, 0, len(rows))
	for _, row := range rows {
		result = append(result, BranchRevenue{
			BranchID:      row.BranchID,
			BranchName:    row.BranchName,
			City:          row.City,
			TotalSessions: row.TotalSessions,
			TotalBookings: row.TotalBookings,
			TotalRevenue:  revenueByBranch[row.BranchID],
		})
	}

	return result, nil
}

// SessionPopularity ranks sessions by how many spots were taken relative to
// capacity. Cancelled bookings do not count.
func (r *reportRepository) SessionPopularity(limit int) ([]SessionPopularity, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []struct {
		SessionID     uint
		SessionName   string
		Instructor    string
		ActivityType  string
		BranchName    string
		TotalBookings int64
		Capacity      int
	}

	err := r.db.Model(&models.Session{}).
		Select(`sessions.id AS session_id,
			sessions.name AS session_name,
			sessions.instructor AS instructor,
			activity_types.name AS activity_type,
			branches.name AS branch_name,
			COUNT(bookings.id) AS total_bookings,
			sessions.capacity AS capacity`).
		Joins("JOIN activity_types ON activity_types.id = sessions.activity_type_id").
		Joins("JOIN branches ON branches.id = sessions.branch_id").
		Joins("LEFT JOIN bookings ON bookings.session_id = sessions.id AND bookings.status <> ?", models.BookingStatusCancelled).
		Group("sessions.id, sessions.name, sessions.instructor, activity_types.name, branches.name, sessions.capacity").
		Order("total_bookings DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank sessions: %w", err)
	}

	result := make([]SessionPopularity, 0, len(rows))
	for _, row := range rows {
		percentage := 0.0
		if row.Capacity > 0 {
			percentage = float64(row.TotalBookings) / float64(row.Capacity) * 100
		}
		result = append(result, SessionPopularity{
			SessionID:         row.SessionID,
			SessionName:       row.SessionName,
			Instructor:        row.Instructor,
			ActivityType:      row.ActivityType,
			BranchName:        row.BranchName,
			TotalBookings:     row.TotalBookings,
			Capacity:          row.Capacity,
			BookingPercentage: percentage,
		})
	}

	return result, nil
}
