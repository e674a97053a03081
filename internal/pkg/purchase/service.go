package purchase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fitclubhq/fitclub/app/models"
	"github.com/fitclubhq/fitclub/internal/pkg/coupon"
	"github.com/fitclubhq/fitclub/internal/pkg/ledger"
)

var (
	ErrPlanNotFound  = errors.New("membership plan not found")
	ErrPlanInactive  = errors.New("membership plan is no longer offered")
	ErrInvalidMethod = errors.New("unsupported payment method")
)

// CouponValidator is the slice of the coupon engine the purchase flow needs.
type CouponValidator interface {
	Validate(code string, now time.Time) (*models.Coupon, error)
}

// Repository provides the DB operations used by the purchase service. The
// membership and payment writes happen in one transaction.
type Repository interface {
	GetPlan(ctx context.Context, id uint) (*models.MembershipPlan, error)
	CreateMembershipWithPayment(ctx context.Context, m *models.Membership, p *models.Payment) error
}

type gormRepository struct {
	db     *gorm.DB
	ledger *ledger.Ledger
}

// NewRepository creates a purchase repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db, ledger: ledger.New(db)}
}

func (r *gormRepository) GetPlan(ctx context.Context, id uint) (*models.MembershipPlan, error) {
	var plan models.MembershipPlan
	if err := r.db.WithContext(ctx).First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// CreateMembershipWithPayment persists both rows atomically. A failure on
// either write rolls the whole unit back.
func (r *gormRepository) CreateMembershipWithPayment(ctx context.Context, m *models.Membership, p *models.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		p.MembershipID = &m.ID
		if _, err := r.ledger.Record(ctx, tx, p); err != nil {
			return err
		}
		return nil
	})
}

// Result is returned to the caller for display.
type Result struct {
	MembershipID    uint
	PaymentID       uint
	Reference       string
	FinalAmount     decimal.Decimal
	DiscountApplied decimal.Decimal
	CouponCode      string
}

// Service orchestrates plan lookup, coupon validation, membership creation
// and payment recording as one all-or-nothing unit.
type Service struct {
	repo    Repository
	coupons CouponValidator
}

// NewService creates a purchase service from injected collaborators.
func NewService(repo Repository, coupons CouponValidator) *Service {
	return &Service{repo: repo, coupons: coupons}
}

// NewServiceFromDB creates a purchase service from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(NewRepository(db), coupon.NewEngineFromDB(db))
}

// Purchase buys the plan for the user. An invalid coupon aborts the whole
// purchase; no membership or payment row survives any failure.
func (s *Service) Purchase(ctx context.Context, userID, planID uint, method, couponCode string) (*Result, error) {
	if !models.IsValidPaymentMethod(method) {
		return nil, ErrInvalidMethod
	}

	plan, err := s.repo.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if !plan.IsActive {
		return nil, ErrPlanInactive
	}

	now := time.Now()
	price := plan.Price
	discount := decimal.Zero
	appliedCode := ""

	if couponCode != "" {
		c, err := s.coupons.Validate(couponCode, now)
		if err != nil {
			return nil, err
		}
		discount = coupon.Discount(c, price)
		appliedCode = c.Code
	}

	finalAmount := price.Sub(discount)
	if finalAmount.IsNegative() {
		finalAmount = decimal.Zero
	}

	membership := &models.Membership{
		UserID:    userID,
		PlanID:    plan.ID,
		StartDate: now,
		EndDate:   now.AddDate(0, plan.DurationMonths, 0),
		Status:    models.MembershipStatusActive,
	}
	payment := &models.Payment{
		UserID:          userID,
		Amount:          finalAmount,
		DiscountApplied: discount,
		CouponCode:      appliedCode,
		Method:          method,
		Status:          models.PaymentStatusSuccess,
	}

	if err := s.repo.CreateMembershipWithPayment(ctx, membership, payment); err != nil {
		return nil, err
	}

	return &Result{
		MembershipID:    membership.ID,
		PaymentID:       payment.ID,
		Reference:       payment.Reference,
		FinalAmount:     finalAmount,
		DiscountApplied: discount,
		CouponCode:      appliedCode,
	}, nil
}
