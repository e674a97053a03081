package purchase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fitclubhq/fitclub/app/models"
	"github.com/fitclubhq/fitclub/internal/pkg/coupon"
)

type fakeRepo struct {
	plans       map[uint]*models.MembershipPlan
	memberships []*models.Membership
	payments    []*models.Payment
	failWrites  error
}

func (f *fakeRepo) GetPlan(_ context.Context, id uint) (*models.MembershipPlan, error) {
	if p, ok := f.plans[id]; ok {
		return p, nil
	}
	return nil, ErrPlanNotFound
}

func (f *fakeRepo) CreateMembershipWithPayment(_ context.Context, m *models.Membership, p *models.Payment) error {
	if f.failWrites != nil {
		return f.failWrites
	}
	m.ID = uint(len(f.memberships) + 1)
	p.ID = uint(len(f.payments) + 1)
	p.MembershipID = &m.ID
	f.memberships = append(f.memberships, m)
	f.payments = append(f.payments, p)
	return nil
}

type fakeCoupons struct {
	coupons map[string]*models.Coupon
}

func (f *fakeCoupons) Validate(code string, now time.Time) (*models.Coupon, error) {
	c, ok := f.coupons[models.CanonicalCouponCode(code)]
	if !ok {
		return nil, coupon.ErrNotFound
	}
	if !c.IsActive {
		return nil, coupon.ErrInactive
	}
	if !c.InWindow(now) {
		return nil, coupon.ErrExpired
	}
	return c, nil
}

func newTestService(plans map[uint]*models.MembershipPlan, coupons map[string]*models.Coupon) (*Service, *fakeRepo) {
	repo := &fakeRepo{plans: plans}
	return NewService(repo, &fakeCoupons{coupons: coupons}), repo
}

func plan(id uint, price string, months int) *models.MembershipPlan {
	return &models.MembershipPlan{
		ID:             id,
		Name:           "Standard",
		Price:          decimal.RequireFromString(price),
		DurationMonths: months,
		IsActive:       true,
	}
}

func validCoupon(code, discountType, value string) *models.Coupon {
	return &models.Coupon{
		Code:          code,
		DiscountType:  discountType,
		DiscountValue: decimal.RequireFromString(value),
		ValidFrom:     time.Now().AddDate(0, -1, 0),
		ValidTo:       time.Now().AddDate(0, 1, 0),
		IsActive:      true,
	}
}

func TestPurchaseWithoutCoupon(t *testing.T) {
	svc, repo := newTestService(map[uint]*models.MembershipPlan{1: plan(1, "1000", 3)}, nil)

	res, err := svc.Purchase(context.Background(), 42, 1, models.PaymentMethodCard, "")
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(res.FinalAmount))
	assert.True(t, res.DiscountApplied.IsZero())

	assert.Len(t, repo.memberships, 1)
	assert.Len(t, repo.payments, 1)

	m := repo.memberships[0]
	assert.Equal(t, models.MembershipStatusActive, m.Status)
	assert.Equal(t, m.StartDate.AddDate(0, 3, 0), m.EndDate)

	p := repo.payments[0]
	assert.Equal(t, models.PaymentStatusSuccess, p.Status)
	assert.Equal(t, &m.ID, p.MembershipID)
}

func TestPurchasePercentCoupon(t *testing.T) {
	svc, _ := newTestService(
		map[uint]*models.MembershipPlan{1: plan(1, "1000", 12)},
		map[string]*models.Coupon{"NEWYEAR2025": validCoupon("NEWYEAR2025", models.DiscountTypePercent, "20")},
	)

	res, err := svc.Purchase(context.Background(), 42, 1, models.PaymentMethodUPI, "newyear2025")
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(200).Equal(res.DiscountApplied), "got %s", res.DiscountApplied)
	assert.True(t, decimal.NewFromInt(800).Equal(res.FinalAmount), "got %s", res.FinalAmount)
	assert.Equal(t, "NEWYEAR2025", res.CouponCode)
}

func TestPurchaseFlatCouponCappedAtPrice(t *testing.T) {
	svc, repo := newTestService(
		map[uint]*models.MembershipPlan{1: plan(1, "80", 1)},
		map[string]*models.Coupon{"FIRST100": validCoupon("FIRST100", models.DiscountTypeFlat, "100")},
	)

	res, err := svc.Purchase(context.Background(), 42, 1, models.PaymentMethodCash, "FIRST100")
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(80).Equal(res.DiscountApplied))
	assert.True(t, res.FinalAmount.IsZero())
	assert.True(t, repo.payments[0].Amount.IsZero())
}

func TestPurchaseExpiredCouponLeavesNoRows(t *testing.T) {
	expired := validCoupon("OLD", models.DiscountTypePercent, "10")
	expired.ValidTo = time.Now().AddDate(0, 0, -1)

	svc, repo := newTestService(
		map[uint]*models.MembershipPlan{1: plan(1, "500", 1)},
		map[string]*models.Coupon{"OLD": expired},
	)

	_, err := svc.Purchase(context.Background(), 42, 1, models.PaymentMethodCard, "OLD")
	assert.ErrorIs(t, err, coupon.ErrExpired)
	assert.Empty(t, repo.memberships)
	assert.Empty(t, repo.payments)
}

func TestPurchaseUnknownCouponLeavesNoRows(t *testing.T) {
	svc, repo := newTestService(map[uint]*models.MembershipPlan{1: plan(1, "500", 1)}, nil)

	_, err := svc.Purchase(context.Background(), 42, 1, models.PaymentMethodCard, "NOPE")
	assert.ErrorIs(t, err, coupon.ErrNotFound)
	assert.Empty(t, repo.memberships)
	assert.Empty(t, repo.payments)
}

func TestPurchaseValidationErrors(t *testing.T) {
	inactive := plan(2, "500", 1)
	inactive.IsActive = false
	svc, _ := newTestService(map[uint]*models.MembershipPlan{2: inactive}, nil)

	_, err := svc.Purchase(context.Background(), 42, 9, models.PaymentMethodCard, "")
	assert.ErrorIs(t, err, ErrPlanNotFound)

	_, err = svc.Purchase(context.Background(), 42, 2, models.PaymentMethodCard, "")
	assert.ErrorIs(t, err, ErrPlanInactive)

	_, err = svc.Purchase(context.Background(), 42, 2, "bitcoin", "")
	assert.ErrorIs(t, err, ErrInvalidMethod)
}
