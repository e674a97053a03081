package ledger

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fitclubhq/fitclub/app/models"
)

func TestRecordRejectsInvalidPayments(t *testing.T) {
	l := New(nil)

	tests := []struct {
		name    string
		payment models.Payment
	}{
		{"missing user", models.Payment{Method: models.PaymentMethodCard}},
		{"bad method", models.Payment{UserID: 1, Method: "bitcoin"}},
		{"negative amount", models.Payment{
			UserID: 1, Method: models.PaymentMethodCard,
			Amount: decimal.NewFromInt(-1),
		}},
		{"negative discount", models.Payment{
			UserID: 1, Method: models.PaymentMethodCard,
			DiscountApplied: decimal.NewFromInt(-1),
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.payment
			_, err := l.Record(context.Background(), nil, &p)
			assert.ErrorIs(t, err, ErrInvalidPayment)
		})
	}
}
