package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vietcart-next/internal/constants"
	"github.com/vietcart-next/internal/models"
)

type fakeVoucherAPI struct {
	vouchers []models.Voucher
	err      error
	claimed  []uint
}

func (f *fakeVoucherAPI) ListAvailable(_ context.Context, _ string) ([]models.Voucher, error) {
	return f.vouchers, f.err
}

func (f *fakeVoucherAPI) ListVouchersByUser(_ context.Context, _ string, _ uint) ([]models.Voucher, error) {
	return f.vouchers, f.err
}

func (f *fakeVoucherAPI) Claim(_ context.Context, _ string, voucherID uint) error {
	if f.err != nil {
		return f.err
	}
	f.claimed = append(f.claimed, voucherID)
	return nil
}

func TestEvaluateVoucherRules(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(24 * time.Hour)

	cases := []struct {
		name       string
		voucher    *models.Voucher
		subtotal   int64
		wantUsable bool
		wantReason string
	}{
		{
			name: "available voucher above min order",
			voucher: &models.Voucher{
				DiscountType:  constants.VoucherTypeFixed,
				DiscountValue: moneyFromInt(20000),
				MinOrderValue: moneyPtr(100000),
				EndsAt:        &future,
				Status:        constants.VoucherStatusAvailable,
			},
			subtotal:   250000,
			wantUsable: true,
		},
		{
			name: "used voucher",
			voucher: &models.Voucher{
				DiscountType:  constants.VoucherTypeFixed,
				DiscountValue: moneyFromInt(20000),
				Status:        constants.VoucherStatusUsed,
			},
			subtotal:   250000,
			wantReason: VoucherReasonUsed,
		},
		{
			name: "expired status",
			voucher: &models.Voucher{
				DiscountType:  constants.VoucherTypeFixed,
				DiscountValue: moneyFromInt(20000),
				Status:        constants.VoucherStatusExpired,
			},
			subtotal:   250000,
			wantReason: VoucherReasonExpired,
		},
		{
			name: "unavailable status",
			voucher: &models.Voucher{
				DiscountType:  constants.VoucherTypeFixed,
				DiscountValue: moneyFromInt(20000),
				Status:        constants.VoucherStatusUnavailable,
			},
			subtotal:   250000,
			wantReason: VoucherReasonUnavailable,
		},
		{
			name: "end date strictly before now",
			voucher: &models.Voucher{
				DiscountType:  constants.VoucherTypeFixed,
				DiscountValue: moneyFromInt(20000),
				EndsAt:        &past,
				Status:        constants.VoucherStatusAvailable,
			},
			subtotal:   250000,
			wantReason: VoucherReasonExpired,
		},
		{
			name: "end date equal to now still valid",
			voucher: &models.Voucher{
				DiscountType:  constants.VoucherTypeFixed,
				DiscountValue: moneyFromInt(20000),
				EndsAt:        &now,
				Status:        constants.VoucherStatusAvailable,
			},
			subtotal:   250000,
			wantUsable: true,
		},
		{
			name: "subtotal below min order",
			voucher: &models.Voucher{
				DiscountType:  constants.VoucherTypeFixed,
				DiscountValue: moneyFromInt(20000),
				MinOrderValue: moneyPtr(300000),
				Status:        constants.VoucherStatusAvailable,
			},
			subtotal:   280000,
			wantReason: VoucherReasonMinOrder,
		},
		{
			name: "subtotal equal to min order",
			voucher: &models.Voucher{
				DiscountType:  constants.VoucherTypeFixed,
				DiscountValue: moneyFromInt(20000),
				MinOrderValue: moneyPtr(300000),
				Status:        constants.VoucherStatusAvailable,
			},
			subtotal:   300000,
			wantUsable: true,
		},
		{
			name: "malformed discount type",
			voucher: &models.Voucher{
				DiscountType:  "",
				DiscountValue: moneyFromInt(20000),
				Status:        constants.VoucherStatusAvailable,
			},
			subtotal:   250000,
			wantReason: VoucherReasonMalformed,
		},
		{
			name: "non positive discount value",
			voucher: &models.Voucher{
				DiscountType:  constants.VoucherTypeFixed,
				DiscountValue: moneyFromInt(0),
				Status:        constants.VoucherStatusAvailable,
			},
			subtotal:   250000,
			wantReason: VoucherReasonMalformed,
		},
		{
			name:       "nil voucher never panics",
			voucher:    nil,
			subtotal:   250000,
			wantReason: VoucherReasonMalformed,
		},
	}

	svc := NewVoucherService(&fakeVoucherAPI{})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			usable, discount, reason := svc.Evaluate(tc.voucher, moneyFromInt(tc.subtotal), now)
			if usable != tc.wantUsable {
				t.Fatalf("unexpected usable, want %v, got %v (reason %q)", tc.wantUsable, usable, reason)
			}
			if !usable {
				if reason != tc.wantReason {
					t.Fatalf("unexpected reason, want %q, got %q", tc.wantReason, reason)
				}
				if discount.String() != "0" {
					t.Fatalf("unusable voucher must carry zero discount, got %s", discount.String())
				}
			}
		})
	}
}

func TestListForCheckoutMarksUsability(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	api := &fakeVoucherAPI{
		vouchers: []models.Voucher{
			{
				Code:          "SAVE20",
				DiscountType:  constants.VoucherTypeFixed,
				DiscountValue: moneyFromInt(20000),
				EndsAt:        &future,
				Status:        constants.VoucherStatusAvailable,
			},
			{
				Code:          "BIGMIN",
				DiscountType:  constants.VoucherTypeFixed,
				DiscountValue: moneyFromInt(50000),
				MinOrderValue: moneyPtr(300000),
				Status:        constants.VoucherStatusAvailable,
			},
		},
	}
	svc := NewVoucherService(api)

	views, err := svc.ListForCheckout(context.Background(), "token", 1, moneyFromInt(280000))
	if err != nil {
		t.Fatalf("list for checkout failed: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("unexpected view count, want 2, got %d", len(views))
	}
	if !views[0].Usable || views[0].Discount.String() != "20000" {
		t.Fatalf("expected SAVE20 usable with 20000 discount, got usable=%v discount=%s", views[0].Usable, views[0].Discount.String())
	}
	if views[1].Usable || views[1].Reason != VoucherReasonMinOrder {
		t.Fatalf("expected BIGMIN blocked by min order, got usable=%v reason=%q", views[1].Usable, views[1].Reason)
	}
}

func TestFindByCodeCaseInsensitive(t *testing.T) {
	api := &fakeVoucherAPI{
		vouchers: []models.Voucher{
			{Code: "SAVE20", DiscountType: constants.VoucherTypeFixed, DiscountValue: moneyFromInt(20000)},
		},
	}
	svc := NewVoucherService(api)

	voucher, err := svc.FindByCode(context.Background(), "token", 1, " save20 ")
	if err != nil {
		t.Fatalf("find by code failed: %v", err)
	}
	if voucher.Code != "SAVE20" {
		t.Fatalf("unexpected voucher code: %s", voucher.Code)
	}

	if _, err := svc.FindByCode(context.Background(), "token", 1, "missing"); !errors.Is(err, ErrVoucherNotFound) {
		t.Fatalf("expected ErrVoucherNotFound, got %v", err)
	}
}
