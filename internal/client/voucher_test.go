package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vietcart-next/internal/constants"
)

func TestNormalizeVoucherStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"available", constants.VoucherStatusAvailable},
		{"AVAILABLE", constants.VoucherStatusAvailable},
		{"  Available ", constants.VoucherStatusAvailable},
		{"used", constants.VoucherStatusUsed},
		{"Used", constants.VoucherStatusUsed},
		{"EXPIRED", constants.VoucherStatusExpired},
		{"unavailable", constants.VoucherStatusUnavailable},
		{"", constants.VoucherStatusUnavailable},
		{"pending_activation", constants.VoucherStatusUnavailable},
		{"   ", constants.VoucherStatusUnavailable},
	}
	for _, tc := range cases {
		if got := NormalizeVoucherStatus(tc.raw); got != tc.want {
			t.Fatalf("NormalizeVoucherStatus(%q): want %q, got %q", tc.raw, tc.want, got)
		}
	}
}

func TestNormalizeVoucherType(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"percentage", constants.VoucherTypePercent},
		{"Percentage", constants.VoucherTypePercent},
		{"percent", constants.VoucherTypePercent},
		{"fixed", constants.VoucherTypeFixed},
		{" FIXED ", constants.VoucherTypeFixed},
		{"", ""},
		{"bogo", ""},
	}
	for _, tc := range cases {
		if got := NormalizeVoucherType(tc.raw); got != tc.want {
			t.Fatalf("NormalizeVoucherType(%q): want %q, got %q", tc.raw, tc.want, got)
		}
	}
}

func TestListByUserNormalizesDirtyPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user-vouchers/user/9" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Fatalf("unexpected auth header: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status_code": 0,
			"msg": "success",
			"data": {
				"vouchers": [
					{"id": 1, "code": " SAVE20 ", "discount_type": "Percent", "discount_value": "10", "status": "AVAILABLE"},
					{"id": 2, "code": "OLD", "discount_type": "fixed", "discount_value": 20000, "status": "weird_status"}
				]
			}
		}`))
	}))
	defer server.Close()

	backend := NewBackend(server.URL, 0)
	vouchers, err := backend.ListVouchersByUser(context.Background(), "tok", 9)
	if err != nil {
		t.Fatalf("list by user failed: %v", err)
	}
	if len(vouchers) != 2 {
		t.Fatalf("unexpected voucher count: %d", len(vouchers))
	}
	if vouchers[0].Code != "SAVE20" {
		t.Fatalf("expected trimmed code, got %q", vouchers[0].Code)
	}
	if vouchers[0].DiscountType != constants.VoucherTypePercent {
		t.Fatalf("expected percent alias normalized, got %q", vouchers[0].DiscountType)
	}
	if vouchers[0].Status != constants.VoucherStatusAvailable {
		t.Fatalf("expected available status, got %q", vouchers[0].Status)
	}
	if vouchers[1].Status != constants.VoucherStatusUnavailable {
		t.Fatalf("unknown status must map to unavailable, got %q", vouchers[1].Status)
	}
}

func TestBackendSentinelErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/unauthorized":
			w.WriteHeader(http.StatusUnauthorized)
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
		case "/rejected":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status_code": 400, "msg": "voucher already claimed"}`))
		case "/invalid":
			_, _ = w.Write([]byte(`{not json`))
		}
	}))
	defer server.Close()

	backend := NewBackend(server.URL, 0)
	ctx := context.Background()

	if err := backend.doJSON(ctx, http.MethodGet, "/unauthorized", "", nil, nil); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := backend.doJSON(ctx, http.MethodGet, "/missing", "", nil, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := backend.doJSON(ctx, http.MethodGet, "/rejected", "", nil, nil); !errors.Is(err, ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
	if err := backend.doJSON(ctx, http.MethodGet, "/invalid", "", nil, nil); !errors.Is(err, ErrResponseInvalid) {
		t.Fatalf("expected ErrResponseInvalid, got %v", err)
	}
}
