package handler

import (
	"strings"
	"testing"
)

func TestValidator_UsesJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&donationRequest{Email: "not-an-email", Amount: 0})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"name is required", "email must be a valid email", "amount must be greater than 0"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q does not contain %q", msg, want)
		}
	}
}

func TestValidator_TransactionsQuery(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&transactionsQuery{From: "2025-09-01", To: "2025-09-30"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := v.Validate(&transactionsQuery{Range: "last_fiscal_year"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := v.Validate(&transactionsQuery{From: "09/01/2025"}); err == nil {
		t.Fatalf("expected date format error")
	}
	if err := v.Validate(&transactionsQuery{Range: "fortnight"}); err == nil {
		t.Fatalf("expected range error")
	}
}

func TestValidator_AdminUser(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&adminUserRequest{Username: "anita", Mobile: "9876543210", CCTVLink: "https://example.com/cctv/anita"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := v.Validate(&adminUserRequest{Mobile: "98-76"}); err == nil {
		t.Fatalf("expected mobile error")
	}
}
