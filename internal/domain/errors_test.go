package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestAsError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind Kind
		wantCode string
	}{
		{name: "sentinel", err: ErrSiteNotFound, wantKind: KindNotFound, wantCode: "site_not_found"},
		{name: "wrapped", err: fmt.Errorf("add site: %w", ErrInvalidURL), wantKind: KindValidation, wantCode: "invalid_url"},
		{name: "double wrapped", err: fmt.Errorf("%w: read: %w", ErrStorage, errors.New("dial tcp")), wantKind: KindStorage, wantCode: "storage"},
		{name: "unclassified", err: errors.New("boom"), wantKind: KindStorage, wantCode: "storage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AsError(tt.err)
			if got.Kind != tt.wantKind {
				t.Errorf("AsError().Kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.Code != tt.wantCode {
				t.Errorf("AsError().Code = %q, want %q", got.Code, tt.wantCode)
			}
		})
	}
}

func TestLinkApplicationDecide(t *testing.T) {
	app := &LinkApplication{ID: "a1", Status: StatusPending}

	if err := app.Decide(StatusApproved, AdminUserID, fixedTime); err != nil {
		t.Fatalf("first Decide() = %v, want nil", err)
	}
	if app.Status != StatusApproved {
		t.Errorf("Status = %q, want %q", app.Status, StatusApproved)
	}
	if app.ApprovedBy == nil || *app.ApprovedBy != AdminUserID {
		t.Errorf("ApprovedBy = %v, want %q", app.ApprovedBy, AdminUserID)
	}
	if app.ApprovedAt == nil || !app.ApprovedAt.Equal(fixedTime) {
		t.Errorf("ApprovedAt = %v, want %v", app.ApprovedAt, fixedTime)
	}

	if err := app.Decide(StatusRejected, AdminUserID, fixedTime); !errors.Is(err, ErrAlreadyProcessed) {
		t.Fatalf("second Decide() = %v, want ErrAlreadyProcessed", err)
	}
	if app.Status != StatusApproved {
		t.Errorf("Status changed to %q after rejected transition", app.Status)
	}
}
