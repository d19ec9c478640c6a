package requests

import (
	"errors"
	"testing"
	"time"

	"github.com/mmynk/settleup/internal/models"
)

var t0 = time.Unix(1_700_000_000, 0)

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		params  CreateParams
		wantErr error
	}{
		{
			name:   "valid request",
			params: CreateParams{GroupID: "g", From: "alice", To: "bob", Amount: 5000, ProofRef: "receipt-1"},
		},
		{
			name:    "missing group",
			params:  CreateParams{From: "alice", To: "bob", Amount: 1},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "missing recipient",
			params:  CreateParams{GroupID: "g", From: "alice", Amount: 1},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "self payment",
			params:  CreateParams{GroupID: "g", From: "alice", To: "alice", Amount: 1},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "zero amount",
			params:  CreateParams{GroupID: "g", From: "alice", To: "bob"},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "negative amount",
			params:  CreateParams{GroupID: "g", From: "alice", To: "bob", Amount: -5},
			wantErr: ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Open(tt.params, t0)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Open() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open() unexpected error: %v", err)
			}
			if req.Status != models.RequestPending {
				t.Errorf("Status = %s, want pending", req.Status)
			}
			if req.CreatedAt != t0.Unix() {
				t.Errorf("CreatedAt = %d, want %d", req.CreatedAt, t0.Unix())
			}
			if req.ProofRef != tt.params.ProofRef {
				t.Errorf("ProofRef = %q, want %q", req.ProofRef, tt.params.ProofRef)
			}
			if req.ResolvedAt != 0 {
				t.Errorf("ResolvedAt = %d, want 0", req.ResolvedAt)
			}
		})
	}
}

func pendingRequest() models.SettlementRequest {
	return models.SettlementRequest{
		ID:           "req-1",
		GroupID:      "g",
		FromMemberID: "alice",
		ToMemberID:   "bob",
		Amount:       5000,
		Status:       models.RequestPending,
		CreatedAt:    t0.Unix(),
	}
}

func TestConfirm(t *testing.T) {
	resolvedAt := t0.Add(time.Hour)

	t.Run("recipient confirms", func(t *testing.T) {
		req, st, err := Confirm(pendingRequest(), "bob", resolvedAt)
		if err != nil {
			t.Fatalf("Confirm() error: %v", err)
		}
		if req.Status != models.RequestConfirmed {
			t.Errorf("Status = %s, want confirmed", req.Status)
		}
		if req.ResolvedAt != resolvedAt.Unix() {
			t.Errorf("ResolvedAt = %d, want %d", req.ResolvedAt, resolvedAt.Unix())
		}

		want := models.Settlement{
			GroupID:      "g",
			FromMemberID: "alice",
			ToMemberID:   "bob",
			Amount:       5000,
			CreatedAt:    resolvedAt.Unix(),
			ConfirmedBy:  "bob",
			RequestID:    "req-1",
		}
		if st != want {
			t.Errorf("Settlement = %+v, want %+v", st, want)
		}
	})

	t.Run("sender cannot confirm", func(t *testing.T) {
		req, _, err := Confirm(pendingRequest(), "alice", resolvedAt)
		if !errors.Is(err, ErrNotRecipient) {
			t.Fatalf("error = %v, want ErrNotRecipient", err)
		}
		if !errors.Is(err, ErrInvalidTransition) {
			t.Error("ErrNotRecipient should match ErrInvalidTransition")
		}
		if req.Status != models.RequestPending {
			t.Errorf("request should be unchanged, got status %s", req.Status)
		}
	})

	t.Run("terminal states refuse", func(t *testing.T) {
		for _, status := range []models.RequestStatus{models.RequestConfirmed, models.RequestRejected} {
			req := pendingRequest()
			req.Status = status
			if _, _, err := Confirm(req, "bob", resolvedAt); !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("Confirm from %s: error = %v, want ErrInvalidTransition", status, err)
			}
		}
	})
}

func TestReject(t *testing.T) {
	resolvedAt := t0.Add(time.Minute)

	req, err := Reject(pendingRequest(), "bob", resolvedAt)
	if err != nil {
		t.Fatalf("Reject() error: %v", err)
	}
	if req.Status != models.RequestRejected || req.ResolvedAt != resolvedAt.Unix() {
		t.Errorf("got %s at %d, want rejected at %d", req.Status, req.ResolvedAt, resolvedAt.Unix())
	}

	if _, err := Reject(req, "bob", resolvedAt); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second Reject: error = %v, want ErrInvalidTransition", err)
	}
	if _, err := Reject(pendingRequest(), "charlie", resolvedAt); !errors.Is(err, ErrNotRecipient) {
		t.Errorf("Reject by outsider: error = %v, want ErrNotRecipient", err)
	}
}

func TestHasPending(t *testing.T) {
	reqs := []*models.SettlementRequest{
		{GroupID: "g", FromMemberID: "alice", ToMemberID: "bob", Status: models.RequestPending},
		{GroupID: "g", FromMemberID: "bob", ToMemberID: "charlie", Status: models.RequestConfirmed},
	}

	tests := []struct {
		group, from, to string
		want            bool
	}{
		{"g", "alice", "bob", true},
		{"g", "bob", "alice", false},
		{"g", "bob", "charlie", false},
		{"other", "alice", "bob", false},
	}
	for _, tt := range tests {
		if got := HasPending(reqs, tt.group, tt.from, tt.to); got != tt.want {
			t.Errorf("HasPending(%s, %s, %s) = %v, want %v", tt.group, tt.from, tt.to, got, tt.want)
		}
	}
}
