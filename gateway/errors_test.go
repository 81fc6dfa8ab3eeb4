package gateway

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil stays nil", nil, nil},
		{"geth revert", errors.New("execution reverted: already voted"), ErrContractReverted},
		{"legacy revert", errors.New("always failing transaction (execution error)"), ErrContractReverted},
		{"bare revert keyword", errors.New("transaction would revert"), ErrContractReverted},
		{"metamask-style denial", errors.New("user denied transaction signature"), ErrUserRejected},
		{"keystore denial", errors.New("could not decrypt key with given password"), ErrUserRejected},
		{"rpc failure", errors.New("connection refused"), ErrNetwork},
		{"timeout", context.DeadlineExceeded, ErrNetwork},
		{"cancellation", context.Canceled, ErrNetwork},
		{"already classified passes through", fmt.Errorf("%w: whatever", ErrContractReverted), ErrContractReverted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if tt.want == nil {
				if got != nil {
					t.Errorf("Classify(nil) = %v", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("Classify(%v) = %v, want wrapped %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestClassifyPreservesOriginalText(t *testing.T) {
	err := Classify(errors.New("execution reverted: caller is not the owner"))
	if got := err.Error(); !errors.Is(err, ErrContractReverted) || len(got) == 0 {
		t.Fatalf("unexpected classification: %v", err)
	}
}

func TestReason(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"revert reason extracted", fmt.Errorf("%w: execution reverted: already voted", ErrContractReverted), "execution reverted: already voted"},
		{"plain error text", errors.New("connection refused"), "connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reason(tt.err); got != tt.want {
				t.Errorf("Reason(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
