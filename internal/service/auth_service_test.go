package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"trackit-be/internal/models"
)

type mailerStub struct {
	calls []string
	err   error
}

func (m *mailerStub) SendConfirmation(_ context.Context, to string) error {
	m.calls = append(m.calls, to)
	return m.err
}

func TestLogin_SendsExactlyOneConfirmation(t *testing.T) {
	tests := []struct {
		name string
		req  models.LoginRequest
	}{
		{"student", models.LoginRequest{Email: "a@b.com", Password: "x", Role: "student"}},
		{"wrong password still sends", models.LoginRequest{Email: "a@b.com", Password: "", Role: "admin"}},
		{"unknown role", models.LoginRequest{Email: "a@b.com", Password: "hunter2", Role: "janitor"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &mailerStub{}
			svc := NewAuthService(stub, false, zap.NewNop())

			resp := svc.Login(context.Background(), &tt.req)

			if len(stub.calls) != 1 || stub.calls[0] != "a@b.com" {
				t.Fatalf("calls = %v, want one send to a@b.com", stub.calls)
			}
			if resp.Status != models.StatusSuccess {
				t.Errorf("Status = %q, want success", resp.Status)
			}
			if resp.Message != "Confirmation email sent to a@b.com" {
				t.Errorf("Message = %q", resp.Message)
			}
		})
	}
}

func TestLogin_SendFailure(t *testing.T) {
	stub := &mailerStub{err: errors.New("dial tcp: i/o timeout")}
	svc := NewAuthService(stub, false, zap.NewNop())

	resp := svc.Login(context.Background(), &models.LoginRequest{Email: "a@b.com"})

	if resp.Status != models.StatusError {
		t.Fatalf("Status = %q, want error", resp.Status)
	}
	if resp.Message != "Failed to send confirmation email" {
		t.Errorf("Message = %q", resp.Message)
	}
}

func TestLogin_MissingEmailStillAttempts(t *testing.T) {
	stub := &mailerStub{err: errors.New("invalid recipient address")}
	svc := NewAuthService(stub, false, zap.NewNop())

	resp := svc.Login(context.Background(), &models.LoginRequest{})

	if len(stub.calls) != 1 || stub.calls[0] != "" {
		t.Fatalf("calls = %q, want a single attempt with empty recipient", stub.calls)
	}
	if resp.Status != models.StatusError {
		t.Errorf("Status = %q, want error", resp.Status)
	}
}

func TestLogin_QueuedMessage(t *testing.T) {
	svc := NewAuthService(&mailerStub{}, true, zap.NewNop())

	resp := svc.Login(context.Background(), &models.LoginRequest{Email: "a@b.com"})

	if resp.Message != "Confirmation email queued for a@b.com" {
		t.Errorf("Message = %q", resp.Message)
	}
}
