package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"trackit-be/internal/mailer"
	"trackit-be/internal/models"
)

// AuthService defines the login flow: record the attempt and send a confirmation.
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) *models.LoginResponse
}

type authService struct {
	mailer mailer.Mailer
	queued bool // mailer only enqueues; delivery happens later
	logger *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(m mailer.Mailer, queued bool, logger *zap.Logger) AuthService {
	return &authService{
		mailer: m,
		queued: queued,
		logger: logger.Named("auth"),
	}
}

// Login never verifies credentials. Exactly one confirmation is attempted for
// req.Email and the outcome of that attempt decides the response status.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) *models.LoginResponse {
	email := req.Email.String()
	s.logger.Info("login attempt",
		zap.String("email", email),
		zap.String("role", req.Role.String()),
	)

	if err := s.mailer.SendConfirmation(ctx, email); err != nil {
		s.logger.Warn("confirmation email failed", zap.String("email", email), zap.Error(err))
		return &models.LoginResponse{
			Status:  models.StatusError,
			Message: "Failed to send confirmation email",
		}
	}

	message := fmt.Sprintf("Confirmation email sent to %s", email)
	if s.queued {
		message = fmt.Sprintf("Confirmation email queued for %s", email)
	}
	return &models.LoginResponse{
		Status:  models.StatusSuccess,
		Message: message,
	}
}
