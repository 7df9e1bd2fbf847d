package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/domain/entity"
	domainerror "github.com/lifehub/backend/internal/domain/error"
)

// ForgotPasswordInput represents the input for forgot password request.
type ForgotPasswordInput struct {
	Email string
}

// ForgotPasswordOutput represents the output of forgot password request.
type ForgotPasswordOutput struct {
	Message string
}

// ForgotPasswordUseCase handles forgot password logic. The reset email goes
// through the notification queue, not sent inline.
type ForgotPasswordUseCase struct {
	userRepo          adapter.UserRepository
	resetTokenService adapter.PasswordResetTokenService
	notificationQueue adapter.NotificationQueueRepository
	appBaseURL        string
}

// NewForgotPasswordUseCase creates a new ForgotPasswordUseCase instance.
func NewForgotPasswordUseCase(
	userRepo adapter.UserRepository,
	resetTokenService adapter.PasswordResetTokenService,
	notificationQueue adapter.NotificationQueueRepository,
	appBaseURL string,
) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo:          userRepo,
		resetTokenService: resetTokenService,
		notificationQueue: notificationQueue,
		appBaseURL:        appBaseURL,
	}
}

const forgotPasswordMessage = "If an account with that email exists, we have sent a password reset link"

// Execute performs the forgot password request.
// Always returns success to prevent email enumeration.
func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, input ForgotPasswordInput) (*ForgotPasswordOutput, error) {
	// Validate email format
	if !isValidEmail(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		slog.Debug("Forgot password requested for non-existent email", "email", input.Email)
		return &ForgotPasswordOutput{Message: forgotPasswordMessage}, nil
	}

	resetToken, err := uc.resetTokenService.GenerateResetToken(ctx, user.ID, user.Email)
	if err != nil {
		slog.Error("Failed to generate reset token", "error", err, "user_id", user.ID)
		return &ForgotPasswordOutput{Message: forgotPasswordMessage}, nil
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", uc.appBaseURL, resetToken.Token)

	job := entity.NewNotificationJob(
		user.ID,
		entity.TemplatePasswordReset,
		user.Email,
		user.Name,
		"Reset your password",
		map[string]interface{}{
			"reset_url":  resetURL,
			"expires_in": "1 hour",
		},
	)

	if uc.notificationQueue != nil {
		if err := uc.notificationQueue.Create(ctx, job); err != nil {
			slog.Error("Failed to queue password reset notification", "error", err, "user_id", user.ID)
		}
	} else {
		slog.Info("Password reset token generated (notification queue not configured)",
			"user_id", user.ID,
			"reset_url", resetURL,
		)
	}

	return &ForgotPasswordOutput{Message: forgotPasswordMessage}, nil
}
