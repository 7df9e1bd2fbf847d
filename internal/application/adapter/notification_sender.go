// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendNotificationInput represents the input for delivering one notification.
type SendNotificationInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendNotificationResult represents the result of a delivery attempt.
type SendNotificationResult struct {
	ProviderID string
}

// NotificationSender defines the interface for delivering notifications via an
// external provider (e.g., Resend).
type NotificationSender interface {
	// Send delivers a notification through the provider.
	Send(ctx context.Context, input SendNotificationInput) (*SendNotificationResult, error)
}
