// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueWelcomeEmail queues a welcome email for a new user.
	QueueWelcomeEmail(ctx context.Context, input QueueWelcomeInput) error

	// QueueGoalAchievedEmail queues a savings goal achievement email.
	QueueGoalAchievedEmail(ctx context.Context, input QueueGoalAchievedInput) error
}

// QueueWelcomeInput represents the input for queueing a welcome email.
type QueueWelcomeInput struct {
	UserEmail string
	UserName  string
}

// QueueGoalAchievedInput represents the input for queueing a goal achievement email.
type QueueGoalAchievedInput struct {
	UserEmail string
	UserName  string
	GoalValue string
	Month     string
}
