package email

import (
	"context"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueWelcomeEmail queues a welcome email for a new user.
func (s *Service) QueueWelcomeEmail(ctx context.Context, input adapter.QueueWelcomeInput) error {
	subject := "Welcome to FinanceFlow"

	templateData := map[string]interface{}{
		"user_name": input.UserName,
	}

	job := entity.NewEmailJob(
		entity.TemplateWelcome,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue welcome email",
			err,
		)
	}

	return nil
}

// QueueGoalAchievedEmail queues a savings goal achievement email.
func (s *Service) QueueGoalAchievedEmail(ctx context.Context, input adapter.QueueGoalAchievedInput) error {
	subject := "You reached your savings goal - FinanceFlow"

	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"goal_value": input.GoalValue,
		"month":      input.Month,
	}

	job := entity.NewEmailJob(
		entity.TemplateGoalAchieved,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue goal achievement email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
