package service

import (
	"context"
	"fmt"

	"github.com/portfolioapi/internal/repository"
)

// NewsletterService handles newsletter subscriptions.
type NewsletterService struct {
	subscriptions repository.NewsletterRepository
}

// NewNewsletterService creates a NewsletterService instance.
func NewNewsletterService(subscriptions repository.NewsletterRepository) *NewsletterService {
	return &NewsletterService{subscriptions: subscriptions}
}

// Subscribe 订阅或重新激活邮箱，重复订阅不会报错也不会产生重复记录。
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (repository.SubscriptionOutcome, error) {
	if email == "" {
		return "", &ValidationError{Field: "email", Message: "Email is required"}
	}

	outcome, err := s.subscriptions.Subscribe(ctx, email)
	if err != nil {
		return "", fmt.Errorf("subscribe %q: %w", email, err)
	}
	return outcome, nil
}
