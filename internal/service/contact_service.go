package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/portfolioapi/internal/db"
	"github.com/portfolioapi/internal/repository"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactInput 是联系表单提交的字段。
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactNotifier is called after a contact message has been stored.
type ContactNotifier interface {
	NotifyContact(ctx context.Context, message db.ContactMessage) error
}

// LogNotifier only records the submission in the log.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier writing to logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyContact(ctx context.Context, message db.ContactMessage) error {
	n.logger.InfoContext(ctx, "contact message received",
		"contact_id", message.ID,
		"email", message.Email,
		"subject", message.Subject,
	)
	return nil
}

// ContactOptions 配置联系表单服务。
type ContactOptions struct {
	Notifier            ContactNotifier
	ValidateEmailFormat bool
	Logger              *slog.Logger
}

// ContactService validates and stores contact form submissions.
type ContactService struct {
	messages            repository.ContactRepository
	notifier            ContactNotifier
	validateEmailFormat bool
	logger              *slog.Logger
}

// NewContactService creates a ContactService instance.
func NewContactService(messages repository.ContactRepository, opts ContactOptions) *ContactService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = NewLogNotifier(logger)
	}
	return &ContactService{
		messages:            messages,
		notifier:            notifier,
		validateEmailFormat: opts.ValidateEmailFormat,
		logger:              logger,
	}
}

// Validate 按 name、email、subject、message 的顺序检查必填字段，返回第一个缺失的字段。
func (s *ContactService) Validate(input ContactInput) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", input.Name},
		{"email", input.Email},
		{"subject", input.Subject},
		{"message", input.Message},
	}
	for _, field := range fields {
		if field.value == "" {
			return requiredFieldError(field.name)
		}
	}

	if s.validateEmailFormat && !emailPattern.MatchString(input.Email) {
		return &ValidationError{Field: "email", Message: "Invalid email format"}
	}
	return nil
}

// Submit stores a new contact message. Notification failures are logged and
// do not fail the submission.
func (s *ContactService) Submit(ctx context.Context, input ContactInput) (*db.ContactMessage, error) {
	if err := s.Validate(input); err != nil {
		return nil, err
	}

	message := db.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := s.messages.Create(ctx, &message); err != nil {
		return nil, fmt.Errorf("store contact message: %w", err)
	}

	if err := s.notifier.NotifyContact(ctx, message); err != nil {
		s.logger.WarnContext(ctx, "contact notification failed", "contact_id", message.ID, "error", err)
	}
	return &message, nil
}
