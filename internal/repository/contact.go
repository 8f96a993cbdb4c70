package repository

import (
	"context"

	"github.com/portfolioapi/internal/db"
	"github.com/portfolioapi/internal/observability"
	"gorm.io/gorm"
)

// ContactRepository appends contact messages.
type ContactRepository interface {
	Create(ctx context.Context, message *db.ContactMessage) error
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact message repository
func NewContactRepository(gdb *gorm.DB) ContactRepository {
	return &contactRepository{db: gdb}
}

func (r *contactRepository) Create(ctx context.Context, message *db.ContactMessage) (err error) {
	ctx, span := observability.StartRepositorySpan(ctx, "Create", "contact_messages")
	defer func() { observability.EndSpan(span, err) }()

	return r.db.WithContext(ctx).Create(message).Error
}
