package repository

import (
	"context"

	"github.com/portfolioapi/internal/db"
	"github.com/portfolioapi/internal/observability"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubscriptionOutcome reports what a subscribe call changed.
type SubscriptionOutcome string

const (
	SubscriptionCreated       SubscriptionOutcome = "created"
	SubscriptionReactivated   SubscriptionOutcome = "reactivated"
	SubscriptionAlreadyActive SubscriptionOutcome = "already_active"
)

// NewsletterRepository performs the idempotent subscribe upsert.
type NewsletterRepository interface {
	Subscribe(ctx context.Context, email string) (SubscriptionOutcome, error)
}

type newsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository creates a new newsletter repository
func NewNewsletterRepository(gdb *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: gdb}
}

// Subscribe 先以 ON CONFLICT DO NOTHING 插入；未插入时说明邮箱已存在，
// 再用带条件的 UPDATE 把 inactive 翻转为 active。两步都依赖 email 唯一索引，
// 并发的同邮箱请求只会有一个插入成功，其余走更新分支。
func (r *newsletterRepository) Subscribe(ctx context.Context, email string) (outcome SubscriptionOutcome, err error) {
	ctx, span := observability.StartRepositorySpan(ctx, "Subscribe", "newsletters")
	defer func() { observability.EndSpan(span, err) }()

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subscription := db.Newsletter{Email: email, Active: true}
		insert := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&subscription)
		if insert.Error != nil {
			return insert.Error
		}
		if insert.RowsAffected == 1 {
			outcome = SubscriptionCreated
			return nil
		}

		update := tx.Model(&db.Newsletter{}).
			Where("email = ? AND active = ?", email, false).
			Update("active", true)
		if update.Error != nil {
			return update.Error
		}
		if update.RowsAffected == 1 {
			outcome = SubscriptionReactivated
		} else {
			outcome = SubscriptionAlreadyActive
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return outcome, nil
}
