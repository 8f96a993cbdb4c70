package handler

import (
	"log/slog"

	"github.com/portfolioapi/internal/observability"
	"github.com/portfolioapi/internal/repository"
	"github.com/portfolioapi/internal/service"
	"gorm.io/gorm"
)

// Options 配置 API 的分页、联系表单与观测依赖。
type Options struct {
	DefaultPerPage      int
	MaxPerPage          int
	ValidateEmailFormat bool
	Logger              *slog.Logger
	Metrics             *observability.Metrics
	Notifier            service.ContactNotifier
}

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db         *gorm.DB
	posts      *service.PostService
	projects   *service.ProjectService
	categories *service.CategoryService
	tags       *service.TagService
	contacts   *service.ContactService
	newsletter *service.NewsletterService
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewAPI constructs a handler set with shared services.
func NewAPI(db *gorm.DB, opts Options) *API {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &API{
		db: db,
		posts: service.NewPostService(repository.NewPostRepository(db), service.PaginationSettings{
			DefaultPerPage: opts.DefaultPerPage,
			MaxPerPage:     opts.MaxPerPage,
		}),
		projects:   service.NewProjectService(repository.NewProjectRepository(db)),
		categories: service.NewCategoryService(repository.NewCategoryRepository(db)),
		tags:       service.NewTagService(repository.NewTagRepository(db)),
		contacts: service.NewContactService(repository.NewContactRepository(db), service.ContactOptions{
			Notifier:            opts.Notifier,
			ValidateEmailFormat: opts.ValidateEmailFormat,
			Logger:              logger,
		}),
		newsletter: service.NewNewsletterService(repository.NewNewsletterRepository(db)),
		logger:     logger,
		metrics:    opts.Metrics,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
