package service

import (
	"context"
	"sync"

	"github.com/portfolioapi/internal/db"
	"github.com/portfolioapi/internal/repository"
)

type fakePostRepository struct {
	mu         sync.Mutex
	posts      []db.BlogPost
	countErr   error
	listErr    error
	findErr    error
	incrErr    error
	lastFilter repository.PostFilter
	lastOffset int
	lastLimit  int
	listCalls  int
	increments map[uint]int
}

func (f *fakePostRepository) CountPublished(_ context.Context, filter repository.PostFilter) (int64, error) {
	f.lastFilter = filter
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.posts)), nil
}

func (f *fakePostRepository) ListPublished(_ context.Context, filter repository.PostFilter, offset, limit int) ([]db.BlogPost, error) {
	f.listCalls++
	f.lastFilter = filter
	f.lastOffset = offset
	f.lastLimit = limit
	if f.listErr != nil {
		return nil, f.listErr
	}
	if offset >= len(f.posts) {
		return []db.BlogPost{}, nil
	}
	if limit > len(f.posts)-offset {
		limit = len(f.posts) - offset
	}
	return f.posts[offset : offset+limit], nil
}

func (f *fakePostRepository) FindPublishedBySlug(_ context.Context, slug string) (*db.BlogPost, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, post := range f.posts {
		if post.Slug == slug && post.IsPublished() {
			found := post
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakePostRepository) IncrementViews(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.incrErr != nil {
		return f.incrErr
	}
	if f.increments == nil {
		f.increments = map[uint]int{}
	}
	f.increments[id]++
	return nil
}

type fakeProjectRepository struct {
	projects     []db.Project
	err          error
	lastStatuses []string
}

func (f *fakeProjectRepository) ListByStatus(_ context.Context, statuses []string) ([]db.Project, error) {
	f.lastStatuses = statuses
	if f.err != nil {
		return nil, f.err
	}
	allowed := map[string]bool{}
	for _, status := range statuses {
		allowed[status] = true
	}
	projects := []db.Project{}
	for _, project := range f.projects {
		if allowed[project.Status] {
			projects = append(projects, project)
		}
	}
	return projects, nil
}

func (f *fakeProjectRepository) FindBySlug(_ context.Context, slug string) (*db.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, project := range f.projects {
		if project.Slug == slug {
			found := project
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeContactRepository struct {
	stored []db.ContactMessage
	err    error
}

func (f *fakeContactRepository) Create(_ context.Context, message *db.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	message.ID = uint(len(f.stored) + 1)
	f.stored = append(f.stored, *message)
	return nil
}

type recordingNotifier struct {
	notified []db.ContactMessage
	err      error
}

func (n *recordingNotifier) NotifyContact(_ context.Context, message db.ContactMessage) error {
	n.notified = append(n.notified, message)
	return n.err
}

type fakeNewsletterRepository struct {
	active map[string]bool
	err    error
	calls  int
}

func (f *fakeNewsletterRepository) Subscribe(_ context.Context, email string) (repository.SubscriptionOutcome, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if f.active == nil {
		f.active = map[string]bool{}
	}
	active, exists := f.active[email]
	f.active[email] = true
	switch {
	case !exists:
		return repository.SubscriptionCreated, nil
	case !active:
		return repository.SubscriptionReactivated, nil
	default:
		return repository.SubscriptionAlreadyActive, nil
	}
}
