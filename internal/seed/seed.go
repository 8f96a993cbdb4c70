// Package seed fills an empty store with demo content for local development.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/portfolioapi/internal/db"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrStoreNotEmpty is returned when the store already holds posts or projects.
var ErrStoreNotEmpty = errors.New("store already contains content")

// Options 控制生成数据的规模与随机种子。
type Options struct {
	Seed           int64
	PublishedPosts int
	DraftPosts     int
	Logger         *slog.Logger
}

// Summary 汇总本次生成的记录数量。
type Summary struct {
	Users      int
	Categories int
	Tags       int
	Posts      int
	Projects   int
}

var (
	categoryNames = []string{"Web Development", "DevOps", "Machine Learning", "Career"}
	tagNames      = []string{"Go", "React", "Django", "Docker", "Tailwind", "PostgreSQL"}
	techStacks    = [][]string{
		{"Next.js", "TypeScript", "Tailwind"},
		{"Go", "Gin", "PostgreSQL"},
		{"Python", "Django", "Redis"},
		{"Docker", "Kubernetes"},
	}
	projectStatuses = []string{
		db.ProjectStatusActive,
		db.ProjectStatusCompleted,
		db.ProjectStatusInProgress,
		db.ProjectStatusArchived,
	}
)

// Run 生成作者、分类、标签、文章与项目。已有内容时返回 ErrStoreNotEmpty。
func Run(ctx context.Context, gdb *gorm.DB, opts Options) (Summary, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.PublishedPosts <= 0 {
		opts.PublishedPosts = 12
	}
	if opts.DraftPosts < 0 {
		opts.DraftPosts = 0
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var existing int64
	if err := gdb.WithContext(ctx).Model(&db.BlogPost{}).Count(&existing).Error; err != nil {
		return Summary{}, fmt.Errorf("count posts: %w", err)
	}
	if existing == 0 {
		if err := gdb.WithContext(ctx).Model(&db.Project{}).Count(&existing).Error; err != nil {
			return Summary{}, fmt.Errorf("count projects: %w", err)
		}
	}
	if existing > 0 {
		return Summary{}, ErrStoreNotEmpty
	}

	faker := gofakeit.New(opts.Seed)
	var summary Summary

	err := gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		authors := []db.User{
			{Username: "admin", FirstName: faker.FirstName(), LastName: faker.LastName(), Email: "admin@example.com"},
			{Username: strings.ToLower(faker.Username()), FirstName: faker.FirstName(), LastName: faker.LastName(), Email: faker.Email()},
		}
		if err := tx.Create(&authors).Error; err != nil {
			return fmt.Errorf("create authors: %w", err)
		}
		summary.Users = len(authors)

		categories := make([]db.Category, 0, len(categoryNames))
		for _, name := range categoryNames {
			categories = append(categories, db.Category{Name: name, Slug: slugify(name), Description: faker.Sentence(8)})
		}
		if err := tx.Create(&categories).Error; err != nil {
			return fmt.Errorf("create categories: %w", err)
		}
		summary.Categories = len(categories)

		tags := make([]db.Tag, 0, len(tagNames))
		for _, name := range tagNames {
			tags = append(tags, db.Tag{Name: name, Slug: slugify(name), Color: faker.HexColor()})
		}
		if err := tx.Create(&tags).Error; err != nil {
			return fmt.Errorf("create tags: %w", err)
		}
		summary.Tags = len(tags)

		now := time.Now().UTC()
		total := opts.PublishedPosts + opts.DraftPosts
		for i := 0; i < total; i++ {
			title := strings.TrimSuffix(faker.Sentence(5), ".")
			content := buildContent(faker)
			post := db.BlogPost{
				Title:       title,
				Slug:        fmt.Sprintf("%s-%d", slugify(title), i+1),
				Content:     content,
				Excerpt:     faker.Sentence(14),
				Status:      db.PostStatusDraft,
				AuthorID:    authors[i%len(authors)].ID,
				ReadingTime: readingTime(content),
				Views:       uint64(faker.Number(0, 500)),
				Tags:        []db.Tag{tags[i%len(tags)], tags[(i+2)%len(tags)]},
			}
			if i%5 != 4 {
				post.CategoryID = &categories[i%len(categories)].ID
			}
			if i < opts.PublishedPosts {
				published := faker.DateRange(now.AddDate(-1, 0, 0), now).UTC()
				post.Status = db.PostStatusPublished
				post.PublishedAt = &published
			}
			if err := tx.Create(&post).Error; err != nil {
				return fmt.Errorf("create post %q: %w", post.Slug, err)
			}
			summary.Posts++
		}

		for i, status := range projectStatuses {
			name := faker.AppName()
			project := db.Project{
				Title:            name,
				Slug:             fmt.Sprintf("%s-%d", slugify(name), i+1),
				Description:      faker.Paragraph(2, 3, 10, "\n\n"),
				ShortDescription: faker.Sentence(10),
				Image:            fmt.Sprintf("https://picsum.photos/seed/project-%d/800/600", i+1),
				GithubURL:        fmt.Sprintf("https://github.com/%s/%s", authors[0].Username, slugify(name)),
				LiveURL:          faker.URL(),
				Technologies:     datatypes.JSONSlice[string](techStacks[i%len(techStacks)]),
				Status:           status,
				Featured:         i == 0,
			}
			if err := tx.Create(&project).Error; err != nil {
				return fmt.Errorf("create project %q: %w", project.Slug, err)
			}
			summary.Projects++
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	logger.InfoContext(ctx, "seed data created",
		"users", summary.Users,
		"categories", summary.Categories,
		"tags", summary.Tags,
		"posts", summary.Posts,
		"projects", summary.Projects,
	)
	return summary, nil
}

func buildContent(faker *gofakeit.Faker) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", strings.TrimSuffix(faker.Sentence(4), "."))
	b.WriteString(faker.Paragraph(2, 4, 12, "\n\n"))
	b.WriteString("\n\n```go\nfmt.Println(\"hello\")\n```\n\n")
	b.WriteString(faker.Paragraph(1, 3, 12, "\n\n"))
	return b.String()
}

// readingTime 按每分钟 200 词估算阅读时长，至少 1 分钟。
func readingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + 199) / 200
	if minutes < 1 {
		return 1
	}
	return minutes
}

func slugify(value string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(value) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
