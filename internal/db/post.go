package db

import "time"

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
	PostStatusArchived  = "archived"
)

// BlogPost 定义了博客文章模型。只有 published 状态的文章对外可见。
type BlogPost struct {
	ID            uint   `gorm:"primaryKey"`
	Title         string `gorm:"size:200;not null"`
	Slug          string `gorm:"size:200;uniqueIndex;not null"`
	Content       string `gorm:"type:text"`
	Excerpt       string `gorm:"type:text"`
	FeaturedImage *string
	Status        string `gorm:"size:10;index;not null;default:draft"`
	CategoryID    *uint  `gorm:"index"`
	Category      *Category
	Tags          []Tag `gorm:"many2many:blog_post_tags;"`
	AuthorID      uint  `gorm:"index;not null"`
	Author        User
	PublishedAt   *time.Time `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ReadingTime   int    `gorm:"not null;default:0"`
	Views         uint64 `gorm:"not null;default:0"`
}

// IsPublished reports whether the post may be shown publicly.
func (p BlogPost) IsPublished() bool {
	return p.Status == PostStatusPublished
}
