package db

import "time"

// DefaultTagColor is used when a tag is created without a display color.
const DefaultTagColor = "#6B7280"

// Tag 定义了标签模型，与文章为多对多关系
type Tag struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:50;not null"`
	Slug      string `gorm:"size:50;uniqueIndex;not null"`
	Color     string `gorm:"size:7;default:#6B7280"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
