package db

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ProjectStatusActive     = "active"
	ProjectStatusCompleted  = "completed"
	ProjectStatusArchived   = "archived"
	ProjectStatusInProgress = "in_progress"
)

// Project 定义了作品集项目。Technologies 以 JSON 数组保存，保留顺序。
type Project struct {
	ID               uint   `gorm:"primaryKey"`
	Title            string `gorm:"size:200;not null"`
	Slug             string `gorm:"size:200;uniqueIndex;not null"`
	Description      string `gorm:"type:text"`
	ShortDescription string `gorm:"size:300"`
	Image            string
	GithubURL        string
	LiveURL          string
	Technologies     datatypes.JSONSlice[string]
	Status           string `gorm:"size:20;index;not null;default:active"`
	Featured         bool   `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
