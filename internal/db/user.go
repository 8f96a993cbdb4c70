package db

import "time"

// User 定义了文章作者的公开身份信息
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"size:150;uniqueIndex;not null"`
	FirstName string `gorm:"size:150"`
	LastName  string `gorm:"size:150"`
	Email     string `gorm:"size:254"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
